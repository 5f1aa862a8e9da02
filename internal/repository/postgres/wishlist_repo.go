package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

const wishlistColumns = "id, profile_id, session_id, session_name, type_of_session, created_at"

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepository(db *sql.DB) domain.WishlistRepository {
	return &wishlistRepository{
		DB: db,
	}
}

// Create inserts the entry; the unique index on (profile_id, session_id)
// keeps the wishlist a set even when concurrent adds race the dedup check.
func (r *wishlistRepository) Create(ctx context.Context, e *domain.WishlistEntry) error {
	query := `
		INSERT INTO wishlists (profile_id, session_id, session_name, type_of_session, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		e.ProfileID, e.SessionID, e.SessionName, e.TypeOfSession, e.CreatedAt,
	).Scan(&e.ID)
	if isUniqueViolation(err) {
		existing, getErr := r.getByProfileAndSession(ctx, e.ProfileID, e.SessionID)
		if getErr != nil {
			return getErr
		}
		*e = *existing
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *wishlistRepository) getByProfileAndSession(ctx context.Context, profileID, sessionID string) (*domain.WishlistEntry, error) {
	query := `SELECT ` + wishlistColumns + ` FROM wishlists WHERE profile_id = $1 AND session_id = $2`
	e := &domain.WishlistEntry{}
	err := r.DB.QueryRowContext(ctx, query, profileID, sessionID).Scan(
		&e.ID, &e.ProfileID, &e.SessionID, &e.SessionName, &e.TypeOfSession, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *wishlistRepository) ListByProfileID(ctx context.Context, profileID string) ([]*domain.WishlistEntry, error) {
	query := `SELECT ` + wishlistColumns + ` FROM wishlists WHERE profile_id = $1 ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]*domain.WishlistEntry, 0)
	for rows.Next() {
		e := &domain.WishlistEntry{}
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.SessionID, &e.SessionName, &e.TypeOfSession, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
