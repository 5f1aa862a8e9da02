package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

const profileColumns = "id, email, password_hash, salt, display_name, tee_shirt_size, created_at, updated_at"

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{
		DB: db,
	}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (email, password_hash, salt, display_name, tee_shirt_size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.Email, p.PasswordHash, p.Salt, p.DisplayName, p.TeeShirtSize, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *profileRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.Salt, &p.DisplayName, &p.TeeShirtSize,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.scanOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.scanOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email)
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, tee_shirt_size = $2, updated_at = NOW()
		WHERE id = $3
	`
	result, err := r.DB.ExecContext(ctx, query, p.DisplayName, p.TeeShirtSize, p.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
