package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

const speakerColumns = "id, full_name, profession, created_at, updated_at"

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{
		DB: db,
	}
}

// Create inserts the speaker. Two concurrent check-then-create flows can race
// past the lookup; the unique index on full_name settles it, and the loser
// gets the winner's record back with ErrAlreadyExists.
func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	query := `
		INSERT INTO speakers (full_name, profession, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.FullName, s.Profession, s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
	if isUniqueViolation(err) {
		existing, getErr := r.GetByFullName(ctx, s.FullName)
		if getErr != nil {
			return getErr
		}
		*s = *existing
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *speakerRepository) GetByFullName(ctx context.Context, fullName string) (*domain.Speaker, error) {
	query := `SELECT ` + speakerColumns + ` FROM speakers WHERE full_name = $1`
	s := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, query, fullName).Scan(
		&s.ID, &s.FullName, &s.Profession, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *speakerRepository) List(ctx context.Context) ([]*domain.Speaker, error) {
	query := `SELECT ` + speakerColumns + ` FROM speakers ORDER BY full_name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		s := &domain.Speaker{}
		if err := rows.Scan(&s.ID, &s.FullName, &s.Profession, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}
