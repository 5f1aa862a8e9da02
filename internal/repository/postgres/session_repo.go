package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

// sessionColumns joins sessions with their (optional) speaker so listings can
// carry the denormalized speaker name and profession.
const sessionColumns = `
	s.id, s.conference_id, s.name, s.type_of_session, s.duration_minutes,
	s.starts_at, s.speaker_id, COALESCE(sp.full_name, ''), COALESCE(sp.profession, ''),
	s.created_at, s.updated_at`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (conference_id, name, type_of_session, duration_minutes, starts_at, speaker_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.ConferenceID, s.Name, s.TypeOfSession, s.DurationMinutes,
		s.StartsAt, s.SpeakerID, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

func scanSession(scan func(dest ...any) error) (*domain.Session, error) {
	s := &domain.Session{}
	var startsNull sql.NullTime
	var speakerNull sql.NullString
	err := scan(
		&s.ID, &s.ConferenceID, &s.Name, &s.TypeOfSession, &s.DurationMinutes,
		&startsNull, &speakerNull, &s.SpeakerName, &s.SpeakerProfession,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if startsNull.Valid {
		s.StartsAt = &startsNull.Time
	}
	if speakerNull.Valid {
		s.SpeakerID = &speakerNull.String
	}
	return s, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		LEFT JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.id = $1
	`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) GetByConferenceAndName(ctx context.Context, conferenceID, name string) (*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		LEFT JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.conference_id = $1 AND s.name = $2
	`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, conferenceID, name).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		LEFT JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.conference_id = $1
		ORDER BY s.name
	`
	return r.list(ctx, query, conferenceID)
}

func (r *sessionRepository) ListByConferenceAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		LEFT JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.conference_id = $1 AND s.type_of_session = $2
		ORDER BY s.name
	`
	return r.list(ctx, query, conferenceID, typeOfSession)
}

// ListBySpeaker returns all sessions given by the named speaker across all
// conferences, optionally restricted to a session type.
func (r *sessionRepository) ListBySpeaker(ctx context.Context, speakerFullName, typeOfSession string) ([]*domain.Session, error) {
	if typeOfSession != "" {
		query := `
			SELECT ` + sessionColumns + `
			FROM sessions s
			JOIN speakers sp ON sp.id = s.speaker_id
			WHERE sp.full_name = $1 AND s.type_of_session = $2
			ORDER BY s.name
		`
		return r.list(ctx, query, speakerFullName, typeOfSession)
	}
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		JOIN speakers sp ON sp.id = s.speaker_id
		WHERE sp.full_name = $1
		ORDER BY s.name
	`
	return r.list(ctx, query, speakerFullName)
}

func (r *sessionRepository) ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speakerID string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		LEFT JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.conference_id = $1 AND s.speaker_id = $2
		ORDER BY s.name
	`
	return r.list(ctx, query, conferenceID, speakerID)
}
