package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

const conferenceColumns = "id, organizer_id, name, description, city, topics, month, max_attendees, seats_available, start_date, end_date, created_at, updated_at"

type conferenceRepository struct {
	DB *sql.DB
}

func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{
		DB: db,
	}
}

func (r *conferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	query := `
		INSERT INTO conferences (organizer_id, name, description, city, topics, month, max_attendees, seats_available, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.OrganizerID, c.Name, c.Description, c.City, pq.Array(c.Topics),
		c.Month, c.MaxAttendees, c.SeatsAvailable, c.StartDate, c.EndDate,
		c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func scanConference(scan func(dest ...any) error) (*domain.Conference, error) {
	c := &domain.Conference{}
	var startNull, endNull sql.NullTime
	err := scan(
		&c.ID, &c.OrganizerID, &c.Name, &c.Description, &c.City,
		pq.Array(&c.Topics), &c.Month, &c.MaxAttendees, &c.SeatsAvailable,
		&startNull, &endNull, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if startNull.Valid {
		c.StartDate = &startNull.Time
	}
	if endNull.Valid {
		c.EndDate = &endNull.Time
	}
	return c, nil
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE id = $1`
	c, err := scanConference(r.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) Update(ctx context.Context, c *domain.Conference) error {
	query := `
		UPDATE conferences
		SET name = $1, description = $2, city = $3, topics = $4, month = $5,
		    max_attendees = $6, seats_available = $7, start_date = $8, end_date = $9,
		    updated_at = NOW()
		WHERE id = $10
	`
	result, err := r.DB.ExecContext(ctx, query,
		c.Name, c.Description, c.City, pq.Array(c.Topics), c.Month,
		c.MaxAttendees, c.SeatsAvailable, c.StartDate, c.EndDate, c.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *conferenceRepository) listQuery(ctx context.Context, query string, args ...any) ([]*domain.Conference, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	conferences := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows.Scan)
		if err != nil {
			return nil, err
		}
		conferences = append(conferences, c)
	}
	return conferences, rows.Err()
}

func (r *conferenceRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE organizer_id = $1 ORDER BY name`
	return r.listQuery(ctx, query, organizerID)
}

func (r *conferenceRepository) ListAttending(ctx context.Context, profileID string) ([]*domain.Conference, error) {
	query := `
		SELECT ` + prefixColumns("c", conferenceColumns) + `
		FROM conferences c
		JOIN registrations r ON r.conference_id = c.id
		WHERE r.profile_id = $1
		ORDER BY c.name
	`
	return r.listQuery(ctx, query, profileID)
}

// Query builds the dynamic conference query from validated predicates. Column
// and operator strings come from the filter allow-lists only; values ride as
// placeholders. Ordering: inequality column first when present, then name.
func (r *conferenceRepository) Query(ctx context.Context, inequalityColumn string, filters []domain.NormalizedFilter) ([]*domain.Conference, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + conferenceColumns + ` FROM conferences`)

	args := make([]any, 0, len(filters))
	for i, f := range filters {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		args = append(args, f.Value)
		n := len(args)
		if f.Column == "topics" {
			// Membership test against the topics list.
			if f.Operator == "<>" {
				fmt.Fprintf(&b, "NOT ($%d = ANY(topics))", n)
			} else {
				fmt.Fprintf(&b, "$%d = ANY(topics)", n)
			}
			continue
		}
		fmt.Fprintf(&b, "%s %s $%d", f.Column, f.Operator, n)
	}

	if inequalityColumn != "" && inequalityColumn != "name" {
		fmt.Fprintf(&b, " ORDER BY %s, name", inequalityColumn)
	} else {
		b.WriteString(" ORDER BY name")
	}

	return r.listQuery(ctx, b.String(), args...)
}

func (r *conferenceRepository) ListNearlySoldOut(ctx context.Context, seats int) ([]*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE seats_available > 0 AND seats_available <= $1 ORDER BY name`
	return r.listQuery(ctx, query, seats)
}

// Register adds the profile to the conference's attendance set and takes one
// seat, atomically. The SELECT ... FOR UPDATE on the conference row
// serializes concurrent registrations against the seat counter: with one seat
// left, exactly one of two racing calls commits.
func (r *conferenceRepository) Register(ctx context.Context, conferenceID, profileID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin registration tx: %w", err)
	}
	defer tx.Rollback()

	var seats int
	err = tx.QueryRowContext(ctx,
		`SELECT seats_available FROM conferences WHERE id = $1 FOR UPDATE`,
		conferenceID,
	).Scan(&seats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE conference_id = $1 AND profile_id = $2)`,
		conferenceID, profileID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyRegistered
	}
	if seats <= 0 {
		return domain.ErrNoSeatsAvailable
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO registrations (conference_id, profile_id, created_at) VALUES ($1, $2, NOW())`,
		conferenceID, profileID,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available - 1, updated_at = NOW() WHERE id = $1`,
		conferenceID,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// Unregister removes the profile's registration and gives the seat back.
// Returns (false, nil) when the profile was not registered; that is an
// idempotent no-op, not an error.
func (r *conferenceRepository) Unregister(ctx context.Context, conferenceID, profileID string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin unregistration tx: %w", err)
	}
	defer tx.Rollback()

	var seats int
	err = tx.QueryRowContext(ctx,
		`SELECT seats_available FROM conferences WHERE id = $1 FOR UPDATE`,
		conferenceID,
	).Scan(&seats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, err
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM registrations WHERE conference_id = $1 AND profile_id = $2`,
		conferenceID, profileID,
	)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return false, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available + 1, updated_at = NOW() WHERE id = $1`,
		conferenceID,
	); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

// prefixColumns rewrites "a, b, c" as "t.a, t.b, t.c" for joined queries.
func prefixColumns(table, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = table + "." + p
	}
	return strings.Join(parts, ", ")
}
