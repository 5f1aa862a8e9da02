package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"conferencecentral/internal/domain"

	"github.com/stretchr/testify/require"
)

var conferenceCols = []string{
	"id", "organizer_id", "name", "description", "city", "topics", "month",
	"max_attendees", "seats_available", "start_date", "end_date", "created_at", "updated_at",
}

func conferenceRow(id, name string, seats int) *sqlmock.Rows {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(conferenceCols).
		AddRow(id, "org-uuid-1", name, "", "London", []byte("{Go,Cloud}"), 6, 100, seats, nil, nil, now, now)
}

func TestConferenceRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		conf    *domain.Conference
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			conf: &domain.Conference{
				OrganizerID:    "org-uuid-1",
				Name:           "GopherCon",
				City:           "London",
				Topics:         []string{"Go", "Cloud"},
				Month:          6,
				MaxAttendees:   100,
				SeatsAvailable: 100,
				CreatedAt:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				UpdatedAt:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO conferences`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("conf-uuid-1"))
			},
			wantID:  "conf-uuid-1",
			wantErr: false,
		},
		{
			name: "db error",
			conf: &domain.Conference{
				OrganizerID: "org-1",
				Name:        "Conf",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO conferences`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewConferenceRepository(db)
			err = repo.Create(ctx, tt.conf)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.wantID, tt.conf.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConferenceRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM conferences WHERE id = \$1`).
			WithArgs("conf-1").
			WillReturnRows(conferenceRow("conf-1", "GopherCon", 42))

		repo := NewConferenceRepository(db)
		conf, err := repo.GetByID(ctx, "conf-1")
		require.NoError(t, err)
		require.Equal(t, "GopherCon", conf.Name)
		require.Equal(t, []string{"Go", "Cloud"}, conf.Topics)
		require.Equal(t, 42, conf.SeatsAvailable)
		require.Nil(t, conf.StartDate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM conferences WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewConferenceRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConferenceRepository_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters orders by name", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM conferences ORDER BY name`).
			WillReturnRows(conferenceRow("conf-1", "A", 10))

		repo := NewConferenceRepository(db)
		confs, err := repo.Query(ctx, "", nil)
		require.NoError(t, err)
		require.Len(t, confs, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inequality column leads the ordering", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM conferences WHERE city = \$1 AND month > \$2 ORDER BY month, name`).
			WithArgs("London", 6).
			WillReturnRows(conferenceRow("conf-1", "A", 10))

		repo := NewConferenceRepository(db)
		confs, err := repo.Query(ctx, "month", []domain.NormalizedFilter{
			{Column: "city", Operator: "=", Value: "London"},
			{Column: "month", Operator: ">", Value: 6},
		})
		require.NoError(t, err)
		require.Len(t, confs, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("topic filter uses array membership", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM conferences WHERE \$1 = ANY\(topics\) ORDER BY name`).
			WithArgs("Go").
			WillReturnRows(sqlmock.NewRows(conferenceCols))

		repo := NewConferenceRepository(db)
		confs, err := repo.Query(ctx, "", []domain.NormalizedFilter{
			{Column: "topics", Operator: "=", Value: "Go"},
		})
		require.NoError(t, err)
		require.Empty(t, confs)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConferenceRepository_ListNearlySoldOut(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM conferences WHERE seats_available > 0 AND seats_available <= \$1 ORDER BY name`).
		WithArgs(5).
		WillReturnRows(conferenceRow("conf-1", "Almost Full", 3))

	repo := NewConferenceRepository(db)
	confs, err := repo.ListNearlySoldOut(ctx, 5)
	require.NoError(t, err)
	require.Len(t, confs, 1)
	require.Equal(t, "Almost Full", confs[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConferenceRepository_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success takes a seat", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(1))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("conf-1", "prof-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`INSERT INTO registrations`).
			WithArgs("conf-1", "prof-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE conferences SET seats_available = seats_available - 1`).
			WithArgs("conf-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewConferenceRepository(db)
		require.NoError(t, repo.Register(ctx, "conf-1", "prof-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conference not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		repo := NewConferenceRepository(db)
		err = repo.Register(ctx, "missing", "prof-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already registered", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(10))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("conf-1", "prof-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		repo := NewConferenceRepository(db)
		err = repo.Register(ctx, "conf-1", "prof-1")
		require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sold out", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("conf-1", "prof-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		repo := NewConferenceRepository(db)
		err = repo.Register(ctx, "conf-1", "prof-1")
		require.ErrorIs(t, err, domain.ErrNoSeatsAvailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConferenceRepository_Unregister(t *testing.T) {
	ctx := context.Background()

	t.Run("gives the seat back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(4))
		mock.ExpectExec(`DELETE FROM registrations`).
			WithArgs("conf-1", "prof-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE conferences SET seats_available = seats_available \+ 1`).
			WithArgs("conf-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewConferenceRepository(db)
		removed, err := repo.Unregister(ctx, "conf-1", "prof-1")
		require.NoError(t, err)
		require.True(t, removed)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not registered is a no-op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(4))
		mock.ExpectExec(`DELETE FROM registrations`).
			WithArgs("conf-1", "prof-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		repo := NewConferenceRepository(db)
		removed, err := repo.Unregister(ctx, "conf-1", "prof-1")
		require.NoError(t, err)
		require.False(t, removed)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
