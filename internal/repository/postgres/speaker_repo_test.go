package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"conferencecentral/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSpeakerRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO speakers`).
			WithArgs("Ada Lovelace", "Engineer", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("spk-uuid-1"))

		repo := NewSpeakerRepository(db)
		spk := domain.NewSpeaker("Ada Lovelace", "Engineer", time.Now(), time.Now())
		require.NoError(t, repo.Create(ctx, spk))
		require.Equal(t, "spk-uuid-1", spk.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("name collision loads the existing record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`INSERT INTO speakers`).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectQuery(`SELECT .+ FROM speakers WHERE full_name = \$1`).
			WithArgs("Ada Lovelace").
			WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "profession", "created_at", "updated_at"}).
				AddRow("spk-existing", "Ada Lovelace", "Mathematician", now, now))

		repo := NewSpeakerRepository(db)
		spk := domain.NewSpeaker("Ada Lovelace", "Engineer", time.Now(), time.Now())
		err = repo.Create(ctx, spk)
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
		require.Equal(t, "spk-existing", spk.ID)
		require.Equal(t, "Mathematician", spk.Profession)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSpeakerRepository_List(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM speakers ORDER BY full_name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "profession", "created_at", "updated_at"}).
			AddRow("spk-1", "Ada Lovelace", "Engineer", now, now).
			AddRow("spk-2", "Grace Hopper", "Admiral", now, now))

	repo := NewSpeakerRepository(db)
	speakers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, speakers, 2)
	require.Equal(t, "Ada Lovelace", speakers[0].FullName)
	require.NoError(t, mock.ExpectationsWereMet())
}
