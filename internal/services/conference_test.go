package services

import (
	"context"
	"testing"
	"time"

	"conferencecentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConferenceService_CreateConference(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults and enqueues the confirmation email", func(t *testing.T) {
		confRepo := newFakeConferenceRepo()
		profileRepo := newFakeProfileRepo()
		profileRepo.byID["org-1"] = &domain.Profile{ID: "org-1", Email: "org@example.com"}
		dispatcher := &fakeDispatcher{}

		svc := NewConferenceService(confRepo, profileRepo, dispatcher, testLogger())

		start := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
		created, err := svc.CreateConference(ctx, "org-1", &domain.Conference{
			Name:         "GopherCon",
			MaxAttendees: 100,
			StartDate:    &start,
		})
		require.NoError(t, err)

		assert.Equal(t, "Default City", created.City)
		assert.Equal(t, []string{"Default", "Topic"}, created.Topics)
		assert.Equal(t, 6, created.Month)
		assert.Equal(t, 100, created.SeatsAvailable)

		require.Len(t, dispatcher.tasks, 1)
		task := dispatcher.tasks[0]
		assert.Equal(t, domain.TaskConfirmationEmail, task.name)
		assert.Equal(t, "org@example.com", task.params[domain.TaskParamEmail])
		assert.Equal(t, "GopherCon", task.params[domain.TaskParamConferenceName])
	})

	t.Run("name is required", func(t *testing.T) {
		svc := NewConferenceService(newFakeConferenceRepo(), newFakeProfileRepo(), &fakeDispatcher{}, testLogger())

		_, err := svc.CreateConference(ctx, "org-1", &domain.Conference{})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("enqueue failure does not fail the create", func(t *testing.T) {
		confRepo := newFakeConferenceRepo()
		profileRepo := newFakeProfileRepo()
		profileRepo.byID["org-1"] = &domain.Profile{ID: "org-1", Email: "org@example.com"}
		dispatcher := &fakeDispatcher{enqueueErr: assert.AnError}

		svc := NewConferenceService(confRepo, profileRepo, dispatcher, testLogger())
		created, err := svc.CreateConference(ctx, "org-1", &domain.Conference{Name: "GopherCon"})
		require.NoError(t, err)
		assert.Equal(t, "conf-new", created.ID)
	})
}

func TestConferenceService_UpdateConference(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakeConferenceRepo, domain.ConferenceService) {
		confRepo := newFakeConferenceRepo()
		confRepo.byID["conf-1"] = &domain.Conference{
			ID:             "conf-1",
			OrganizerID:    "org-1",
			Name:           "GopherCon",
			MaxAttendees:   100,
			SeatsAvailable: 80,
		}
		svc := NewConferenceService(confRepo, newFakeProfileRepo(), &fakeDispatcher{}, testLogger())
		return confRepo, svc
	}

	t.Run("only the organizer may update", func(t *testing.T) {
		_, svc := setup()
		_, err := svc.UpdateConference(ctx, "intruder", "conf-1", &domain.ConferenceUpdate{})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("shrinking capacity preserves taken seats", func(t *testing.T) {
		_, svc := setup()
		// 20 seats are taken; shrinking to 50 leaves 30 available.
		max := 50
		updated, err := svc.UpdateConference(ctx, "org-1", "conf-1", &domain.ConferenceUpdate{MaxAttendees: &max})
		require.NoError(t, err)
		assert.Equal(t, 50, updated.MaxAttendees)
		assert.Equal(t, 30, updated.SeatsAvailable)
	})

	t.Run("seats never go negative", func(t *testing.T) {
		_, svc := setup()
		max := 10
		updated, err := svc.UpdateConference(ctx, "org-1", "conf-1", &domain.ConferenceUpdate{MaxAttendees: &max})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.SeatsAvailable)
	})

	t.Run("new start date rederives the month", func(t *testing.T) {
		_, svc := setup()
		start := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
		updated, err := svc.UpdateConference(ctx, "org-1", "conf-1", &domain.ConferenceUpdate{StartDate: &start})
		require.NoError(t, err)
		assert.Equal(t, 11, updated.Month)
	})
}

func TestConferenceService_QueryConferences(t *testing.T) {
	ctx := context.Background()

	confRepo := newFakeConferenceRepo()
	confRepo.queried = []*domain.Conference{{ID: "conf-1"}}
	svc := NewConferenceService(confRepo, newFakeProfileRepo(), &fakeDispatcher{}, testLogger())

	t.Run("passes normalized filters through", func(t *testing.T) {
		confs, err := svc.QueryConferences(ctx, []domain.Filter{
			{Field: "CITY", Operator: "EQ", Value: "London"},
			{Field: "MONTH", Operator: "GT", Value: "6"},
		})
		require.NoError(t, err)
		assert.Len(t, confs, 1)
		assert.Equal(t, "month", confRepo.lastInequality)
		require.Len(t, confRepo.lastFilters, 2)
		assert.Equal(t, 6, confRepo.lastFilters[1].Value)
	})

	t.Run("invalid filters never reach the store", func(t *testing.T) {
		_, err := svc.QueryConferences(ctx, []domain.Filter{
			{Field: "MONTH", Operator: "GT", Value: "6"},
			{Field: "MAX_ATTENDEES", Operator: "LT", Value: "100"},
		})
		require.ErrorIs(t, err, domain.ErrMultipleInequalityFields)
	})
}

func TestConferenceService_Registration(t *testing.T) {
	ctx := context.Background()

	t.Run("register surfaces seat conflicts", func(t *testing.T) {
		confRepo := newFakeConferenceRepo()
		confRepo.registerErr = domain.ErrNoSeatsAvailable
		svc := NewConferenceService(confRepo, newFakeProfileRepo(), &fakeDispatcher{}, testLogger())

		ok, err := svc.RegisterForConference(ctx, "prof-1", "conf-1")
		assert.False(t, ok)
		require.ErrorIs(t, err, domain.ErrNoSeatsAvailable)
	})

	t.Run("unregister when not registered is false, not an error", func(t *testing.T) {
		confRepo := newFakeConferenceRepo()
		svc := NewConferenceService(confRepo, newFakeProfileRepo(), &fakeDispatcher{}, testLogger())

		ok, err := svc.UnregisterFromConference(ctx, "prof-1", "conf-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
