package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

// Defaults applied to missing conference fields on creation.
var (
	defaultCity   = "Default City"
	defaultTopics = []string{"Default", "Topic"}
)

type conferenceService struct {
	conferenceRepo domain.ConferenceRepository
	profileRepo    domain.ProfileRepository
	dispatcher     domain.TaskDispatcher
	logger         *slog.Logger
}

// NewConferenceService creates a ConferenceService with the given
// repositories and task dispatcher.
func NewConferenceService(
	conferenceRepo domain.ConferenceRepository,
	profileRepo domain.ProfileRepository,
	dispatcher domain.TaskDispatcher,
	logger *slog.Logger,
) domain.ConferenceService {
	return &conferenceService{
		conferenceRepo: conferenceRepo,
		profileRepo:    profileRepo,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (s *conferenceService) CreateConference(ctx context.Context, organizerID string, c *domain.Conference) (*domain.Conference, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("%w: conference name is required", domain.ErrInvalidInput)
	}
	if c.MaxAttendees < 0 {
		return nil, fmt.Errorf("%w: max_attendees must not be negative", domain.ErrInvalidInput)
	}

	c.OrganizerID = organizerID
	if c.City == "" {
		c.City = defaultCity
	}
	if len(c.Topics) == 0 {
		c.Topics = defaultTopics
	}
	if c.StartDate != nil {
		c.Month = int(c.StartDate.Month())
	} else {
		c.Month = 0
	}
	// Every seat starts out available.
	c.SeatsAvailable = c.MaxAttendees

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.conferenceRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create conference: %w", err)
	}

	// Confirmation email goes out through the task queue; creation does not
	// wait for delivery.
	organizer, err := s.profileRepo.GetByID(ctx, organizerID)
	if err != nil {
		s.logger.WarnContext(ctx, "skipping confirmation email, organizer lookup failed", "organizer_id", organizerID, "err", err)
		return c, nil
	}
	if err := s.dispatcher.Enqueue(ctx, domain.TaskConfirmationEmail, map[string]string{
		domain.TaskParamEmail:          organizer.Email,
		domain.TaskParamConferenceName: c.Name,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to enqueue confirmation email", "conference_id", c.ID, "err", err)
	}
	return c, nil
}

func (s *conferenceService) UpdateConference(ctx context.Context, callerID, conferenceID string, upd *domain.ConferenceUpdate) (*domain.Conference, error) {
	c, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		return nil, err
	}
	if c.OrganizerID != callerID {
		return nil, domain.ErrForbidden
	}

	if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.City != nil && *upd.City != "" {
		c.City = *upd.City
	}
	if len(upd.Topics) > 0 {
		c.Topics = upd.Topics
	}
	if upd.StartDate != nil {
		c.StartDate = upd.StartDate
		c.Month = int(upd.StartDate.Month())
	}
	if upd.EndDate != nil {
		c.EndDate = upd.EndDate
	}
	if upd.MaxAttendees != nil {
		if *upd.MaxAttendees < 0 {
			return nil, fmt.Errorf("%w: max_attendees must not be negative", domain.ErrInvalidInput)
		}
		taken := c.MaxAttendees - c.SeatsAvailable
		c.MaxAttendees = *upd.MaxAttendees
		c.SeatsAvailable = c.MaxAttendees - taken
		if c.SeatsAvailable < 0 {
			c.SeatsAvailable = 0
		}
	}

	if err := s.conferenceRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update conference: %w", err)
	}
	return c, nil
}

func (s *conferenceService) GetConference(ctx context.Context, conferenceID string) (*domain.Conference, error) {
	return s.conferenceRepo.GetByID(ctx, conferenceID)
}

func (s *conferenceService) ListConferencesCreated(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	conferences, err := s.conferenceRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return conferences, nil
}

func (s *conferenceService) ListConferencesToAttend(ctx context.Context, profileID string) ([]*domain.Conference, error) {
	conferences, err := s.conferenceRepo.ListAttending(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list attending conferences: %w", err)
	}
	return conferences, nil
}

func (s *conferenceService) QueryConferences(ctx context.Context, filters []domain.Filter) ([]*domain.Conference, error) {
	inequalityColumn, normalized, err := domain.ValidateFilters(filters)
	if err != nil {
		return nil, err
	}
	conferences, err := s.conferenceRepo.Query(ctx, inequalityColumn, normalized)
	if err != nil {
		return nil, fmt.Errorf("query conferences: %w", err)
	}
	return conferences, nil
}

func (s *conferenceService) RegisterForConference(ctx context.Context, profileID, conferenceID string) (bool, error) {
	if err := s.conferenceRepo.Register(ctx, conferenceID, profileID); err != nil {
		if errors.Is(err, domain.ErrNotFound) ||
			errors.Is(err, domain.ErrAlreadyRegistered) ||
			errors.Is(err, domain.ErrNoSeatsAvailable) {
			return false, err
		}
		return false, fmt.Errorf("register: %w", err)
	}
	return true, nil
}

func (s *conferenceService) UnregisterFromConference(ctx context.Context, profileID, conferenceID string) (bool, error) {
	removed, err := s.conferenceRepo.Unregister(ctx, conferenceID, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("unregister: %w", err)
	}
	return removed, nil
}
