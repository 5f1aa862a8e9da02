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

type sessionService struct {
	sessionRepo    domain.SessionRepository
	speakerRepo    domain.SpeakerRepository
	conferenceRepo domain.ConferenceRepository
	dispatcher     domain.TaskDispatcher
	logger         *slog.Logger
}

// NewSessionService creates a SessionService with the given repositories and
// task dispatcher.
func NewSessionService(
	sessionRepo domain.SessionRepository,
	speakerRepo domain.SpeakerRepository,
	conferenceRepo domain.ConferenceRepository,
	dispatcher domain.TaskDispatcher,
	logger *slog.Logger,
) domain.SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		speakerRepo:    speakerRepo,
		conferenceRepo: conferenceRepo,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

// CreateSession creates a session under a conference. Creation is idempotent
// on (conference, name): a duplicate create returns the existing session and
// performs no writes. When a speaker name is given the speaker record is
// resolved by full name or created, then the featured-speaker recompute is
// enqueued; the call returns without waiting for it.
func (s *sessionService) CreateSession(ctx context.Context, callerID string, in *domain.CreateSessionInput) (*domain.Session, bool, error) {
	if strings.TrimSpace(in.ConferenceID) == "" {
		return nil, false, fmt.Errorf("%w: conference_id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, false, fmt.Errorf("%w: session name is required", domain.ErrInvalidInput)
	}

	conference, err := s.conferenceRepo.GetByID(ctx, in.ConferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get conference: %w", err)
	}
	if conference.OrganizerID != callerID {
		return nil, false, domain.ErrForbidden
	}

	// Duplicate names under one conference are a no-op returning the
	// existing session.
	if existing, err := s.sessionRepo.GetByConferenceAndName(ctx, in.ConferenceID, in.Name); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("check existing session: %w", err)
	}

	startsAt, err := parseSessionStart(in.Date, in.StartTime)
	if err != nil {
		return nil, false, err
	}

	typeOfSession := in.TypeOfSession
	if typeOfSession == "" {
		typeOfSession = domain.SessionTypeNotSpecified
	}

	now := time.Now()
	session := domain.NewSession(in.ConferenceID, in.Name, typeOfSession, in.DurationMinutes, startsAt, now, now)

	if in.SpeakerName != "" {
		speaker, err := s.resolveSpeaker(ctx, in.SpeakerName, in.SpeakerProfession)
		if err != nil {
			return nil, false, err
		}
		session.SpeakerID = &speaker.ID
		session.SpeakerName = speaker.FullName
		session.SpeakerProfession = speaker.Profession
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost a create race; surface the winner.
			existing, getErr := s.sessionRepo.GetByConferenceAndName(ctx, in.ConferenceID, in.Name)
			if getErr != nil {
				return nil, false, fmt.Errorf("get session after create race: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create session: %w", err)
	}

	if in.SpeakerName != "" {
		if err := s.dispatcher.Enqueue(ctx, domain.TaskFeaturedSpeaker, map[string]string{
			domain.TaskParamConferenceID:      in.ConferenceID,
			domain.TaskParamSpeakerName:       in.SpeakerName,
			domain.TaskParamSpeakerProfession: in.SpeakerProfession,
		}); err != nil {
			// The cache refresh is best-effort; the session itself is saved.
			s.logger.WarnContext(ctx, "failed to enqueue featured speaker task", "conference_id", in.ConferenceID, "err", err)
		}
	}
	return session, true, nil
}

// resolveSpeaker looks up a speaker by full name and creates one when absent.
// The lookup and insert are not atomic; the unique index in the repository
// settles concurrent creates.
func (s *sessionService) resolveSpeaker(ctx context.Context, fullName, profession string) (*domain.Speaker, error) {
	speaker, err := s.speakerRepo.GetByFullName(ctx, fullName)
	if err == nil {
		return speaker, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get speaker: %w", err)
	}

	now := time.Now()
	speaker = domain.NewSpeaker(fullName, profession, now, now)
	if err := s.speakerRepo.Create(ctx, speaker); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("create speaker: %w", err)
	}
	return speaker, nil
}

// parseSessionStart combines the date and start-time strings into a single
// timestamp. Both are optional; a start time without a date is rejected.
func parseSessionStart(date, startTime string) (*time.Time, error) {
	if date == "" {
		if startTime != "" {
			return nil, fmt.Errorf("%w: start_time requires a date", domain.ErrInvalidInput)
		}
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if startTime != "" {
		t, err := time.Parse("15:04", startTime)
		if err != nil {
			return nil, fmt.Errorf("%w: start_time must be HH:MM", domain.ErrInvalidInput)
		}
		d = time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	}
	return &d, nil
}

func (s *sessionService) ListConferenceSessions(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	if _, err := s.conferenceRepo.GetByID(ctx, conferenceID); err != nil {
		return nil, err
	}
	if typeOfSession != "" {
		return s.sessionRepo.ListByConferenceAndType(ctx, conferenceID, typeOfSession)
	}
	return s.sessionRepo.ListByConferenceID(ctx, conferenceID)
}

func (s *sessionService) ListSessionsBySpeaker(ctx context.Context, speakerFullName, typeOfSession string) ([]*domain.Session, error) {
	if strings.TrimSpace(speakerFullName) == "" {
		return nil, fmt.Errorf("%w: speaker name is required", domain.ErrInvalidInput)
	}
	return s.sessionRepo.ListBySpeaker(ctx, speakerFullName, typeOfSession)
}
