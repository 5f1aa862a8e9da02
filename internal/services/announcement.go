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

// Announcement thresholds and templates.
const (
	nearlySoldOutSeats  = 5
	announcementTpl     = "Last chance to attend! The following conferences are nearly sold out: %s"
	featuredSpeakerTpl  = "Featured speaker of this conference is %s. Session names: %s"
	featuredSessionsMin = 2
)

type announcementService struct {
	conferenceRepo domain.ConferenceRepository
	sessionRepo    domain.SessionRepository
	speakerRepo    domain.SpeakerRepository
	cache          domain.CacheStore
	logger         *slog.Logger
}

// NewAnnouncementService creates an AnnouncementService over the given
// repositories and cache store.
func NewAnnouncementService(
	conferenceRepo domain.ConferenceRepository,
	sessionRepo domain.SessionRepository,
	speakerRepo domain.SpeakerRepository,
	cache domain.CacheStore,
	logger *slog.Logger,
) domain.AnnouncementService {
	return &announcementService{
		conferenceRepo: conferenceRepo,
		sessionRepo:    sessionRepo,
		speakerRepo:    speakerRepo,
		cache:          cache,
		logger:         logger,
	}
}

// HandleFeaturedSpeaker recomputes the featured-speaker cache slot for one
// (conference, speaker) pair. Deliveries are at-least-once and may race the
// originating session creation, so the speaker is resolved or created here
// too; running twice with the same inputs creates nothing new and writes the
// same string. A speaker with fewer than two sessions leaves the slot
// untouched (last writer wins, no explicit clear).
func (s *announcementService) HandleFeaturedSpeaker(ctx context.Context, conferenceID, speakerName, speakerProfession string) error {
	if conferenceID == "" {
		return fmt.Errorf("%w: conference_id is required", domain.ErrInvalidInput)
	}
	if speakerName == "" {
		return fmt.Errorf("%w: speaker_name is required", domain.ErrInvalidInput)
	}
	if _, err := s.conferenceRepo.GetByID(ctx, conferenceID); err != nil {
		return fmt.Errorf("resolve conference %s: %w", conferenceID, err)
	}

	speaker, err := s.speakerRepo.GetByFullName(ctx, speakerName)
	if errors.Is(err, domain.ErrNotFound) {
		now := time.Now()
		speaker = domain.NewSpeaker(speakerName, speakerProfession, now, now)
		if createErr := s.speakerRepo.Create(ctx, speaker); createErr != nil && !errors.Is(createErr, domain.ErrAlreadyExists) {
			return fmt.Errorf("create speaker: %w", createErr)
		}
	} else if err != nil {
		return fmt.Errorf("get speaker: %w", err)
	}

	sessions, err := s.sessionRepo.ListByConferenceAndSpeaker(ctx, conferenceID, speaker.ID)
	if err != nil {
		return fmt.Errorf("list speaker sessions: %w", err)
	}
	if len(sessions) < featuredSessionsMin {
		return nil
	}

	names := make([]string, len(sessions))
	for i, sess := range sessions {
		names[i] = sess.Name
	}
	text := fmt.Sprintf(featuredSpeakerTpl, speaker.FullName, strings.Join(names, ", "))
	if err := s.cache.Set(ctx, domain.FeaturedSpeakerCacheKey, text); err != nil {
		return fmt.Errorf("set featured speaker cache: %w", err)
	}
	s.logger.InfoContext(ctx, "featured speaker updated", "speaker", speaker.FullName, "sessions", len(sessions))
	return nil
}

// RecomputeAnnouncement refreshes the nearly-sold-out announcement. Unlike
// the featured-speaker slot, this one is explicitly cleared when no
// conference qualifies.
func (s *announcementService) RecomputeAnnouncement(ctx context.Context) (string, error) {
	conferences, err := s.conferenceRepo.ListNearlySoldOut(ctx, nearlySoldOutSeats)
	if err != nil {
		return "", fmt.Errorf("list nearly sold out conferences: %w", err)
	}

	if len(conferences) == 0 {
		if err := s.cache.Delete(ctx, domain.AnnouncementCacheKey); err != nil {
			return "", fmt.Errorf("clear announcement cache: %w", err)
		}
		return "", nil
	}

	names := make([]string, len(conferences))
	for i, c := range conferences {
		names[i] = c.Name
	}
	text := fmt.Sprintf(announcementTpl, strings.Join(names, ", "))
	if err := s.cache.Set(ctx, domain.AnnouncementCacheKey, text); err != nil {
		return "", fmt.Errorf("set announcement cache: %w", err)
	}
	s.logger.InfoContext(ctx, "announcement updated", "conferences", len(conferences))
	return text, nil
}

func (s *announcementService) GetAnnouncement(ctx context.Context) (string, error) {
	return s.cache.Get(ctx, domain.AnnouncementCacheKey)
}

func (s *announcementService) GetFeaturedSpeaker(ctx context.Context) (string, error) {
	return s.cache.Get(ctx, domain.FeaturedSpeakerCacheKey)
}
