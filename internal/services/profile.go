package services

import (
	"context"
	"fmt"
	"strings"

	"conferencecentral/internal/domain"
)

type profileService struct {
	profileRepo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(profileRepo domain.ProfileRepository) domain.ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// SaveProfile updates the user-modifiable fields. An empty field leaves the
// stored value unchanged, so clients may send partial updates.
func (s *profileService) SaveProfile(ctx context.Context, profileID, displayName, teeShirtSize string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(displayName); name != "" {
		profile.DisplayName = name
	}
	if teeShirtSize != "" {
		if !domain.ValidTeeShirtSize(teeShirtSize) {
			return nil, fmt.Errorf("%w: unknown tee shirt size %q", domain.ErrInvalidInput, teeShirtSize)
		}
		profile.TeeShirtSize = teeShirtSize
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}
