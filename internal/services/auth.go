package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type authService struct {
	profileRepo domain.ProfileRepository
	hasher      domain.PasswordHasher
	issuer      domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService with the given repository, hasher and token issuer.
func NewAuthService(profileRepo domain.ProfileRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		profileRepo: profileRepo,
		hasher:      hasher,
		issuer:      issuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password, displayName string) (*domain.Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		// Default the display name to the local part of the email.
		displayName = email[:strings.Index(email, "@")]
	}

	now := time.Now()
	profile := domain.NewProfile(email, displayName, now, now)
	profile.PasswordHash = hash
	profile.Salt = salt
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: email already in use", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	profile, err := s.profileRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	if err := s.hasher.Compare(profile.PasswordHash, profile.Salt, password); err != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := s.issuer.Issue(profile.ID, profile.Email, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
