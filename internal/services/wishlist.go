package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencecentral/internal/domain"
)

type wishlistService struct {
	wishlistRepo domain.WishlistRepository
	sessionRepo  domain.SessionRepository
}

// NewWishlistService creates a WishlistService with the given repositories.
func NewWishlistService(wishlistRepo domain.WishlistRepository, sessionRepo domain.SessionRepository) domain.WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		sessionRepo:  sessionRepo,
	}
}

// AddToWishlist marks the session as one the profile intends to attend. A
// session already on the wishlist is returned as-is with created=false.
func (s *wishlistService) AddToWishlist(ctx context.Context, profileID, sessionID string) (*domain.WishlistEntry, bool, error) {
	if sessionID == "" {
		return nil, false, fmt.Errorf("%w: session_id is required", domain.ErrInvalidInput)
	}
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get session: %w", err)
	}

	entry := domain.NewWishlistEntry(profileID, session.ID, session.Name, session.TypeOfSession, time.Now())
	if err := s.wishlistRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return entry, false, nil
		}
		return nil, false, fmt.Errorf("create wishlist entry: %w", err)
	}
	return entry, true, nil
}

func (s *wishlistService) ListWishlist(ctx context.Context, profileID string) ([]*domain.WishlistEntry, error) {
	entries, err := s.wishlistRepo.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return entries, nil
}
