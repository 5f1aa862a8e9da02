package domain

import (
	"context"
	"time"
)

// WishlistEntry marks a session the profile intends to attend, independent of
// conference registration. At most one entry per (profile, session) pair;
// session name and type are denormalized for cheap listing.
// swagger:model WishlistEntry
type WishlistEntry struct {
	ID            string    `json:"id"`
	ProfileID     string    `json:"profile_id"`
	SessionID     string    `json:"session_id"`
	SessionName   string    `json:"session_name"`
	TypeOfSession string    `json:"type_of_session"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewWishlistEntry returns a new WishlistEntry. ID is set by the repository on create.
func NewWishlistEntry(profileID, sessionID, sessionName, typeOfSession string, createdAt time.Time) *WishlistEntry {
	return &WishlistEntry{
		ProfileID:     profileID,
		SessionID:     sessionID,
		SessionName:   sessionName,
		TypeOfSession: typeOfSession,
		CreatedAt:     createdAt,
	}
}

// WishlistRepository defines the interface for wishlist storage. Listings are
// ancestor queries over the profile_id column.
type WishlistRepository interface {
	// Create inserts the entry. On a (profile, session) collision it loads
	// the existing record into e and returns ErrAlreadyExists.
	Create(ctx context.Context, e *WishlistEntry) error
	ListByProfileID(ctx context.Context, profileID string) ([]*WishlistEntry, error)
}

// WishlistService defines wishlist business logic.
type WishlistService interface {
	// AddToWishlist is idempotent: created is false and the existing entry is
	// returned when the session is already wishlisted.
	AddToWishlist(ctx context.Context, profileID, sessionID string) (entry *WishlistEntry, created bool, err error)
	ListWishlist(ctx context.Context, profileID string) ([]*WishlistEntry, error)
}
