package domain

import (
	"context"
	"time"
)

// Tee shirt sizes a profile may choose. Stored as plain strings.
const (
	TeeShirtNotSpecified = "NOT_SPECIFIED"
	TeeShirtXSM          = "XS_M"
	TeeShirtXSW          = "XS_W"
	TeeShirtSM           = "S_M"
	TeeShirtSW           = "S_W"
	TeeShirtMM           = "M_M"
	TeeShirtMW           = "M_W"
	TeeShirtLM           = "L_M"
	TeeShirtLW           = "L_W"
	TeeShirtXLM          = "XL_M"
	TeeShirtXLW          = "XL_W"
	TeeShirtXXLM         = "XXL_M"
	TeeShirtXXLW         = "XXL_W"
	TeeShirtXXXLM        = "XXXL_M"
	TeeShirtXXXLW        = "XXXL_W"
)

// ValidTeeShirtSize reports whether s is one of the known size values.
func ValidTeeShirtSize(s string) bool {
	switch s {
	case TeeShirtNotSpecified,
		TeeShirtXSM, TeeShirtXSW, TeeShirtSM, TeeShirtSW,
		TeeShirtMM, TeeShirtMW, TeeShirtLM, TeeShirtLW,
		TeeShirtXLM, TeeShirtXLW, TeeShirtXXLM, TeeShirtXXLW,
		TeeShirtXXXLM, TeeShirtXXXLW:
		return true
	}
	return false
}

// Profile represents a registered user of the conference system.
// swagger:model Profile
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	TeeShirtSize string    `json:"tee_shirt_size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProfile returns a new Profile with the given fields. ID is set by the
// repository on create.
func NewProfile(email, displayName string, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		Email:        email,
		DisplayName:  displayName,
		TeeShirtSize: TeeShirtNotSpecified,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated profile.
type TokenIssuer interface {
	Issue(profileID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated profile ID.
type TokenVerifier interface {
	Verify(token string) (profileID string, err error)
}

// ProfileRepository defines the interface for profile storage.
type ProfileRepository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
}

// AuthService defines signup and login for the caller-identity boundary.
type AuthService interface {
	SignUp(ctx context.Context, email, password, displayName string) (*Profile, error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

// ProfileService defines profile read/update business logic.
type ProfileService interface {
	GetProfile(ctx context.Context, profileID string) (*Profile, error)
	// SaveProfile updates the user-modifiable fields (display name, tee shirt
	// size). Empty fields are left unchanged.
	SaveProfile(ctx context.Context, profileID, displayName, teeShirtSize string) (*Profile, error)
}
