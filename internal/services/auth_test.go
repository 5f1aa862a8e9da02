package services

import (
	"context"
	"testing"
	"time"

	"conferencecentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes the email and defaults the display name", func(t *testing.T) {
		repo := newFakeProfileRepo()
		svc := NewAuthService(repo, &fakeHasher{}, &fakeIssuer{}, time.Hour)

		profile, err := svc.SignUp(ctx, "  Alice@Example.COM ", "secretpass", "")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", profile.Email)
		assert.Equal(t, "alice", profile.DisplayName)
		assert.Equal(t, domain.TeeShirtNotSpecified, profile.TeeShirtSize)
		assert.Equal(t, "hash-secretpass", profile.PasswordHash)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := NewAuthService(newFakeProfileRepo(), &fakeHasher{}, &fakeIssuer{}, time.Hour)
		_, err := svc.SignUp(ctx, "not-an-email", "secretpass", "")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("short password", func(t *testing.T) {
		svc := NewAuthService(newFakeProfileRepo(), &fakeHasher{}, &fakeIssuer{}, time.Hour)
		_, err := svc.SignUp(ctx, "alice@example.com", "short", "")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("taken email", func(t *testing.T) {
		repo := newFakeProfileRepo()
		svc := NewAuthService(repo, &fakeHasher{}, &fakeIssuer{}, time.Hour)
		_, err := svc.SignUp(ctx, "alice@example.com", "secretpass", "Alice")
		require.NoError(t, err)
		_, err = svc.SignUp(ctx, "alice@example.com", "secretpass", "Other Alice")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	setup := func() domain.AuthService {
		repo := newFakeProfileRepo()
		repo.byEmail["alice@example.com"] = &domain.Profile{
			ID:           "prof-1",
			Email:        "alice@example.com",
			PasswordHash: "hash-secretpass",
			Salt:         "salt",
		}
		return NewAuthService(repo, &fakeHasher{}, &fakeIssuer{}, time.Hour)
	}

	t.Run("success", func(t *testing.T) {
		svc := setup()
		token, err := svc.Login(ctx, "Alice@Example.com", "secretpass")
		require.NoError(t, err)
		assert.Equal(t, "token-prof-1", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := setup()
		_, err := svc.Login(ctx, "alice@example.com", "wrongpass")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := setup()
		_, err := svc.Login(ctx, "nobody@example.com", "secretpass")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
