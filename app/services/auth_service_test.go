package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Asha", "asha@example.com", "s3cret-pass", models.UserSeller)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", u.Password, "password must be stored hashed")
	assert.Equal(t, models.OnboardingPending, u.OnboardingStatus)

	logged, pair, err := svc.Login(ctx, "asha@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := auth.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), claims.UserID)
	assert.Equal(t, models.UserSeller, claims.Type)
}

func TestLoginBadCredentials(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Asha", "asha@example.com", "s3cret-pass", models.UserSeller)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Asha", "asha@example.com", "s3cret-pass", models.UserAdmin)
	require.NoError(t, err)
	_, pair, err := svc.Login(ctx, "asha@example.com", "s3cret-pass")
	require.NoError(t, err)

	fresh, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	_, err = svc.Refresh("not-a-token")
	assert.Error(t, err)
}
