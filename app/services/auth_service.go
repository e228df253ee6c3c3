package services

import (
	"context"
	"errors"
	"time"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/pkg/auth"
)

// AccountStore is the slice of the user repository the auth flow touches.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// AuthService handles registration and login for sellers and admins.
type AuthService struct {
	users AccountStore
}

func NewAuthService(users AccountStore) *AuthService {
	return &AuthService{users: users}
}

// ErrInvalidCredentials is returned on a bad email or password. Both cases
// collapse into one error so login failures do not leak which field was
// wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// TokenPair is the access plus refresh token issued at login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Register creates a new account with a hashed password. Seller accounts
// start with onboarding pending.
func (s *AuthService) Register(ctx context.Context, name, email, password, userType string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &models.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		Type:      userType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if userType == models.UserSeller {
		u.OnboardingStatus = models.OnboardingPending
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if !auth.CheckPassword(u.Password, password) {
		return nil, nil, ErrInvalidCredentials
	}

	access, err := auth.GenerateToken(u.ID.Hex(), u.Type)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := auth.GenerateRefreshToken(u.ID.Hex(), u.Type)
	if err != nil {
		return nil, nil, err
	}
	return u, &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a refresh token and issues a fresh pair.
func (s *AuthService) Refresh(token string) (*TokenPair, error) {
	claims, err := auth.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	access, err := auth.GenerateToken(claims.UserID, claims.Type)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateRefreshToken(claims.UserID, claims.Type)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
