package seeders

import (
	"context"
	"errors"
	"time"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/app/repositories"
	"github.com/shashiranjanraj/tradeport/config"
	"github.com/shashiranjanraj/tradeport/pkg/auth"
	"github.com/shashiranjanraj/tradeport/pkg/database"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin creates the bootstrap admin account if it does not exist.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD with dev defaults.
func SeedAdmin(ctx context.Context) error {
	users := repositories.NewUserRepository(database.C(database.ColUsers))
	email := config.Get("ADMIN_EMAIL", "admin@tradeport.in")

	_, err := users.FindByEmail(ctx, email)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(config.Get("ADMIN_PASSWORD", "changeme123"))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return users.Create(ctx, &models.User{
		Name:      "Tradeport Admin",
		Email:     email,
		Password:  hash,
		Type:      models.UserAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
