package seeders

import (
	"context"
	"errors"
	"time"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/app/repositories"
	"github.com/shashiranjanraj/tradeport/pkg/database"
)

func init() {
	Register("coupons", SeedCoupons)
}

// SeedCoupons inserts a demo welcome coupon for local development.
func SeedCoupons(ctx context.Context) error {
	coupons := repositories.NewCouponRepository(database.C(database.ColCoupons))

	now := time.Now().UTC()
	err := coupons.Create(ctx, &models.Coupon{
		CouponName:        "Welcome Offer",
		CouponCode:        "WELCOME10",
		DiscountType:      models.DiscountPercentage,
		DiscountValue:     10,
		ValidFrom:         now,
		ValidUntil:        now.AddDate(1, 0, 0),
		IsActive:          true,
		MinOrderValue:     500,
		MaxDiscountAmount: 200,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if errors.Is(err, models.ErrDuplicateCode) {
		return nil // already seeded
	}
	return err
}
