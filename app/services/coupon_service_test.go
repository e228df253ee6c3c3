package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tradeport/app/models"
)

func activeCoupon(code string) *models.Coupon {
	now := time.Now().UTC()
	return &models.Coupon{
		CouponName:    "Monsoon Sale",
		CouponCode:    code,
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
		ValidFrom:     now.Add(-time.Hour),
		ValidUntil:    now.Add(24 * time.Hour),
		IsActive:      true,
	}
}

func TestCreateNormalizesCode(t *testing.T) {
	store := newFakeCouponStore()
	svc := NewCouponService(store)

	c := activeCoupon("  monsoon10 ")
	require.NoError(t, svc.Create(context.Background(), c))
	assert.Equal(t, "MONSOON10", c.CouponCode)

	dup := activeCoupon("Monsoon10")
	assert.ErrorIs(t, svc.Create(context.Background(), dup), models.ErrDuplicateCode)
}

func TestCreateRejectsBadDiscount(t *testing.T) {
	svc := NewCouponService(newFakeCouponStore())

	c := activeCoupon("OVER100")
	c.DiscountValue = 150
	assert.Error(t, svc.Create(context.Background(), c))

	f := activeCoupon("NEGFIXED")
	f.DiscountType = models.DiscountFixed
	f.DiscountValue = -5
	assert.Error(t, svc.Create(context.Background(), f))
}

func TestApply(t *testing.T) {
	store := newFakeCouponStore()
	svc := NewCouponService(store)
	require.NoError(t, svc.Create(context.Background(), activeCoupon("MONSOON10")))

	c, discount, err := svc.Apply(context.Background(), "monsoon10", 1000)
	require.NoError(t, err)
	assert.Equal(t, "MONSOON10", c.CouponCode)
	assert.Equal(t, 100.0, discount)

	_, _, err = svc.Apply(context.Background(), "NOPE", 1000)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestApplyRespectsMinOrderValue(t *testing.T) {
	store := newFakeCouponStore()
	svc := NewCouponService(store)

	c := activeCoupon("BIGCART")
	c.MinOrderValue = 500
	require.NoError(t, svc.Create(context.Background(), c))

	_, _, err := svc.Apply(context.Background(), "BIGCART", 300)
	assert.ErrorIs(t, err, ErrCouponNotUsable)

	_, discount, err := svc.Apply(context.Background(), "BIGCART", 800)
	require.NoError(t, err)
	assert.Equal(t, 80.0, discount)
}

func TestApplyInactiveCoupon(t *testing.T) {
	store := newFakeCouponStore()
	svc := NewCouponService(store)

	c := activeCoupon("PAUSED")
	c.IsActive = false
	require.NoError(t, svc.Create(context.Background(), c))

	_, _, err := svc.Apply(context.Background(), "PAUSED", 1000)
	assert.ErrorIs(t, err, ErrCouponNotUsable)
}
