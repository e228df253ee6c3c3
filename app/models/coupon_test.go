package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SUMMER10", NormalizeCode("  summer10 "))
}

func TestCheckDiscount(t *testing.T) {
	c := Coupon{DiscountType: DiscountPercentage, DiscountValue: 120}
	assert.Error(t, c.CheckDiscount())

	c.DiscountValue = 15
	assert.NoError(t, c.CheckDiscount())

	c = Coupon{DiscountType: DiscountFixed, DiscountValue: -5}
	assert.Error(t, c.CheckDiscount())

	c.DiscountValue = 200
	assert.NoError(t, c.CheckDiscount())

	c = Coupon{DiscountType: "bogus", DiscountValue: 10}
	assert.Error(t, c.CheckDiscount())
}

func TestUsableAt(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	c := Coupon{
		IsActive:   true,
		ValidFrom:  now.AddDate(0, -1, 0),
		ValidUntil: now.AddDate(0, 1, 0),
	}

	assert.True(t, c.UsableAt(now, 500))

	c.IsActive = false
	assert.False(t, c.UsableAt(now, 500))
	c.IsActive = true

	assert.False(t, c.UsableAt(now.AddDate(0, 2, 0), 500), "expired")
	assert.False(t, c.UsableAt(now.AddDate(0, -2, 0), 500), "not started")

	c.UsageLimit = 3
	c.UsedCount = 3
	assert.False(t, c.UsableAt(now, 500), "usage limit reached")
	c.UsedCount = 2
	assert.True(t, c.UsableAt(now, 500))

	c.MinOrderValue = 1000
	assert.False(t, c.UsableAt(now, 500), "below minimum order value")
}

func TestDiscountFor(t *testing.T) {
	c := Coupon{DiscountType: DiscountPercentage, DiscountValue: 10}
	assert.InDelta(t, 50.0, c.DiscountFor(500), 0.001)

	c.MaxDiscountAmount = 30
	assert.InDelta(t, 30.0, c.DiscountFor(500), 0.001, "cap applies")

	c = Coupon{DiscountType: DiscountFixed, DiscountValue: 75}
	assert.InDelta(t, 75.0, c.DiscountFor(500), 0.001)
	assert.InDelta(t, 50.0, c.DiscountFor(50), 0.001, "discount never exceeds order value")
}
