package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon is an admin-managed discount code.
type Coupon struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CouponName        string             `bson:"couponName" json:"couponName" validate:"required,min=2,max=100"`
	CouponCode        string             `bson:"couponCode" json:"couponCode" validate:"required,min=3,max=20"`
	DiscountType      string             `bson:"discountType" json:"discountType" validate:"required,in=percentage,fixed"`
	DiscountValue     float64            `bson:"discountValue" json:"discountValue" validate:"required,numeric"`
	ValidFrom         time.Time          `bson:"validFrom" json:"validFrom"`
	ValidUntil        time.Time          `bson:"validUntil" json:"validUntil"`
	IsActive          bool               `bson:"isActive" json:"isActive"`
	UsageLimit        int                `bson:"usageLimit,omitempty" json:"usageLimit,omitempty"`
	UsedCount         int                `bson:"usedCount" json:"usedCount"`
	MinOrderValue     float64            `bson:"minOrderValue,omitempty" json:"minOrderValue,omitempty"`
	MaxDiscountAmount float64            `bson:"maxDiscountAmount,omitempty" json:"maxDiscountAmount,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeCode uppercases and trims the coupon code. Codes are stored and
// compared in canonical form so "summer10" and "SUMMER10" collide.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CheckDiscount validates the discount type and value combination.
func (c *Coupon) CheckDiscount() error {
	switch c.DiscountType {
	case DiscountPercentage:
		if c.DiscountValue < 0 || c.DiscountValue > 100 {
			return fmt.Errorf("percentage discount must be between 0 and 100")
		}
	case DiscountFixed:
		if c.DiscountValue < 0 {
			return fmt.Errorf("fixed discount must not be negative")
		}
	default:
		return fmt.Errorf("unknown discount type %q", c.DiscountType)
	}
	return nil
}

// UsableAt reports whether the coupon can be applied at the given time for
// an order of the given value.
func (c *Coupon) UsableAt(at time.Time, orderValue float64) bool {
	if !c.IsActive {
		return false
	}
	if at.Before(c.ValidFrom) || at.After(c.ValidUntil) {
		return false
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return false
	}
	if c.MinOrderValue > 0 && orderValue < c.MinOrderValue {
		return false
	}
	return true
}

// DiscountFor computes the discount amount for an order value, honoring the
// per-coupon cap for percentage discounts.
func (c *Coupon) DiscountFor(orderValue float64) float64 {
	var discount float64
	switch c.DiscountType {
	case DiscountPercentage:
		discount = orderValue * c.DiscountValue / 100
		if c.MaxDiscountAmount > 0 && discount > c.MaxDiscountAmount {
			discount = c.MaxDiscountAmount
		}
	case DiscountFixed:
		discount = c.DiscountValue
	}
	if discount > orderValue {
		discount = orderValue
	}
	return discount
}
