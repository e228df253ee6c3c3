package services

import (
	"context"
	"errors"
	"time"

	"github.com/shashiranjanraj/tradeport/app/models"
)

// CouponStore is the persistence the coupon service needs.
type CouponStore interface {
	All(ctx context.Context) ([]models.Coupon, error)
	FindByID(ctx context.Context, id string) (*models.Coupon, error)
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
	Create(ctx context.Context, c *models.Coupon) error
	Update(ctx context.Context, c *models.Coupon) error
	Delete(ctx context.Context, id string) error
}

// CouponService manages admin-created discount coupons and their
// application at checkout.
type CouponService struct {
	coupons CouponStore
}

func NewCouponService(coupons CouponStore) *CouponService {
	return &CouponService{coupons: coupons}
}

// ErrCouponNotUsable is returned when a coupon exists but cannot be applied
// to the order: inactive, outside its window, exhausted, or below the
// minimum order value.
var ErrCouponNotUsable = errors.New("coupon cannot be applied to this order")

// List returns every coupon, newest first.
func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.coupons.All(ctx)
}

// Get returns one coupon by id.
func (s *CouponService) Get(ctx context.Context, id string) (*models.Coupon, error) {
	return s.coupons.FindByID(ctx, id)
}

// Create validates and stores a new coupon. The code is canonicalized before
// the uniqueness check so case variants collide.
func (s *CouponService) Create(ctx context.Context, c *models.Coupon) error {
	c.CouponCode = models.NormalizeCode(c.CouponCode)
	if err := c.CheckDiscount(); err != nil {
		return err
	}

	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.coupons.Create(ctx, c)
}

// Update validates and replaces an existing coupon.
func (s *CouponService) Update(ctx context.Context, c *models.Coupon) error {
	c.CouponCode = models.NormalizeCode(c.CouponCode)
	if err := c.CheckDiscount(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.coupons.Update(ctx, c)
}

// Delete removes a coupon.
func (s *CouponService) Delete(ctx context.Context, id string) error {
	return s.coupons.Delete(ctx, id)
}

// Apply resolves a coupon code against an order value and returns the coupon
// with the discount it grants. models.ErrNotFound for unknown codes,
// ErrCouponNotUsable when the coupon exists but does not apply.
func (s *CouponService) Apply(ctx context.Context, code string, orderValue float64) (*models.Coupon, float64, error) {
	c, err := s.coupons.FindByCode(ctx, code)
	if err != nil {
		return nil, 0, err
	}
	if !c.UsableAt(time.Now().UTC(), orderValue) {
		return nil, 0, ErrCouponNotUsable
	}
	return c, c.DiscountFor(orderValue), nil
}
