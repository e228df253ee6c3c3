package controllers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/app/services"
	"github.com/shashiranjanraj/tradeport/pkg/bind"
	"github.com/shashiranjanraj/tradeport/pkg/response"
	"github.com/shashiranjanraj/tradeport/pkg/router"
)

// CouponController exposes admin coupon management plus the public apply
// endpoint used at checkout.
type CouponController struct {
	coupons *services.CouponService
}

func NewCouponController(coupons *services.CouponService) *CouponController {
	return &CouponController{coupons: coupons}
}

// List returns every coupon, newest first.
func (c *CouponController) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := c.coupons.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "coupon lookup failed")
		return
	}
	response.Success(w, coupons)
}

// Get returns one coupon.
func (c *CouponController) Get(w http.ResponseWriter, r *http.Request) {
	coupon, err := c.coupons.Get(r.Context(), router.Param(r, "id"))
	if errors.Is(err, models.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "coupon lookup failed")
		return
	}
	response.Success(w, coupon)
}

// Create stores a new coupon.
func (c *CouponController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Coupon
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	err := c.coupons.Create(r.Context(), &in)
	if errors.Is(err, models.ErrDuplicateCode) {
		response.Error(w, http.StatusConflict, "coupon code already exists")
		return
	}
	if err != nil {
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	response.Created(w, in)
}

// Update replaces an existing coupon.
func (c *CouponController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.Coupon
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	oid, err := primitive.ObjectIDFromHex(router.Param(r, "id"))
	if err != nil {
		response.NotFound(w)
		return
	}
	in.ID = oid

	err = c.coupons.Update(r.Context(), &in)
	switch {
	case errors.Is(err, models.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, models.ErrDuplicateCode):
		response.Error(w, http.StatusConflict, "coupon code already exists")
	case err != nil:
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		response.Success(w, in)
	}
}

// Delete removes a coupon.
func (c *CouponController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.coupons.Delete(r.Context(), router.Param(r, "id"))
	if errors.Is(err, models.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "delete failed")
		return
	}
	response.Message(w, "coupon deleted")
}

type applyCouponInput struct {
	Code       string  `json:"code" validate:"required"`
	OrderValue float64 `json:"orderValue" validate:"required,numeric"`
}

// Apply resolves a coupon code at checkout and returns the discount.
func (c *CouponController) Apply(w http.ResponseWriter, r *http.Request) {
	var in applyCouponInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	coupon, discount, err := c.coupons.Apply(r.Context(), in.Code, in.OrderValue)
	switch {
	case errors.Is(err, models.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrCouponNotUsable):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "coupon lookup failed")
	default:
		response.Success(w, map[string]interface{}{
			"coupon":   coupon,
			"discount": discount,
		})
	}
}
