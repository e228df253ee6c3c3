package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/app/services"
	"github.com/shashiranjanraj/tradeport/pkg/bind"
	"github.com/shashiranjanraj/tradeport/pkg/response"
	"github.com/shashiranjanraj/tradeport/pkg/router"
)

// OrderController exposes the seller order dashboard: the scoped order list
// with its summary, single-order detail, and status updates.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List returns the seller's orders plus the dashboard summary.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	views, summary, err := c.orders.ListSellerOrders(r.Context(), sellerID(r))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "order lookup failed")
		return
	}
	response.Success(w, map[string]interface{}{
		"orders":  views,
		"summary": summary,
	})
}

// Get returns one order scoped to the seller's line items.
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	v, err := c.orders.GetSellerOrder(r.Context(), sellerID(r), router.Param(r, "id"))
	switch {
	case errors.Is(err, models.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, models.ErrForbidden):
		response.Forbidden(w)
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "order lookup failed")
	default:
		response.Success(w, v)
	}
}

// NextStatuses returns the legal next statuses for the order, used to
// populate the status dropdown.
func (c *OrderController) NextStatuses(w http.ResponseWriter, r *http.Request) {
	next, err := c.orders.NextStatuses(r.Context(), sellerID(r), router.Param(r, "id"))
	switch {
	case errors.Is(err, models.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, models.ErrForbidden):
		response.Forbidden(w)
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "order lookup failed")
	default:
		response.Success(w, next)
	}
}

type updateStatusInput struct {
	Status string `json:"status" validate:"required,in=pending,processing,shipped,delivered,cancelled"`
}

// UpdateStatus moves the order to a new status. Illegal moves per the status
// table come back as 422 with the legal next statuses.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in updateStatusInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	orderID := router.Param(r, "id")
	v, err := c.orders.Transition(r.Context(), sellerID(r), orderID, models.OrderStatus(in.Status))
	switch {
	case errors.Is(err, models.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, models.ErrForbidden):
		response.Forbidden(w)
	case errors.Is(err, models.ErrInvalidTransition):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "status update failed")
	default:
		response.Success(w, v)
	}
}
