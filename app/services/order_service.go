package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/pkg/collection"
	"github.com/shashiranjanraj/tradeport/pkg/event"
	"github.com/shashiranjanraj/tradeport/pkg/metrics"
)

// OrderStore is the persistence the order service needs.
type OrderStore interface {
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	FindBySeller(ctx context.Context, sellerID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}

// OrderService exposes the seller-facing order operations: the scoped order
// list with its dashboard summary, and status transitions.
type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// StatusChange is the payload fired on the "order.status_changed" event.
type StatusChange struct {
	OrderID  string             `json:"orderId"`
	SellerID string             `json:"sellerId"`
	From     models.OrderStatus `json:"from"`
	To       models.OrderStatus `json:"to"`
	At       time.Time          `json:"at"`
}

func sellerLines(o models.Order, sellerID string) []models.OrderProduct {
	return collection.Filter(o.Products, func(p models.OrderProduct) bool {
		return p.SellerID == sellerID
	})
}

func toSellerOrder(o models.Order, sellerID string) models.SellerOrder {
	lines := sellerLines(o, sellerID)
	return models.SellerOrder{
		OrderID:        o.ID.Hex(),
		UserID:         o.UserID,
		Status:         o.Status,
		Products:       lines,
		SellerSubtotal: collection.Sum(lines, func(p models.OrderProduct) float64 {
			return p.Price * float64(p.Quantity)
		}),
		TotalAmount:    o.TotalAmount,
		PaymentStatus:  o.PaymentStatus,
		PaymentMethod:  o.PaymentMethod,
		BillingDetails: o.BillingDetails,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ListSellerOrders returns the seller's view of every order containing at
// least one of their products, plus the dashboard summary. Revenue counts
// only the seller's own line items, pending counts pending and processing,
// completed counts delivered.
func (s *OrderService) ListSellerOrders(ctx context.Context, sellerID string) ([]models.SellerOrder, models.SellerOrderSummary, error) {
	orders, err := s.orders.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, models.SellerOrderSummary{}, err
	}

	views := collection.Map(orders, func(o models.Order) models.SellerOrder {
		return toSellerOrder(o, sellerID)
	})

	summary := models.SellerOrderSummary{TotalOrders: len(views)}
	for _, v := range views {
		summary.TotalRevenue += v.SellerSubtotal
		switch v.Status {
		case models.OrderPending, models.OrderProcessing:
			summary.PendingOrders++
		case models.OrderDelivered:
			summary.CompletedOrders++
		}
	}
	return views, summary, nil
}

// GetSellerOrder returns one order scoped to the seller's line items.
// Sellers cannot read orders that carry none of their products.
func (s *OrderService) GetSellerOrder(ctx context.Context, sellerID, orderID string) (*models.SellerOrder, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(sellerLines(*o, sellerID)) == 0 {
		return nil, models.ErrForbidden
	}
	v := toSellerOrder(*o, sellerID)
	return &v, nil
}

// NextStatuses returns the statuses the order may legally move to, for the
// status dropdown on the seller dashboard.
func (s *OrderService) NextStatuses(ctx context.Context, sellerID, orderID string) ([]models.OrderStatus, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(sellerLines(*o, sellerID)) == 0 {
		return nil, models.ErrForbidden
	}
	return models.NextValidStatuses(o.Status), nil
}

// Transition moves an order to a new status on behalf of a seller. The seller
// must own at least one product in the order, and the move must be legal per
// the status table. Illegal moves are rejected before any write.
func (s *OrderService) Transition(ctx context.Context, sellerID, orderID string, to models.OrderStatus) (*models.SellerOrder, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(sellerLines(*o, sellerID)) == 0 {
		return nil, models.ErrForbidden
	}

	from := o.Status
	if !models.CanTransition(from, to) {
		metrics.RecordOrderTransition(string(from), string(to), false)
		return nil, fmt.Errorf("%w: %s to %s", models.ErrInvalidTransition, from, to)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, to); err != nil {
		return nil, err
	}
	metrics.RecordOrderTransition(string(from), string(to), true)

	o.Status = to
	o.UpdatedAt = time.Now().UTC()
	event.FireAsync("order.status_changed", StatusChange{
		OrderID:  orderID,
		SellerID: sellerID,
		From:     from,
		To:       to,
		At:       o.UpdatedAt,
	})

	v := toSellerOrder(*o, sellerID)
	return &v, nil
}
