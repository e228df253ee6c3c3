package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tradeport/app/models"
)

func sellerOrder(status models.OrderStatus) models.Order {
	return models.Order{
		UserID: "buyer-1",
		Status: status,
		Products: []models.OrderProduct{
			{ProductID: "p1", SellerID: "seller-1", Title: "Cotton Kurta", Quantity: 2, Price: 450},
			{ProductID: "p2", SellerID: "seller-2", Title: "Steel Bottle", Quantity: 1, Price: 300},
		},
		TotalAmount: 1200,
	}
}

func TestListSellerOrdersScopesLineItems(t *testing.T) {
	store := newFakeOrderStore()
	store.add(sellerOrder(models.OrderPending))
	store.add(sellerOrder(models.OrderDelivered))
	store.add(models.Order{
		UserID: "buyer-2",
		Status: models.OrderPending,
		Products: []models.OrderProduct{
			{ProductID: "p3", SellerID: "seller-2", Quantity: 1, Price: 999},
		},
	})
	svc := NewOrderService(store)

	views, summary, err := svc.ListSellerOrders(context.Background(), "seller-1")
	require.NoError(t, err)

	require.Len(t, views, 2, "orders with none of the seller's products are excluded")
	for _, v := range views {
		require.Len(t, v.Products, 1)
		assert.Equal(t, "seller-1", v.Products[0].SellerID)
		assert.Equal(t, 900.0, v.SellerSubtotal)
	}

	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 1800.0, summary.TotalRevenue)
	assert.Equal(t, 1, summary.PendingOrders)
	assert.Equal(t, 1, summary.CompletedOrders)
}

func TestGetSellerOrderForbiddenWithoutOwnLines(t *testing.T) {
	store := newFakeOrderStore()
	id := store.add(sellerOrder(models.OrderPending))
	svc := NewOrderService(store)

	_, err := svc.GetSellerOrder(context.Background(), "seller-3", id)
	assert.ErrorIs(t, err, models.ErrForbidden)

	v, err := svc.GetSellerOrder(context.Background(), "seller-1", id)
	require.NoError(t, err)
	assert.Equal(t, id, v.OrderID)
}

func TestTransitionAccepted(t *testing.T) {
	store := newFakeOrderStore()
	id := store.add(sellerOrder(models.OrderShipped))
	svc := NewOrderService(store)

	v, err := svc.Transition(context.Background(), "seller-1", id, models.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, v.Status)

	stored, err := store.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, stored.Status)
}

func TestTransitionRejectsBackwardMove(t *testing.T) {
	store := newFakeOrderStore()
	id := store.add(sellerOrder(models.OrderShipped))
	svc := NewOrderService(store)

	_, err := svc.Transition(context.Background(), "seller-1", id, models.OrderProcessing)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	stored, err := store.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, stored.Status, "rejected moves must not write")
}

func TestTransitionRejectsFromTerminal(t *testing.T) {
	store := newFakeOrderStore()
	svc := NewOrderService(store)

	for _, terminal := range []models.OrderStatus{models.OrderDelivered, models.OrderCancelled} {
		id := store.add(sellerOrder(terminal))
		_, err := svc.Transition(context.Background(), "seller-1", id, models.OrderProcessing)
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
	}
}

func TestTransitionRejectsSameStatus(t *testing.T) {
	store := newFakeOrderStore()
	id := store.add(sellerOrder(models.OrderProcessing))
	svc := NewOrderService(store)

	_, err := svc.Transition(context.Background(), "seller-1", id, models.OrderProcessing)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestTransitionForbiddenForOtherSellers(t *testing.T) {
	store := newFakeOrderStore()
	id := store.add(sellerOrder(models.OrderPending))
	svc := NewOrderService(store)

	_, err := svc.Transition(context.Background(), "seller-3", id, models.OrderProcessing)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestTransitionUnknownOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrderStore())

	_, err := svc.Transition(context.Background(), "seller-1", "64ffffffffffffffffffffff", models.OrderProcessing)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestNextStatuses(t *testing.T) {
	store := newFakeOrderStore()
	id := store.add(sellerOrder(models.OrderPending))
	svc := NewOrderService(store)

	next, err := svc.NextStatuses(context.Background(), "seller-1", id)
	require.NoError(t, err)
	assert.Equal(t, []models.OrderStatus{
		models.OrderProcessing, models.OrderShipped, models.OrderCancelled,
	}, next)
}
