package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextValidStatuses(t *testing.T) {
	cases := []struct {
		current OrderStatus
		want    []OrderStatus
	}{
		{OrderPending, []OrderStatus{OrderProcessing, OrderShipped, OrderCancelled}},
		{OrderProcessing, []OrderStatus{OrderShipped, OrderDelivered, OrderCancelled}},
		{OrderShipped, []OrderStatus{OrderDelivered, OrderCancelled}},
		{OrderDelivered, nil},
		{OrderCancelled, nil},
		{OrderStatus("weird"), []OrderStatus{OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NextValidStatuses(tc.current), "from %s", tc.current)
	}
}

func TestNextValidStatusesIgnoresCase(t *testing.T) {
	// Records written before status values were normalized store "Pending";
	// they must get pending's restricted set, not the permissive fallback.
	assert.Equal(t,
		[]OrderStatus{OrderProcessing, OrderShipped, OrderCancelled},
		NextValidStatuses(OrderStatus("Pending")))
	assert.Nil(t, NextValidStatuses(OrderStatus("DELIVERED")))

	assert.True(t, CanTransition(OrderStatus("Shipped"), OrderDelivered))
	assert.False(t, CanTransition(OrderStatus("Shipped"), OrderProcessing))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(OrderShipped, OrderDelivered))
	assert.True(t, CanTransition(OrderPending, OrderCancelled))

	// No backward moves.
	assert.False(t, CanTransition(OrderShipped, OrderProcessing))
	assert.False(t, CanTransition(OrderProcessing, OrderPending))

	// Terminal states accept nothing.
	assert.False(t, CanTransition(OrderDelivered, OrderProcessing))
	assert.False(t, CanTransition(OrderCancelled, OrderPending))

	// Same-status is not a listed transition.
	assert.False(t, CanTransition(OrderPending, OrderPending))
}
