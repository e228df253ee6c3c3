package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the fulfillment state of an order, controlled by sellers.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// NextValidStatuses returns the statuses an order may move to from current.
// Delivered and cancelled are terminal. Matching is case-insensitive because
// older records stored mixed-case statuses; a still-unrecognized status gets
// a permissive fallback so legacy records are not stuck.
func NextValidStatuses(current OrderStatus) []OrderStatus {
	switch OrderStatus(strings.ToLower(string(current))) {
	case OrderPending:
		return []OrderStatus{OrderProcessing, OrderShipped, OrderCancelled}
	case OrderProcessing:
		return []OrderStatus{OrderShipped, OrderDelivered, OrderCancelled}
	case OrderShipped:
		return []OrderStatus{OrderDelivered, OrderCancelled}
	case OrderDelivered, OrderCancelled:
		return nil
	default:
		return []OrderStatus{OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}
	}
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range NextValidStatuses(from) {
		if s == to {
			return true
		}
	}
	return false
}

// OrderProduct is one line item in an order. SellerID scopes the line to the
// seller who listed the product.
type OrderProduct struct {
	ProductID string  `bson:"productId" json:"productId"`
	SellerID  string  `bson:"sellerId" json:"sellerId"`
	Title     string  `bson:"title" json:"title"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
	ImageLink string  `bson:"imageLink,omitempty" json:"imageLink,omitempty"`
}

// BillingDetails is the buyer's billing block captured at checkout.
type BillingDetails struct {
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber  string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	AddressLine1 string `bson:"addressLine1,omitempty" json:"addressLine1,omitempty"`
	AddressLine2 string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	State        string `bson:"state,omitempty" json:"state,omitempty"`
	Country      string `bson:"country,omitempty" json:"country,omitempty"`
	Pincode      string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

// Order is the persisted order document. Created at checkout by the buyer
// flow; only its status is mutated afterwards, never deleted.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"userId" json:"userId"`
	Products        []OrderProduct     `bson:"products" json:"products"`
	Status          OrderStatus        `bson:"status" json:"status"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod   string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	BillingDetails  BillingDetails     `bson:"billingDetails,omitempty" json:"billingDetails,omitempty"`
	AdditionalNotes string             `bson:"additionalNotes,omitempty" json:"additionalNotes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SellerOrder is the seller-facing view of an order: only the seller's own
// line items plus their subtotal, with the full order kept for context.
type SellerOrder struct {
	OrderID        string         `json:"orderId"`
	UserID         string         `json:"userId"`
	Status         OrderStatus    `json:"status"`
	Products       []OrderProduct `json:"products"`
	SellerSubtotal float64        `json:"sellerSubtotal"`
	TotalAmount    float64        `json:"totalAmount"`
	PaymentStatus  string         `json:"paymentStatus"`
	PaymentMethod  string         `json:"paymentMethod"`
	BillingDetails BillingDetails `json:"billingDetails"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// SellerOrderSummary aggregates a seller's order list for the dashboard.
type SellerOrderSummary struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
}
