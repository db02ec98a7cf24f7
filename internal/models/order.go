package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the five order states. Any valid
// state may follow any other; there is no enforced workflow ordering.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusServed, StatusCancelled:
		return true
	default:
		return false
	}
}

// OrderItem is a denormalized copy of menu fields taken at order time.
// Later menu price changes never touch existing orders.
type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Order is a table-scoped customer order. OrderID is the opaque identifier
// returned to clients; the Mongo _id stays internal.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OrderID      string             `bson:"order_id" json:"orderId"`
	Table        string             `bson:"table" json:"table"`
	Items        []OrderItem        `bson:"items" json:"items"`
	CustomerNote string             `bson:"customerNote" json:"customerNote"`
	Status       OrderStatus        `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// OrderItemInput is a line item as supplied by the customer. Pointer fields
// distinguish "absent" from explicit zero so defaults apply correctly.
type OrderItemInput struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// Normalize coerces a line item to its stored form: trimmed name, price
// clamped non-negative defaulting to 0, quantity defaulting to 1. The second
// return is false when the item must be dropped (empty name or quantity <= 0).
func (in OrderItemInput) Normalize() (OrderItem, bool) {
	name := strings.TrimSpace(in.Name)

	price := 0.0
	if in.Price != nil && *in.Price > 0 {
		price = *in.Price
	}

	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}

	if name == "" || quantity <= 0 {
		return OrderItem{}, false
	}
	return OrderItem{Name: name, Price: price, Quantity: quantity}, true
}

// PlaceOrderRequest is the public order placement payload.
type PlaceOrderRequest struct {
	Table        string           `json:"table"`
	Items        []OrderItemInput `json:"items"`
	CustomerNote string           `json:"customerNote"`
}

// UpdateStatusRequest is the admin status transition payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
