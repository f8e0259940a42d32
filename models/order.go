package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the delivery lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInDelivery OrderStatus = "in-delivery"
	StatusDelivered  OrderStatus = "delivered"
	StatusCanceled   OrderStatus = "canceled"
)

// statusLabels maps each status to the badge text shown on the dashboards.
var statusLabels = map[OrderStatus]string{
	StatusPending:    "بانتظار مندوب",
	StatusInDelivery: "قيد التوصيل",
	StatusDelivered:  "تم التوصيل",
	StatusCanceled:   "ملغي",
}

// Label returns the user-facing badge text for the status.
func (s OrderStatus) Label() string {
	return statusLabels[s]
}

// Valid reports whether s is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Transitions are monotonic along pending -> in-delivery -> delivered;
// canceled is reachable from pending only.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusInDelivery || next == StatusCanceled
	case StatusInDelivery:
		return next == StatusDelivered
	default:
		return false
	}
}

// Order represents a delivery request placed by a store
type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	CustomerName string          `gorm:"not null" json:"customer_name"`
	Address      string          `gorm:"not null" json:"address"`
	Notes        string          `json:"notes"`
	Value        decimal.Decimal `gorm:"type:numeric;not null" json:"value"`
	Fee          decimal.Decimal `gorm:"type:numeric;not null" json:"fee"`
	Status       OrderStatus     `gorm:"not null;default:'pending'" json:"status"`
	StatusLabel  string          `gorm:"-" json:"status_label"` // computed, see WithLabel
	StoreID      uint            `gorm:"not null;index" json:"store_id"` // immutable after creation
	CourierID    *uint           `gorm:"index" json:"courier_id"`        // nil until a courier accepts
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// WithLabel returns a copy of the order with the status badge text filled in.
func (o Order) WithLabel() Order {
	o.StatusLabel = o.Status.Label()
	return o
}

// WithLabels fills the status badge text on every order in the slice.
func WithLabels(orders []Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = o.WithLabel()
	}
	return out
}
