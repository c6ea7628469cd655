package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order rows are append-only: status moves through the transition table
// below, nothing else changes after the creating transaction commits.
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	BusinessID  uint            `json:"business_id" gorm:"not null;uniqueIndex:idx_orders_business_number"`
	OrderNumber int             `json:"order_number" gorm:"not null;uniqueIndex:idx_orders_business_number"`
	OrderType   OrderType       `json:"order_type" gorm:"not null"`
	Status      OrderStatus     `json:"status" gorm:"default:'pending'"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	CustomerID  uint            `json:"customer_id" gorm:"not null;index"`
	Customer    Customer        `json:"customer" gorm:"foreignKey:CustomerID"`
	Notes       string          `json:"notes" gorm:"type:text"`
	LineItems   []OrderLineItem `json:"line_items" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type OrderType string

const (
	DineIn   OrderType = "dine_in"
	Takeaway OrderType = "takeaway"
)

func (t OrderType) IsValid() bool {
	return t == DineIn || t == Takeaway
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions is the legal edge set. Forward path skips no state;
// cancellation is only reachable from pending or confirmed.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady},
	OrderReady:     {OrderDelivered},
	OrderDelivered: {},
	OrderCancelled: {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0 && s.IsValid()
}
