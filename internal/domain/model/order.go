package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes processing lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusProcessed OrderStatus = "processed"
	OrderStatusExported  OrderStatus = "exported"
)

// CanTransition reports whether the status may move forward to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessed
	case OrderStatusProcessed:
		return next == OrderStatusExported
	default:
		return false
	}
}

// Order describes an uploaded sales order document.
type Order struct {
	ID               int64
	Filename         string
	OriginalFilename string
	Status           OrderStatus
	CreatedAt        time.Time
}

// OrderDetails bundles an order with its line items in store order.
type OrderDetails struct {
	Order     Order
	LineItems []LineItem
}

// Total returns the sum of line totals rounded to cents.
func (d OrderDetails) Total() decimal.Decimal {
	return SumTotals(d.LineItems)
}

// SumTotals adds up line totals. An empty slice sums to zero.
func SumTotals(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.TotalPrice)
	}
	return sum.Round(2)
}
