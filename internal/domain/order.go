// Package domain contains the core business types of the admin console.
package domain

import (
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of an order as the storefront records it
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// String returns the status as stored
func (s OrderStatus) String() string {
	return string(s)
}

// ItemKind distinguishes regular products from checkout upsells
type ItemKind string

const (
	ItemProduct ItemKind = "product"
	ItemUpsell  ItemKind = "upsell"
)

// LineItem is one purchased line in an order
type LineItem struct {
	SKU       string   `json:"sku"`
	Name      string   `json:"name"`
	Kind      ItemKind `json:"kind"`
	Quantity  int      `json:"quantity"`
	UnitCents int      `json:"unit_cents"`
	ImageURL  string   `json:"image_url,omitempty"`
}

// Subtotal returns the line total in cents
func (li LineItem) Subtotal() int {
	return li.Quantity * li.UnitCents
}

// OrderProjection is the shop's internal record of an order, as projected
// into the document store at checkout time. The payment provider holds the
// authoritative payment state; this projection holds what the storefront
// sold.
type OrderProjection struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Status        OrderStatus `json:"status"`
	TotalCents    int         `json:"total_cents"`
	Currency      string      `json:"currency"`
	Items         []LineItem  `json:"items"`
	PlacedAt      time.Time   `json:"placed_at"`
}

// FormatCents renders a cent amount as a decimal string with currency code
func FormatCents(cents int, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, currency)
}
