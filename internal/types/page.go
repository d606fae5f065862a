// Package types contains shared types used across the application.
package types

// PageID identifies an admin console page
type PageID string

const (
	PageOrders       PageID = "orders"
	PageOrderDetails PageID = "orderDetails"
	PageStorefront   PageID = "storefront"
)

// Title returns the human-readable page title
func (p PageID) Title() string {
	switch p {
	case PageOrders:
		return "Orders"
	case PageOrderDetails:
		return "Order Details"
	case PageStorefront:
		return "Storefront"
	default:
		return string(p)
	}
}
