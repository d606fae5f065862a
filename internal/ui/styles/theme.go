package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danagreer/shopdeck/internal/domain"
)

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Mauve    = lipgloss.Color("#c6a0f6")
	Red      = lipgloss.Color("#ed8796")
	Peach    = lipgloss.Color("#f5a97f")
	Yellow   = lipgloss.Color("#eed49f")
	Green    = lipgloss.Color("#a6da95")
	Teal     = lipgloss.Color("#8bd5ca")
	Blue     = lipgloss.Color("#8aadf4")
	Lavender = lipgloss.Color("#b7bdf8")
)

// OrderStatusColors maps fulfillment status to colors
var OrderStatusColors = map[domain.OrderStatus]lipgloss.Color{
	domain.OrderPending:   Yellow,
	domain.OrderPaid:      Blue,
	domain.OrderShipped:   Teal,
	domain.OrderDelivered: Green,
	domain.OrderCancelled: Red,
}
