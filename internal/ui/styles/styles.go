package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danagreer/shopdeck/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Page chrome
	PageTitle lipgloss.Style
	Section   lipgloss.Style

	// Rows and lists
	Row         lipgloss.Style
	RowActive   lipgloss.Style
	RowMuted    lipgloss.Style
	OrderID     lipgloss.Style
	UpsellBadge lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusPage lipgloss.Style
	StatusHint lipgloss.Style

	// Overlays
	Overlay        lipgloss.Style
	OverlayTitle   lipgloss.Style
	FieldLabel     lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuKey        lipgloss.Style
	Footer         lipgloss.Style

	// Alerts
	AlertNeutral lipgloss.Style
	AlertSuccess lipgloss.Style
	AlertError   lipgloss.Style

	// Order status badge
	StatusBadge func(status domain.OrderStatus) lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		PageTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			Padding(0, 1),

		Section: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			MarginTop(1),

		Row: lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1),

		RowActive: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			Padding(0, 1),

		RowMuted: lipgloss.NewStyle().
			Foreground(Overlay0).
			Padding(0, 1),

		OrderID: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		UpsellBadge: lipgloss.NewStyle().
			Foreground(Base).
			Background(Mauve).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusPage: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Overlay0),

		AlertNeutral: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		AlertSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		AlertError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		StatusBadge: func(status domain.OrderStatus) lipgloss.Style {
			color, ok := OrderStatusColors[status]
			if !ok {
				color = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(color).
				Padding(0, 1).
				Bold(true)
		},
	}
}
