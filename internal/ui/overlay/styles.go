package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danagreer/shopdeck/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Title is the overlay title style
	Title lipgloss.Style
	// FieldLabel is the style for form field labels
	FieldLabel lipgloss.Style
	// FieldValue is the style for read-only field values
	FieldValue lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuItemDisabled is the disabled menu item style
	MenuItemDisabled lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// Body is the style for preview body text
	Body lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		FieldValue: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(styles.Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		Body: lipgloss.NewStyle().
			Foreground(styles.Subtext0),
	}
}
