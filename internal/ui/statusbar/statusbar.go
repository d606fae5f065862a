package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danagreer/shopdeck/internal/types"
	"github.com/danagreer/shopdeck/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	page    types.PageID
	width   int
	overlay bool
	styles  *styles.Styles
}

// New creates a new StatusBar for the given page and width. overlayOpen
// switches the hints to the overlay's dismiss keys.
func New(page types.PageID, width int, overlayOpen bool, styles *styles.Styles) StatusBar {
	return StatusBar{
		page:    page,
		width:   width,
		overlay: overlayOpen,
		styles:  styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	pageBadge := sb.styles.StatusPage.Render(" " + sb.page.Title() + " ")

	hints := GetHints(sb.page, sb.overlay)
	hintsRendered := sb.styles.StatusHint.Render(hints)

	var content string
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, pageBadge, separator, hintsRendered)
	} else {
		content = pageBadge
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
