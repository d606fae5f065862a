package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danagreer/shopdeck/internal/types"
	"github.com/danagreer/shopdeck/internal/ui/alert"
	"github.com/danagreer/shopdeck/internal/ui/statusbar"
)

// View renders the application
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.loading {
		return m.renderLoading()
	}

	var pageView string
	switch m.page {
	case types.PageOrderDetails:
		pageView = m.detail.View()
	case types.PageStorefront:
		pageView = m.store.View()
	default:
		pageView = m.orders.View()
	}

	sb := statusbar.New(m.page, m.width, m.surface != nil, m.styles)
	view := lipgloss.JoinVertical(lipgloss.Left, pageView, sb.Render())

	if m.surface != nil {
		view = m.composeOverlay(view)
	}

	if len(m.alerts) > 0 {
		renderer := alert.New(m.styles)
		if alertView := renderer.Render(m.alerts, m.width); alertView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, alertView)
		}
	}

	return view
}

// composeOverlay renders the visible panel centered on top of the base view
func (m Model) composeOverlay(base string) string {
	overlayView := m.surface.View()

	if title := m.surface.Title(); title != "" {
		titleView := m.styles.OverlayTitle.Render(title)
		overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
	}

	width, height := m.surface.Size()
	overlayView = m.styles.Overlay.
		Width(width).
		Height(height).
		Render(overlayView)

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		overlayView,
	)

	base = lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		base,
	)

	return lipgloss.JoinVertical(lipgloss.Left, base, centered)
}

func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spinner.View(),
		"Loading orders...",
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
