package alert

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/danagreer/shopdeck/internal/types"
	"github.com/danagreer/shopdeck/internal/ui/styles"
)

// Renderer handles rendering of transient alerts
type Renderer struct {
	styles *styles.Styles
}

// New creates a new Renderer with the given styles
func New(styles *styles.Styles) *Renderer {
	return &Renderer{
		styles: styles,
	}
}

// Render renders a stack of alerts in the bottom-right corner.
// Returns empty string if no alerts to display.
func (r *Renderer) Render(alerts []types.Alert, width int) string {
	if len(alerts) == 0 {
		return ""
	}

	var rendered []string
	alertWidth := width / 3
	if alertWidth > 48 {
		alertWidth = 48
	}

	for _, a := range alerts {
		style := r.styleForLevel(a.Level)
		rendered = append(rendered, style.Width(alertWidth).Render(a.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// styleForLevel returns the appropriate style for an alert level
func (r *Renderer) styleForLevel(level types.AlertLevel) lipgloss.Style {
	switch level {
	case types.AlertSuccess:
		return r.styles.AlertSuccess
	case types.AlertError:
		return r.styles.AlertError
	default:
		return r.styles.AlertNeutral
	}
}

// Prune drops expired alerts, preserving order of the rest
func Prune(alerts []types.Alert, now time.Time) []types.Alert {
	kept := alerts[:0]
	for _, a := range alerts {
		if a.Expires.After(now) {
			kept = append(kept, a)
		}
	}
	return kept
}
