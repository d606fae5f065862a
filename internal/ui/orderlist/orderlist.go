// Package orderlist renders the orders page: a filterable, sortable list of
// order projections.
package orderlist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/ui/styles"
)

// Model holds the orders page state
type Model struct {
	orders []domain.OrderProjection
	filter *domain.Filter
	sort   domain.Sort

	cursor int
	width  int
	height int
	styles *styles.Styles
}

// New creates an empty orders page
func New(s *styles.Styles) *Model {
	return &Model{
		filter: domain.NewFilter(),
		sort:   domain.Sort{Field: domain.SortByPlaced, Order: domain.SortDesc},
		styles: s,
	}
}

// SetSize updates the page dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetOrders replaces the order list, clamping the cursor
func (m *Model) SetOrders(orders []domain.OrderProjection) {
	m.orders = orders
	m.clampCursor()
}

// SetFilter replaces the active filter and resets the cursor
func (m *Model) SetFilter(statuses map[domain.OrderStatus]bool, query string) {
	m.filter.Status = statuses
	m.filter.SearchQuery = query
	m.cursor = 0
}

// Filter returns the active filter, for pre-populating the filter overlay
func (m *Model) Filter() *domain.Filter {
	return m.filter
}

// ToggleSort toggles the sort field or direction
func (m *Model) ToggleSort(field domain.SortField) {
	m.sort.Toggle(field)
}

// CycleSort advances the sort on repeated presses: first flip the current
// field to descending, then move to the next field ascending
func (m *Model) CycleSort() {
	if m.sort.Order == domain.SortAsc {
		m.sort.Order = domain.SortDesc
		return
	}
	next := map[domain.SortField]domain.SortField{
		domain.SortByPlaced: domain.SortByTotal,
		domain.SortByTotal:  domain.SortByStatus,
		domain.SortByStatus: domain.SortByPlaced,
	}
	m.sort = domain.Sort{Field: next[m.sort.Field], Order: domain.SortAsc}
}

// MoveCursor moves the cursor by delta, clamped to the visible list
func (m *Model) MoveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// Selected returns the order under the cursor, if any
func (m *Model) Selected() (domain.OrderProjection, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.OrderProjection{}, false
	}
	return visible[m.cursor], true
}

// visible applies the filter and sort to the raw order list
func (m *Model) visible() []domain.OrderProjection {
	return m.sort.Apply(m.filter.Apply(m.orders))
}

func (m *Model) clampCursor() {
	max := len(m.visible()) - 1
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the orders page
func (m *Model) View() string {
	var b strings.Builder

	title := "Orders"
	if m.filter.IsActive() {
		title += " (filtered)"
	}
	b.WriteString(m.styles.PageTitle.Render(title))
	b.WriteString("\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.RowMuted.Render("No orders match."))
		return b.String()
	}

	for i, o := range visible {
		b.WriteString(m.renderRow(o, i == m.cursor))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) renderRow(o domain.OrderProjection, isCursor bool) string {
	rowStyle := m.styles.Row
	cursor := "  "
	if isCursor {
		rowStyle = m.styles.RowActive
		cursor = "▶ "
	}

	id := m.styles.OrderID.Render("#" + o.ID)
	badge := m.styles.StatusBadge(o.Status).Render(o.Status.String())
	total := domain.FormatCents(o.TotalCents, o.Currency)

	name := o.CustomerName
	if len(name) > 24 {
		name = name[:23] + "…"
	}

	line := lipgloss.JoinHorizontal(lipgloss.Left,
		cursor, id, "  ", badge, "  ", total, "  ", name)

	if hasUpsell(o.Items) {
		line = lipgloss.JoinHorizontal(lipgloss.Left, line, "  ", m.styles.UpsellBadge.Render("upsell"))
	}

	return rowStyle.Render(line)
}

func hasUpsell(items []domain.LineItem) bool {
	for _, li := range items {
		if li.Kind == domain.ItemUpsell {
			return true
		}
	}
	return false
}
