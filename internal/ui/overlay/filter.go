package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danagreer/shopdeck/internal/domain"
)

// ApplyFilterMsg is sent when the filter menu is applied
type ApplyFilterMsg struct {
	Statuses map[domain.OrderStatus]bool
	Query    string
}

// filterStatuses is the display order of the status toggles
var filterStatuses = []domain.OrderStatus{
	domain.OrderPending,
	domain.OrderPaid,
	domain.OrderShipped,
	domain.OrderDelivered,
	domain.OrderCancelled,
}

// FilterMenu is the order list filter overlay: status toggles plus a
// free-text query. Edits apply on Enter, not live.
type FilterMenu struct {
	checked map[domain.OrderStatus]bool
	query   textinput.Model
	cursor  int // index into filterStatuses; len(filterStatuses) = query field
	styles  *Styles
}

// NewFilterMenu creates a filter menu pre-populated from the current filter
func NewFilterMenu(current *domain.Filter) *FilterMenu {
	checked := make(map[domain.OrderStatus]bool, len(current.Status))
	for s, on := range current.Status {
		if on {
			checked[s] = true
		}
	}

	query := textinput.New()
	query.Prompt = ""
	query.CharLimit = 80
	query.SetValue(current.SearchQuery)

	return &FilterMenu{
		checked: checked,
		query:   query,
		styles:  New(),
	}
}

// Init initializes the menu
func (m *FilterMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *FilterMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return CloseOverlayMsg{} }

	case "up", "shift+tab":
		m.moveCursor(-1)
		return m, nil

	case "down", "tab":
		m.moveCursor(1)
		return m, nil

	case "enter":
		return m, m.apply()

	case " ":
		if m.cursor < len(filterStatuses) {
			s := filterStatuses[m.cursor]
			if m.checked[s] {
				delete(m.checked, s)
			} else {
				m.checked[s] = true
			}
			return m, nil
		}
	}

	if m.cursor == len(filterStatuses) {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *FilterMenu) moveCursor(delta int) {
	total := len(filterStatuses) + 1
	m.cursor = (m.cursor + delta + total) % total
	if m.cursor == len(filterStatuses) {
		m.query.Focus()
	} else {
		m.query.Blur()
	}
}

func (m *FilterMenu) apply() tea.Cmd {
	statuses := make(map[domain.OrderStatus]bool, len(m.checked))
	for s, on := range m.checked {
		if on {
			statuses[s] = true
		}
	}
	query := strings.TrimSpace(m.query.Value())
	return func() tea.Msg {
		return ApplyFilterMsg{Statuses: statuses, Query: query}
	}
}

// View renders the menu
func (m *FilterMenu) View() string {
	var b strings.Builder

	for i, s := range filterStatuses {
		style := m.styles.MenuItem
		if i == m.cursor {
			style = m.styles.MenuItemActive
		}
		mark := "[ ]"
		if m.checked[s] {
			mark = "[x]"
		}
		b.WriteString(style.Render(mark + " " + s.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	label := m.styles.FieldLabel
	if m.cursor == len(filterStatuses) {
		label = m.styles.MenuItemActive
	}
	b.WriteString(label.Render("Search: "))
	b.WriteString(m.query.View())
	b.WriteString("\n")

	b.WriteString(m.styles.Footer.Render("Space: Toggle • Enter: Apply • Esc: Cancel"))

	return b.String()
}

// Title returns the menu title
func (m *FilterMenu) Title() string {
	return "Filter Orders"
}

// Kind returns the overlay kind
func (m *FilterMenu) Kind() Kind {
	return KindOrderFilter
}

// Size returns the menu dimensions
func (m *FilterMenu) Size() (width, height int) {
	return 48, len(filterStatuses) + 6
}
