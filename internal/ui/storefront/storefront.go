// Package storefront renders the storefront content page: the hero banner,
// the category list and the collection list, with a single cursor moving
// across all three sections.
package storefront

import (
	"fmt"
	"strings"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/ui/styles"
)

// Selection identifies what the cursor is on
type Selection struct {
	Section    Section
	Category   domain.Category
	Collection domain.Collection
}

// Section is one of the three content sections
type Section int

const (
	SectionHero Section = iota
	SectionCategories
	SectionCollections
)

// Model holds the storefront page state
type Model struct {
	hero        domain.HeroBanner
	categories  []domain.Category
	collections []domain.Collection
	loaded      bool

	cursor int
	width  int
	height int
	styles *styles.Styles
}

// New creates an empty storefront page
func New(s *styles.Styles) *Model {
	return &Model{styles: s}
}

// SetSize updates the page dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetContent replaces the page content, clamping the cursor
func (m *Model) SetContent(hero domain.HeroBanner, categories []domain.Category, collections []domain.Collection) {
	m.hero = hero
	m.categories = categories
	m.collections = collections
	m.loaded = true
	m.clampCursor()
}

// Loaded reports whether content has been set
func (m *Model) Loaded() bool {
	return m.loaded
}

// Hero returns the current hero banner
func (m *Model) Hero() domain.HeroBanner {
	return m.hero
}

// MoveCursor moves the cursor by delta across hero, categories and
// collections, clamped to the content
func (m *Model) MoveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// Selected returns what the cursor is on
func (m *Model) Selected() Selection {
	i := m.cursor
	if i == 0 {
		return Selection{Section: SectionHero}
	}
	i--
	if i < len(m.categories) {
		return Selection{Section: SectionCategories, Category: m.categories[i]}
	}
	i -= len(m.categories)
	return Selection{Section: SectionCollections, Collection: m.collections[i]}
}

func (m *Model) rows() int {
	// Hero counts as one row
	return 1 + len(m.categories) + len(m.collections)
}

func (m *Model) clampCursor() {
	if max := m.rows() - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the page
func (m *Model) View() string {
	if !m.loaded {
		return m.styles.RowMuted.Render("Loading storefront content...")
	}

	var b strings.Builder
	row := 0

	b.WriteString(m.styles.PageTitle.Render("Storefront"))
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("Hero"))
	b.WriteString("\n")
	heroLine := fmt.Sprintf("%q → %s (%s)", m.hero.Heading, m.hero.CTAPath, m.hero.CTALabel)
	b.WriteString(m.renderRow(heroLine, row))
	row++

	b.WriteString(m.styles.Section.Render("Categories"))
	b.WriteString("\n")
	if len(m.categories) == 0 {
		b.WriteString(m.styles.RowMuted.Render("  none"))
		b.WriteString("\n")
	}
	for _, c := range m.categories {
		b.WriteString(m.renderRow(fmt.Sprintf("%s (/%s)", c.Name, c.Slug), row))
		row++
	}

	b.WriteString(m.styles.Section.Render("Collections"))
	b.WriteString("\n")
	if len(m.collections) == 0 {
		b.WriteString(m.styles.RowMuted.Render("  none"))
		b.WriteString("\n")
	}
	for _, c := range m.collections {
		b.WriteString(m.renderRow(fmt.Sprintf("%s (/%s, %d products)", c.Title, c.Slug, len(c.ProductIDs)), row))
		row++
	}

	return b.String()
}

func (m *Model) renderRow(text string, row int) string {
	style := m.styles.Row
	cursor := "  "
	if row == m.cursor {
		style = m.styles.RowActive
		cursor = "▶ "
	}
	return style.Render(cursor+text) + "\n"
}
