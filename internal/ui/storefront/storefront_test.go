package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/ui/styles"
)

func fixtureContent() (domain.HeroBanner, []domain.Category, []domain.Collection) {
	hero := domain.HeroBanner{Heading: "Spring drop", CTALabel: "Shop now", CTAPath: "/collections/spring"}
	categories := []domain.Category{
		{ID: "cat-1", Name: "Mugs", Slug: "mugs"},
		{ID: "cat-2", Name: "Tees", Slug: "tees"},
	}
	collections := []domain.Collection{
		{ID: "col-1", Title: "Spring", Slug: "spring", ProductIDs: []string{"p1", "p2"}},
	}
	return hero, categories, collections
}

func TestModel_CursorWalksSections(t *testing.T) {
	m := New(styles.New())
	m.SetContent(fixtureContent())

	assert.Equal(t, SectionHero, m.Selected().Section)

	m.MoveCursor(1)
	sel := m.Selected()
	assert.Equal(t, SectionCategories, sel.Section)
	assert.Equal(t, "cat-1", sel.Category.ID)

	m.MoveCursor(2)
	sel = m.Selected()
	assert.Equal(t, SectionCollections, sel.Section)
	assert.Equal(t, "col-1", sel.Collection.ID)

	m.MoveCursor(5)
	assert.Equal(t, SectionCollections, m.Selected().Section, "cursor clamps at the last row")

	m.MoveCursor(-10)
	assert.Equal(t, SectionHero, m.Selected().Section, "cursor clamps at the hero")
}

func TestModel_SetContentClampsCursor(t *testing.T) {
	m := New(styles.New())
	hero, categories, collections := fixtureContent()
	m.SetContent(hero, categories, collections)
	m.MoveCursor(3)

	m.SetContent(hero, categories[:1], nil)

	sel := m.Selected()
	assert.Equal(t, SectionCategories, sel.Section)
	assert.Equal(t, "cat-1", sel.Category.ID)
}

func TestModel_View(t *testing.T) {
	m := New(styles.New())
	m.SetContent(fixtureContent())

	view := m.View()

	assert.Contains(t, view, "Storefront")
	assert.Contains(t, view, "Spring drop")
	assert.Contains(t, view, "Mugs (/mugs)")
	assert.Contains(t, view, "Spring (/spring, 2 products)")
}

func TestModel_ViewBeforeLoad(t *testing.T) {
	m := New(styles.New())

	assert.Contains(t, m.View(), "Loading storefront content")
	assert.False(t, m.Loaded())
}

func TestModel_ViewEmptySections(t *testing.T) {
	m := New(styles.New())
	m.SetContent(domain.HeroBanner{Heading: "Hi"}, nil, nil)

	assert.Contains(t, m.View(), "none")
}
