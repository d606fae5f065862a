package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/types"
	"github.com/danagreer/shopdeck/internal/ui/overlay"
)

func TestView_BeforeWindowSize(t *testing.T) {
	m := New(nil, &fakePayment{}, &fakeCatalog{}, nil, discardLogger())

	assert.Equal(t, "Loading...", m.View())
}

func TestView_LoadingSpinner(t *testing.T) {
	m := newTestModel(nil, nil)

	assert.Contains(t, m.View(), "Loading orders")
}

func TestView_OrdersPage(t *testing.T) {
	m := newTestModel(nil, nil)
	m, _ = apply(t, m, ordersLoadedMsg{orders: []domain.OrderProjection{testOrder()}})

	view := m.View()

	assert.Contains(t, view, "#ord-1")
	assert.Contains(t, view, "Orders", "status bar shows the page name")
	assert.Contains(t, view, "f: filter")
}

func TestView_OverlayRendersOnTop(t *testing.T) {
	m := onDetailPage(t, nil)
	m, _ = apply(t, m, keyPress("x"))

	view := m.View()

	assert.Contains(t, view, "Your order has shipped", "overlay title is visible")
	assert.Contains(t, view, "ada@example.com")
	assert.Contains(t, view, "Esc: close", "status bar hints switch to the overlay")
}

func TestView_AlertRendersAtBottom(t *testing.T) {
	m := onDetailPage(t, nil)
	m, _ = apply(t, m, overlay.SendResultMsg{Kind: overlay.KindOrderShippedEmailPreview})

	assert.Contains(t, m.View(), "Email sent")
}

func TestView_StorefrontPage(t *testing.T) {
	catalog := &fakeCatalog{
		orders:     []domain.OrderProjection{testOrder()},
		hero:       domain.HeroBanner{Heading: "Spring drop", CTALabel: "Shop", CTAPath: "/s"},
		categories: []domain.Category{{ID: "cat-1", Name: "Mugs", Slug: "mugs"}},
	}
	m := newTestModel(catalog, nil)
	m, _ = apply(t, m, ordersLoadedMsg{orders: catalog.orders})
	m, cmd := apply(t, m, keyPress("2"))
	m, _ = apply(t, m, cmd())

	view := m.View()

	assert.Equal(t, types.PageStorefront, m.Page())
	assert.Contains(t, view, "Spring drop")
	assert.Contains(t, view, "Mugs")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
