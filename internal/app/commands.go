package app

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/services/payment"
)

// Messages

type ordersLoadedMsg struct {
	orders []domain.OrderProjection
}

type ordersErrorMsg struct {
	err error
}

type orderDetailLoadedMsg struct {
	order      domain.OrderProjection
	payment    *payment.Order
	paymentErr error
}

type orderDetailErrorMsg struct {
	id  string
	err error
}

type contentLoadedMsg struct {
	hero        domain.HeroBanner
	categories  []domain.Category
	collections []domain.Collection
}

type contentErrorMsg struct {
	err error
}

type contentSavedMsg struct {
	what    string
	deleted bool
	err     error
}

type tickMsg time.Time

// Commands

// loadOrdersCmd fetches the order projections from the document store
func (m Model) loadOrdersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		orders, err := m.catalog.ListOrders(ctx)
		if err != nil {
			return ordersErrorMsg{err: err}
		}
		return ordersLoadedMsg{orders: orders}
	}
}

// loadOrderDetailCmd fetches the projection and the payment record for one
// order. The two lookups run concurrently; a missing payment record does not
// fail the page.
func (m Model) loadOrderDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var (
			wg      sync.WaitGroup
			proj    domain.OrderProjection
			projErr error
			pay     payment.Order
			payErr  error
		)

		wg.Add(2)
		go func() {
			defer wg.Done()
			proj, projErr = m.catalog.Order(ctx, id)
		}()
		go func() {
			defer wg.Done()
			pay, payErr = m.payment.GetOrder(ctx, id)
		}()
		wg.Wait()

		if projErr != nil {
			return orderDetailErrorMsg{id: id, err: projErr}
		}

		msg := orderDetailLoadedMsg{order: proj, paymentErr: payErr}
		if payErr == nil {
			msg.payment = &pay
		}
		return msg
	}
}

// loadContentCmd fetches the storefront content sections
func (m Model) loadContentCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		hero, err := m.catalog.Hero(ctx)
		if err != nil {
			return contentErrorMsg{err: err}
		}
		categories, err := m.catalog.ListCategories(ctx)
		if err != nil {
			return contentErrorMsg{err: err}
		}
		collections, err := m.catalog.ListCollections(ctx)
		if err != nil {
			return contentErrorMsg{err: err}
		}
		return contentLoadedMsg{hero: hero, categories: categories, collections: collections}
	}
}

func (m Model) saveHeroCmd(hero domain.HeroBanner) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return contentSavedMsg{what: "Hero banner", err: m.catalog.SaveHero(ctx, hero)}
	}
}

func (m Model) saveCategoryCmd(cat domain.Category) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return contentSavedMsg{what: "Category", err: m.catalog.SaveCategory(ctx, cat)}
	}
}

func (m Model) saveCollectionCmd(col domain.Collection) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return contentSavedMsg{what: "Collection", err: m.catalog.SaveCollection(ctx, col)}
	}
}

func (m Model) deleteCategoryCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return contentSavedMsg{what: "Category", deleted: true, err: m.catalog.DeleteCategory(ctx, id)}
	}
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
