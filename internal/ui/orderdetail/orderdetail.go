// Package orderdetail renders the order details page: the internal order
// projection joined with the payment provider's transaction record, in a
// scrollable viewport.
package orderdetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/services/payment"
	"github.com/danagreer/shopdeck/internal/ui/styles"
)

// Model holds the order details page state
type Model struct {
	order   domain.OrderProjection
	payment *payment.Order
	loaded  bool

	viewport viewport.Model
	styles   *styles.Styles
}

// New creates an empty order details page
func New(s *styles.Styles) *Model {
	return &Model{
		viewport: viewport.New(0, 0),
		styles:   s,
	}
}

// SetSize updates the viewport dimensions and re-renders the content
func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.refresh()
}

// SetOrder replaces the page content. The payment record may be nil when the
// provider lookup failed; the projection alone still renders.
func (m *Model) SetOrder(order domain.OrderProjection, pay *payment.Order) {
	m.order = order
	m.payment = pay
	m.loaded = true
	m.viewport.GotoTop()
	m.refresh()
}

// Order returns the projection currently shown
func (m *Model) Order() domain.OrderProjection {
	return m.order
}

// Loaded reports whether an order has been set
func (m *Model) Loaded() bool {
	return m.loaded
}

// Scroll moves the viewport by delta lines. The app gates this on the
// scroll lock, so a locked page never reaches here.
func (m *Model) Scroll(delta int) {
	if delta < 0 {
		m.viewport.LineUp(-delta)
	} else {
		m.viewport.LineDown(delta)
	}
}

// View renders the page
func (m *Model) View() string {
	if !m.loaded {
		return m.styles.RowMuted.Render("Loading order...")
	}

	title := m.styles.PageTitle.Render("Order #" + m.order.ID)
	return title + "\n\n" + m.viewport.View()
}

func (m *Model) refresh() {
	if !m.loaded {
		return
	}
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) renderContent() string {
	var b strings.Builder

	b.WriteString(m.styles.Section.Render("Customer"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s <%s>\n", m.order.CustomerName, m.order.CustomerEmail)

	b.WriteString(m.styles.Section.Render("Status"))
	b.WriteString("\n  ")
	b.WriteString(m.styles.StatusBadge(m.order.Status).Render(m.order.Status.String()))
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("Items"))
	b.WriteString("\n")
	for _, li := range m.order.Items {
		line := fmt.Sprintf("  %dx %s (%s)  %s",
			li.Quantity, li.Name, li.SKU, domain.FormatCents(li.Subtotal(), m.order.Currency))
		if li.Kind == domain.ItemUpsell {
			line += "  " + m.styles.UpsellBadge.Render("upsell")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  Total: %s\n", domain.FormatCents(m.order.TotalCents, m.order.Currency))

	b.WriteString(m.styles.Section.Render("Payment"))
	b.WriteString("\n")
	if m.payment == nil {
		b.WriteString(m.styles.RowMuted.Render("  Payment record unavailable."))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "  Provider status: %s\n", m.payment.Status)
		fmt.Fprintf(&b, "  Payer: %s <%s>\n", m.payment.Payer.Name.FullName(), m.payment.Payer.Email)
		for _, pu := range m.payment.PurchaseUnits {
			fmt.Fprintf(&b, "  Amount: %s %s\n", pu.Amount.Value, pu.Amount.CurrencyCode)
			if pu.Shipping.Address.Line1 != "" {
				a := pu.Shipping.Address
				fmt.Fprintf(&b, "  Ship to: %s, %s %s, %s\n", a.Line1, a.City, a.PostalCode, a.Country)
			}
			for _, capture := range pu.Payments.Captures {
				fmt.Fprintf(&b, "  Capture %s: %s (%s %s)\n",
					capture.ID, capture.Status, capture.Amount.Value, capture.Amount.CurrencyCode)
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("C: Confirmed email  X: Shipped email  D: Delivered email"))

	return b.String()
}
