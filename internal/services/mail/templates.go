package mail

import (
	"fmt"
	"strings"

	"github.com/danagreer/shopdeck/internal/domain"
)

// Compose renders the transactional email for a category and order. The
// recipient normally derives from the order; a non-empty override wins (used
// when operators route all mail to a test inbox).
func Compose(cat Category, order domain.OrderProjection, overrideTo string) Message {
	to := order.CustomerEmail
	toName := order.CustomerName
	if overrideTo != "" {
		to = overrideTo
		toName = ""
	}

	return Message{
		To:       to,
		ToName:   toName,
		Subject:  cat.Subject(),
		TextBody: textBody(cat, order),
		HTMLBody: htmlBody(cat, order),
		Category: cat,
	}
}

func lede(cat Category, order domain.OrderProjection) string {
	switch cat {
	case CategoryOrderShipped:
		return fmt.Sprintf("Good news: your order #%s is on its way.", order.ID)
	case CategoryOrderDelivered:
		return fmt.Sprintf("Your order #%s has been delivered.", order.ID)
	default:
		return fmt.Sprintf("Thanks for your order! We've received order #%s.", order.ID)
	}
}

func textBody(cat Category, order domain.OrderProjection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", order.CustomerName)
	b.WriteString(lede(cat, order))
	b.WriteString("\n\n")

	for _, li := range order.Items {
		fmt.Fprintf(&b, "  %dx %s - %s\n", li.Quantity, li.Name, domain.FormatCents(li.Subtotal(), order.Currency))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n\nThanks for shopping with us!\n", domain.FormatCents(order.TotalCents, order.Currency))

	return b.String()
}

func htmlBody(cat Category, order domain.OrderProjection) string {
	var b strings.Builder

	b.WriteString(`<html><body style="font-family: sans-serif;">`)
	fmt.Fprintf(&b, "<p>Hi %s,</p><p>%s</p><ul>", order.CustomerName, lede(cat, order))
	for _, li := range order.Items {
		fmt.Fprintf(&b, "<li>%dx %s - %s</li>", li.Quantity, li.Name, domain.FormatCents(li.Subtotal(), order.Currency))
	}
	fmt.Fprintf(&b, "</ul><p><strong>Total:</strong> %s</p>", domain.FormatCents(order.TotalCents, order.Currency))
	b.WriteString("<p>Thanks for shopping with us!</p></body></html>")

	return b.String()
}
