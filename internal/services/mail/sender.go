// Package mail sends the shop's transactional notification emails through an
// HTTP mail API.
package mail

import (
	"context"
	"sync"
)

// Category is the closed set of transactional email kinds
type Category string

const (
	CategoryOrderConfirmed Category = "order-confirmed"
	CategoryOrderShipped   Category = "order-shipped"
	CategoryOrderDelivered Category = "order-delivered"
)

// Subject returns the fixed subject line for the category
func (c Category) Subject() string {
	switch c {
	case CategoryOrderConfirmed:
		return "Your order is confirmed"
	case CategoryOrderShipped:
		return "Your order has shipped"
	case CategoryOrderDelivered:
		return "Your order has been delivered"
	default:
		return string(c)
	}
}

// Message is a single outbound email
type Message struct {
	To       string
	ToName   string
	Subject  string
	TextBody string
	HTMLBody string
	Category Category
}

// Sender delivers messages. Implementations report success or failure by
// error alone; callers never inspect a response body.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Mock records sent messages for tests
type Mock struct {
	mu   sync.Mutex
	Sent []Message
	Err  error
}

// Send records the message and returns the configured error
func (m *Mock) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, msg)
	return m.Err
}

// SentCount returns how many messages have been recorded
func (m *Mock) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
