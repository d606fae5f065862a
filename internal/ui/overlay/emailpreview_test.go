package overlay

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/services/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingSender blocks Send until released, to hold a send in flight
type blockingSender struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	err     error
}

func (s *blockingSender) Send(ctx context.Context, msg mail.Message) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.err
}

func (s *blockingSender) sendCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func previewOrder() domain.OrderProjection {
	return domain.OrderProjection{
		ID:            "ord-7",
		CustomerName:  "Ada Byrne",
		CustomerEmail: "ada@example.com",
		TotalCents:    2998,
		Currency:      "USD",
		Items:         []domain.LineItem{{SKU: "MUG-01", Name: "Enamel Mug", Quantity: 2, UnitCents: 1499}},
	}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEmailPreview_SendSuccess(t *testing.T) {
	sender := &mail.Mock{}
	p := NewEmailPreview(KindOrderShippedEmailPreview, previewOrder(), sender, "", slog.Default())

	assert.False(t, p.Submitting())

	_, cmd := p.Update(keyPress("s"))
	require.NotNil(t, cmd)
	assert.True(t, p.Submitting(), "trigger enters Submitting")

	// Executing the batched command produces the send result among the
	// messages; find and replay it.
	result := collectSendResult(t, cmd)
	require.NoError(t, result.Err)
	assert.Equal(t, 1, sender.SentCount())

	p.Update(result)
	assert.False(t, p.Submitting(), "result clears the busy state")
}

func TestEmailPreview_SendFailure(t *testing.T) {
	sender := &mail.Mock{Err: &domain.MailError{Op: "send", Status: 500}}
	p := NewEmailPreview(KindOrderShippedEmailPreview, previewOrder(), sender, "", slog.Default())

	_, cmd := p.Update(keyPress("s"))
	result := collectSendResult(t, cmd)

	require.Error(t, result.Err)
	var mailErr *domain.MailError
	assert.ErrorAs(t, result.Err, &mailErr)

	p.Update(result)
	assert.False(t, p.Submitting())
}

func TestEmailPreview_TriggerDisabledWhileInFlight(t *testing.T) {
	sender := &blockingSender{release: make(chan struct{})}
	p := NewEmailPreview(KindOrderConfirmedEmailPreview, previewOrder(), sender, "", slog.Default())

	_, cmd := p.Update(keyPress("s"))
	require.NotNil(t, cmd)

	done := make(chan SendResultMsg, 1)
	go func() { done <- collectSendResult(t, cmd) }()

	// Re-pressing the trigger while submitting produces no second send
	_, cmd2 := p.Update(keyPress("s"))
	assert.Nil(t, cmd2)
	_, cmd3 := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd3)

	close(sender.release)
	<-done
	assert.Equal(t, 1, sender.sendCalls())
}

func TestEmailPreview_CancelAbortsInFlightSend(t *testing.T) {
	sender := &blockingSender{release: make(chan struct{})}
	p := NewEmailPreview(KindOrderDeliveredEmailPreview, previewOrder(), sender, "", slog.Default())

	_, cmd := p.Update(keyPress("s"))
	require.NotNil(t, cmd)

	done := make(chan SendResultMsg, 1)
	go func() { done <- collectSendResult(t, cmd) }()

	p.Cancel()
	result := <-done

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, context.Canceled)
}

func TestEmailPreview_RecipientDerivedFromOrder(t *testing.T) {
	p := NewEmailPreview(KindOrderShippedEmailPreview, previewOrder(), &mail.Mock{}, "", slog.Default())
	assert.Contains(t, p.View(), "ada@example.com")

	p = NewEmailPreview(KindOrderShippedEmailPreview, previewOrder(), &mail.Mock{}, "ops@example.com", slog.Default())
	assert.Contains(t, p.View(), "ops@example.com")
}

func TestEmailPreview_EscCloses(t *testing.T) {
	p := NewEmailPreview(KindOrderShippedEmailPreview, previewOrder(), &mail.Mock{}, "", slog.Default())

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, CloseOverlayMsg{}, cmd())
}

func TestKind_EmailCategory(t *testing.T) {
	assert.Equal(t, mail.CategoryOrderConfirmed, KindOrderConfirmedEmailPreview.EmailCategory())
	assert.Equal(t, mail.CategoryOrderShipped, KindOrderShippedEmailPreview.EmailCategory())
	assert.Equal(t, mail.CategoryOrderDelivered, KindOrderDeliveredEmailPreview.EmailCategory())
	assert.Panics(t, func() { KindHeroEdit.EmailCategory() })
}

// collectSendResult executes a (possibly batched) command tree and returns
// the SendResultMsg it produces
func collectSendResult(t *testing.T, cmd tea.Cmd) SendResultMsg {
	t.Helper()

	var walk func(tea.Cmd) (SendResultMsg, bool)
	walk = func(c tea.Cmd) (SendResultMsg, bool) {
		if c == nil {
			return SendResultMsg{}, false
		}
		switch msg := c().(type) {
		case SendResultMsg:
			return msg, true
		case tea.BatchMsg:
			for _, sub := range msg {
				if result, ok := walk(sub); ok {
					return result, true
				}
			}
		}
		return SendResultMsg{}, false
	}

	result, ok := walk(cmd)
	require.True(t, ok, "command should produce a SendResultMsg")
	return result
}
