package styles

import (
	"testing"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New()

	assert.NotNil(t, s)
	assert.NotNil(t, s.StatusBadge)
}

func TestStatusBadge_KnownAndUnknown(t *testing.T) {
	s := New()

	for _, status := range []domain.OrderStatus{
		domain.OrderPending,
		domain.OrderPaid,
		domain.OrderShipped,
		domain.OrderDelivered,
		domain.OrderCancelled,
	} {
		badge := s.StatusBadge(status)
		assert.NotEmpty(t, badge.Render(status.String()))
	}

	// Unknown status falls back to a muted badge rather than panicking
	assert.NotEmpty(t, s.StatusBadge(domain.OrderStatus("weird")).Render("weird"))
}
