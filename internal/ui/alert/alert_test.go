package alert

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/danagreer/shopdeck/internal/types"
	"github.com/danagreer/shopdeck/internal/ui/styles"
)

func TestRenderer_Render_Empty(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]types.Alert{}, 80)

	assert.Equal(t, "", result, "Empty alert list should return empty string")
}

func TestRenderer_Render_SingleAlert(t *testing.T) {
	renderer := New(styles.New())

	alerts := []types.Alert{
		{
			Level:   types.AlertSuccess,
			Message: "Shipped email sent",
			Expires: time.Now().Add(5 * time.Second),
		},
	}

	result := renderer.Render(alerts, 80)

	assert.NotEmpty(t, result)
	assert.Contains(t, result, "Shipped email sent")
}

func TestRenderer_Render_Stacked(t *testing.T) {
	renderer := New(styles.New())

	alerts := []types.Alert{
		{Level: types.AlertNeutral, Message: "First alert", Expires: time.Now().Add(5 * time.Second)},
		{Level: types.AlertError, Message: "Second alert", Expires: time.Now().Add(5 * time.Second)},
	}

	result := renderer.Render(alerts, 80)

	assert.Contains(t, result, "First alert")
	assert.Contains(t, result, "Second alert")

	lines := strings.Split(result, "\n")
	assert.Greater(t, len(lines), 1, "Stacked alerts should span multiple lines")
}

func TestRenderer_styleForLevel(t *testing.T) {
	renderer := New(styles.New())

	tests := []struct {
		name  string
		level types.AlertLevel
	}{
		{"Neutral", types.AlertNeutral},
		{"Success", types.AlertSuccess},
		{"Error", types.AlertError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := renderer.styleForLevel(tt.level)
			assert.NotNil(t, style)
		})
	}
}

func TestPrune(t *testing.T) {
	now := time.Now()
	alerts := []types.Alert{
		{Message: "expired", Expires: now.Add(-time.Second)},
		{Message: "live", Expires: now.Add(5 * time.Second)},
		{Message: "also live", Expires: now.Add(10 * time.Second)},
	}

	kept := Prune(alerts, now)

	assert.Len(t, kept, 2)
	assert.Equal(t, "live", kept[0].Message)
	assert.Equal(t, "also live", kept[1].Message)
}

func TestPrune_AllExpired(t *testing.T) {
	now := time.Now()
	alerts := []types.Alert{
		{Message: "gone", Expires: now.Add(-time.Minute)},
	}

	assert.Empty(t, Prune(alerts, now))
}
