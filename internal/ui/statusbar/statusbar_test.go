package statusbar

import (
	"strings"
	"testing"

	"github.com/danagreer/shopdeck/internal/types"
	"github.com/danagreer/shopdeck/internal/ui/styles"
)

func TestStatusBar_RenderOrdersPage(t *testing.T) {
	style := styles.New()
	sb := New(types.PageOrders, 80, false, style)

	result := sb.Render()

	if !strings.Contains(result, "Orders") {
		t.Errorf("Expected status bar to contain 'Orders', got: %s", result)
	}
	if !strings.Contains(result, "f: filter") {
		t.Errorf("Expected status bar to contain filter hint, got: %s", result)
	}
	if !strings.Contains(result, "Enter: details") {
		t.Errorf("Expected status bar to contain details hint, got: %s", result)
	}
}

func TestStatusBar_RenderOrderDetailsPage(t *testing.T) {
	style := styles.New()
	sb := New(types.PageOrderDetails, 80, false, style)

	result := sb.Render()

	if !strings.Contains(result, "Order Details") {
		t.Errorf("Expected status bar to contain 'Order Details', got: %s", result)
	}
	if !strings.Contains(result, "email preview") {
		t.Errorf("Expected status bar to contain email preview hint, got: %s", result)
	}
}

func TestStatusBar_RenderStorefrontPage(t *testing.T) {
	style := styles.New()
	sb := New(types.PageStorefront, 80, false, style)

	result := sb.Render()

	if !strings.Contains(result, "Storefront") {
		t.Errorf("Expected status bar to contain 'Storefront', got: %s", result)
	}
	if !strings.Contains(result, "h: hero") {
		t.Errorf("Expected status bar to contain hero hint, got: %s", result)
	}
}

func TestStatusBar_OverlayOpenShowsDismissHint(t *testing.T) {
	style := styles.New()
	sb := New(types.PageOrders, 80, true, style)

	result := sb.Render()

	if !strings.Contains(result, "Esc: close") {
		t.Errorf("Expected overlay dismiss hint, got: %s", result)
	}
	if strings.Contains(result, "f: filter") {
		t.Errorf("Page hints should be hidden while an overlay is open, got: %s", result)
	}
}

func TestGetHints_UnknownPage(t *testing.T) {
	if hints := GetHints("checkout", false); hints != "" {
		t.Errorf("Expected empty hints for unknown page, got: %s", hints)
	}
}
