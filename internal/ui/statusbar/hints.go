package statusbar

import "github.com/danagreer/shopdeck/internal/types"

// GetHints returns the keybinding hints for the given page. When an overlay
// is open the hints come from the overlay's own footer, so only the dismiss
// key is shown here.
func GetHints(page types.PageID, overlayOpen bool) string {
	if overlayOpen {
		return "Esc: close"
	}

	switch page {
	case types.PageOrders:
		return "j/k: move  Enter: details  f: filter  s: sort  r: refresh  2: storefront  q: quit"
	case types.PageOrderDetails:
		return "j/k: scroll  c/x/d: email preview  Esc: back  q: quit"
	case types.PageStorefront:
		return "j/k: move  Enter: edit  h: hero  d: delete  r: refresh  1: orders  q: quit"
	default:
		return ""
	}
}
