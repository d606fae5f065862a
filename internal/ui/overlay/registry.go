package overlay

import (
	"fmt"

	"github.com/danagreer/shopdeck/internal/types"
)

// Registry is the single source of truth for which overlay is visible on
// which page. The page/overlay map is defined statically at construction;
// referencing a pair outside it is a programming error and panics. All
// mutation happens on the Bubble Tea update loop, so no locking is needed.
//
// Show enforces single-overlay-per-page exclusivity: showing an overlay
// hides any other overlay visible on the same page.
type Registry struct {
	pages map[types.PageID]map[Kind]bool
}

// NewRegistry creates a registry with the console's static page/overlay map
func NewRegistry() *Registry {
	return &Registry{
		pages: map[types.PageID]map[Kind]bool{
			types.PageOrders: {
				KindOrderFilter: false,
			},
			types.PageOrderDetails: {
				KindOrderConfirmedEmailPreview: false,
				KindOrderShippedEmailPreview:   false,
				KindOrderDeliveredEmailPreview: false,
			},
			types.PageStorefront: {
				KindHeroEdit:       false,
				KindCategoryEdit:   false,
				KindCollectionEdit: false,
				KindDeleteConfirm:  false,
			},
		},
	}
}

// Show makes the identified overlay visible, hiding any sibling overlay on
// the same page. Showing an already-visible overlay is a no-op.
func (r *Registry) Show(page types.PageID, kind Kind) {
	flags := r.flags(page, kind)
	for k := range flags {
		flags[k] = false
	}
	flags[kind] = true
}

// Hide makes the identified overlay invisible. Hiding an already-hidden
// overlay is a no-op.
func (r *Registry) Hide(page types.PageID, kind Kind) {
	r.flags(page, kind)[kind] = false
}

// Visible reports the current visibility flag for the pair
func (r *Registry) Visible(page types.PageID, kind Kind) bool {
	return r.flags(page, kind)[kind]
}

// AnyVisible reports whether any overlay is visible on the page
func (r *Registry) AnyVisible(page types.PageID) bool {
	_, ok := r.VisibleOn(page)
	return ok
}

// VisibleOn returns the overlay currently visible on the page, if any
func (r *Registry) VisibleOn(page types.PageID) (Kind, bool) {
	flags, ok := r.pages[page]
	if !ok {
		panic(fmt.Sprintf("overlay: unknown page %q", page))
	}
	for k, visible := range flags {
		if visible {
			return k, true
		}
	}
	return 0, false
}

// HideAll hides every overlay on the page
func (r *Registry) HideAll(page types.PageID) {
	flags, ok := r.pages[page]
	if !ok {
		panic(fmt.Sprintf("overlay: unknown page %q", page))
	}
	for k := range flags {
		flags[k] = false
	}
}

func (r *Registry) flags(page types.PageID, kind Kind) map[Kind]bool {
	flags, ok := r.pages[page]
	if !ok {
		panic(fmt.Sprintf("overlay: unknown page %q", page))
	}
	if _, ok := flags[kind]; !ok {
		panic(fmt.Sprintf("overlay: %q is not defined on page %q", kind, page))
	}
	return flags
}
