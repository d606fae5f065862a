// Package overlay implements the modal overlay layer of the admin console:
// the visibility registry, the scroll-lock coupling, and the overlay panels
// themselves.
package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Overlay represents a modal overlay panel
type Overlay interface {
	tea.Model
	Kind() Kind
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the visible overlay should be closed
type CloseOverlayMsg struct{}

// Kind is the closed set of overlay panels. Every kind maps to exactly one
// registry key, so an unmapped key cannot exist at runtime.
type Kind int

const (
	KindOrderConfirmedEmailPreview Kind = iota
	KindOrderShippedEmailPreview
	KindOrderDeliveredEmailPreview
	KindOrderFilter
	KindHeroEdit
	KindCategoryEdit
	KindCollectionEdit
	KindDeleteConfirm
)

// String returns the registry name of the overlay kind
func (k Kind) String() string {
	switch k {
	case KindOrderConfirmedEmailPreview:
		return "orderConfirmedEmailPreview"
	case KindOrderShippedEmailPreview:
		return "orderShippedEmailPreview"
	case KindOrderDeliveredEmailPreview:
		return "orderDeliveredEmailPreview"
	case KindOrderFilter:
		return "orderFilter"
	case KindHeroEdit:
		return "heroEdit"
	case KindCategoryEdit:
		return "categoryEdit"
	case KindCollectionEdit:
		return "collectionEdit"
	case KindDeleteConfirm:
		return "deleteConfirm"
	default:
		return "unknown"
	}
}

// IsEmailPreview reports whether the kind is one of the three transactional
// email preview panels
func (k Kind) IsEmailPreview() bool {
	switch k {
	case KindOrderConfirmedEmailPreview, KindOrderShippedEmailPreview, KindOrderDeliveredEmailPreview:
		return true
	default:
		return false
	}
}
