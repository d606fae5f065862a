package overlay

import (
	"testing"

	"github.com/danagreer/shopdeck/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_ShowThenVisible(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Visible(types.PageOrderDetails, KindOrderShippedEmailPreview))

	r.Show(types.PageOrderDetails, KindOrderShippedEmailPreview)
	assert.True(t, r.Visible(types.PageOrderDetails, KindOrderShippedEmailPreview))

	r.Hide(types.PageOrderDetails, KindOrderShippedEmailPreview)
	assert.False(t, r.Visible(types.PageOrderDetails, KindOrderShippedEmailPreview))
}

func TestRegistry_ShowHideAllDefinedPairs(t *testing.T) {
	pairs := map[types.PageID][]Kind{
		types.PageOrders:       {KindOrderFilter},
		types.PageOrderDetails: {KindOrderConfirmedEmailPreview, KindOrderShippedEmailPreview, KindOrderDeliveredEmailPreview},
		types.PageStorefront:   {KindHeroEdit, KindCategoryEdit, KindCollectionEdit, KindDeleteConfirm},
	}

	for page, kinds := range pairs {
		for _, kind := range kinds {
			r := NewRegistry()

			r.Show(page, kind)
			assert.True(t, r.Visible(page, kind), "%s/%s should be visible after Show", page, kind)

			r.Hide(page, kind)
			assert.False(t, r.Visible(page, kind), "%s/%s should be hidden after Hide", page, kind)
		}
	}
}

func TestRegistry_Idempotence(t *testing.T) {
	r := NewRegistry()

	r.Show(types.PageOrderDetails, KindOrderShippedEmailPreview)
	r.Show(types.PageOrderDetails, KindOrderShippedEmailPreview)
	assert.True(t, r.Visible(types.PageOrderDetails, KindOrderShippedEmailPreview), "double Show must not toggle off")

	r.Hide(types.PageOrderDetails, KindOrderShippedEmailPreview)
	r.Hide(types.PageOrderDetails, KindOrderShippedEmailPreview)
	assert.False(t, r.Visible(types.PageOrderDetails, KindOrderShippedEmailPreview))
}

func TestRegistry_ExclusivityPerPage(t *testing.T) {
	r := NewRegistry()

	r.Show(types.PageOrderDetails, KindOrderConfirmedEmailPreview)
	r.Show(types.PageOrderDetails, KindOrderShippedEmailPreview)

	assert.False(t, r.Visible(types.PageOrderDetails, KindOrderConfirmedEmailPreview),
		"showing a second overlay must hide the first on the same page")
	assert.True(t, r.Visible(types.PageOrderDetails, KindOrderShippedEmailPreview))

	kind, ok := r.VisibleOn(types.PageOrderDetails)
	assert.True(t, ok)
	assert.Equal(t, KindOrderShippedEmailPreview, kind)
}

func TestRegistry_PagesAreIndependent(t *testing.T) {
	r := NewRegistry()

	r.Show(types.PageOrderDetails, KindOrderShippedEmailPreview)
	r.Show(types.PageStorefront, KindHeroEdit)

	assert.True(t, r.Visible(types.PageOrderDetails, KindOrderShippedEmailPreview))
	assert.True(t, r.Visible(types.PageStorefront, KindHeroEdit))
	assert.False(t, r.AnyVisible(types.PageOrders))
}

func TestRegistry_AnyVisible(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.AnyVisible(types.PageStorefront))

	r.Show(types.PageStorefront, KindCategoryEdit)
	assert.True(t, r.AnyVisible(types.PageStorefront))

	r.HideAll(types.PageStorefront)
	assert.False(t, r.AnyVisible(types.PageStorefront))
}

func TestRegistry_UnknownPagePanics(t *testing.T) {
	r := NewRegistry()

	assert.Panics(t, func() { r.Show("checkout", KindOrderFilter) })
	assert.Panics(t, func() { r.AnyVisible("checkout") })
}

func TestRegistry_UndefinedPairPanics(t *testing.T) {
	r := NewRegistry()

	// heroEdit is defined on storefront, not on order details
	assert.Panics(t, func() { r.Show(types.PageOrderDetails, KindHeroEdit) })
	assert.Panics(t, func() { r.Visible(types.PageOrders, KindDeleteConfirm) })
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "orderShippedEmailPreview", KindOrderShippedEmailPreview.String())
	assert.Equal(t, "heroEdit", KindHeroEdit.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKind_IsEmailPreview(t *testing.T) {
	assert.True(t, KindOrderConfirmedEmailPreview.IsEmailPreview())
	assert.True(t, KindOrderShippedEmailPreview.IsEmailPreview())
	assert.True(t, KindOrderDeliveredEmailPreview.IsEmailPreview())
	assert.False(t, KindHeroEdit.IsEmailPreview())
	assert.False(t, KindDeleteConfirm.IsEmailPreview())
}
