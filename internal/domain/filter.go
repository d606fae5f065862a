package domain

import "strings"

// Filter represents order filtering state
type Filter struct {
	Status      map[OrderStatus]bool
	SearchQuery string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Status: make(map[OrderStatus]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Status) > 0 || f.SearchQuery != ""
}

// Clear resets the filter to its empty state
func (f *Filter) Clear() {
	f.Status = make(map[OrderStatus]bool)
	f.SearchQuery = ""
}

// ToggleStatus flips a status on or off in the filter
func (f *Filter) ToggleStatus(s OrderStatus) {
	if f.Status[s] {
		delete(f.Status, s)
	} else {
		f.Status[s] = true
	}
}

// Apply filters a list of orders
func (f *Filter) Apply(orders []OrderProjection) []OrderProjection {
	if !f.IsActive() {
		return orders
	}

	result := make([]OrderProjection, 0, len(orders))
	for _, o := range orders {
		if f.Matches(o) {
			result = append(result, o)
		}
	}
	return result
}

// Matches returns true if the order passes all active filters.
// Uses AND logic between filter types, OR logic within the status set.
func (f *Filter) Matches(o OrderProjection) bool {
	if len(f.Status) > 0 && !f.Status[o.Status] {
		return false
	}

	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(o.ID), query) &&
			!strings.Contains(strings.ToLower(o.CustomerName), query) &&
			!strings.Contains(strings.ToLower(o.CustomerEmail), query) &&
			!matchesItems(o.Items, query) {
			return false
		}
	}

	return true
}

func matchesItems(items []LineItem, query string) bool {
	for _, li := range items {
		if strings.Contains(strings.ToLower(li.Name), query) ||
			strings.Contains(strings.ToLower(li.SKU), query) {
			return true
		}
	}
	return false
}
