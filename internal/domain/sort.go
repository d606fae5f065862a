package domain

import "sort"

// SortField represents a field to sort orders by
type SortField string

const (
	SortByPlaced SortField = "placed"
	SortByTotal  SortField = "total"
	SortByStatus SortField = "status"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction.
// A new field starts ascending; the same field flips direction.
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply sorts a list of orders
func (s *Sort) Apply(orders []OrderProjection) []OrderProjection {
	if len(orders) == 0 {
		return orders
	}

	// Copy to avoid modifying the input slice
	result := make([]OrderProjection, len(orders))
	copy(result, orders)

	less := func(i, j int) bool { return result[i].PlacedAt.Before(result[j].PlacedAt) }
	switch s.Field {
	case SortByTotal:
		less = func(i, j int) bool { return result[i].TotalCents < result[j].TotalCents }
	case SortByStatus:
		less = func(i, j int) bool { return result[i].Status < result[j].Status }
	}

	if s.Order == SortDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}

	sort.SliceStable(result, less)
	return result
}
