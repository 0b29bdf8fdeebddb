package model

import "cmp"

type ViewMode string

const (
	ViewModeAll       ViewMode = "all"
	ViewModeFavorites ViewMode = "favorites"
)

func (m ViewMode) Valid() bool {
	return m == ViewModeAll || m == ViewModeFavorites
}

// Range is an inclusive [Min, Max] interval. Min > Max is allowed and matches nothing.
type Range[T cmp.Ordered] struct {
	Min T
	Max T
}

func (r Range[T]) Contains(v T) bool {
	return r.Min <= v && v <= r.Max
}

type FilterState struct {
	SearchTerm string
	PriceRange Range[float64]
	MOQRange   Range[int64]
	// Empty means no country restriction.
	SelectedCountries []string
	ViewMode          ViewMode
}

// Clone returns a copy that shares no slices with s.
func (s FilterState) Clone() FilterState {
	out := s
	if s.SelectedCountries != nil {
		out.SelectedCountries = append([]string(nil), s.SelectedCountries...)
	}
	return out
}

// PartialFilter is the best-effort output of the query interpreter.
// Nil fields are absent. A non-nil empty Countries is present and clears the selection.
type PartialFilter struct {
	SearchTerm *string
	Countries  []string
	MinPrice   *float64
	MaxPrice   *float64
	MinMOQ     *int64
	MaxMOQ     *int64
}

func (p PartialFilter) Empty() bool {
	return p.SearchTerm == nil &&
		p.Countries == nil &&
		p.MinPrice == nil &&
		p.MaxPrice == nil &&
		p.MinMOQ == nil &&
		p.MaxMOQ == nil
}

// Bounds are the catalog-wide maxima used to size and reset the range filters.
type Bounds struct {
	MaxPrice float64
	MaxMOQ   int64
}

// FullFilter returns the unrestricted state for b.
func FullFilter(b Bounds) FilterState {
	return FilterState{
		PriceRange:        Range[float64]{Min: 0, Max: b.MaxPrice},
		MOQRange:          Range[int64]{Min: 0, Max: b.MaxMOQ},
		SelectedCountries: []string{},
		ViewMode:          ViewModeAll,
	}
}
