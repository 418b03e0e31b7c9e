// Package order defines the sorting vocabulary attached to repository
// queries: an immutable [Sort] per property plus [By] for ordered
// combinations.
package order

import "errors"

// ErrEmptyProperty is the panic value for an empty property name.
var ErrEmptyProperty = errors.New("order: property name is empty")

// Direction is the direction of a sort.
type Direction int

const (
	// Ascending sorts smallest first.
	Ascending Direction = iota
	// Descending sorts largest first.
	Descending
)

// String returns "ASC" or "DESC".
func (d Direction) String() string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

// Sort requests ordering by one entity attribute. The zero value is not
// meaningful; construct sorts through [Asc], [Desc] and their ignore-case
// variants.
type Sort struct {
	property   string
	direction  Direction
	ignoreCase bool
}

// Asc sorts property ascending.
func Asc(property string) Sort {
	return newSort(property, Ascending, false)
}

// Desc sorts property descending.
func Desc(property string) Sort {
	return newSort(property, Descending, false)
}

// AscIgnoreCase sorts property ascending without regard to case.
func AscIgnoreCase(property string) Sort {
	return newSort(property, Ascending, true)
}

// DescIgnoreCase sorts property descending without regard to case.
func DescIgnoreCase(property string) Sort {
	return newSort(property, Descending, true)
}

func newSort(property string, d Direction, ignoreCase bool) Sort {
	if property == "" {
		panic(ErrEmptyProperty)
	}
	return Sort{property: property, direction: d, ignoreCase: ignoreCase}
}

// Property returns the sorted attribute name.
func (s Sort) Property() string { return s.property }

// Direction returns the sort direction.
func (s Sort) Direction() Direction { return s.direction }

// IsAscending reports whether the sort is ascending.
func (s Sort) IsAscending() bool { return s.direction == Ascending }

// IgnoreCase reports whether the ordering disregards case.
func (s Sort) IgnoreCase() bool { return s.ignoreCase }

// Reversed returns the sort with its direction flipped.
func (s Sort) Reversed() Sort {
	if s.direction == Ascending {
		s.direction = Descending
	} else {
		s.direction = Ascending
	}
	return s
}

// String renders the sort as it appears in query text, e.g. "price DESC".
func (s Sort) String() string {
	return s.property + " " + s.direction.String()
}

// By returns an ordered combination of sorts, from most to least
// significant. The input slice is copied.
func By(sorts ...Sort) []Sort {
	return append([]Sort(nil), sorts...)
}
