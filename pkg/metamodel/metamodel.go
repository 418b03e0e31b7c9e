// Package metamodel provides typed attribute descriptors from which
// restrictions and sorts are built without stringly-typed call sites.
//
// Descriptors are plain immutable values constructed directly with their
// declaring entity and attribute name; there is no deferred, provider-driven
// initialization step:
//
//	var (
//		Title = metamodel.Text("Book", "title")
//		Pages = metamodel.Of[int]("Book", "numPages")
//	)
//
//	r := restrict.All(Pages.AtLeast(100), Title.StartsWith("Jakarta"))
package metamodel

import (
	"github.com/repospec/repospec.go/pkg/constraint"
	"github.com/repospec/repospec.go/pkg/order"
	"github.com/repospec/repospec.go/pkg/pattern"
	"github.com/repospec/repospec.go/pkg/restrict"
)

// Attribute describes one persistent attribute of an entity, typed by the
// attribute's value type.
type Attribute[T any] struct {
	entity string
	name   string
}

// Of constructs an attribute descriptor for the named attribute of entity.
func Of[T any](entity, name string) Attribute[T] {
	if name == "" {
		panic(restrict.ErrEmptyAttribute)
	}
	return Attribute[T]{entity: entity, name: name}
}

// Entity returns the declaring entity name.
func (a Attribute[T]) Entity() string { return a.entity }

// Name returns the attribute name.
func (a Attribute[T]) Name() string { return a.name }

// EqualTo restricts the attribute to equal value.
func (a Attribute[T]) EqualTo(value T) restrict.Basic {
	return restrict.Equal(a.name, value)
}

// NotEqualTo restricts the attribute to differ from value.
func (a Attribute[T]) NotEqualTo(value T) restrict.Basic {
	return restrict.NotEqual(a.name, value)
}

// GreaterThan restricts the attribute to exceed value.
func (a Attribute[T]) GreaterThan(value T) restrict.Basic {
	return restrict.Greater(a.name, value)
}

// AtLeast restricts the attribute to value or above.
func (a Attribute[T]) AtLeast(value T) restrict.Basic {
	return restrict.AtLeast(a.name, value)
}

// LessThan restricts the attribute to fall below value.
func (a Attribute[T]) LessThan(value T) restrict.Basic {
	return restrict.Less(a.name, value)
}

// AtMost restricts the attribute to value or below.
func (a Attribute[T]) AtMost(value T) restrict.Basic {
	return restrict.AtMost(a.name, value)
}

// Between restricts the attribute to the inclusive range lower..upper.
func (a Attribute[T]) Between(lower, upper T) restrict.Basic {
	return restrict.Between(a.name, lower, upper)
}

// In restricts the attribute to one of values.
func (a Attribute[T]) In(values ...T) restrict.Basic {
	return restrict.In(a.name, widen(values)...)
}

// NotIn restricts the attribute to none of values.
func (a Attribute[T]) NotIn(values ...T) restrict.Basic {
	return restrict.NotIn(a.name, widen(values)...)
}

// IsNull restricts the attribute to be absent.
func (a Attribute[T]) IsNull() restrict.Basic {
	return restrict.IsNull(a.name)
}

// NotNull restricts the attribute to be present.
func (a Attribute[T]) NotNull() restrict.Basic {
	return restrict.NotNull(a.name)
}

// Asc sorts by the attribute ascending.
func (a Attribute[T]) Asc() order.Sort { return order.Asc(a.name) }

// Desc sorts by the attribute descending.
func (a Attribute[T]) Desc() order.Sort { return order.Desc(a.name) }

// TextAttribute is an [Attribute] over text with pattern-matching and
// case-insensitive helpers.
type TextAttribute struct {
	Attribute[string]
}

// Text constructs a textual attribute descriptor.
func Text(entity, name string) TextAttribute {
	return TextAttribute{Attribute: Of[string](entity, name)}
}

// Like restricts the attribute to match p.
func (a TextAttribute) Like(p pattern.Pattern) restrict.Basic {
	return restrict.Like(a.Name(), p)
}

// NotLike restricts the attribute to not match p.
func (a TextAttribute) NotLike(p pattern.Pattern) restrict.Basic {
	return restrict.NotLike(a.Name(), p)
}

// StartsWith restricts the attribute to begin with prefix.
func (a TextAttribute) StartsWith(prefix string) restrict.Basic {
	return restrict.StartsWith(a.Name(), prefix)
}

// EndsWith restricts the attribute to end with suffix.
func (a TextAttribute) EndsWith(suffix string) restrict.Basic {
	return restrict.EndsWith(a.Name(), suffix)
}

// Contains restricts the attribute to contain substring.
func (a TextAttribute) Contains(substring string) restrict.Basic {
	return restrict.Contains(a.Name(), substring)
}

// EqualToIgnoreCase restricts the attribute to equal value, without regard
// to case.
func (a TextAttribute) EqualToIgnoreCase(value string) restrict.Basic {
	return restrict.Where(a.Name(), constraint.Equal(value).IgnoreCase())
}

// AscIgnoreCase sorts by the attribute ascending, without regard to case.
func (a TextAttribute) AscIgnoreCase() order.Sort {
	return order.AscIgnoreCase(a.Name())
}

// DescIgnoreCase sorts by the attribute descending, without regard to case.
func (a TextAttribute) DescIgnoreCase() order.Sort {
	return order.DescIgnoreCase(a.Name())
}

func widen[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
