// Package restrict composes constraints on named attributes into immutable
// AND/OR/NOT trees that a provider translates into its native query language.
//
// A tree is built from [Basic] leaves and [Composite] nodes through the
// package-level factories:
//
//	r := restrict.All(
//		restrict.Equal("status", "open"),
//		restrict.Any(
//			restrict.Greater("priority", 3),
//			restrict.StartsWith("title", "urgent"),
//		),
//	)
//
// Two sentinels complete the algebra: [Unrestricted] matches everything and
// is the identity for AND-composition, while [Unmatchable] matches nothing
// and is its annihilator. Negating one yields the other.
//
// Negating a composite flips only its outer negated flag; the children keep
// their stated polarity, and expanding the negation over them is the
// provider's concern at evaluation time.
package restrict

import (
	"errors"
	"fmt"
	"strings"

	"github.com/repospec/repospec.go/pkg/constraint"
	"github.com/repospec/repospec.go/pkg/pattern"
)

var (
	// ErrEmptyComposite is the panic value when a composite is constructed
	// directly with an empty child list. Use [All] or [Any] with no arguments
	// to express the unrestricted sentinel instead.
	ErrEmptyComposite = errors.New("restrict: restrictions list cannot be empty")
	// ErrNilRestriction is the panic value for a nil child restriction.
	ErrNilRestriction = errors.New("restrict: restriction is nil")
	// ErrNilConstraint is the panic value for a nil constraint in a leaf.
	ErrNilConstraint = errors.New("restrict: constraint is nil")
	// ErrEmptyAttribute is the panic value for an empty attribute name.
	ErrEmptyAttribute = errors.New("restrict: attribute name is empty")
)

// Restriction is a predicate over entity attributes: a [Basic] leaf, a
// [Composite] node, or one of the [Unrestricted]/[Unmatchable] sentinels.
// The set of implementations is sealed.
type Restriction interface {
	fmt.Stringer

	// Negate returns the logical complement of this restriction.
	Negate() Restriction

	restriction()
}

// CompositeKind selects the connective of a [Composite].
type CompositeKind int

const (
	// KindAll requires every child to match (AND semantics).
	KindAll CompositeKind = iota
	// KindAny requires at least one child to match (OR semantics).
	KindAny
)

// String returns "ALL" or "ANY".
func (k CompositeKind) String() string {
	if k == KindAny {
		return "ANY"
	}
	return "ALL"
}

// Basic is a leaf restriction: one constraint applied to one attribute.
type Basic struct {
	attribute  string
	constraint constraint.Constraint
}

// Composite combines one or more child restrictions under a connective,
// optionally negated as a whole.
type Composite struct {
	kind     CompositeKind
	children []Restriction
	negated  bool
}

type unrestricted struct{}

type unmatchable struct{}

// Unrestricted returns the sentinel restriction that matches everything.
func Unrestricted() Restriction { return unrestricted{} }

// Unmatchable returns the sentinel restriction that matches nothing.
func Unmatchable() Restriction { return unmatchable{} }

// IsUnrestricted reports whether r is the match-everything sentinel.
func IsUnrestricted(r Restriction) bool {
	_, ok := r.(unrestricted)
	return ok
}

// IsUnmatchable reports whether r is the match-nothing sentinel.
func IsUnmatchable(r Restriction) bool {
	_, ok := r.(unmatchable)
	return ok
}

// Where returns a leaf restriction applying c to the named attribute.
// It panics with [ErrEmptyAttribute] on an empty name and [ErrNilConstraint]
// on a nil constraint.
func Where(attribute string, c constraint.Constraint) Basic {
	if attribute == "" {
		panic(ErrEmptyAttribute)
	}
	if c == nil {
		panic(ErrNilConstraint)
	}
	return Basic{attribute: attribute, constraint: c}
}

// All combines restrictions so that every one must match.
// With no arguments it returns the [Unrestricted] sentinel.
func All(restrictions ...Restriction) Restriction {
	if len(restrictions) == 0 {
		return Unrestricted()
	}
	return NewComposite(KindAll, restrictions...)
}

// Any combines restrictions so that at least one must match.
// With no arguments it returns the [Unrestricted] sentinel.
func Any(restrictions ...Restriction) Restriction {
	if len(restrictions) == 0 {
		return Unrestricted()
	}
	return NewComposite(KindAny, restrictions...)
}

// Not returns the logical complement of r.
func Not(r Restriction) Restriction {
	if r == nil {
		panic(ErrNilRestriction)
	}
	return r.Negate()
}

// NewComposite builds a composite node directly. Unlike [All] and [Any] it
// rejects an empty child list, panicking with [ErrEmptyComposite]; the empty
// case is only valid through the sentinel factories. A nil child panics with
// [ErrNilRestriction].
func NewComposite(kind CompositeKind, children ...Restriction) Composite {
	if len(children) == 0 {
		panic(ErrEmptyComposite)
	}
	copied := make([]Restriction, len(children))
	for i, c := range children {
		if c == nil {
			panic(ErrNilRestriction)
		}
		copied[i] = c
	}
	return Composite{kind: kind, children: copied}
}

// Equal restricts attribute to equal value.
func Equal(attribute string, value any) Basic {
	return Where(attribute, constraint.Equal(value))
}

// NotEqual restricts attribute to differ from value.
func NotEqual(attribute string, value any) Basic {
	return Where(attribute, constraint.NotEqual(value))
}

// Greater restricts attribute to exceed value.
func Greater(attribute string, value any) Basic {
	return Where(attribute, constraint.Greater(value))
}

// AtLeast restricts attribute to value or above.
func AtLeast(attribute string, value any) Basic {
	return Where(attribute, constraint.AtLeast(value))
}

// Less restricts attribute to fall below value.
func Less(attribute string, value any) Basic {
	return Where(attribute, constraint.Less(value))
}

// AtMost restricts attribute to value or below.
func AtMost(attribute string, value any) Basic {
	return Where(attribute, constraint.AtMost(value))
}

// Between restricts attribute to the inclusive range lower..upper.
func Between(attribute string, lower, upper any) Basic {
	return Where(attribute, constraint.InRange(lower, upper))
}

// In restricts attribute to one of values.
func In(attribute string, values ...any) Basic {
	return Where(attribute, constraint.OneOf(values...))
}

// NotIn restricts attribute to none of values.
func NotIn(attribute string, values ...any) Basic {
	return Where(attribute, constraint.NoneOf(values...))
}

// Like restricts a textual attribute to match p.
func Like(attribute string, p pattern.Pattern) Basic {
	return Where(attribute, constraint.Matches(p))
}

// NotLike restricts a textual attribute to not match p.
func NotLike(attribute string, p pattern.Pattern) Basic {
	return Where(attribute, constraint.NotMatches(p))
}

// StartsWith restricts a textual attribute to begin with prefix.
func StartsWith(attribute, prefix string) Basic {
	return Like(attribute, pattern.Prefix(prefix))
}

// EndsWith restricts a textual attribute to end with suffix.
func EndsWith(attribute, suffix string) Basic {
	return Like(attribute, pattern.Suffix(suffix))
}

// Contains restricts a textual attribute to contain substring.
func Contains(attribute, substring string) Basic {
	return Like(attribute, pattern.Substring(substring))
}

// IsNull restricts attribute to be absent.
func IsNull(attribute string) Basic {
	return Where(attribute, constraint.IsNull())
}

// NotNull restricts attribute to be present.
func NotNull(attribute string) Basic {
	return Where(attribute, constraint.IsNotNull())
}

func (Basic) restriction()        {}
func (Composite) restriction()    {}
func (unrestricted) restriction() {}
func (unmatchable) restriction()  {}

// Attribute returns the restricted attribute name.
func (b Basic) Attribute() string { return b.attribute }

// Constraint returns the comparison applied to the attribute.
func (b Basic) Constraint() constraint.Constraint { return b.constraint }

// Negate returns the leaf with its constraint replaced by the complement.
func (b Basic) Negate() Restriction {
	return Basic{attribute: b.attribute, constraint: b.constraint.Negate()}
}

func (b Basic) String() string {
	return b.attribute + " " + b.constraint.String()
}

// Kind returns the composite's connective.
func (c Composite) Kind() CompositeKind { return c.kind }

// IsNegated reports whether the composite is negated as a whole.
func (c Composite) IsNegated() bool { return c.negated }

// Restrictions returns a copy of the ordered child list.
func (c Composite) Restrictions() []Restriction {
	return append([]Restriction(nil), c.children...)
}

// Negate flips the composite's outer negated flag. The children are left
// untouched: the provider applying the restriction expands the negation.
func (c Composite) Negate() Restriction {
	return Composite{kind: c.kind, children: c.children, negated: !c.negated}
}

func (c Composite) String() string {
	parts := make([]string, len(c.children))
	for i, child := range c.children {
		parts[i] = "(" + child.String() + ")"
	}
	joiner := " AND "
	if c.kind == KindAny {
		joiner = " OR "
	}
	joined := strings.Join(parts, joiner)
	if c.negated {
		return "NOT (" + joined + ")"
	}
	return joined
}

func (unrestricted) Negate() Restriction { return unmatchable{} }
func (unmatchable) Negate() Restriction  { return unrestricted{} }

func (unrestricted) String() string { return "UNRESTRICTED" }
func (unmatchable) String() string  { return "UNMATCHABLE" }
