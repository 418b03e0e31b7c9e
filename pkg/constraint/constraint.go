// Package constraint defines the closed family of comparison predicates that
// form the leaves of restriction trees.
//
// The family is sealed: only the variants in this package implement
// [Constraint], so providers can switch over them exhaustively. Every variant
// is an immutable value whose [Constraint.Negate] returns the exact logical
// complement under non-null semantics, and negation is an involution:
// c.Negate().Negate() equals c.
package constraint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/repospec/repospec.go/pkg/pattern"
)

var (
	// ErrNilValue is the panic value when a required operand is nil.
	ErrNilValue = errors.New("constraint: operand value is nil")
	// ErrEmptyValues is the panic value when In or NotIn is given no values.
	ErrEmptyValues = errors.New("constraint: value set for IN is empty")
)

// Constraint is one comparison predicate applied to an attribute by a
// restriction. Implementations are limited to the variants in this package.
type Constraint interface {
	fmt.Stringer

	// Negate returns the logical complement of this constraint. The
	// ignore-case flag, where one exists, is preserved unchanged.
	Negate() Constraint

	// Operator identifies the comparison performed.
	Operator() Operator

	constraint()
}

// Operator identifies a comparison.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpLessThanOrEqual
	OpBetween
	OpNotBetween
	OpIn
	OpNotIn
	OpLike
	OpNotLike
	OpNull
	OpNotNull
)

// String returns the operator's rendering in restriction text.
func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "<>"
	case OpGreaterThan:
		return ">"
	case OpGreaterThanOrEqual:
		return ">="
	case OpLessThan:
		return "<"
	case OpLessThanOrEqual:
		return "<="
	case OpBetween:
		return "BETWEEN"
	case OpNotBetween:
		return "NOT BETWEEN"
	case OpIn:
		return "IN"
	case OpNotIn:
		return "NOT IN"
	case OpLike:
		return "LIKE"
	case OpNotLike:
		return "NOT LIKE"
	case OpNull:
		return "IS NULL"
	case OpNotNull:
		return "IS NOT NULL"
	default:
		return "UNKNOWN"
	}
}

// EqualTo compares for equality.
type EqualTo struct {
	value      any
	ignoreCase bool
}

// NotEqualTo compares for inequality.
type NotEqualTo struct {
	value      any
	ignoreCase bool
}

// GreaterThan is the strict > comparison.
type GreaterThan struct{ value any }

// GreaterThanOrEqual is the >= comparison.
type GreaterThanOrEqual struct{ value any }

// LessThan is the strict < comparison.
type LessThan struct{ value any }

// LessThanOrEqual is the <= comparison.
type LessThanOrEqual struct{ value any }

// Between matches values within a range, inclusive of both bounds.
type Between struct{ lower, upper any }

// NotBetween matches values outside a range.
type NotBetween struct{ lower, upper any }

// In matches values contained in a non-empty set.
type In struct {
	values     []any
	ignoreCase bool
}

// NotIn matches values absent from a non-empty set.
type NotIn struct {
	values     []any
	ignoreCase bool
}

// Like matches text against a pattern.
type Like struct {
	pattern    pattern.Pattern
	ignoreCase bool
}

// NotLike matches text not matching a pattern.
type NotLike struct {
	pattern    pattern.Pattern
	ignoreCase bool
}

// Null matches absent values.
type Null struct{}

// NotNull matches present values.
type NotNull struct{}

// Equal returns an equality constraint on value.
func Equal(value any) EqualTo {
	return EqualTo{value: requireValue(value)}
}

// NotEqual returns an inequality constraint on value.
func NotEqual(value any) NotEqualTo {
	return NotEqualTo{value: requireValue(value)}
}

// Greater returns a strict > constraint on value.
func Greater(value any) GreaterThan {
	return GreaterThan{value: requireValue(value)}
}

// AtLeast returns a >= constraint on value.
func AtLeast(value any) GreaterThanOrEqual {
	return GreaterThanOrEqual{value: requireValue(value)}
}

// Less returns a strict < constraint on value.
func Less(value any) LessThan {
	return LessThan{value: requireValue(value)}
}

// AtMost returns a <= constraint on value.
func AtMost(value any) LessThanOrEqual {
	return LessThanOrEqual{value: requireValue(value)}
}

// InRange returns a constraint matching values between lower and upper,
// inclusive.
func InRange(lower, upper any) Between {
	return Between{lower: requireValue(lower), upper: requireValue(upper)}
}

// OutOfRange returns a constraint matching values outside lower..upper.
func OutOfRange(lower, upper any) NotBetween {
	return NotBetween{lower: requireValue(lower), upper: requireValue(upper)}
}

// OneOf returns a constraint matching any of values.
// It panics with [ErrEmptyValues] when values is empty.
func OneOf(values ...any) In {
	return In{values: requireValues(values)}
}

// NoneOf returns a constraint matching none of values.
// It panics with [ErrEmptyValues] when values is empty.
func NoneOf(values ...any) NotIn {
	return NotIn{values: requireValues(values)}
}

// Matches returns a constraint matching text against p.
func Matches(p pattern.Pattern) Like {
	return Like{pattern: p}
}

// NotMatches returns a constraint matching text that does not match p.
func NotMatches(p pattern.Pattern) NotLike {
	return NotLike{pattern: p}
}

// IsNull returns the null-valued constraint.
func IsNull() Null { return Null{} }

// IsNotNull returns the non-null constraint.
func IsNotNull() NotNull { return NotNull{} }

func requireValue(value any) any {
	if value == nil {
		panic(ErrNilValue)
	}
	return value
}

func requireValues(values []any) []any {
	if len(values) == 0 {
		panic(ErrEmptyValues)
	}
	copied := make([]any, len(values))
	for i, v := range values {
		copied[i] = requireValue(v)
	}
	return copied
}

func (EqualTo) constraint()            {}
func (NotEqualTo) constraint()         {}
func (GreaterThan) constraint()        {}
func (GreaterThanOrEqual) constraint() {}
func (LessThan) constraint()           {}
func (LessThanOrEqual) constraint()    {}
func (Between) constraint()            {}
func (NotBetween) constraint()         {}
func (In) constraint()                 {}
func (NotIn) constraint()              {}
func (Like) constraint()               {}
func (NotLike) constraint()            {}
func (Null) constraint()               {}
func (NotNull) constraint()            {}

func (c EqualTo) Operator() Operator            { return OpEqual }
func (c NotEqualTo) Operator() Operator         { return OpNotEqual }
func (c GreaterThan) Operator() Operator        { return OpGreaterThan }
func (c GreaterThanOrEqual) Operator() Operator { return OpGreaterThanOrEqual }
func (c LessThan) Operator() Operator           { return OpLessThan }
func (c LessThanOrEqual) Operator() Operator    { return OpLessThanOrEqual }
func (c Between) Operator() Operator            { return OpBetween }
func (c NotBetween) Operator() Operator         { return OpNotBetween }
func (c In) Operator() Operator                 { return OpIn }
func (c NotIn) Operator() Operator              { return OpNotIn }
func (c Like) Operator() Operator               { return OpLike }
func (c NotLike) Operator() Operator            { return OpNotLike }
func (c Null) Operator() Operator               { return OpNull }
func (c NotNull) Operator() Operator            { return OpNotNull }

func (c EqualTo) Negate() Constraint    { return NotEqualTo(c) }
func (c NotEqualTo) Negate() Constraint { return EqualTo(c) }

func (c GreaterThan) Negate() Constraint        { return LessThanOrEqual(c) }
func (c GreaterThanOrEqual) Negate() Constraint { return LessThan(c) }
func (c LessThan) Negate() Constraint           { return GreaterThanOrEqual(c) }
func (c LessThanOrEqual) Negate() Constraint    { return GreaterThan(c) }

func (c Between) Negate() Constraint    { return NotBetween(c) }
func (c NotBetween) Negate() Constraint { return Between(c) }

func (c In) Negate() Constraint    { return NotIn(c) }
func (c NotIn) Negate() Constraint { return In(c) }

func (c Like) Negate() Constraint    { return NotLike(c) }
func (c NotLike) Negate() Constraint { return Like(c) }

func (Null) Negate() Constraint    { return NotNull{} }
func (NotNull) Negate() Constraint { return Null{} }

// IgnoreCase returns a copy of the constraint that compares text without
// regard to case. The flag survives negation unchanged.
func (c EqualTo) IgnoreCase() EqualTo { c.ignoreCase = true; return c }

// IgnoreCase returns a case-insensitive copy of the constraint.
func (c NotEqualTo) IgnoreCase() NotEqualTo { c.ignoreCase = true; return c }

// IgnoreCase returns a case-insensitive copy of the constraint.
func (c In) IgnoreCase() In { c.ignoreCase = true; return c }

// IgnoreCase returns a case-insensitive copy of the constraint.
func (c NotIn) IgnoreCase() NotIn { c.ignoreCase = true; return c }

// IgnoreCase returns a case-insensitive copy of the constraint.
func (c Like) IgnoreCase() Like { c.ignoreCase = true; return c }

// IgnoreCase returns a case-insensitive copy of the constraint.
func (c NotLike) IgnoreCase() NotLike { c.ignoreCase = true; return c }

// IsCaseInsensitive reports whether text comparison ignores case.
func (c EqualTo) IsCaseInsensitive() bool    { return c.ignoreCase }
func (c NotEqualTo) IsCaseInsensitive() bool { return c.ignoreCase }
func (c In) IsCaseInsensitive() bool         { return c.ignoreCase }
func (c NotIn) IsCaseInsensitive() bool      { return c.ignoreCase }
func (c Like) IsCaseInsensitive() bool       { return c.ignoreCase }
func (c NotLike) IsCaseInsensitive() bool    { return c.ignoreCase }

// Value returns the single operand.
func (c EqualTo) Value() any            { return c.value }
func (c NotEqualTo) Value() any         { return c.value }
func (c GreaterThan) Value() any        { return c.value }
func (c GreaterThanOrEqual) Value() any { return c.value }
func (c LessThan) Value() any           { return c.value }
func (c LessThanOrEqual) Value() any    { return c.value }

// Bounds returns the inclusive lower and upper bound operands.
func (c Between) Bounds() (lower, upper any) { return c.lower, c.upper }

// Bounds returns the excluded lower and upper bound operands.
func (c NotBetween) Bounds() (lower, upper any) { return c.lower, c.upper }

// Values returns a copy of the operand set.
func (c In) Values() []any { return append([]any(nil), c.values...) }

// Values returns a copy of the operand set.
func (c NotIn) Values() []any { return append([]any(nil), c.values...) }

// Pattern returns the matching pattern.
func (c Like) Pattern() pattern.Pattern { return c.pattern }

// Pattern returns the excluded matching pattern.
func (c NotLike) Pattern() pattern.Pattern { return c.pattern }

func (c EqualTo) String() string            { return c.Operator().String() + " " + FormatValue(c.value) }
func (c NotEqualTo) String() string         { return c.Operator().String() + " " + FormatValue(c.value) }
func (c GreaterThan) String() string        { return c.Operator().String() + " " + FormatValue(c.value) }
func (c GreaterThanOrEqual) String() string { return c.Operator().String() + " " + FormatValue(c.value) }
func (c LessThan) String() string           { return c.Operator().String() + " " + FormatValue(c.value) }
func (c LessThanOrEqual) String() string    { return c.Operator().String() + " " + FormatValue(c.value) }

func (c Between) String() string {
	return fmt.Sprintf("%s %s AND %s", c.Operator(), FormatValue(c.lower), FormatValue(c.upper))
}

func (c NotBetween) String() string {
	return fmt.Sprintf("%s %s AND %s", c.Operator(), FormatValue(c.lower), FormatValue(c.upper))
}

func (c In) String() string    { return c.Operator().String() + " " + formatValueSet(c.values) }
func (c NotIn) String() string { return c.Operator().String() + " " + formatValueSet(c.values) }

func (c Like) String() string    { return c.Operator().String() + " " + c.pattern.String() }
func (c NotLike) String() string { return c.Operator().String() + " " + c.pattern.String() }

func (Null) String() string    { return OpNull.String() }
func (NotNull) String() string { return OpNotNull.String() }

// FormatValue renders a literal operand for restriction text: textual values
// are single-quoted, everything else uses its default formatting.
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return "'" + v + "'"
	case fmt.Stringer:
		return "'" + v.String() + "'"
	default:
		return fmt.Sprint(v)
	}
}

func formatValueSet(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatValue(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
