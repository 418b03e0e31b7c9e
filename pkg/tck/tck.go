// Package tck checks a provider implementation against the query contract.
//
// A provider exposes its rendering through [Renderer] and calls [Run] from
// one of its own tests:
//
//	func TestConformance(t *testing.T) {
//		tck.Run(t, myRenderer)
//	}
//
// Run drives the algebra laws every provider relies on (negation
// involution, sentinel identities, escaping, pagination arithmetic,
// anti-aliasing) and the black-box rendering contract: well-formed queries
// must render, and declined capabilities must report an error wrapping
// [repospec.ErrUnsupported].
package tck

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repospec "github.com/repospec/repospec.go"
	"github.com/repospec/repospec.go/pkg/constraint"
	"github.com/repospec/repospec.go/pkg/order"
	"github.com/repospec/repospec.go/pkg/page"
	"github.com/repospec/repospec.go/pkg/pattern"
	"github.com/repospec/repospec.go/pkg/restrict"
)

// Renderer is the surface a provider exposes to the conformance checks.
type Renderer interface {
	// Render translates q into the provider's native query text and
	// arguments.
	Render(q repospec.Query) (string, []any, error)
}

// Run executes the full conformance check suite against r.
func Run(t *testing.T, r Renderer) {
	t.Run("ConstraintNegation", checkConstraintNegation)
	t.Run("RestrictionAlgebra", checkRestrictionAlgebra)
	t.Run("PatternEscaping", checkPatternEscaping)
	t.Run("PaginationArithmetic", checkPaginationArithmetic)
	t.Run("PageAliasing", checkPageAliasing)
	t.Run("RendererContract", func(t *testing.T) { checkRenderer(t, r) })
}

func checkConstraintNegation(t *testing.T) {
	constraints := []constraint.Constraint{
		constraint.Equal("Jakarta"),
		constraint.Equal("Jakarta").IgnoreCase(),
		constraint.NotEqual(42),
		constraint.Greater(10),
		constraint.AtLeast(10),
		constraint.Less(10),
		constraint.AtMost(10),
		constraint.InRange(1, 9),
		constraint.OutOfRange(1, 9),
		constraint.OneOf("a", "b"),
		constraint.OneOf("a", "b").IgnoreCase(),
		constraint.NoneOf(1, 2, 3),
		constraint.Matches(pattern.Prefix("Hibernate")),
		constraint.Matches(pattern.Prefix("Hibernate")).IgnoreCase(),
		constraint.NotMatches(pattern.Substring("Data")),
		constraint.IsNull(),
		constraint.IsNotNull(),
	}
	for _, c := range constraints {
		assert.Equal(t, c, c.Negate().Negate(), "negation must be an involution for %v", c)
		assert.NotEqual(t, c.Operator(), c.Negate().Operator(), "negation must change the operator for %v", c)
	}

	// The complement pairs under non-null semantics.
	assert.Equal(t, constraint.OpLessThanOrEqual, constraint.Greater(1).Negate().Operator())
	assert.Equal(t, constraint.OpLessThan, constraint.AtLeast(1).Negate().Operator())
	assert.Equal(t, constraint.OpGreaterThanOrEqual, constraint.Less(1).Negate().Operator())
	assert.Equal(t, constraint.OpGreaterThan, constraint.AtMost(1).Negate().Operator())
	assert.Equal(t, constraint.OpNotEqual, constraint.Equal(1).Negate().Operator())
	assert.Equal(t, constraint.OpNotIn, constraint.OneOf(1).Negate().Operator())
	assert.Equal(t, constraint.OpNotLike, constraint.Matches(pattern.Literal("x")).Negate().Operator())
	assert.Equal(t, constraint.OpNotNull, constraint.IsNull().Negate().Operator())
	assert.Equal(t, constraint.OpNotBetween, constraint.InRange(1, 2).Negate().Operator())

	ci := constraint.Matches(pattern.Literal("x")).IgnoreCase().Negate()
	require.IsType(t, constraint.NotLike{}, ci)
	assert.True(t, ci.(constraint.NotLike).IsCaseInsensitive(), "ignore-case must survive negation")
}

func checkRestrictionAlgebra(t *testing.T) {
	assert.Equal(t, restrict.Unmatchable(), restrict.Unrestricted().Negate())
	assert.Equal(t, restrict.Unrestricted(), restrict.Unmatchable().Negate())

	children := []restrict.Restriction{
		restrict.Equal("status", "open"),
		restrict.Greater("priority", 3),
	}
	composite := restrict.NewComposite(restrict.KindAny, children...)
	negated := composite.Negate()
	require.IsType(t, restrict.Composite{}, negated)
	assert.True(t, negated.(restrict.Composite).IsNegated())
	assert.Equal(t, children, negated.(restrict.Composite).Restrictions(),
		"negation must not alter children order or contents")
	assert.Equal(t, restrict.Restriction(composite), negated.Negate())

	assert.Equal(t, restrict.Unrestricted(), restrict.All())
	assert.Equal(t, restrict.Unrestricted(), restrict.Any())
	assert.PanicsWithError(t, restrict.ErrEmptyComposite.Error(), func() {
		restrict.NewComposite(restrict.KindAll)
	}, "the empty case is only valid through the sentinel factories")
	assert.PanicsWithError(t, restrict.ErrNilRestriction.Error(), func() {
		restrict.All(restrict.Equal("a", 1), nil)
	})
}

func checkPatternEscaping(t *testing.T) {
	assert.Equal(t, "'Hibernate%'", pattern.Prefix("Hibernate").String())
	assert.Equal(t, "JHM___E%", pattern.Of("JHM___E%").Value())
	assert.Equal(t, "JHM___F%", pattern.OfCustom("JHM???F*", '?', '*').Value())
	assert.Equal(t, `100\%`, pattern.Literal("100%").Value())

	unescaped, ok := pattern.Literal(`one_of_100%\`).Unescaped()
	require.True(t, ok)
	assert.Equal(t, `one_of_100%\`, unescaped)

	_, ok = pattern.OfCustom("a?b", '?', '*', '!').Unescaped()
	assert.False(t, ok, "a custom escape makes the unescaped form unrecoverable")

	assert.PanicsWithError(t, pattern.ErrSameWildcards.Error(), func() {
		pattern.OfCustom("x", '?', '?')
	})
}

func checkPaginationArithmetic(t *testing.T) {
	req := page.OfPage(1).WithSize(5)
	p := page.NewInferredPage([]string{"a", "b", "c", "d", "e"}, req, 18)

	assert.True(t, p.HasNext())
	next, err := p.NextPageRequest()
	require.NoError(t, err)
	assert.Equal(t, page.OfPage(2).WithSize(5), next)

	pages, err := p.TotalPages()
	require.NoError(t, err)
	assert.Equal(t, int64(4), pages)

	unknown := page.NewInferredPage([]string{"a", "b", "c", "d", "e"}, req, page.TotalUnknown)
	assert.True(t, unknown.HasNext(), "a full page with unknown totals implies a next page")
	assert.False(t, unknown.HasTotals())
	_, err = unknown.TotalElements()
	assert.ErrorIs(t, err, page.ErrNoTotals)
	_, err = unknown.TotalPages()
	assert.ErrorIs(t, err, page.ErrNoTotals)

	partial := page.NewInferredPage([]string{"a", "b"}, req, 2)
	assert.False(t, partial.HasNext())
	_, err = partial.NextPageRequest()
	assert.ErrorIs(t, err, page.ErrNoNextPage)
}

func checkPageAliasing(t *testing.T) {
	content := []string{"a", "b", "c"}
	p := page.NewPage(content, page.OfSize(3), 3, false)

	content[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, p.Content(),
		"mutating the source slice must not change an issued page")

	got := p.Content()
	got[1] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, p.Content(),
		"mutating an exposed content slice must not change the page")
}

func checkRenderer(t *testing.T, r Renderer) {
	id := uuid.Must(uuid.NewV4())

	q := repospec.NewQuery().
		Where(restrict.All(
			restrict.Equal("owner", id.String()),
			restrict.Any(
				restrict.StartsWith("title", "urgent"),
				restrict.AtLeast("priority", 7),
			),
		)).
		OrderBy(order.Desc("created")).
		Paged(page.OfPage(2).WithSize(25))

	text, args, err := r.Render(q)
	require.NoError(t, err, "a well-formed offset query must render")
	assert.NotEmpty(t, text)
	assert.Contains(t, args, id.String(), "restriction operands must surface as arguments")

	negated, args, err := r.Render(repospec.NewQuery().Where(restrict.Not(restrict.All(
		restrict.Equal("status", "open"),
		restrict.Equal("status", "closed"),
	))))
	require.NoError(t, err, "negated composites must render")
	assert.NotEmpty(t, negated)
	assert.Len(t, args, 2)

	// Sentinel children decide their composite: a disjunction with an
	// Unrestricted child matches everything, a conjunction with an
	// Unmatchable child matches nothing. Both must render exactly as the
	// bare sentinel does.
	everything, _, err := r.Render(repospec.NewQuery())
	require.NoError(t, err)
	got, args, err := r.Render(repospec.NewQuery().Where(
		restrict.Any(restrict.Unrestricted(), restrict.Equal("status", "open"))))
	require.NoError(t, err)
	assert.Equal(t, everything, got, "ANY with an Unrestricted child must match everything")
	assert.Empty(t, args)

	nothing, nothingArgs, err := r.Render(repospec.NewQuery().Where(restrict.Unmatchable()))
	require.NoError(t, err)
	got, args, err = r.Render(repospec.NewQuery().Where(
		restrict.All(restrict.Equal("status", "open"), restrict.Unmatchable())))
	require.NoError(t, err)
	assert.Equal(t, nothing, got, "ALL with an Unmatchable child must match nothing")
	assert.Equal(t, nothingArgs, args)

	// A cursor request with no sorts to derive the keyset from is either
	// supported some other way or declined with the stable condition. A
	// renderer that accepts it must actually bind the cursor's key values.
	cursorReq := page.OfSize(10).After(page.NewCursor(id.String()))
	if text, args, err := r.Render(repospec.NewQuery().Paged(cursorReq)); err != nil {
		assert.ErrorIs(t, err, repospec.ErrUnsupported,
			"declined capabilities must wrap repospec.ErrUnsupported")
	} else {
		assert.NotEmpty(t, text)
		assert.Contains(t, args, id.String(),
			"an accepted cursor must surface its key values as arguments")
	}
}
