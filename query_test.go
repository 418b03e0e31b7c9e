package repospec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repospec "github.com/repospec/repospec.go"
	"github.com/repospec/repospec.go/pkg/order"
	"github.com/repospec/repospec.go/pkg/page"
	"github.com/repospec/repospec.go/pkg/restrict"
)

func TestNewQuery_defaults(t *testing.T) {
	q := repospec.NewQuery()
	assert.True(t, restrict.IsUnrestricted(q.Restriction()))
	assert.Empty(t, q.Sorts())
	_, paged := q.PageRequest()
	assert.False(t, paged)
}

func TestQuery_withers_return_fresh_values(t *testing.T) {
	base := repospec.NewQuery()
	restricted := base.Where(restrict.Equal("status", "open"))
	sorted := restricted.OrderBy(order.Desc("created"))
	paged := sorted.Paged(page.OfPage(2))

	assert.True(t, restrict.IsUnrestricted(base.Restriction()), "the base query is untouched")
	assert.Empty(t, restricted.Sorts())
	_, hasPage := sorted.PageRequest()
	assert.False(t, hasPage)

	req, hasPage := paged.PageRequest()
	require.True(t, hasPage)
	assert.Equal(t, int64(2), req.Page())

	unpaged := paged.Unpaged()
	_, hasPage = unpaged.PageRequest()
	assert.False(t, hasPage)
}

func TestQuery_sorts_are_copied(t *testing.T) {
	sorts := []order.Sort{order.Asc("a"), order.Desc("b")}
	q := repospec.NewQuery().OrderBy(sorts...)

	sorts[0] = order.Desc("mutated")
	assert.Equal(t, order.Asc("a"), q.Sorts()[0])

	exposed := q.Sorts()
	exposed[1] = order.Asc("mutated")
	assert.Equal(t, order.Desc("b"), q.Sorts()[1])
}

func TestQuery_nil_restriction_panics(t *testing.T) {
	assert.PanicsWithError(t, restrict.ErrNilRestriction.Error(), func() {
		repospec.NewQuery().Where(nil)
	})
}

func TestQuery_string(t *testing.T) {
	q := repospec.NewQuery().
		Where(restrict.Equal("status", "open")).
		OrderBy(order.Desc("created"), order.Asc("id")).
		Paged(page.OfPage(2).WithSize(5))

	assert.Equal(t,
		"WHERE status = 'open' ORDER BY created DESC, id ASC PageRequest{page=2, size=5, mode=OFFSET}",
		q.String())

	assert.Equal(t, "WHERE UNRESTRICTED", repospec.NewQuery().String())
}
