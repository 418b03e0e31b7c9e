package repospec

import (
	"strings"

	"github.com/repospec/repospec.go/pkg/order"
	"github.com/repospec/repospec.go/pkg/page"
	"github.com/repospec/repospec.go/pkg/restrict"
)

// Query aggregates everything a provider needs to answer one repository
// read: a restriction, an ordered list of sorts, and optionally a page
// request. Queries are immutable; the wither methods return fresh values.
//
//	q := repospec.NewQuery().
//		Where(restrict.Equal("status", "open")).
//		OrderBy(order.Desc("created")).
//		Paged(page.OfPage(2).WithSize(25))
type Query struct {
	restriction restrict.Restriction
	sorts       []order.Sort
	request     page.PageRequest
	hasRequest  bool
}

// NewQuery returns the query that matches everything, unsorted and unpaged.
func NewQuery() Query {
	return Query{restriction: restrict.Unrestricted()}
}

// Where returns a copy of the query with its restriction replaced.
// A nil restriction panics with [restrict.ErrNilRestriction].
func (q Query) Where(r restrict.Restriction) Query {
	if r == nil {
		panic(restrict.ErrNilRestriction)
	}
	q.restriction = r
	return q
}

// OrderBy returns a copy of the query sorted by the given sorts, from most
// to least significant. The input is copied.
func (q Query) OrderBy(sorts ...order.Sort) Query {
	q.sorts = order.By(sorts...)
	return q
}

// Paged returns a copy of the query answering the given page request.
func (q Query) Paged(request page.PageRequest) Query {
	q.request = request
	q.hasRequest = true
	return q
}

// Unpaged returns a copy of the query without a page request.
func (q Query) Unpaged() Query {
	q.request = page.PageRequest{}
	q.hasRequest = false
	return q
}

// Restriction returns the query's restriction, [restrict.Unrestricted] when
// none was set.
func (q Query) Restriction() restrict.Restriction {
	if q.restriction == nil {
		return restrict.Unrestricted()
	}
	return q.restriction
}

// Sorts returns a copy of the query's sorts.
func (q Query) Sorts() []order.Sort {
	return order.By(q.sorts...)
}

// PageRequest returns the query's page request, if it has one.
func (q Query) PageRequest() (page.PageRequest, bool) {
	return q.request, q.hasRequest
}

// String renders the query for logs.
func (q Query) String() string {
	var b strings.Builder
	b.WriteString("WHERE ")
	b.WriteString(q.Restriction().String())
	if len(q.sorts) > 0 {
		parts := make([]string, len(q.sorts))
		for i, s := range q.sorts {
			parts[i] = s.String()
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if q.hasRequest {
		b.WriteString(" ")
		b.WriteString(q.request.String())
	}
	return b.String()
}
