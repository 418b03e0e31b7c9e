package page

import "errors"

var (
	// ErrNoTotals reports that totals were not requested or not supplied.
	ErrNoTotals = errors.New("page: total counts were not retrieved for this page")
	// ErrNoNextPage reports that no further page exists.
	ErrNoNextPage = errors.New("page: no next page of results")
	// ErrNoPreviousPage reports that no earlier page exists.
	ErrNoPreviousPage = errors.New("page: no previous page of results")
	// ErrCursorCount is the panic value when a cursored page is built with a
	// cursor count differing from its content count.
	ErrCursorCount = errors.New("page: one cursor is required per content element")
)

// TotalUnknown is the totalElements sentinel meaning no count was retrieved.
const TotalUnknown int64 = -1

// Page is one page of query results addressed by offset.
//
// A Page defensively copies both the content and the request it is built
// from, and hands out fresh copies of its content, so mutation of any
// caller-held slice or request can never change a page that was already
// returned.
type Page[T any] struct {
	content       []T
	request       PageRequest
	totalElements int64
	moreResults   bool
}

// NewPage builds a page with an explicitly known moreResults flag.
// totalElements may be [TotalUnknown].
func NewPage[T any](content []T, request PageRequest, totalElements int64, moreResults bool) Page[T] {
	return Page[T]{
		content:       append([]T(nil), content...),
		request:       request,
		totalElements: totalElements,
		moreResults:   moreResults,
	}
}

// NewInferredPage builds a page inferring moreResults: a further page is
// assumed exactly when the content fills the requested size and either the
// total is unknown or the total says more rows remain.
func NewInferredPage[T any](content []T, request PageRequest, totalElements int64) Page[T] {
	more := len(content) == request.Size() &&
		(totalElements < 0 || totalElements > request.Page()*int64(request.Size()))
	return NewPage(content, request, totalElements, more)
}

// Content returns a copy of the page's elements.
func (p Page[T]) Content() []T {
	return append([]T(nil), p.content...)
}

// NumberOfElements returns how many elements this page holds.
func (p Page[T]) NumberOfElements() int { return len(p.content) }

// HasContent reports whether the page holds any elements.
func (p Page[T]) HasContent() bool { return len(p.content) > 0 }

// PageRequest returns the request this page answers.
func (p Page[T]) PageRequest() PageRequest { return p.request }

// HasTotals reports whether total counts are available.
func (p Page[T]) HasTotals() bool { return p.totalElements >= 0 }

// TotalElements returns the total number of matching elements across all
// pages, or [ErrNoTotals] when no count was retrieved.
func (p Page[T]) TotalElements() (int64, error) {
	if p.totalElements < 0 {
		return 0, ErrNoTotals
	}
	return p.totalElements, nil
}

// TotalPages returns the total page count, or [ErrNoTotals] when no count
// was retrieved.
func (p Page[T]) TotalPages() (int64, error) {
	if p.totalElements < 0 {
		return 0, ErrNoTotals
	}
	size := int64(p.request.Size())
	return (p.totalElements + size - 1) / size, nil
}

// HasNext reports whether a further page of results exists.
func (p Page[T]) HasNext() bool { return p.moreResults }

// HasPrevious reports whether an earlier page exists.
func (p Page[T]) HasPrevious() bool { return p.request.Page() > 1 }

// NextPageRequest returns the request for the following page, or
// [ErrNoNextPage] when this is the final page.
func (p Page[T]) NextPageRequest() (PageRequest, error) {
	if !p.moreResults {
		return PageRequest{}, ErrNoNextPage
	}
	return p.request.Next(), nil
}

// PreviousPageRequest returns the request for the preceding page, or
// [ErrNoPreviousPage] on the first page.
func (p Page[T]) PreviousPageRequest() (PageRequest, error) {
	if p.request.Page() <= 1 {
		return PageRequest{}, ErrNoPreviousPage
	}
	return p.request.WithPage(p.request.Page() - 1), nil
}

// CursoredPage is one page of query results traversed by keyset cursor.
// Each element carries the cursor of its own row, and the next and previous
// requests are derived from the boundary rows' cursors instead of page
// arithmetic, which keeps traversal stable when rows are inserted or
// deleted between fetches.
type CursoredPage[T any] struct {
	content       []T
	cursors       []Cursor
	request       PageRequest
	totalElements int64
	hasNext       bool
	hasPrevious   bool
}

// NewCursoredPage builds a cursored page. cursors must hold exactly one
// cursor per content element, in content order; otherwise it panics with
// [ErrCursorCount]. totalElements may be [TotalUnknown]. hasNext and
// hasPrevious state whether rows are known to exist after the last and
// before the first element.
func NewCursoredPage[T any](content []T, cursors []Cursor, request PageRequest, totalElements int64, hasNext, hasPrevious bool) CursoredPage[T] {
	if len(cursors) != len(content) {
		panic(ErrCursorCount)
	}
	copied := make([]Cursor, len(cursors))
	for i, c := range cursors {
		copied[i] = NewCursor(c.keys...)
	}
	return CursoredPage[T]{
		content:       append([]T(nil), content...),
		cursors:       copied,
		request:       request,
		totalElements: totalElements,
		hasNext:       hasNext,
		hasPrevious:   hasPrevious,
	}
}

// Content returns a copy of the page's elements.
func (p CursoredPage[T]) Content() []T {
	return append([]T(nil), p.content...)
}

// NumberOfElements returns how many elements this page holds.
func (p CursoredPage[T]) NumberOfElements() int { return len(p.content) }

// HasContent reports whether the page holds any elements.
func (p CursoredPage[T]) HasContent() bool { return len(p.content) > 0 }

// PageRequest returns the request this page answers.
func (p CursoredPage[T]) PageRequest() PageRequest { return p.request }

// HasTotals reports whether total counts are available.
func (p CursoredPage[T]) HasTotals() bool { return p.totalElements >= 0 }

// TotalElements returns the total number of matching elements, or
// [ErrNoTotals] when no count was retrieved.
func (p CursoredPage[T]) TotalElements() (int64, error) {
	if p.totalElements < 0 {
		return 0, ErrNoTotals
	}
	return p.totalElements, nil
}

// TotalPages returns the total page count, or [ErrNoTotals] when no count
// was retrieved.
func (p CursoredPage[T]) TotalPages() (int64, error) {
	if p.totalElements < 0 {
		return 0, ErrNoTotals
	}
	size := int64(p.request.Size())
	return (p.totalElements + size - 1) / size, nil
}

// CursorAt returns the cursor of the i-th element.
func (p CursoredPage[T]) CursorAt(i int) Cursor {
	return NewCursor(p.cursors[i].keys...)
}

// HasNext reports whether rows are known to exist after this page.
func (p CursoredPage[T]) HasNext() bool { return p.hasNext && len(p.content) > 0 }

// HasPrevious reports whether rows are known to exist before this page.
func (p CursoredPage[T]) HasPrevious() bool { return p.hasPrevious && len(p.content) > 0 }

// NextPageRequest returns a request resuming after the last element's
// cursor, or [ErrNoNextPage] when the forward traversal is exhausted.
// The page number it carries is approximate.
func (p CursoredPage[T]) NextPageRequest() (PageRequest, error) {
	if !p.HasNext() {
		return PageRequest{}, ErrNoNextPage
	}
	last := p.cursors[len(p.cursors)-1]
	return AfterCursor(last, p.request.Page()+1, p.request.Size(), p.request.RequestTotal()), nil
}

// PreviousPageRequest returns a request resuming before the first element's
// cursor, or [ErrNoPreviousPage] when the backward traversal is exhausted.
// The page number it carries is approximate and may repeat 1.
func (p CursoredPage[T]) PreviousPageRequest() (PageRequest, error) {
	if !p.HasPrevious() {
		return PageRequest{}, ErrNoPreviousPage
	}
	prev := p.request.Page() - 1
	if prev < 1 {
		prev = 1
	}
	return BeforeCursor(p.cursors[0], prev, p.request.Size(), p.request.RequestTotal()), nil
}
