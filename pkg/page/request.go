// Package page implements the pagination model: page requests by numeric
// offset or keyset cursor, and the [Page]/[CursoredPage] results a provider
// hands back.
//
// Offset pagination addresses pages by number and size. Cursor pagination
// resumes relative to the sort-key values of a boundary row, so a
// [CursoredPage] derives its next and previous requests from the first and
// last rows it contains rather than from page arithmetic. Page numbers under
// cursor traversal are approximate, and a reverse traversal may legitimately
// repeat page number 1.
package page

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidPage is the panic value for a page number below 1.
	ErrInvalidPage = errors.New("page: page number must be at least 1")
	// ErrInvalidSize is the panic value for a non-positive page size.
	ErrInvalidSize = errors.New("page: page size must be at least 1")
	// ErrNilCursor is the panic value when a cursor mode is requested
	// without a cursor.
	ErrNilCursor = errors.New("page: cursor-based mode requires a cursor")
)

// DefaultSize is the page size used when none is chosen.
const DefaultSize = 10

// Mode distinguishes how a request addresses its page.
type Mode int

const (
	// ModeOffset addresses the page by number and size.
	ModeOffset Mode = iota
	// ModeCursorNext requests results after the cursor's key values.
	ModeCursorNext
	// ModeCursorPrevious requests results before the cursor's key values.
	ModeCursorPrevious
)

// String names the mode.
func (m Mode) String() string {
	switch m {
	case ModeCursorNext:
		return "CURSOR_NEXT"
	case ModeCursorPrevious:
		return "CURSOR_PREVIOUS"
	default:
		return "OFFSET"
	}
}

// PageRequest is an immutable request for one page of results. The wither
// methods return fresh values, so a request held by one caller can never be
// changed by another.
type PageRequest struct {
	page         int64
	size         int
	requestTotal bool
	mode         Mode
	cursor       Cursor
	hasCursor    bool
}

// OfPage requests the numbered page with [DefaultSize] elements and a total
// count. It panics with [ErrInvalidPage] when pageNum < 1.
func OfPage(pageNum int64) PageRequest {
	if pageNum < 1 {
		panic(ErrInvalidPage)
	}
	return PageRequest{page: pageNum, size: DefaultSize, requestTotal: true, mode: ModeOffset}
}

// OfSize requests the first page with the given number of elements.
// It panics with [ErrInvalidSize] when size < 1.
func OfSize(size int) PageRequest {
	return OfPage(1).WithSize(size)
}

// AfterCursor requests up to size results after cursor, labeled with the
// given approximate page number.
func AfterCursor(cursor Cursor, pageNum int64, size int, requestTotal bool) PageRequest {
	return cursorRequest(ModeCursorNext, cursor, pageNum, size, requestTotal)
}

// BeforeCursor requests up to size results before cursor, labeled with the
// given approximate page number.
func BeforeCursor(cursor Cursor, pageNum int64, size int, requestTotal bool) PageRequest {
	return cursorRequest(ModeCursorPrevious, cursor, pageNum, size, requestTotal)
}

func cursorRequest(mode Mode, cursor Cursor, pageNum int64, size int, requestTotal bool) PageRequest {
	if pageNum < 1 {
		panic(ErrInvalidPage)
	}
	if size < 1 {
		panic(ErrInvalidSize)
	}
	if cursor.Size() == 0 {
		panic(ErrNilCursor)
	}
	return PageRequest{
		page:         pageNum,
		size:         size,
		requestTotal: requestTotal,
		mode:         mode,
		cursor:       NewCursor(cursor.keys...),
		hasCursor:    true,
	}
}

// Page returns the page number, starting at 1. Under a cursor mode the
// number is approximate.
func (p PageRequest) Page() int64 { return p.page }

// Size returns the maximum number of elements per page.
func (p PageRequest) Size() int { return p.size }

// RequestTotal reports whether a total count of matching elements was
// requested.
func (p PageRequest) RequestTotal() bool { return p.requestTotal }

// Mode returns the pagination mode.
func (p PageRequest) Mode() Mode { return p.mode }

// Cursor returns the request's cursor, if it has one.
func (p PageRequest) Cursor() (Cursor, bool) {
	if !p.hasCursor {
		return Cursor{}, false
	}
	return NewCursor(p.cursor.keys...), true
}

// WithPage returns a copy of the request addressing pageNum.
// It panics with [ErrInvalidPage] when pageNum < 1.
func (p PageRequest) WithPage(pageNum int64) PageRequest {
	if pageNum < 1 {
		panic(ErrInvalidPage)
	}
	p.page = pageNum
	return p
}

// WithSize returns a copy of the request with the given page size.
// It panics with [ErrInvalidSize] when size < 1.
func (p PageRequest) WithSize(size int) PageRequest {
	if size < 1 {
		panic(ErrInvalidSize)
	}
	p.size = size
	return p
}

// WithTotal returns a copy of the request that asks for a total count.
func (p PageRequest) WithTotal() PageRequest {
	p.requestTotal = true
	return p
}

// WithoutTotal returns a copy of the request that skips the total count.
func (p PageRequest) WithoutTotal() PageRequest {
	p.requestTotal = false
	return p
}

// After returns a copy of the request that resumes after cursor.
func (p PageRequest) After(cursor Cursor) PageRequest {
	return AfterCursor(cursor, p.page, p.size, p.requestTotal)
}

// Before returns a copy of the request that resumes before cursor.
func (p PageRequest) Before(cursor Cursor) PageRequest {
	return BeforeCursor(cursor, p.page, p.size, p.requestTotal)
}

// Next returns the offset request for the following page.
func (p PageRequest) Next() PageRequest {
	next := p
	next.mode = ModeOffset
	next.cursor = Cursor{}
	next.hasCursor = false
	next.page = p.page + 1
	return next
}

// Previous returns the offset request for the preceding page. The page
// number never goes below 1, so the previous of the first page is the first
// page again.
func (p PageRequest) Previous() PageRequest {
	prev := p
	prev.mode = ModeOffset
	prev.cursor = Cursor{}
	prev.hasCursor = false
	if p.page > 1 {
		prev.page = p.page - 1
	} else {
		prev.page = 1
	}
	return prev
}

// String renders the request for logs, e.g.
// "PageRequest{page=2, size=5, mode=OFFSET}".
func (p PageRequest) String() string {
	s := "PageRequest{page=" + strconv.FormatInt(p.page, 10) +
		", size=" + strconv.Itoa(p.size) + ", mode=" + p.mode.String()
	if p.hasCursor {
		s += ", cursor=" + p.cursor.String()
	}
	return s + "}"
}
