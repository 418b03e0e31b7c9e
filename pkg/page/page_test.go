package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_defaults_and_withers(t *testing.T) {
	req := OfPage(3)
	assert.Equal(t, int64(3), req.Page())
	assert.Equal(t, DefaultSize, req.Size())
	assert.True(t, req.RequestTotal())
	assert.Equal(t, ModeOffset, req.Mode())
	_, hasCursor := req.Cursor()
	assert.False(t, hasCursor)

	sized := req.WithSize(25).WithoutTotal()
	assert.Equal(t, 25, sized.Size())
	assert.False(t, sized.RequestTotal())
	// The original request is untouched.
	assert.Equal(t, DefaultSize, req.Size())
	assert.True(t, req.RequestTotal())

	assert.Equal(t, int64(1), OfSize(7).Page())
	assert.Equal(t, 7, OfSize(7).Size())
}

func TestPageRequest_validation(t *testing.T) {
	assert.PanicsWithError(t, ErrInvalidPage.Error(), func() { OfPage(0) })
	assert.PanicsWithError(t, ErrInvalidPage.Error(), func() { OfPage(1).WithPage(-1) })
	assert.PanicsWithError(t, ErrInvalidSize.Error(), func() { OfSize(0) })
	assert.PanicsWithError(t, ErrInvalidSize.Error(), func() { OfPage(1).WithSize(0) })
	assert.PanicsWithError(t, ErrNilCursor.Error(), func() {
		AfterCursor(Cursor{}, 1, 10, false)
	})
}

func TestPageRequest_cursor_modes(t *testing.T) {
	cursor := NewCursor("Fuller", int64(42))

	after := OfSize(10).After(cursor)
	assert.Equal(t, ModeCursorNext, after.Mode())
	got, ok := after.Cursor()
	require.True(t, ok)
	assert.Equal(t, cursor.Keys(), got.Keys())

	before := BeforeCursor(cursor, 4, 10, true)
	assert.Equal(t, ModeCursorPrevious, before.Mode())
	assert.Equal(t, int64(4), before.Page())
	assert.True(t, before.RequestTotal())
}

func TestPageRequest_next_and_previous(t *testing.T) {
	req := OfPage(3).WithSize(25)
	assert.Equal(t, OfPage(4).WithSize(25), req.Next())
	assert.Equal(t, OfPage(2).WithSize(25), req.Previous())
	assert.Equal(t, int64(3), req.Page(), "withers must not change the receiver")

	assert.Equal(t, int64(1), OfPage(1).Previous().Page(),
		"the previous of the first page is the first page")

	// Both withers step back into offset mode, dropping the cursor.
	cursored := OfSize(10).After(NewCursor("Fuller"))
	for _, stepped := range []PageRequest{cursored.Next(), cursored.Previous()} {
		assert.Equal(t, ModeOffset, stepped.Mode())
		_, hasCursor := stepped.Cursor()
		assert.False(t, hasCursor)
	}
}

func TestPage_inference(t *testing.T) {
	req := OfPage(1).WithSize(5)

	t.Run("full page with more totals ahead", func(t *testing.T) {
		p := NewInferredPage([]string{"a", "b", "c", "d", "e"}, req, 18)
		assert.True(t, p.HasNext())

		next, err := p.NextPageRequest()
		require.NoError(t, err)
		assert.Equal(t, OfPage(2).WithSize(5), next)

		total, err := p.TotalElements()
		require.NoError(t, err)
		assert.Equal(t, int64(18), total)

		pages, err := p.TotalPages()
		require.NoError(t, err)
		assert.Equal(t, int64(4), pages)
	})

	t.Run("full page with unknown total", func(t *testing.T) {
		p := NewInferredPage([]string{"a", "b", "c", "d", "e"}, req, TotalUnknown)
		assert.True(t, p.HasNext())
		assert.False(t, p.HasTotals())

		_, err := p.TotalElements()
		assert.ErrorIs(t, err, ErrNoTotals)
		_, err = p.TotalPages()
		assert.ErrorIs(t, err, ErrNoTotals)
	})

	t.Run("full final page", func(t *testing.T) {
		p := NewInferredPage([]string{"a", "b", "c", "d", "e"}, req, 5)
		assert.False(t, p.HasNext(), "total says the full page is also the last")
		_, err := p.NextPageRequest()
		assert.ErrorIs(t, err, ErrNoNextPage)
	})

	t.Run("partial page", func(t *testing.T) {
		p := NewInferredPage([]string{"a", "b"}, req, TotalUnknown)
		assert.False(t, p.HasNext())
	})
}

func TestPage_previous(t *testing.T) {
	first := NewPage([]int{1, 2}, OfPage(1).WithSize(2), 4, true)
	_, err := first.PreviousPageRequest()
	assert.ErrorIs(t, err, ErrNoPreviousPage)
	assert.False(t, first.HasPrevious())

	second := NewPage([]int{3, 4}, OfPage(2).WithSize(2), 4, false)
	assert.True(t, second.HasPrevious())
	prev, err := second.PreviousPageRequest()
	require.NoError(t, err)
	assert.Equal(t, int64(1), prev.Page())
}

func TestPage_anti_aliasing(t *testing.T) {
	content := []string{"a", "b", "c"}
	p := NewPage(content, OfSize(3), 3, false)

	content[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, p.Content())

	exposed := p.Content()
	exposed[1] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, p.Content())
	assert.Equal(t, 3, p.NumberOfElements())
	assert.True(t, p.HasContent())
}

func TestCursoredPage_boundary_requests(t *testing.T) {
	req := AfterCursor(NewCursor("Davis"), 2, 3, false)
	content := []string{"Fuller", "Garcia", "Hernandez"}
	cursors := []Cursor{NewCursor("Fuller"), NewCursor("Garcia"), NewCursor("Hernandez")}

	p := NewCursoredPage(content, cursors, req, TotalUnknown, true, true)

	next, err := p.NextPageRequest()
	require.NoError(t, err)
	assert.Equal(t, ModeCursorNext, next.Mode())
	nextCursor, ok := next.Cursor()
	require.True(t, ok)
	assert.Equal(t, []any{"Hernandez"}, nextCursor.Keys(), "next resumes after the last row")
	assert.Equal(t, int64(3), next.Page())

	prev, err := p.PreviousPageRequest()
	require.NoError(t, err)
	assert.Equal(t, ModeCursorPrevious, prev.Mode())
	prevCursor, ok := prev.Cursor()
	require.True(t, ok)
	assert.Equal(t, []any{"Fuller"}, prevCursor.Keys(), "previous resumes before the first row")
	assert.Equal(t, int64(1), prev.Page())
}

func TestCursoredPage_page_number_floors_at_one(t *testing.T) {
	req := BeforeCursor(NewCursor("Garcia"), 1, 3, false)
	p := NewCursoredPage([]string{"Davis"}, []Cursor{NewCursor("Davis")}, req, TotalUnknown, true, true)

	prev, err := p.PreviousPageRequest()
	require.NoError(t, err)
	assert.Equal(t, int64(1), prev.Page(), "reverse traversal may repeat page number 1")
}

func TestCursoredPage_exhausted_traversals(t *testing.T) {
	req := AfterCursor(NewCursor("A"), 1, 2, false)
	p := NewCursoredPage([]string{"B", "C"}, []Cursor{NewCursor("B"), NewCursor("C")}, req, TotalUnknown, false, false)

	_, err := p.NextPageRequest()
	assert.ErrorIs(t, err, ErrNoNextPage)
	_, err = p.PreviousPageRequest()
	assert.ErrorIs(t, err, ErrNoPreviousPage)

	empty := NewCursoredPage[string](nil, nil, req, TotalUnknown, true, true)
	assert.False(t, empty.HasNext(), "no boundary rows to resume from")
	_, err = empty.NextPageRequest()
	assert.ErrorIs(t, err, ErrNoNextPage)
}

func TestCursoredPage_validation_and_aliasing(t *testing.T) {
	req := AfterCursor(NewCursor("A"), 1, 2, false)

	assert.PanicsWithError(t, ErrCursorCount.Error(), func() {
		NewCursoredPage([]string{"a", "b"}, []Cursor{NewCursor("a")}, req, TotalUnknown, false, false)
	})

	content := []string{"a", "b"}
	cursors := []Cursor{NewCursor("a"), NewCursor("b")}
	p := NewCursoredPage(content, cursors, req, 2, false, false)

	content[0] = "mutated"
	cursors[0] = NewCursor("mutated")
	assert.Equal(t, []string{"a", "b"}, p.Content())
	assert.Equal(t, []any{"a"}, p.CursorAt(0).Keys())

	total, err := p.TotalElements()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	pages, err := p.TotalPages()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pages)
}
