package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_accessors(t *testing.T) {
	s := Desc("price")
	assert.Equal(t, "price", s.Property())
	assert.Equal(t, Descending, s.Direction())
	assert.False(t, s.IsAscending())
	assert.False(t, s.IgnoreCase())
	assert.Equal(t, "price DESC", s.String())

	ci := AscIgnoreCase("title")
	assert.True(t, ci.IsAscending())
	assert.True(t, ci.IgnoreCase())
}

func TestReversed(t *testing.T) {
	assert.Equal(t, Desc("a"), Asc("a").Reversed())
	assert.Equal(t, Asc("a"), Asc("a").Reversed().Reversed())
	assert.True(t, DescIgnoreCase("a").Reversed().IgnoreCase(), "reversing keeps the ignore-case flag")
}

func TestBy_copies_its_input(t *testing.T) {
	sorts := []Sort{Asc("a"), Desc("b")}
	combined := By(sorts...)
	sorts[0] = Desc("mutated")
	assert.Equal(t, Asc("a"), combined[0])
}

func TestEmpty_property_panics(t *testing.T) {
	assert.PanicsWithError(t, ErrEmptyProperty.Error(), func() { Asc("") })
	assert.PanicsWithError(t, ErrEmptyProperty.Error(), func() { DescIgnoreCase("") })
}
