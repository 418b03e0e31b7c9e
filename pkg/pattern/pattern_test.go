package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral_escapes_reserved_characters(t *testing.T) {
	testcases := []struct {
		name string
		text string
		want string
	}{
		{name: "plain text", text: "Jakarta", want: "Jakarta"},
		{name: "string wildcard", text: "100%", want: `100\%`},
		{name: "char wildcard", text: "a_b", want: `a\_b`},
		{name: "escape char", text: `C:\tmp`, want: `C:\\tmp`},
		{name: "all reserved", text: `_%\`, want: `\_\%\\`},
		{name: "empty", text: "", want: ""},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Literal(tc.text).Value())
		})
	}
}

func TestStructuredFactories(t *testing.T) {
	assert.Equal(t, "Hibernate%", Prefix("Hibernate").Value())
	assert.Equal(t, "'Hibernate%'", Prefix("Hibernate").String())
	assert.Equal(t, "%.go", Suffix(".go").Value())
	assert.Equal(t, "%Data%", Substring("Data").Value())
	assert.Equal(t, `50\%%`, Prefix("50%").Value(), "literal text is escaped before the wildcard is appended")
}

func TestOf_keeps_canonical_patterns_unchanged(t *testing.T) {
	p := Of("JHM___E%")
	assert.Equal(t, "JHM___E%", p.Value())
	assert.Equal(t, '\\', p.EscapeRune())
}

func TestRaw_keeps_pattern_and_escape_verbatim(t *testing.T) {
	p := Raw("100!%_", '!')
	assert.Equal(t, "100!%_", p.Value())
	assert.Equal(t, '!', p.EscapeRune())

	_, ok := p.Unescaped()
	assert.False(t, ok, "a non-canonical escape makes the unescaped form unrecoverable")

	assert.Equal(t, Of("JHM___E%"), Raw("JHM___E%", '\\'))
}

func TestOfCustom(t *testing.T) {
	testcases := []struct {
		name           string
		raw            string
		charWildcard   rune
		stringWildcard rune
		want           string
	}{
		{name: "custom wildcards translate", raw: "JHM???F*", charWildcard: '?', stringWildcard: '*', want: "JHM___F%"},
		{name: "literal canonical chars are escaped", raw: "50%", charWildcard: '?', stringWildcard: '*', want: `50\%`},
		{name: "literal underscore is escaped", raw: "a_b*", charWildcard: '?', stringWildcard: '*', want: `a\_b%`},
		{name: "no wildcards present", raw: "plain", charWildcard: '?', stringWildcard: '*', want: "plain"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OfCustom(tc.raw, tc.charWildcard, tc.stringWildcard).Value())
		})
	}
}

func TestOfCustom_identical_wildcards_panics(t *testing.T) {
	assert.PanicsWithError(t, ErrSameWildcards.Error(), func() {
		OfCustom("abc", '*', '*')
	})
}

func TestOfCustom_custom_escape(t *testing.T) {
	p := OfCustom("10!%?", '?', '*', '!')
	// The literal '%' is escaped with '!', and '?' becomes the canonical
	// single-character wildcard. '!' itself is reserved in the output.
	assert.Equal(t, "10!!!%_", p.Value())
	assert.Equal(t, '!', p.EscapeRune())
}

func TestUnescaped(t *testing.T) {
	t.Run("round-trips literals", func(t *testing.T) {
		for _, text := range []string{"Jakarta", "100%", "a_b", `C:\tmp`, `_%\`, ""} {
			got, ok := Literal(text).Unescaped()
			require.True(t, ok)
			assert.Equal(t, text, got)
		}
	})

	t.Run("recovers raw canonical patterns", func(t *testing.T) {
		got, ok := Of(`JHM\_\%`).Unescaped()
		require.True(t, ok)
		assert.Equal(t, "JHM_%", got)
	})

	t.Run("unavailable under a custom escape", func(t *testing.T) {
		_, ok := OfCustom("a?b", '?', '*', '!').Unescaped()
		assert.False(t, ok)
	})
}
