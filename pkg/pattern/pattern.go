// Package pattern implements the textual matching patterns used by LIKE-style
// restrictions.
//
// A [Pattern] is expressed in a canonical three-symbol alphabet: `_` matches
// exactly one character, `%` matches any sequence of zero or more characters,
// and an escape character (`\` unless the caller chose another) makes the
// following character literal. Factories that take literal text, such as
// [Prefix] and [Substring], escape every reserved character so the text can
// only ever match itself.
package pattern

import (
	"errors"
	"strings"
)

// Canonical pattern alphabet.
const (
	CharWildcard   = '_'
	StringWildcard = '%'
	Escape         = '\\'
)

var (
	// ErrSameWildcards is the panic value when the character wildcard and the
	// string wildcard passed to [OfCustom] are the same rune.
	ErrSameWildcards = errors.New("pattern: character wildcard and string wildcard are identical")
)

// Pattern is an immutable matching pattern in the canonical alphabet.
//
// The zero Pattern matches only the empty string.
type Pattern struct {
	pattern string
	escape  rune
}

// Literal returns a pattern matching exactly text and nothing else.
// Every reserved character in text is escaped.
func Literal(text string) Pattern {
	return Pattern{pattern: escapeLiteral(text), escape: Escape}
}

// Prefix returns a pattern matching strings that begin with text.
func Prefix(text string) Pattern {
	return Pattern{pattern: escapeLiteral(text) + string(StringWildcard), escape: Escape}
}

// Suffix returns a pattern matching strings that end with text.
func Suffix(text string) Pattern {
	return Pattern{pattern: string(StringWildcard) + escapeLiteral(text), escape: Escape}
}

// Substring returns a pattern matching strings that contain text.
func Substring(text string) Pattern {
	return Pattern{pattern: string(StringWildcard) + escapeLiteral(text) + string(StringWildcard), escape: Escape}
}

// Of returns a pattern that interprets raw in the canonical alphabet as-is:
// `_` and `%` act as wildcards and `\` escapes. No characters are added or
// re-escaped.
func Of(raw string) Pattern {
	return Raw(raw, Escape)
}

// Raw adopts an already-written pattern verbatim together with the escape
// rune in effect inside it. It generalizes [Of] to patterns whose escape
// character is not the canonical `\`; as with [OfCustom], such a pattern
// has no recoverable unescaped form.
func Raw(raw string, escape rune) Pattern {
	return Pattern{pattern: raw, escape: escape}
}

// OfCustom translates raw, in which charWildcard matches a single character
// and stringWildcard matches any sequence, into the canonical alphabet.
// An optional single escape rune overrides the canonical `\` in the output.
//
// Reserved characters appearing literally in raw are escaped in the output,
// so for example OfCustom("50%", '?', '*') matches the literal string "50%".
//
// OfCustom panics with [ErrSameWildcards] when both wildcards are the same
// rune.
func OfCustom(raw string, charWildcard, stringWildcard rune, escape ...rune) Pattern {
	if charWildcard == stringWildcard {
		panic(ErrSameWildcards)
	}
	esc := rune(Escape)
	if len(escape) > 0 {
		esc = escape[0]
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case charWildcard:
			b.WriteRune(CharWildcard)
		case stringWildcard:
			b.WriteRune(StringWildcard)
		case CharWildcard, StringWildcard, esc:
			b.WriteRune(esc)
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return Pattern{pattern: b.String(), escape: esc}
}

// Value returns the canonical pattern string, suitable for use as the
// right-hand operand of a LIKE comparison together with [Pattern.EscapeRune].
func (p Pattern) Value() string {
	return p.pattern
}

// EscapeRune returns the escape character in effect for this pattern.
func (p Pattern) EscapeRune() rune {
	if p.escape == 0 {
		return Escape
	}
	return p.escape
}

// Unescaped reports the pattern with its escape characters removed, which
// recovers the original text for patterns built from literal text and
// standard wildcards.
//
// The unescaped form is only available when the pattern's escape character
// is the canonical `\`: under a custom escape the translation is lossy with
// respect to which occurrences were escapes, and Unescaped returns
// ("", false).
func (p Pattern) Unescaped() (string, bool) {
	if p.EscapeRune() != Escape {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(p.pattern))
	escaped := false
	for _, r := range p.pattern {
		if !escaped && r == Escape {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String(), true
}

// String renders the pattern single-quoted, e.g. 'Hibernate%'.
func (p Pattern) String() string {
	return "'" + p.pattern + "'"
}

func escapeLiteral(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case CharWildcard, StringWildcard, Escape:
			b.WriteRune(Escape)
		}
		b.WriteRune(r)
	}
	return b.String()
}
