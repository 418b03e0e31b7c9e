package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_keys_are_copied(t *testing.T) {
	keys := []any{"Fuller", int64(42)}
	c := NewCursor(keys...)

	keys[0] = "mutated"
	assert.Equal(t, []any{"Fuller", int64(42)}, c.Keys())

	exposed := c.Keys()
	exposed[1] = "mutated"
	assert.Equal(t, []any{"Fuller", int64(42)}, c.Keys())

	assert.Equal(t, 2, c.Size())
	assert.Equal(t, "Fuller", c.Key(0))
}

func TestNewCursor_requires_keys(t *testing.T) {
	assert.PanicsWithError(t, ErrEmptyCursor.Error(), func() { NewCursor() })
}

func TestCursor_encode_roundtrip(t *testing.T) {
	testcases := []struct {
		name string
		keys []any
	}{
		{name: "single text key", keys: []any{"Hernandez"}},
		{name: "text and integer", keys: []any{"Hernandez", uint64(42)}},
		{name: "binary key", keys: []any{[]byte{0x01, 0x02}}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := NewCursor(tc.keys...).Encode()
			require.NoError(t, err)
			assert.NotContains(t, token, "=", "tokens are unpadded for URL use")

			decoded, err := DecodeCursor(token)
			require.NoError(t, err)
			assert.Equal(t, tc.keys, decoded.Keys())
		})
	}
}

func TestDecodeCursor_rejects_malformed_tokens(t *testing.T) {
	_, err := DecodeCursor("not*base64*")
	assert.ErrorIs(t, err, ErrBadCursor)

	// Valid base64 of bytes that are not a CBOR array.
	_, err = DecodeCursor("AAAA")
	assert.ErrorIs(t, err, ErrBadCursor)
}

func TestCursor_string_is_json(t *testing.T) {
	c := NewCursor("Fuller", int64(42))
	assert.Equal(t, `Cursor["Fuller",42]`, c.String())
}
