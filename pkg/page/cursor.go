package page

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"

	"github.com/repospec/repospec.go/internal/codec"
)

var (
	// ErrEmptyCursor is the panic value when a cursor is constructed with no
	// key values.
	ErrEmptyCursor = errors.New("page: cursor requires at least one key value")
	// ErrBadCursor reports a cursor token that could not be decoded.
	ErrBadCursor = errors.New("page: malformed cursor token")
)

// Cursor holds the sort-key values of one result row, in the same order as
// the query's sorts. Keyset pagination resumes after or before these values
// instead of counting offsets, which keeps page boundaries stable under
// concurrent inserts and deletes.
type Cursor struct {
	keys []any
}

// NewCursor builds a cursor from ordered key values.
// It panics with [ErrEmptyCursor] when no values are given.
func NewCursor(keys ...any) Cursor {
	if len(keys) == 0 {
		panic(ErrEmptyCursor)
	}
	return Cursor{keys: append([]any(nil), keys...)}
}

// Size returns the number of key values.
func (c Cursor) Size() int { return len(c.keys) }

// Key returns the i-th key value.
func (c Cursor) Key(i int) any { return c.keys[i] }

// Keys returns a copy of the ordered key values.
func (c Cursor) Keys() []any { return append([]any(nil), c.keys...) }

// String renders the key values as compact JSON for logs and diagnostics.
// The rendering is not the wire form; use [Cursor.Encode] for that.
func (c Cursor) String() string {
	out, err := json.Marshal(c.keys)
	if err != nil {
		return fmt.Sprintf("%v", c.keys)
	}
	return "Cursor" + string(out)
}

type cborCodec struct{}

func (cborCodec) Marshal(v any) ([]byte, error) { return cbor.Marshal(v) }

func (cborCodec) Unmarshal(data []byte, dst any) error { return cbor.Unmarshal(data, dst) }

var (
	cursorMarshaler   codec.Marshaler   = cborCodec{}
	cursorUnmarshaler codec.Unmarshaler = cborCodec{}
)

// Encode serializes the key values to an opaque URL-safe token: CBOR wrapped
// in unpadded base64url. [DecodeCursor] reverses it.
func (c Cursor) Encode() (string, error) {
	raw, err := cursorMarshaler.Marshal(c.keys)
	if err != nil {
		return "", fmt.Errorf("page: encoding cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeCursor reverses [Cursor.Encode]. Numeric key values decode with
// CBOR's default integer widths; textual and binary values round-trip
// exactly.
func DecodeCursor(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrBadCursor, err)
	}
	var keys []any
	if err := cursorUnmarshaler.Unmarshal(raw, &keys); err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrBadCursor, err)
	}
	if len(keys) == 0 {
		return Cursor{}, fmt.Errorf("%w: no key values", ErrBadCursor)
	}
	return Cursor{keys: keys}, nil
}
