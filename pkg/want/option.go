package want

import (
	"fmt"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Option is the present/absent wrapper. The zero Option is None. A None is
// JSON-encoded as null, so optional fields survive a round trip without
// resorting to pointers.
type Option[T any] struct {
	item T
	ok   bool
}

// Some wraps a present value. Some of a zero value is still present.
func Some[T any](v T) Option[T] {
	return Option[T]{
		item: v,
		ok:   true,
	}
}

// None returns the absent Option of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Maybe lifts a comma-ok return into an Option:
//
//	home := want.Maybe(os.LookupEnv("HOME"))
func Maybe[T any](v T, ok bool) Option[T] {
	if !ok {
		return Option[T]{}
	}
	return Some(v)
}

// IsWanted reports whether a value is present, regardless of its contents.
func (o Option[T]) IsWanted() bool {
	return o.ok
}

// Raw returns the contained value without checking presence; an absent
// Option yields the zero value.
func (o Option[T]) Raw() T {
	return o.item
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.item, o.ok
}

// GetOr returns the value, or def when absent.
func (o Option[T]) GetOr(def T) T {
	if !o.ok {
		return def
	}
	return o.item
}

// String implements [fmt.Stringer].
func (o Option[T]) String() string {
	if !o.ok {
		return fmt.Sprintf("none[%T]", o.item)
	}
	return fmt.Sprint(o.item)
}

// MarshalJSONTo implements [jsonv2.MarshalerTo]. A None encodes as null.
func (o Option[T]) MarshalJSONTo(enc *jsontext.Encoder) error {
	if !o.ok {
		return enc.WriteToken(jsontext.Null)
	}
	return jsonv2.MarshalEncode(enc, &o.item)
}

// UnmarshalJSONFrom implements [jsonv2.UnmarshalerFrom].
func (o *Option[T]) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	if dec.PeekKind() == 'n' {
		*o = Option[T]{}
		_, err := dec.ReadToken() // read null
		return err
	}
	o.ok = true
	return jsonv2.UnmarshalDecode(dec, &o.item)
}

// MarshalJSON implements [json.Marshaler].
func (o Option[T]) MarshalJSON() ([]byte, error) {
	return jsonv2.Marshal(o) // uses MarshalJSONTo
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *Option[T]) UnmarshalJSON(b []byte) error {
	return jsonv2.Unmarshal(b, o) // uses UnmarshalJSONFrom
}
