package want

import (
	"iter"
	"reflect"
)

// Is classifies w. It is the single classification point behind every
// helper: a nil interface or a typed-nil pointer implementation counts as
// not wanted, everything else answers for itself.
func Is(w Wanted) bool {
	if IsNil(w) {
		return false
	}
	return w.IsWanted()
}

// IsNil reports whether i is nil directly or a nil pointer boxed in an
// interface.
func IsNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Or returns the payload of v, or fallback when v is not the wanted
// outcome. v is evaluated once, at the call site.
func Or[T any](v Value[T], fallback T) T {
	if !Is(v) {
		return fallback
	}
	return v.Raw()
}

// OrElse returns the payload of v, or the fallback's value. The fallback
// runs only on the not-wanted branch; nil yields the zero value.
func OrElse[T any](v Value[T], fallback func() T) T {
	if Is(v) {
		return v.Raw()
	}
	if fallback == nil {
		var zero T
		return zero
	}
	return fallback()
}

// OrZero returns the payload of v, or the zero value of T.
func OrZero[T any](v Value[T]) T {
	if !Is(v) {
		var zero T
		return zero
	}
	return v.Raw()
}

// Get splits v into its payload and classification. It is the pair behind
// the divergent call sites the caller writes out:
//
//	f, ok := want.Get(parseField(line))
//	if !ok {
//		continue
//	}
func Get[T any](v Value[T]) (T, bool) {
	if !Is(v) {
		var zero T
		return zero, false
	}
	return v.Raw(), true
}

// Values filters seq down to the payloads of its wanted elements; the
// not-wanted ones are skipped in place.
func Values[T any, V Value[T]](seq iter.Seq[V]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !Is(v) {
				continue
			}
			if !yield(v.Raw()) {
				return
			}
		}
	}
}
