package exit

import (
	"fmt"

	"github.com/ib-77/want/pkg/want"
)

// escape is the control-flow signal the rules raise on the not-wanted
// branch. It implements error so an escape that outruns every recovery
// construct surfaces as a readable panic.
type escape struct {
	carried bool
	val     any
}

func (e *escape) Error() string {
	if e.carried {
		return fmt.Sprintf("exit: early exit carrying %v escaped; run the call site under exit.To or recover with a deferred exit.CatchInto", e.val)
	}
	return "exit: early exit escaped; run the call site under exit.To, exit.Void, or recover with a deferred exit.Catch"
}

// Return unwraps v, or leaves the enclosing construct with no carried
// value. Inside To it yields whatever the result already holds (the zero
// value unless fn set it); inside Void or above a deferred Catch it simply
// stops the body.
func Return[T any](v want.Value[T]) T {
	if !want.Is(v) {
		panic(&escape{})
	}
	return v.Raw()
}

// False unwraps v, or leaves the enclosing construct carrying false.
func False[T any](v want.Value[T]) T {
	if !want.Is(v) {
		panic(&escape{carried: true, val: false})
	}
	return v.Raw()
}

// True unwraps v, or leaves the enclosing construct carrying true.
func True[T any](v want.Value[T]) T {
	if !want.Is(v) {
		panic(&escape{carried: true, val: true})
	}
	return v.Raw()
}

// Val unwraps v, or leaves the enclosing construct carrying ret. The
// carried value must match the enclosing result type; a mismatch panics
// at the recovery site's type assertion.
func Val[T, R any](v want.Value[T], ret R) T {
	if !want.Is(v) {
		panic(&escape{carried: true, val: ret})
	}
	return v.Raw()
}

// Require does nothing when cond holds, and leaves the enclosing
// construct with no carried value when it does not. The true path costs a
// branch and nothing else.
func Require(cond bool) {
	if !cond {
		panic(&escape{})
	}
}

// RequireOr does nothing when cond holds, and leaves the enclosing
// construct carrying ret when it does not.
func RequireOr[R any](cond bool, ret R) {
	if !cond {
		panic(&escape{carried: true, val: ret})
	}
}

// To runs fn as the enclosing function of the exit rules inside it. A
// carried exit yields the carried value instead of fn's return; a bare
// exit yields the zero value of R. Other panics pass through.
func To[R any](fn func() R) (out R) {
	defer func() {
		switch e := recover().(type) {
		case nil:
		case *escape:
			if e.carried {
				out = e.val.(R)
			}
		default:
			panic(e)
		}
	}()
	return fn()
}

// Void runs fn as an enclosing function with no result: any exit raised
// inside just stops fn. Other panics pass through.
func Void(fn func()) {
	defer func() {
		switch e := recover().(type) {
		case nil:
		case *escape:
		default:
			panic(e)
		}
	}()
	fn()
}

// Catch, deferred inside an ordinary function, recovers a bare exit so the
// function returns with its results as already set:
//
//	func scan(lines []string) (n int) {
//		defer exit.Catch()
//		for _, l := range lines {
//			exit.Return(parse(l))
//			n++
//		}
//		return n
//	}
//
// A carried exit has nowhere to put its value here and keeps unwinding;
// recover it with CatchInto instead. Other panics pass through.
func Catch() {
	switch e := recover().(type) {
	case nil:
	case *escape:
		if e.carried {
			panic(e)
		}
	default:
		panic(e)
	}
}

// CatchInto, deferred inside an ordinary function, recovers any exit and
// stores a carried value into *ret, usually a named result:
//
//	func allValid(fields []Field) (ok bool) {
//		defer exit.CatchInto(&ok)
//		...
//		exit.RequireOr(f.Complete(), false)
//		...
//	}
//
// A bare exit leaves *ret as already set. Other panics pass through.
func CatchInto[R any](ret *R) {
	switch e := recover().(type) {
	case nil:
	case *escape:
		if e.carried {
			*ret = e.val.(R)
		}
	default:
		panic(e)
	}
}
