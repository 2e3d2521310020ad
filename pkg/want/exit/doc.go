// Package exit provides the divergent unwrap rules: helpers that either
// surrender a wrapper's payload or abandon the enclosing construct
// altogether, the way an early return would.
//
// Go cannot return from its caller, so an abandoning rule raises an
// internal control-flow signal that one of the recovery constructs
// catches at the function boundary:
//
//	func lookup(id string) (string, bool) {
//		ok := exit.To(func() bool {
//			exit.Require(id != "")
//			u := exit.False(findUser(id))
//			return u.Active
//		})
//		...
//	}
//
// Highlights:
// - Return/False/True/Val: unwrap or leave the function (bare, or carrying
//   false, true, or an arbitrary fallback value)
// - Require/RequireOr: guard on a plain condition, no classifier involved
// - To/Void: run a function body and absorb its exits
// - Catch/CatchInto: deferred recovery inside an ordinary function
//
// A signal that reaches the top of the goroutine without a recovery
// construct panics with an error explaining the missing handler. Panics
// not raised by this package pass through every construct untouched.
package exit
