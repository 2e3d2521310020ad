package want

// Action is what a run-time fallback decides: keep the payload, skip the
// current loop iteration, or leave the enclosing function. The caller
// switches on it right after the Switch call, where continue and return
// are legal.
type Action int

const (
	Proceed  Action = iota // use the value
	Continue               // skip to the next iteration
	Return                 // leave the enclosing function
)

func (a Action) String() string {
	switch a {
	case Proceed:
		return "proceed"
	case Continue:
		return "continue"
	case Return:
		return "return"
	}
	return "unknown"
}

// Switch classifies v and, when it is not wanted, asks the fallback how to
// diverge. A wanted v yields (payload, Proceed) and the fallback never
// runs; a not-wanted v yields the zero payload and the fallback's Action,
// defaulting to Return when the fallback is nil.
//
//	for _, line := range lines {
//		f, act := want.Switch(parseField(line), nextAction)
//		switch act {
//		case want.Continue:
//			continue
//		case want.Return:
//			return
//		}
//		use(f)
//	}
func Switch[T any](v Value[T], fallback func() Action) (T, Action) {
	if Is(v) {
		return v.Raw(), Proceed
	}
	var zero T
	if fallback == nil {
		return zero, Return
	}
	return zero, fallback()
}
