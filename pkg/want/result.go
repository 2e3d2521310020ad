package want

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the ok/err wrapper: either a success carrying a value or a
// failure carrying an error. Every result is stamped with an id and a UTC
// creation time so it stays traceable through longer flows.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Try lifts a (value, error) return into a Result:
//
//	n := want.Or(want.Try(strconv.Atoi(s)), 0)
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// FailFrom carries a failure over to another payload type, keeping the
// original error, id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsWanted reports whether the result is a success. The error payload is
// never inspected: Fail(nil) still classifies as not wanted.
func (r Result[T]) IsWanted() bool {
	return r.ok
}

func (r Result[T]) Raw() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Errs returns the individual errors behind a failure, unwrapping errors
// joined with errors.Join. Successes report none.
func (r Result[T]) Errs() []error {
	if r.err == nil {
		return nil
	}
	if u, ok := r.err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return []error{r.err}
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return fmt.Sprintf("fail(%v)", r.err)
}
