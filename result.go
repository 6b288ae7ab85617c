package treewire

import "fmt"

// Result is the outcome of an encode or decode step: either a success value
// or a user-facing error message. Expected failures never surface as Go
// errors or panics; they travel as Results so callers can inspect and
// continue.
type Result[T any] struct {
	value T
	msg   string
	ok    bool
}

// Ok returns a successful Result carrying v.
func Ok[T any](v T) Result[T] { return Result[T]{value: v, ok: true} }

// Err returns a failed Result carrying msg.
func Err[T any](msg string) Result[T] { return Result[T]{msg: msg} }

// Errf returns a failed Result with a formatted message.
func Errf[T any](format string, args ...any) Result[T] {
	return Result[T]{msg: fmt.Sprintf(format, args...)}
}

// IsOk reports whether the Result holds a value.
func (r Result[T]) IsOk() bool { return r.ok }

// IsErr reports whether the Result holds an error message.
func (r Result[T]) IsErr() bool { return !r.ok }

// Value returns the success value, or the zero value when the Result is an
// error.
func (r Result[T]) Value() T { return r.value }

// Error returns the error message, or "" for a successful Result.
func (r Result[T]) Error() string { return r.msg }

// Get returns the value together with an ok flag.
func (r Result[T]) Get() (T, bool) { return r.value, r.ok }

// String renders the Result for diagnostics.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%s)", r.msg)
}

// MapResult transforms the success value of r with f, passing errors through.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.IsErr() {
		return Err[U](r.msg)
	}
	return Ok(f(r.value))
}

// ThenResult chains r into f when r succeeded, passing errors through.
func ThenResult[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.IsErr() {
		return Err[U](r.msg)
	}
	return f(r.value)
}

// propagate re-types an error Result. It must only be called on errors.
func propagate[U, T any](r Result[T]) Result[U] { return Err[U](r.msg) }
