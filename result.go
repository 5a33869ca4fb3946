/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package uerrors

import "fmt"

// ErrNoError stands in for a missing error when a failure is requested
// with a nil value. A failure result always carries an error.
const ErrNoError Static = "uerrors: failure without an error value"

// Result holds either a success value of type T or a unified Error, never
// both. The zero Result is a success holding the zero T.
type Result[T any] struct {
	value T
	err   Error
}

// Ok returns a success result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure returns a failure result holding e. A nil e is replaced by
// ErrNoError.
func Failure[T any](e Error) Result[T] {
	if e == nil {
		e = ErrNoError
	}
	return Result[T]{err: e}
}

// Try is the try-propagate operator. It takes the two results of a Go
// fallible call directly:
//
//	data, err := uerrors.Try(os.ReadFile(path)).Get()
//	if err != nil {
//	    return uerrors.Failure[Config](err)
//	}
//
// On success v is carried through unchanged. On failure v is dropped and
// err is converted with FromError.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: FromError(err)}
	}
	return Result[T]{value: v}
}

// Fail is the fail-immediately operator: it always returns a failure whose
// error is From(v).
//
//	if len(data) == 0 {
//	    return uerrors.Fail[Config]("empty config").Get()
//	}
func Fail[T any](v any) Result[T] {
	return Failure[T](From(v))
}

// Failf is Fail with a formatted Dynamic message.
func Failf[T any](format string, args ...any) Result[T] {
	return Failure[T](Errorf(format, args...))
}

// Or replaces the error of a failure with From(override), discarding the
// original error and its cause chain. It is a no-op on success.
//
//	text, err := uerrors.Try(decode(data)).Or("cannot read binary file").Get()
//
// A nil override keeps the original error: a failure is never suppressed.
func (r Result[T]) Or(override any) Result[T] {
	if r.err == nil {
		return r
	}
	if e := From(override); e != nil {
		return Result[T]{err: e}
	}
	return r
}

// Orf is Or with a formatted Dynamic message.
func (r Result[T]) Orf(format string, args ...any) Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{err: Errorf(format, args...)}
}

// IsOk reports whether r is a success.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Value returns the success value, or the zero T on failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the error of a failure, or nil on success.
func (r Result[T]) Err() Error { return r.err }

// Get returns the value and the error, ready for an early return.
func (r Result[T]) Get() (T, Error) { return r.value, r.err }

// Unwrap returns the success value and panics with the error on failure.
// It is meant for tests and program initialization.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// String renders "ok(<value>)" or "failure(<description>)".
func (r Result[T]) String() string {
	if r.err != nil {
		return "failure(" + r.err.Description() + ")"
	}
	return fmt.Sprintf("ok(%v)", r.value)
}

// Then runs fn on the success value of r and converts its result. A failure
// of r is forwarded without calling fn.
func Then[T, U any](r Result[T], fn func(T) (U, error)) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Try(fn(r.value))
}
