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

import (
	"errors"
	"fmt"
	"io"

	"dirpx.dev/uerrors/apis"
)

// Kind identifies which variant of the unified error is active.
type Kind uint8

const (
	// KindStatic is a message known at compile time (see Static).
	KindStatic Kind = iota + 1
	// KindDynamic is a message computed at runtime (see Dynamic).
	KindDynamic
	// KindWrapped is a foreign error carried unchanged (see Wrapped).
	KindWrapped
)

var kindNames = map[Kind]string{
	KindStatic:  "static",
	KindDynamic: "dynamic",
	KindWrapped: "wrapped",
}

// String returns the lowercase variant name, or "unknown".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Error is the unified error value.
//
// It is a closed sum type with exactly three variants:
//   - Static:   an immutable message known at compile time;
//   - *Dynamic: an owned message built at runtime;
//   - *Wrapped: an owned foreign error carried through unchanged.
//
// The set is closed by an unexported method, so no other type can implement
// Error. Values are immutable after construction and safe to hand to (and
// inspect from) other goroutines.
type Error interface {
	error

	// Kind reports the active variant.
	Kind() Kind

	// Description returns the one-line, human-readable text of the error.
	// It never fails and has no side effects.
	Description() string

	// Cause returns the immediate upstream error, one link only. Static and
	// Dynamic errors have no cause; Wrapped delegates to the inner error.
	Cause() error

	// Detail returns optional extended diagnostic text.
	Detail() (string, bool)

	unified()
}

// Compile-time guarantees that the three variants implement Error.
var (
	_ Error = Static("")
	_ Error = (*Dynamic)(nil)
	_ Error = (*Wrapped)(nil)
)

// Static is a simple error whose message is known at compile time.
//
// Because it is a string type, it can be declared as a constant:
//
//	const ErrEmptyInput uerrors.Static = "empty input"
//
// Two Static values are equal (==, errors.Is) when their text is equal.
type Static string

func (s Static) Error() string { return string(s) }

func (s Static) Kind() Kind { return KindStatic }

func (s Static) Description() string { return string(s) }

func (Static) Cause() error { return nil }

func (Static) Detail() (string, bool) { return "", false }

func (s Static) Format(f fmt.State, r rune) { format(f, r, s) }

func (Static) unified() {}

// Dynamic is a simple error whose message was computed at runtime.
//
// The message is moved into the value on construction; its bytes are never
// copied. Build one with FromString or Errorf.
type Dynamic struct {
	msg string
}

func (d *Dynamic) Error() string { return d.Description() }

func (d *Dynamic) Kind() Kind { return KindDynamic }

// Description returns the stored message.
func (d *Dynamic) Description() string {
	if d == nil {
		return "<nil>"
	}
	return d.msg
}

func (*Dynamic) Cause() error { return nil }

func (*Dynamic) Detail() (string, bool) { return "", false }

// Is reports whether target is a dynamic unified error with the same
// description. Dynamic errors have no identity beyond their text.
func (d *Dynamic) Is(target error) bool {
	t, ok := target.(*Dynamic)
	return ok && d != nil && t != nil && t.msg == d.msg
}

func (d *Dynamic) Format(f fmt.State, r rune) { format(f, r, d) }

func (*Dynamic) unified() {}

// Wrapped carries a foreign error through unchanged.
//
// The inner error is owned by the Wrapped value: the package never hands
// out a second Wrapped around the same inner value, and callers can only
// read it (Inner, Unwrap).
type Wrapped struct {
	err error
	// detail is the fallback detail attached with WithDetail.
	detail string
}

func (w *Wrapped) Error() string { return w.Description() }

func (w *Wrapped) Kind() Kind { return KindWrapped }

// Description delegates to the inner error's own text.
func (w *Wrapped) Description() string {
	if w == nil || w.err == nil {
		return "<nil>"
	}
	return w.err.Error()
}

// Cause delegates to the inner error: its Cause() method when it has one,
// otherwise the standard library unwrap. The inner error's own value is
// returned, never a copy.
func (w *Wrapped) Cause() error {
	if w == nil || w.err == nil {
		return nil
	}
	return causeOf(w.err)
}

// Detail returns the inner error's detail when it supplies one, otherwise
// the detail attached with WithDetail.
func (w *Wrapped) Detail() (string, bool) {
	if w == nil {
		return "", false
	}
	if d, ok := w.err.(apis.DetailedError); ok {
		if s := d.Detail(); s != "" {
			return s, true
		}
	}
	if w.detail != "" {
		return w.detail, true
	}
	return "", false
}

// Inner returns the wrapped foreign error.
func (w *Wrapped) Inner() error {
	if w == nil {
		return nil
	}
	return w.err
}

// Unwrap returns the wrapped foreign error so that errors.Is / errors.As
// see through the unified value.
func (w *Wrapped) Unwrap() error { return w.Inner() }

func (w *Wrapped) Format(f fmt.State, r rune) { format(f, r, w) }

func (*Wrapped) unified() {}

// Equal reports whether a and b are the same variant with the same
// description. Two nil errors are equal.
func Equal(a, b Error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a.Description() == b.Description()
}

// causeOf returns the single next link of err's chain.
//
// For errors joining several causes (Unwrap() []error) the first non-nil
// one is used: the unified contract exposes one link only.
func causeOf(err error) error {
	switch e := err.(type) {
	case apis.CausedError:
		return e.Cause()
	case interface{ Unwrap() []error }:
		for _, c := range e.Unwrap() {
			if c != nil {
				return c
			}
		}
		return nil
	default:
		return errors.Unwrap(err)
	}
}

// format renders e for the fmt package.
//
//	%s, %v  the description
//	%q      the quoted description
//	%+v     the description followed by the cause chain
func format(f fmt.State, verb rune, e Error) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			_, _ = io.WriteString(f, e.Description())
			for _, c := range Chain(e) {
				_, _ = io.WriteString(f, ": ")
				_, _ = io.WriteString(f, c.Error())
			}
			return
		}
		_, _ = io.WriteString(f, e.Description())
	case 's':
		_, _ = io.WriteString(f, e.Description())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Description())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(uerrors.%s=%s)", verb, e.Kind(), e.Description())
	}
}
