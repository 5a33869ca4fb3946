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
	"fmt"
	"strings"
)

// FromStatic converts a compile-time message into a Static error.
// No allocation takes place for constant input.
func FromStatic(s Static) Error { return s }

// FromString converts a runtime-built message into a Dynamic error.
//
// The string is moved into the error: Go strings are immutable, so the
// error shares the caller's bytes instead of copying them.
func FromString(msg string) Error { return &Dynamic{msg: msg} }

// Errorf formats a message and returns it as a Dynamic error.
//
// Unlike fmt.Errorf it never wraps and does not understand %w: the result
// has no cause. Use Wrap to carry a foreign error.
func Errorf(format string, args ...any) Error {
	return &Dynamic{msg: fmt.Sprintf(format, args...)}
}

// FromError converts a foreign error into a Wrapped error.
//
// A nil error yields nil, and a value that already is a unified Error is
// returned unchanged, so FromError is idempotent.
func FromError(err error) Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		return e
	}
	return &Wrapped{err: err}
}

// From normalizes any value into a unified Error.
//
// The conversion rules are tried in a fixed priority order, so a specific
// textual rule is never shadowed by the generic error rule (Static, for
// instance, is both a text type and an error):
//
//  1. nil                                       -> nil;
//  2. a unified Error (Static, *Dynamic, ...)   -> returned unchanged;
//  3. string, *strings.Builder                  -> Dynamic, no copy;
//  4. []byte                                    -> Dynamic (copied, the slice is mutable);
//  5. any other error                           -> Wrapped;
//  6. anything else                             -> Dynamic with fmt.Sprint(v).
//
// The last rule makes sure no failure value is ever dropped.
func From(v any) Error {
	switch t := v.(type) {
	case nil:
		return nil
	case Static:
		return t
	case Error:
		return t
	case string:
		return FromString(t)
	case *strings.Builder:
		if t == nil {
			return nil
		}
		return FromString(t.String())
	case []byte:
		return FromString(string(t))
	case error:
		return FromError(t)
	default:
		return FromString(fmt.Sprint(v))
	}
}
