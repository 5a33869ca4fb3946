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

// Package uerrors provides a unified error value for code that composes
// failures coming from unrelated subsystems (I/O, parsing, encoding, user
// code) without losing their description or cause.
//
// # The unified error
//
// Error is a closed set of three variants:
//
//   - Static:   a message known at compile time, declarable as a constant;
//   - *Dynamic: a message computed at runtime (FromString, Errorf);
//   - *Wrapped: a foreign error carried through unchanged (FromError, Wrap).
//
// Every variant exposes Description (the one-line text, also returned by
// Error and printed by %v), Cause (one upstream link: always nil for Static
// and Dynamic, delegated to the inner error for Wrapped) and an optional
// Detail.
//
// # Conversion
//
// From accepts any value and applies the conversion rules in a fixed order:
// unified errors pass through, text becomes Static or Dynamic, other errors
// become Wrapped. The more specific text rules are always tried before the
// generic error rule.
//
// Fail, Or, Raise and From take any, so an untyped string literal arrives as
// a plain string and becomes Dynamic. Convert it, or declare a typed
// constant, to get the Static variant:
//
//	const ErrEmpty uerrors.Static = "empty file"
//
//	uerrors.Fail[int]("empty file")                 // *Dynamic
//	uerrors.Fail[int](ErrEmpty)                     // Static
//	uerrors.Try(n, err).Or(uerrors.Static("bad n")) // Static
//
// # Propagation
//
// Go has no macros, so the try / fail operators come in two forms.
//
// Result-based, with an explicit early return at the call site:
//
//	func readFile(path string) (string, uerrors.Error) {
//	    data, err := uerrors.Try(os.ReadFile(path)).Get()
//	    if err != nil {
//	        return "", err
//	    }
//	    return uerrors.Try(decodeUTF8(data)).Or("cannot read binary file").Get()
//	}
//
// Scope-based, where Must and Raise end the function passed to Do:
//
//	res := uerrors.Do(func() string {
//	    data := uerrors.Must(os.ReadFile(path))
//	    if len(data) == 0 {
//	        uerrors.Raise("empty file")
//	    }
//	    return string(data)
//	})
//
// Both forms only ever forward or terminate; a failure is never silently
// recovered.
package uerrors
