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

// propagation is the panic value used by Must, MustOr, Check and Raise. It
// never escapes Do.
type propagation struct {
	err Error
}

// Do runs fn as a propagation scope.
//
// Inside fn, Must, MustOr, Check and Raise end fn immediately; Do then
// returns a failure holding the converted error. When fn returns normally,
// Do returns a success holding its value.
//
//	res := uerrors.Do(func() string {
//	    data := uerrors.Must(os.ReadFile(path))
//	    if len(data) == 0 {
//	        uerrors.Raise("empty file")
//	    }
//	    text, err := decode(data)
//	    return uerrors.MustOr(text, err, "cannot read binary file")
//	})
//
// Panics that were not raised by these helpers pass through unchanged. The
// helpers must be called on the goroutine running fn.
func Do[T any](fn func() T) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			p, ok := r.(propagation)
			if !ok {
				panic(r)
			}
			res = Failure[T](p.err)
		}
	}()
	return Ok(fn())
}

// Must returns v when err is nil and otherwise ends the enclosing Do with
// FromError(err).
func Must[T any](v T, err error) T {
	if err != nil {
		panic(propagation{err: FromError(err)})
	}
	return v
}

// MustOr returns v when err is nil and otherwise ends the enclosing Do with
// From(override); the original error is discarded.
func MustOr[T any](v T, err error, override any) T {
	if err != nil {
		e := From(override)
		if e == nil {
			e = FromError(err)
		}
		panic(propagation{err: e})
	}
	return v
}

// Check ends the enclosing Do with FromError(err) when err is not nil.
func Check(err error) {
	if err != nil {
		panic(propagation{err: FromError(err)})
	}
}

// Raise ends the enclosing Do with From(v). It never returns.
func Raise(v any) {
	e := From(v)
	if e == nil {
		e = ErrNoError
	}
	panic(propagation{err: e})
}
