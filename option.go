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

// Option is a functional option applied by Wrap.
// It always takes a *Wrapped and returns a (possibly new) *Wrapped.
type Option func(*Wrapped) *Wrapped

// WithDetail attaches fallback detail text. It is reported by Detail only
// when the foreign error does not supply its own.
func WithDetail(detail string) Option {
	return func(w *Wrapped) *Wrapped {
		cp := *w
		cp.detail = detail
		return &cp
	}
}

// WithDetailf is the formatted variant of WithDetail.
func WithDetailf(format string, args ...any) Option {
	return WithDetail(fmt.Sprintf(format, args...))
}

// Wrap converts err into a Wrapped error and applies opts in order.
//
// A nil err yields nil. Static and Dynamic errors are returned unchanged:
// options only apply to wrapped foreign errors. An existing *Wrapped is
// never modified; options produce a new value.
//
// Usage:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return uerrors.Wrap(err, uerrors.WithDetailf("config path %q", path))
//	}
func Wrap(err error, opts ...Option) Error {
	e := FromError(err)
	w, ok := e.(*Wrapped)
	if !ok {
		return e
	}
	for _, opt := range opts {
		w = opt(w)
	}
	return w
}
