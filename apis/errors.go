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

package apis

// CausedError represents an error that exposes its underlying cause.
//
// This is the optional "cause" capability of a foreign error. When a wrapped
// error implements it, the unified error delegates Cause() to it verbatim;
// otherwise the standard library unwrapping (errors.Unwrap) is used.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}

// DetailedError represents an error that exposes extended diagnostic text in
// addition to its one-line description.
//
// The detail is optional: callers must not rely on it being present, and an
// empty string is treated the same as "no detail".
type DetailedError interface {
	error

	// Detail returns extended diagnostic text. May return "".
	Detail() string
}
