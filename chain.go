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

// MaxChainDepth bounds Chain so that a cyclic cause chain stays finite.
const MaxChainDepth = 32

// Chain returns the cause chain of e, nearest cause first.
//
// It starts from e.Cause() and keeps following one link at a time (a
// Cause() method when present, otherwise Unwrap). e itself is not included.
func Chain(e Error) []error {
	if e == nil {
		return nil
	}
	var out []error
	for c := e.Cause(); c != nil && len(out) < MaxChainDepth; c = causeOf(c) {
		out = append(out, c)
	}
	return out
}

// Descriptions returns the text of every element of Chain(e).
func Descriptions(e Error) []string {
	chain := Chain(e)
	if len(chain) == 0 {
		return nil
	}
	out := make([]string, len(chain))
	for i, c := range chain {
		out[i] = c.Error()
	}
	return out
}
