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

// Meta carries per-occurrence context that a transport layer adds on top of
// the error itself. All fields are optional.
type Meta struct {
	// OccurrenceID identifies one report of an error. Adapters generate a
	// fresh one when it is left empty.
	OccurrenceID string

	// CorrelationID is a client/server correlation token (request ID,
	// idempotency key).
	CorrelationID string
}
