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

// ErrorView is a minimal, serializable representation of a unified error.
//
// This is *not* the error value itself: it is the flat shape that is safe to
// log or put on the wire. Both the HTTP and the gRPC adapters build it, so
// the same fields show up no matter which transport reported the failure.
type ErrorView struct {
	// Kind is the variant of the unified error: "static", "dynamic" or
	// "wrapped".
	Kind string `json:"kind"`

	// Description is the one-line, human-readable text of the error.
	Description string `json:"description"`

	// Detail is the optional extended diagnostic text.
	Detail string `json:"detail,omitempty"`

	// Origin is the canonical dotted identifier of the package the wrapped
	// foreign error was defined in (e.g. "io.fs"). Empty for static and
	// dynamic errors.
	Origin string `json:"origin,omitempty"`

	// Causes lists the descriptions of the cause chain, nearest first.
	Causes []string `json:"causes,omitempty"`

	// HTTPStatus and GRPCCode are the resolved transport statuses.
	HTTPStatus int `json:"http_status,omitempty"`
	GRPCCode   int `json:"grpc_code,omitempty"`

	// OccurrenceID identifies this particular report of the error.
	OccurrenceID string `json:"occurrence_id,omitempty"`

	// CorrelationID is the caller-provided request correlation token.
	CorrelationID string `json:"correlation_id,omitempty"`
}
