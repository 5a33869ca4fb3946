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

package mapper

import (
	"context"
	"io/fs"
	"net/http"

	"dirpx.dev/uerrors"
	"google.golang.org/grpc/codes"
)

// defaultSentinels are the library's built-in mappings for well-known
// standard library sentinel errors. They are checked after user sentinels.
var defaultSentinels = []struct {
	target error
	http   int
	grpc   codes.Code
}{
	// Time / cancellation.
	{context.Canceled, http.StatusRequestTimeout, codes.Canceled},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, codes.DeadlineExceeded},

	// File system.
	{fs.ErrNotExist, http.StatusNotFound, codes.NotFound},
	{fs.ErrExist, http.StatusConflict, codes.AlreadyExists},
	{fs.ErrPermission, http.StatusForbidden, codes.PermissionDenied},
}

// defaultOrigins are the library's built-in origin prefix rules. Parsing
// packages report bad input; the network stack reports unreachable peers,
// except for its address parsers.
var defaultOrigins = []struct {
	prefix string
	http   int
	grpc   codes.Code
}{
	{"encoding", http.StatusBadRequest, codes.InvalidArgument},
	{"strconv", http.StatusBadRequest, codes.InvalidArgument},
	{"net", http.StatusServiceUnavailable, codes.Unavailable},
	{"net.url", http.StatusBadRequest, codes.InvalidArgument},
	{"net.netip", http.StatusBadRequest, codes.InvalidArgument},
}

// defaultHTTP and defaultGRPC are the per-kind defaults. Static and dynamic
// errors are produced by this program, so they are internal failures; a
// wrapped error of unknown provenance maps to Unknown on gRPC.
var defaultHTTP = map[uerrors.Kind]int{
	uerrors.KindStatic:  http.StatusInternalServerError,
	uerrors.KindDynamic: http.StatusInternalServerError,
	uerrors.KindWrapped: http.StatusInternalServerError,
}

var defaultGRPC = map[uerrors.Kind]codes.Code{
	uerrors.KindStatic:  codes.Internal,
	uerrors.KindDynamic: codes.Internal,
	uerrors.KindWrapped: codes.Unknown,
}
