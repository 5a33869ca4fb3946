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

// Package mapper provides deterministic, immutable mappings from unified
// errors (dirpx.dev/uerrors) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A unified error carries no typed error code: it is a static message, a
// dynamic message, or a wrapped foreign error. What the transport edge can
// still inspect is:
//
//  1. the identity of well-known sentinels reachable through errors.Is
//     (context.Canceled, fs.ErrNotExist, ...);
//  2. the origin of a wrapped error, i.e. the package its concrete type was
//     declared in ("io.fs", "encoding.json", see package origin);
//  3. the kind of the unified error.
//
// # Resolution model
//
// Each transport resolves independently, in this order:
//
//  1. sentinel rules, user rules first, in registration order;
//  2. longest-prefix-match (LPM) on the origin;
//  3. per-kind default;
//  4. global fallback (500 / codes.Internal).
//
// A nil error resolves to 200 / codes.OK.
//
// Prefix rules are segment-aware: origins are treated as "."-separated
// segments, and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix("net", http.StatusServiceUnavailable)
//	WithHTTPPrefix("net/url", http.StatusBadRequest)
//
// The more specific prefix wins, and "net" never matches "network".
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithSentinel(sql.ErrNoRows, http.StatusNotFound, codes.NotFound),
//	    mapper.WithHTTPPrefix("github.com/jackc/pgx", http.StatusServiceUnavailable),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status(err)
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how an error was
// resolved, including which tier matched and the rule that did.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper is safe to share across goroutines.
package mapper
