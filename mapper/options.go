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
	"dirpx.dev/uerrors"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithSentinel maps every error for which errors.Is(err, target) holds to
// the given statuses. User sentinels are tried in registration order, before
// the library ones.
func WithSentinel(target error, http int, grpc codes.Code) Option {
	return func(b *builder) {
		WithHTTPSentinel(target, http)(b)
		WithGRPCSentinel(target, grpc)(b)
	}
}

// WithHTTPSentinel is the HTTP-only variant of WithSentinel.
func WithHTTPSentinel(target error, http int) Option {
	return func(b *builder) {
		b.http.sentinels = append(b.http.sentinels, sentinelRule[int]{target, http})
	}
}

// WithGRPCSentinel is the gRPC-only variant of WithSentinel.
func WithGRPCSentinel(target error, grpc codes.Code) Option {
	return func(b *builder) {
		b.grpc.sentinels = append(b.grpc.sentinels, sentinelRule[codes.Code]{target, grpc})
	}
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule on the origin of
// wrapped errors. The prefix may be written as an import path ("io/fs") or
// in dotted form ("io.fs"). A more specific prefix wins. Use "*" to match a
// single segment.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) {
		b.http.prefixes = append(b.http.prefixes, prefixRule[int]{prefix, http})
	}
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule on the origin of
// wrapped errors.
func WithGRPCPrefix(prefix string, grpc codes.Code) Option {
	return func(b *builder) {
		b.grpc.prefixes = append(b.grpc.prefixes, prefixRule[codes.Code]{prefix, grpc})
	}
}

// WithHTTPDefault sets the HTTP status for errors of the given kind that no
// sentinel or origin rule matched.
func WithHTTPDefault(k uerrors.Kind, http int) Option {
	return func(b *builder) { b.http.kinds[k] = http }
}

// WithGRPCDefault sets the gRPC code for errors of the given kind that no
// sentinel or origin rule matched.
func WithGRPCDefault(k uerrors.Kind, grpc codes.Code) Option {
	return func(b *builder) { b.grpc.kinds[k] = grpc }
}

// WithHTTPFallback replaces the HTTP status used when no tier matched.
func WithHTTPFallback(http int) Option {
	return func(b *builder) { b.http.fallback = http }
}

// WithGRPCFallback replaces the gRPC code used when no tier matched.
func WithGRPCFallback(grpc codes.Code) Option {
	return func(b *builder) { b.grpc.fallback = grpc }
}

// WithoutDefaults drops the library sentinel, origin and kind defaults.
// Only the rules registered through options remain, plus the fallback.
func WithoutDefaults() Option {
	return func(b *builder) { b.noDefaults = true }
}
