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
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"dirpx.dev/uerrors"
	"dirpx.dev/uerrors/apis"
	"dirpx.dev/uerrors/mapper/internal/segmenttrie"
	"dirpx.dev/uerrors/origin"
	"google.golang.org/grpc/codes"
)

var (
	// ErrInvalidPrefix is returned by New for an origin prefix that cannot
	// be normalized into dotted segments.
	ErrInvalidPrefix = errors.New("mapper: invalid origin prefix")
	// ErrNilSentinel is returned by New when a sentinel rule has a nil target.
	ErrNilSentinel = errors.New("mapper: nil sentinel target")
	// ErrInvalidStatus is returned by New for a rule that would map a
	// failure to a non-error status: an HTTP status outside 400-599 or
	// codes.OK (or an unknown code) for gRPC.
	ErrInvalidStatus = errors.New("mapper: invalid status")
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Apply user-provided options to a fresh builder.
//  2. Layer the user rules over the library defaults (unless
//     WithoutDefaults was given): user sentinels go first, user prefixes
//     replace default ones with the same pattern, user kind defaults
//     replace library ones.
//  3. Normalize origin prefixes and build one segment trie per transport.
//  4. Freeze everything into fresh allocations.
//
// Errors returned from this function indicate invalid prefixes, nil
// sentinel targets or statuses that do not denote a failure.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	var (
		httpDef rules[int]
		grpcDef rules[codes.Code]
	)
	if !b.noDefaults {
		for _, s := range defaultSentinels {
			httpDef.sentinels = append(httpDef.sentinels, sentinelRule[int]{s.target, s.http})
			grpcDef.sentinels = append(grpcDef.sentinels, sentinelRule[codes.Code]{s.target, s.grpc})
		}
		for _, o := range defaultOrigins {
			httpDef.prefixes = append(httpDef.prefixes, prefixRule[int]{o.prefix, o.http})
			grpcDef.prefixes = append(grpcDef.prefixes, prefixRule[codes.Code]{o.prefix, o.grpc})
		}
		httpDef.kinds = defaultHTTP
		grpcDef.kinds = defaultGRPC
	}

	httpTable, err := freeze("HTTP", httpDef, b.http, validHTTP)
	if err != nil {
		return nil, err
	}
	grpcTable, err := freeze("gRPC", grpcDef, b.grpc, validGRPC)
	if err != nil {
		return nil, err
	}
	return &mapper{http: httpTable, grpc: grpcTable}, nil
}

var (
	defaultOnce   sync.Once
	defaultMapper apis.Mapper
)

// Default returns the mapper built from the library defaults alone. It is
// built once and shared.
func Default() apis.Mapper {
	defaultOnce.Do(func() {
		m, err := New()
		if err != nil {
			// library defaults are static and valid
			panic(err)
		}
		defaultMapper = m
	})
	return defaultMapper
}

func freeze[T any](transport string, def, user rules[T], valid func(T) bool) (*table[T], error) {
	if err := checkStatuses(transport, user, valid); err != nil {
		return nil, err
	}
	sentinels, err := freezeSentinels(user.sentinels, def.sentinels)
	if err != nil {
		return nil, err
	}
	trie, err := buildTrie(transport, def.prefixes, user.prefixes)
	if err != nil {
		return nil, err
	}
	return &table[T]{
		sentinels: sentinels,
		trie:      trie,
		kinds:     freezeKinds(def.kinds, user.kinds),
		fallback:  user.fallback,
	}, nil
}

// table holds the resolution tiers for a single transport. It is never
// mutated after New returns.
type table[T any] struct {
	sentinels []sentinelRule[T]
	trie      *segmenttrie.Trie[T]
	kinds     map[uerrors.Kind]T
	fallback  T
}

// Tier names reported by Explain.
const (
	sourceSentinel = "sentinel"
	sourceOrigin   = "origin"
	sourceKind     = "kind"
	sourceFallback = "fallback"
)

// resolution is the outcome of walking a table, with enough context for
// Explain.
type resolution[T any] struct {
	val    T
	source string
	// rule is the sentinel text, origin pattern or kind name that matched.
	rule string
}

// resolve walks the tiers in order: sentinel, origin prefix, kind, fallback.
func (t *table[T]) resolve(e uerrors.Error, o origin.Origin) resolution[T] {
	for _, s := range t.sentinels {
		if errors.Is(e, s.target) {
			return resolution[T]{val: s.val, source: sourceSentinel, rule: s.target.Error()}
		}
	}
	if o != origin.Empty {
		if v, ok, pat := t.trie.MatchWithPattern(string(o)); ok {
			return resolution[T]{val: v, source: sourceOrigin, rule: pat}
		}
	}
	if v, ok := t.kinds[e.Kind()]; ok {
		return resolution[T]{val: v, source: sourceKind, rule: e.Kind().String()}
	}
	return resolution[T]{val: t.fallback, source: sourceFallback}
}

// mapper is the immutable apis.Mapper implementation. HTTP and gRPC are
// resolved independently, each walking its own table.
type mapper struct {
	http *table[int]
	grpc *table[codes.Code]
}

// OriginOf returns the origin used for prefix matching: the package of the
// foreign error inside a wrapped unified error. Static and dynamic errors
// have no origin.
func OriginOf(err error) origin.Origin {
	return originOf(uerrors.From(err))
}

func originOf(e uerrors.Error) origin.Origin {
	if e == nil || e.Kind() != uerrors.KindWrapped {
		return origin.Empty
	}
	return origin.Of(e)
}

// HTTPStatus resolves an HTTP status for err. A nil error is 200.
func (m *mapper) HTTPStatus(err error) int {
	e := uerrors.From(err)
	if e == nil {
		return http.StatusOK
	}
	return m.http.resolve(e, originOf(e)).val
}

// GRPCStatus resolves a gRPC code for err. A nil error is codes.OK.
func (m *mapper) GRPCStatus(err error) codes.Code {
	e := uerrors.From(err)
	if e == nil {
		return codes.OK
	}
	return m.grpc.resolve(e, originOf(e)).val
}

// Status resolves both transports, computing the origin once.
func (m *mapper) Status(err error) apis.Status {
	e := uerrors.From(err)
	if e == nil {
		return apis.Status{HTTP: http.StatusOK, GRPC: codes.OK}
	}
	o := originOf(e)
	return apis.Status{
		HTTP: m.http.resolve(e, o).val,
		GRPC: m.grpc.resolve(e, o).val,
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for err.
//
// Example output:
//
//	error="open cfg.yaml: no such file or directory" kind="wrapped" origin="io.fs"
//	http: source=sentinel rule="file does not exist" -> 404
//	grpc: source=sentinel rule="file does not exist" -> NOT_FOUND(5)
//
// source is one of sentinel, origin, kind or fallback. This is intended for
// inspection and logging, not for stable machine parsing.
func (m *mapper) Explain(err error) string {
	e := uerrors.From(err)
	if e == nil {
		return "error=<nil>\n" +
			fmt.Sprintf("http: source=none -> %d\n", http.StatusOK) +
			fmt.Sprintf("grpc: source=none -> %s(%d)", grpcName(codes.OK), int(codes.OK))
	}
	o := originOf(e)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "error=%q kind=%q origin=%q\n", e.Description(), e.Kind(), o)

	hr := m.http.resolve(e, o)
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", hr.source, ruleSuffix(hr.rule), hr.val)

	gr := m.grpc.resolve(e, o)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s(%d)", gr.source, ruleSuffix(gr.rule), grpcName(gr.val), int(gr.val))

	return b.String()
}

func ruleSuffix(rule string) string {
	if rule == "" {
		return ""
	}
	return fmt.Sprintf(" rule=%q", rule)
}
