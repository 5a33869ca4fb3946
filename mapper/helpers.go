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
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/uerrors"
	"dirpx.dev/uerrors/mapper/internal/segmenttrie"
	"dirpx.dev/uerrors/origin"
	"google.golang.org/grpc/codes"
)

// freezeKinds makes an immutable copy of a per-kind map, layering user
// values over the library defaults.
func freezeKinds[T any](defaults, user map[uerrors.Kind]T) map[uerrors.Kind]T {
	dst := make(map[uerrors.Kind]T, len(defaults)+len(user))
	for k, v := range defaults {
		dst[k] = v
	}
	for k, v := range user {
		dst[k] = v
	}
	return dst
}

// freezeSentinels copies the user sentinels followed by the defaults, so
// that user rules are consulted first.
func freezeSentinels[T any](user, defaults []sentinelRule[T]) ([]sentinelRule[T], error) {
	dst := make([]sentinelRule[T], 0, len(user)+len(defaults))
	for _, r := range user {
		if r.target == nil {
			return nil, ErrNilSentinel
		}
		dst = append(dst, r)
	}
	return append(dst, defaults...), nil
}

// buildTrie inserts the default prefixes first and the user prefixes after
// them, so a user rule for the same prefix replaces the library one.
func buildTrie[T any](transport string, defaults, user []prefixRule[T]) (*segmenttrie.Trie[T], error) {
	t := segmenttrie.New[T]()
	for _, list := range [][]prefixRule[T]{defaults, user} {
		for _, r := range list {
			p := origin.Normalize(r.prefix)
			if err := t.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("%w %q for %s", ErrInvalidPrefix, r.prefix, transport)
			}
		}
	}
	return t, nil
}

// validHTTP reports whether s is an HTTP error status.
func validHTTP(s int) bool {
	return s >= http.StatusBadRequest && s <= 599
}

// validGRPC reports whether c is a known non-OK gRPC code.
func validGRPC(c codes.Code) bool {
	return c != codes.OK && c <= codes.Unauthenticated
}

// checkStatuses rejects any user value that would turn a failure into a
// success on the wire.
func checkStatuses[T any](transport string, r rules[T], valid func(T) bool) error {
	bad := func(v T, where string) error {
		return fmt.Errorf("%w %v in %s %s rule", ErrInvalidStatus, v, transport, where)
	}
	for _, s := range r.sentinels {
		if !valid(s.val) {
			return bad(s.val, "sentinel")
		}
	}
	for _, p := range r.prefixes {
		if !valid(p.val) {
			return bad(p.val, "prefix")
		}
	}
	for _, v := range r.kinds {
		if !valid(v) {
			return bad(v, "kind")
		}
	}
	if !valid(r.fallback) {
		return bad(r.fallback, "fallback")
	}
	return nil
}

// grpcName renders a gRPC code the way the protocol spells it:
// DeadlineExceeded becomes DEADLINE_EXCEEDED.
func grpcName(c codes.Code) string {
	s := c.String()
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if i > 0 && ch >= 'A' && ch <= 'Z' && s[i-1] >= 'a' && s[i-1] <= 'z' {
			b.WriteByte('_')
		}
		b.WriteByte(ch)
	}
	return strings.ToUpper(b.String())
}
