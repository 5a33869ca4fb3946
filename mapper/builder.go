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
	"net/http"

	"dirpx.dev/uerrors"
	"google.golang.org/grpc/codes"
)

// sentinelRule maps errors matching target (errors.Is) to a status.
type sentinelRule[T any] struct {
	target error
	val    T
}

// prefixRule is a raw, not yet normalized origin prefix rule.
type prefixRule[T any] struct {
	// prefix is the dot- or slash-separated origin prefix (may contain "*").
	// It is normalized when the trie is built.
	prefix string
	val    T
}

// rules collects the user-provided adjustments for one transport.
type rules[T any] struct {
	sentinels []sentinelRule[T]
	prefixes  []prefixRule[T]
	kinds     map[uerrors.Kind]T
	fallback  T
}

type builder struct {
	http rules[int]
	grpc rules[codes.Code]

	// noDefaults drops the library sentinel, origin and kind defaults.
	noDefaults bool
}

func newBuilder() *builder {
	return &builder{
		http: rules[int]{
			kinds:    make(map[uerrors.Kind]int, 3),
			fallback: http.StatusInternalServerError,
		},
		grpc: rules[codes.Code]{
			kinds:    make(map[uerrors.Kind]codes.Code, 3),
			fallback: codes.Internal,
		},
	}
}
