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

package segmenttrie

import (
	"errors"
	"sort"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated origin keys.
// Each node represents one segment; the wildcard "*" matches exactly one
// segment. Lookups return the longest matching prefix on segment boundaries,
// so "encoding.json" wins over "encoding" and "net" never matches "netip".
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for Explain output.
	pattern string
	// size counts values in this subtree; only maintained on the root.
	size int
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains invalid characters, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix such as "io.fs",
// "encoding" or "github.com.*.pgconn". Inserting the same prefix twice
// replaces the value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix)
	if !ok {
		return ErrInvalidPrefix
	}
	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	if !cur.hasVal {
		t.size++
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Len returns the number of stored prefixes.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Patterns returns all stored prefixes in lexical order.
func (t *Trie[T]) Patterns() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, t.size)
	var collect func(n *Trie[T])
	collect = func(n *Trie[T]) {
		if n.hasVal {
			out = append(out, n.pattern)
		}
		for _, c := range n.children {
			collect(c)
		}
	}
	collect(t)
	sort.Strings(out)
	return out
}

// Match finds the value stored under the deepest prefix of key.
// It returns the zero value and false if key is malformed before any
// prefix matched, or if nothing matches.
func (t *Trie[T]) Match(key string) (T, bool) {
	n := t.lookup(key)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.val, true
}

// MatchWithPattern is like Match but also returns the matched prefix as it
// was inserted.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	n := t.lookup(key)
	if n == nil {
		var zero T
		return zero, false, ""
	}
	return n.val, true, n.pattern
}

// lookup walks exact and wildcard branches and returns the deepest node that
// carries a value. Segments are sliced out of key without allocation.
func (t *Trie[T]) lookup(key string) *Trie[T] {
	if t == nil {
		return nil
	}
	var (
		best      *Trie[T]
		bestDepth = -1
	)
	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			best, bestDepth = n, depth
		}
		if off >= len(key) {
			return
		}
		end, ok := scanSegment(key, off)
		if !ok {
			return
		}
		next := end
		if next < len(key) {
			next++ // skip '.'
		}
		if c, ok := n.children[key[off:end]]; ok {
			walk(c, next, depth+1)
		}
		if c, ok := n.children["*"]; ok {
			walk(c, next, depth+1)
		}
	}
	walk(t, 0, 0)
	return best
}

// scanSegment returns the end offset of the segment starting at off, or
// false if the segment is not [a-z][a-z0-9_]*.
func scanSegment(s string, off int) (int, bool) {
	c := s[off]
	if c < 'a' || c > 'z' {
		return off, false
	}
	i := off + 1
	for ; i < len(s) && s[i] != '.'; i++ {
		c = s[i]
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
			return i, false
		}
	}
	return i, true
}

// splitAndValidate splits a dot-separated prefix into segments, accepting
// "*" as a whole segment.
func splitAndValidate(s string) ([]string, bool) {
	if s == "" {
		return nil, false
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if seg == "*" {
			continue
		}
		if seg == "" {
			return nil, false
		}
		if end, ok := scanSegment(seg, 0); !ok || end != len(seg) {
			return nil, false
		}
	}
	return segs, true
}
