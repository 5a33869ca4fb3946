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
	"reflect"
	"testing"
)

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("net", 503))
	must(t, tr.Insert("net.url", 400))
	must(t, tr.Insert("encoding", 400))

	tests := []struct {
		key  string
		want int
		pat  string
	}{
		{"net", 503, "net"},
		{"net.http", 503, "net"},
		{"net.url", 400, "net.url"},
		{"encoding.json", 400, "encoding"},
	}
	for _, tt := range tests {
		v, ok, p := tr.MatchWithPattern(tt.key)
		if !ok || v != tt.want || p != tt.pat {
			t.Fatalf("match %q => ok=%v v=%v p=%q; want %v %q", tt.key, ok, v, p, tt.want, tt.pat)
		}
		if v2, ok2 := tr.Match(tt.key); !ok2 || v2 != v {
			t.Fatalf("Match and MatchWithPattern disagree on %q", tt.key)
		}
	}
}

func TestMatch_SegmentBoundary(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("net", 503))

	if _, ok := tr.Match("netip"); ok {
		t.Fatal("prefix must match whole segments only")
	}
	if _, ok := tr.Match(""); ok {
		t.Fatal("empty key must not match")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("github.com.*.pgconn", 503))
	must(t, tr.Insert("github.com.jackc.pgconn", 500))

	if v, ok, p := tr.MatchWithPattern("github.com.jackc.pgconn"); !ok || v != 500 || p != "github.com.jackc.pgconn" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("github.com.other.pgconn.internal"); !ok || v != 503 || p != "github.com.*.pgconn" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok := tr.Match("github.com.pgconn"); ok {
		t.Fatal("wildcard should not match zero segments")
	}
}

func TestLPM_PrefersDeeperWildcard(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestInsert_Replaces(t *testing.T) {
	tr := New[string]()
	must(t, tr.Insert("io.fs", "first"))
	must(t, tr.Insert("io.fs", "second"))
	if tr.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tr.Len())
	}
	if v, _ := tr.Match("io.fs"); v != "second" {
		t.Fatalf("got %q", v)
	}
}

func TestPatterns(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"strconv", "encoding", "net.url", "net"} {
		must(t, tr.Insert(p, 0))
	}
	want := []string{"encoding", "net", "net.url", "strconv"}
	if got := tr.Patterns(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Patterns = %v, want %v", got, want)
	}
	var nilTrie *Trie[int]
	if nilTrie.Len() != 0 || nilTrie.Patterns() != nil {
		t.Fatal("nil trie must be empty")
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "UPPER.case", "a..b", "*", "*.*", "io.fs.", "io/fs"} {
		if err := tr.Insert(p, 1); err == nil {
			t.Fatalf("Insert(%q) must fail", p)
		}
	}
	if tr.Len() != 0 {
		t.Fatalf("failed inserts must not be counted, Len = %d", tr.Len())
	}
	must(t, tr.Insert("a", 1))
	for _, k := range []string{"UPPER.case", "9a"} {
		if _, ok := tr.Match(k); ok {
			t.Fatalf("match should be false for malformed key %q", k)
		}
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
