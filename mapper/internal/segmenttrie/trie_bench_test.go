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
	"math/rand"
	"strings"
	"testing"
)

func genSegment(rng *rand.Rand) string {
	n := 2 + rng.Intn(7)
	var b strings.Builder
	b.WriteByte(byte('a' + rng.Intn(26)))
	for i := 1; i < n; i++ {
		if rng.Intn(4) == 0 {
			b.WriteByte(byte('0' + rng.Intn(10)))
			continue
		}
		b.WriteByte(byte('a' + rng.Intn(26)))
	}
	return b.String()
}

// buildTrie inserts n import-path-like prefixes of the given depth and
// returns keys that extend each prefix by one package segment.
func buildTrie(b *testing.B, n, depth int, wildcard bool) (*Trie[int], []string) {
	rng := rand.New(rand.NewSource(1))
	tr := New[int]()
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		segs := make([]string, depth)
		for j := range segs {
			segs[j] = genSegment(rng)
		}
		key := strings.Join(segs, ".") + "." + genSegment(rng)
		if wildcard && depth > 2 {
			segs[1] = "*"
		}
		if err := tr.Insert(strings.Join(segs, "."), i); err != nil {
			b.Fatalf("insert failed: %v", err)
		}
		keys = append(keys, key)
	}
	return tr, keys
}

func BenchmarkTrieMatch_N64_Depth3(b *testing.B)            { benchMatch(b, 64, 3, false) }
func BenchmarkTrieMatch_N1024_Depth4(b *testing.B)          { benchMatch(b, 1024, 4, false) }
func BenchmarkTrieMatch_N1024_Depth4_Wildcard(b *testing.B) { benchMatch(b, 1024, 4, true) }

func benchMatch(b *testing.B, n, depth int, wildcard bool) {
	tr, keys := buildTrie(b, n, depth, wildcard)
	b.ReportAllocs()
	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		if v, ok := tr.Match(keys[i%len(keys)]); ok {
			sink += v
		}
	}
	_ = sink
}

func BenchmarkTrieMatchParallel_N1024_Depth4(b *testing.B) {
	tr, keys := buildTrie(b, 1024, 4, false)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = tr.Match(keys[i%len(keys)])
			i++
		}
	})
}
