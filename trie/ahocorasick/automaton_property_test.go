package ahocorasick

import (
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"Algorithms/trie"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

const (
	testRuns    = 300
	maxPatterns = 12
	maxTextLen  = 200
)

func randomString(r *rand.Rand, alphabet string, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[r.Intn(len(alphabet))])
	}
	return sb.String()
}

func naiveScan(patterns []string, text string) []Match {
	res := make([]Match, 0)
	for end := 0; end < len(text); end++ {
		for idx, p := range patterns {
			start := end - len(p) + 1
			if start >= 0 && text[start:end+1] == p {
				res = append(res, Match{Pattern: idx, Start: start, End: end})
			}
		}
	}
	slices.SortStableFunc(res, func(a, b Match) bool {
		if a.End != b.End {
			return a.End < b.End
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Pattern < b.Pattern
	})
	return res
}

func TestAutomaton_MatchesNaiveScan(t *testing.T) {
	t.Parallel()
	bar := progressbar.Default(testRuns)
	for run := 0; run < testRuns; run++ {
		seed := time.Now().UnixNano()
		r := rand.New(rand.NewSource(seed))

		alphabet := "abc"[:r.Intn(3)+1]
		patterns := make([]string, r.Intn(maxPatterns))
		for i := range patterns {
			patterns[i] = randomString(r, alphabet, r.Intn(5)+1)
		}
		text := randomString(r, alphabet+"x", r.Intn(maxTextLen))

		a, err := NewFromPatterns(patterns)
		require.NoError(t, err)
		if run%2 == 1 {
			a.Precompute()
		}

		want := naiveScan(patterns, text)
		require.Equal(t, want, a.Scan(text), "patterns %q text %q (seed: %d)", patterns, text, seed)

		counts := a.Count(text)
		for idx := range patterns {
			n := 0
			for _, m := range want {
				if m.Pattern == idx {
					n++
				}
			}
			require.Equal(t, n, counts[idx], "count of %q (seed: %d)", patterns[idx], seed)
		}
		_ = bar.Add(1)
	}
}

// FailLink must point at the longest proper suffix that is also a trie path.
func TestAutomaton_FailLinkIsLongestSuffix(t *testing.T) {
	t.Parallel()
	bar := progressbar.Default(testRuns)
	for run := 0; run < testRuns; run++ {
		seed := time.Now().UnixNano()
		r := rand.New(rand.NewSource(seed))

		patterns := make([]string, r.Intn(maxPatterns)+1)
		for i := range patterns {
			patterns[i] = randomString(r, "ab", r.Intn(7)+1)
		}
		a, err := NewFromPatterns(patterns)
		require.NoError(t, err)

		a.Walk(func(id trie.NodeID) bool {
			label, err := a.Label(id)
			require.NoError(t, err)
			want := ""
			for k := 1; k < len(label); k++ {
				if _, ok := a.Find(label[k:]); ok {
					want = label[k:]
					break
				}
			}
			got, err := a.Label(mustFailLink(t, a, id))
			require.NoError(t, err)
			require.Equal(t, want, got, "FailLink(%q) patterns %q (seed: %d)", label, patterns, seed)
			require.Less(t, len(got), len(label)+boolToInt(id == trie.Root))
			return true
		})
		_ = bar.Add(1)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestAutomaton_ConcurrentReadersAfterPrecompute(t *testing.T) {
	t.Parallel()
	a, err := NewFromPatterns([]string{"he", "she", "his", "hers", "ushers"})
	require.NoError(t, err)
	a.Precompute()
	want := a.Count("ushers and his hers she he")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				got := a.Count("ushers and his hers she he")
				if !slices.Equal(want, got) {
					t.Errorf("concurrent count mismatch: %v != %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkAutomaton_Scan(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	patterns := make([]string, 256)
	for i := range patterns {
		patterns[i] = randomString(r, "acgt", 8)
	}
	text := randomString(r, "acgt", 1<<16)
	a, err := NewFromPatterns(patterns)
	require.NoError(b, err)
	a.Precompute()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Count(text)
	}
}

func BenchmarkAutomaton_Build(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	patterns := make([]string, 1024)
	for i := range patterns {
		patterns[i] = randomString(r, "acgt", 12)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, _ := NewFromPatterns(patterns)
		a.Precompute()
	}
}
