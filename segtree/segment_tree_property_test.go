package segtree

import (
	"math/rand"
	"testing"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/require"
)

const (
	testRuns   = 200
	maxSize    = 64
	operations = 200
)

func TestSegmentTree_Properties(t *testing.T) {
	t.Parallel()
	aggregators := []Aggregator[int64]{Sum[int64](), Min[int64](), Max[int64](), GCD[int64]()}

	bar := progressbar.Default(testRuns)
	for run := 0; run < testRuns; run++ {
		seed := time.Now().UnixNano()
		r := rand.New(rand.NewSource(seed))

		n := r.Intn(maxSize) + 1
		arr := make([]int64, n)
		for i := range arr {
			arr[i] = r.Int63n(2001) - 1000
		}
		agg := aggregators[run%len(aggregators)]

		st, err := New(n, int64(0), agg)
		require.NoError(t, err)
		require.NoError(t, st.Build(arr))

		whole, err := st.Query(0, n-1)
		require.NoError(t, err)
		require.Equal(t, bruteFold(arr, agg), whole, "%s whole fold (seed: %d)", agg.Name, seed)

		for op := 0; op < operations; op++ {
			if r.Intn(3) == 0 {
				pos := r.Intn(n)
				v := r.Int63n(2001) - 1000
				require.NoError(t, st.Update(pos, v))
				arr[pos] = v

				got, err := st.Query(pos, pos)
				require.NoError(t, err)
				require.Equal(t, v, got, "%s update(%d) then point query (seed: %d)", agg.Name, pos, seed)
				continue
			}
			l := r.Intn(n)
			rr := l + r.Intn(n-l)
			got, err := st.Query(l, rr)
			require.NoError(t, err)
			require.Equal(t, bruteFold(arr[l:rr+1], agg), got, "%s [%d, %d] (seed: %d)", agg.Name, l, rr, seed)
		}
		require.Equal(t, arr, st.Values())
		_ = bar.Add(1)
	}
}

func BenchmarkSegmentTree_Query(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	const n = 1 << 16
	arr := make([]int64, n)
	for i := range arr {
		arr[i] = r.Int63n(1 << 20)
	}
	st, err := NewFromSlice(arr, Sum[int64]())
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := r.Intn(n)
		_, _ = st.Query(l, l+r.Intn(n-l))
	}
}

func BenchmarkSegmentTree_Update(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	const n = 1 << 16
	st, err := New(n, int64(0), Sum[int64]())
	require.NoError(b, err)
	require.NoError(b, st.Build(make([]int64, n)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = st.Update(r.Intn(n), r.Int63())
	}
}
