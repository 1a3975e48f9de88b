package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Parallel()
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	require.Equal(t, []string{"1", "2", "3"}, got)
	require.Empty(t, Map([]int{}, strconv.Itoa))
}

func TestFold(t *testing.T) {
	t.Parallel()
	sum := Fold([]int{1, 2, 3, 4}, 0, func(a, v int) int { return a + v })
	require.Equal(t, 10, sum)

	joined := Fold([]string{"a", "b"}, "", func(a, v string) string { return a + v })
	require.Equal(t, "ab", joined)
}

func TestMemReport(t *testing.T) {
	t.Parallel()
	r := MemReport{
		Name:       "Trie",
		TotalBytes: 3072,
		Children: []MemReport{
			{Name: "header", TotalBytes: 1024},
			{Name: "nodes", TotalBytes: 2048},
		},
	}

	require.Equal(t, 3072, r.ChildrenBytes())
	require.Equal(t, "- Trie: 3072 bytes\n  - header: 1024 bytes\n  - nodes: 2048 bytes\n", r.String())

	human := r.Human()
	require.True(t, strings.HasPrefix(human, "- Trie: 3.0 KiB\n"), human)
	require.Contains(t, human, "  - nodes: 2.0 KiB\n")

	require.JSONEq(t,
		`{"name":"Trie","total_bytes":3072,"children":[{"name":"header","total_bytes":1024},{"name":"nodes","total_bytes":2048}]}`,
		r.JSON())
}
