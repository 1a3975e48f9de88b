package segtree

import (
	"fmt"
	"strings"
	"unsafe"

	"Algorithms/errutil"
	"Algorithms/utils"

	"github.com/pkg/errors"
)

// SegmentTree answers range aggregates over a fixed-size array with point
// updates. Node i covers a range [lo, hi], its children are 2i+1 and 2i+2.
// It is not safe for concurrent use if Update may run.
type SegmentTree[T any] struct {
	n    int
	tree []T
	agg  Aggregator[T]
}

// New allocates a tree for n elements with every slot set to initValue.
func New[T any](n int, initValue T, agg Aggregator[T]) (*SegmentTree[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrConfiguration, "negative size %d", n)
	}
	if agg.Combine == nil {
		return nil, errors.Wrapf(ErrConfiguration, "aggregator %q has no combine function", agg.Name)
	}
	tree := make([]T, 4*n)
	for i := range tree {
		tree[i] = initValue
	}
	return &SegmentTree[T]{n: n, tree: tree, agg: agg}, nil
}

// NewFromSlice is New followed by Build, with arr[0] as the initial value.
func NewFromSlice[T any](arr []T, agg Aggregator[T]) (*SegmentTree[T], error) {
	var init T
	if len(arr) > 0 {
		init = arr[0]
	}
	st, err := New(len(arr), init, agg)
	if err != nil {
		return nil, err
	}
	if err := st.Build(arr); err != nil {
		return nil, err
	}
	return st, nil
}

func (st *SegmentTree[T]) Len() int {
	return st.n
}

func (st *SegmentTree[T]) Aggregator() Aggregator[T] {
	return st.agg
}

// Build fills every node from arr in O(n).
func (st *SegmentTree[T]) Build(arr []T) error {
	if len(arr) != st.n {
		return errors.Wrapf(ErrSizeMismatch, "got %d elements, tree holds %d", len(arr), st.n)
	}
	if st.n == 0 {
		return nil
	}
	st.build(arr, 0, 0, st.n-1)
	return nil
}

func (st *SegmentTree[T]) build(arr []T, node, lo, hi int) {
	if lo == hi {
		st.tree[node] = arr[lo]
		return
	}
	mid := (lo + hi) >> 1
	st.build(arr, leftSon(node), lo, mid)
	st.build(arr, rightSon(node), mid+1, hi)
	st.pull(node)
}

// Update sets arr[pos] = value and recomputes the path to the root.
func (st *SegmentTree[T]) Update(pos int, value T) error {
	if pos < 0 || pos >= st.n {
		return errors.Wrapf(ErrInvalidIndex, "position %d, size %d", pos, st.n)
	}
	st.update(0, 0, st.n-1, pos, value)
	return nil
}

func (st *SegmentTree[T]) update(node, lo, hi, pos int, value T) {
	if lo == hi {
		errutil.BugOn(lo != pos, "update reached leaf %d, want %d", lo, pos)
		st.tree[node] = value
		return
	}
	mid := (lo + hi) >> 1
	if pos <= mid {
		st.update(leftSon(node), lo, mid, pos, value)
	} else {
		st.update(rightSon(node), mid+1, hi, pos, value)
	}
	st.pull(node)
}

// Query returns the aggregate of arr[left..right], both ends inclusive.
func (st *SegmentTree[T]) Query(left, right int) (T, error) {
	if left > right || left < 0 || right >= st.n {
		var zero T
		return zero, errors.Wrapf(ErrInvalidRange, "[%d, %d], size %d", left, right, st.n)
	}
	res, ok := st.query(0, 0, st.n-1, left, right)
	errutil.BugOn(!ok, "non-empty range [%d, %d] produced no value", left, right)
	return res, nil
}

// query aggregates [l, r] inside the node covering [lo, hi]. An empty [l, r]
// yields ok == false and the caller drops that side; the identity is never
// folded in, since gcd(x, 0) = |x| would flip the sign of a lone negative.
func (st *SegmentTree[T]) query(node, lo, hi, l, r int) (T, bool) {
	if r < l {
		var zero T
		return zero, false
	}
	if lo == l && hi == r {
		return st.tree[node], true
	}
	mid := (lo + hi) >> 1
	leftRes, leftOk := st.query(leftSon(node), lo, mid, l, min(mid, r))
	rightRes, rightOk := st.query(rightSon(node), mid+1, hi, max(mid+1, l), r)
	switch {
	case leftOk && rightOk:
		return st.agg.Combine(leftRes, rightRes), true
	case leftOk:
		return leftRes, true
	default:
		return rightRes, rightOk
	}
}

// Prefix returns the aggregate of the first k elements. Prefix(0) is the
// empty range and needs an aggregator identity.
func (st *SegmentTree[T]) Prefix(k int) (T, error) {
	if k < 0 || k > st.n {
		var zero T
		return zero, errors.Wrapf(ErrInvalidRange, "prefix length %d, size %d", k, st.n)
	}
	if k == 0 {
		id, ok := st.agg.Identity()
		if !ok {
			return id, errors.Wrapf(ErrConfiguration, "aggregator %q has no identity for an empty prefix", st.agg.Name)
		}
		return id, nil
	}
	return st.Query(0, k-1)
}

// Get returns arr[i].
func (st *SegmentTree[T]) Get(i int) (T, error) {
	if i < 0 || i >= st.n {
		var zero T
		return zero, errors.Wrapf(ErrInvalidIndex, "position %d, size %d", i, st.n)
	}
	node, lo, hi := 0, 0, st.n-1
	for lo != hi {
		mid := (lo + hi) >> 1
		if i <= mid {
			node, hi = leftSon(node), mid
		} else {
			node, lo = rightSon(node), mid+1
		}
	}
	return st.tree[node], nil
}

// Values returns the leaf values in array order.
func (st *SegmentTree[T]) Values() []T {
	out := make([]T, 0, st.n)
	if st.n == 0 {
		return out
	}
	var walk func(node, lo, hi int)
	walk = func(node, lo, hi int) {
		if lo == hi {
			out = append(out, st.tree[node])
			return
		}
		mid := (lo + hi) >> 1
		walk(leftSon(node), lo, mid)
		walk(rightSon(node), mid+1, hi)
	}
	walk(0, 0, st.n-1)
	return out
}

func (st *SegmentTree[T]) pull(node int) {
	st.tree[node] = st.agg.Combine(st.tree[leftSon(node)], st.tree[rightSon(node)])
}

func leftSon(node int) int {
	return (node << 1) + 1
}

func rightSon(node int) int {
	return (node << 1) + 2
}

func (st *SegmentTree[T]) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("SegmentTree[%s] n=%d\n", st.agg.Name, st.n))
	if st.n == 0 {
		return sb.String()
	}
	var walk func(node, lo, hi, depth int)
	walk = func(node, lo, hi, depth int) {
		sb.WriteString(fmt.Sprintf("%s[%d, %d] = %v\n", strings.Repeat("  ", depth), lo, hi, st.tree[node]))
		if lo == hi {
			return
		}
		mid := (lo + hi) >> 1
		walk(leftSon(node), lo, mid, depth+1)
		walk(rightSon(node), mid+1, hi, depth+1)
	}
	walk(0, 0, st.n-1, 0)
	return sb.String()
}

// ByteSize returns the total size of the structure in bytes.
func (st *SegmentTree[T]) ByteSize() int {
	if st == nil {
		return 0
	}
	return int(unsafe.Sizeof(*st)) + len(st.tree)*int(unsafe.Sizeof(*new(T)))
}

func (st *SegmentTree[T]) MemDetailed() utils.MemReport {
	if st == nil {
		return utils.MemReport{Name: "SegmentTree", TotalBytes: 0}
	}
	headerSize := int(unsafe.Sizeof(*st))
	return utils.MemReport{
		Name:       "SegmentTree",
		TotalBytes: st.ByteSize(),
		Children: []utils.MemReport{
			{Name: "header", TotalBytes: headerSize},
			{Name: "tree", TotalBytes: st.ByteSize() - headerSize},
		},
	}
}
