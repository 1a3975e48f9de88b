package segtree

import "github.com/pkg/errors"

var (
	ErrInvalidIndex  = errors.New("segtree: position out of range")
	ErrInvalidRange  = errors.New("segtree: invalid query range")
	ErrConfiguration = errors.New("segtree: invalid configuration")
	ErrSizeMismatch  = errors.New("segtree: array size does not match tree size")
)
