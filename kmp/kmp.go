package kmp

import (
	"unsafe"

	"Algorithms/utils"

	"github.com/pkg/errors"
)

var ErrEmptyInput = errors.New("kmp: empty pattern")

// separator joins pattern and text in the combined sequence. Bytes map to
// 0..255, so it cannot collide with either string.
const separator = -1

// KMP finds pattern occurrences with the prefix function of
// pattern + separator + text. It keeps the last prefix function it computed.
type KMP struct {
	pi []int
}

func New() *KMP {
	return &KMP{pi: []int{}}
}

// PrefixFunction computes π for s and remembers it.
func (k *KMP) PrefixFunction(s string) []int {
	k.pi = PrefixFunction(s)
	return k.pi
}

// LastPrefixFunction returns the prefix function of the last processed
// sequence. After Run that is the combined pattern+separator+text sequence.
func (k *KMP) LastPrefixFunction() []int {
	return k.pi
}

// Run returns the ascending start offsets of pattern in text.
func (k *KMP) Run(text, pattern string) ([]int, error) {
	if len(pattern) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "text length %d", len(text))
	}
	m := len(pattern)
	combined := make([]int, 0, m+1+len(text))
	for i := 0; i < m; i++ {
		combined = append(combined, int(pattern[i]))
	}
	combined = append(combined, separator)
	for i := 0; i < len(text); i++ {
		combined = append(combined, int(text[i]))
	}

	k.pi = PrefixFunctionOf(combined)
	res := make([]int, 0)
	for i := m + 1; i < len(combined); i++ {
		if k.pi[i] == m {
			// match ends at text offset i-m-1
			res = append(res, i-2*m)
		}
	}
	return res, nil
}

// FindOccurrences returns the ascending start offsets of pattern in text.
// A pattern longer than the text, or an empty text, yields an empty slice.
func FindOccurrences(text, pattern string) ([]int, error) {
	return New().Run(text, pattern)
}

// Count returns the number of (possibly overlapping) occurrences.
func Count(text, pattern string) (int, error) {
	res, err := FindOccurrences(text, pattern)
	if err != nil {
		return 0, err
	}
	return len(res), nil
}

// ByteSize returns an estimate of the structure size in bytes.
func (k *KMP) ByteSize() int {
	if k == nil {
		return 0
	}
	return int(unsafe.Sizeof(*k)) + cap(k.pi)*int(unsafe.Sizeof(0))
}

func (k *KMP) MemDetailed() utils.MemReport {
	if k == nil {
		return utils.MemReport{Name: "KMP", TotalBytes: 0}
	}
	return utils.MemReport{
		Name:       "KMP",
		TotalBytes: k.ByteSize(),
		Children: []utils.MemReport{
			{Name: "header", TotalBytes: int(unsafe.Sizeof(*k))},
			{Name: "prefix function", TotalBytes: cap(k.pi) * int(unsafe.Sizeof(0))},
		},
	}
}
