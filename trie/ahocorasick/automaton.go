package ahocorasick

import (
	"fmt"
	"strings"
	"unsafe"

	"Algorithms/errutil"
	"Algorithms/trie"
	"Algorithms/utils"

	"github.com/pkg/errors"
)

var (
	ErrEmptyInput   = errors.New("ahocorasick: empty pattern")
	ErrInvalidIndex = errors.New("ahocorasick: negative pattern index")
	ErrFrozen       = errors.New("ahocorasick: automaton construction has already begun")
	ErrInvalidState = errors.New("ahocorasick: state does not belong to the automaton")
)

const unknown = trie.None

// Automaton is an Aho-Corasick matcher over a trie of patterns. States are
// trie nodes and the root is the initial state.
//
// Fail links, dictionary links and transitions are computed on first use and
// cached, so the first FailLink, DictLink, Transition or scan freezes the
// pattern set. Lazy filling writes on read; call Precompute before sharing an
// automaton between goroutines.
type Automaton struct {
	trie     *trie.Trie
	patterns []string
	// outputs lists every pattern index that ends exactly at a node;
	// duplicated patterns share a node.
	outputs  map[trie.NodeID][]int
	alphabet [256]bool

	fail  []trie.NodeID
	dict  []trie.NodeID
	trans []map[byte]trie.NodeID

	frozen      bool
	precomputed bool
}

func New() *Automaton {
	return &Automaton{
		trie:    trie.New(),
		outputs: make(map[trie.NodeID][]int),
	}
}

// NewFromPatterns inserts patterns[i] with pattern index i.
func NewFromPatterns(patterns []string) (*Automaton, error) {
	a := New()
	for i, p := range patterns {
		if err := a.Insert(p, i); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Insert adds word as pattern patternIndex. It fails once construction has begun.
func (a *Automaton) Insert(word string, patternIndex int) error {
	if a.frozen {
		return errors.Wrapf(ErrFrozen, "insert %q", word)
	}
	if len(word) == 0 {
		return errors.Wrapf(ErrEmptyInput, "pattern index %d", patternIndex)
	}
	if patternIndex < 0 {
		return errors.Wrapf(ErrInvalidIndex, "pattern %q, index %d", word, patternIndex)
	}

	id := a.trie.Insert(word)
	if len(a.outputs[id]) == 0 {
		a.trie.Node(id).PatternIndex = patternIndex
	}
	a.outputs[id] = append(a.outputs[id], patternIndex)

	for patternIndex >= len(a.patterns) {
		a.patterns = append(a.patterns, "")
	}
	a.patterns[patternIndex] = word
	for i := 0; i < len(word); i++ {
		a.alphabet[word[i]] = true
	}
	return nil
}

// freeze allocates the memo tables; the trie must not grow afterwards.
func (a *Automaton) freeze() {
	if a.frozen {
		return
	}
	a.frozen = true
	size := a.trie.Capacity()
	a.fail = make([]trie.NodeID, size)
	a.dict = make([]trie.NodeID, size)
	a.trans = make([]map[byte]trie.NodeID, size)
	for i := range a.fail {
		a.fail[i] = unknown
		a.dict[i] = unknown
	}
	a.fail[trie.Root] = trie.Root
	a.dict[trie.Root] = trie.Root
}

// Start returns the initial state.
func (a *Automaton) Start() trie.NodeID {
	return trie.Root
}

// Valid reports whether state is a state of this automaton.
func (a *Automaton) Valid(state trie.NodeID) bool {
	return a.trie.Live(state)
}

// FailLink returns the state of the longest proper suffix of state's string
// that is also a trie path. The root and its children fail to the root.
func (a *Automaton) FailLink(state trie.NodeID) (trie.NodeID, error) {
	if !a.Valid(state) {
		return trie.None, errors.Wrapf(ErrInvalidState, "fail link of state %d", state)
	}
	a.freeze()
	return a.failLink(state), nil
}

// Transition returns the next state after reading ch in state. The result of
// each (state, ch) pair is computed once: the literal trie edge if there is
// one, a self-loop at the root, otherwise the transition of the fail link.
func (a *Automaton) Transition(state trie.NodeID, ch byte) (trie.NodeID, error) {
	if !a.Valid(state) {
		return trie.None, errors.Wrapf(ErrInvalidState, "transition from state %d on %q", state, ch)
	}
	a.freeze()
	return a.next(state, ch), nil
}

// DictLink returns the nearest terminal state on the fail chain strictly
// above state, or the root when there is none.
func (a *Automaton) DictLink(state trie.NodeID) (trie.NodeID, error) {
	if !a.Valid(state) {
		return trie.None, errors.Wrapf(ErrInvalidState, "dictionary link of state %d", state)
	}
	a.freeze()
	return a.dictLink(state), nil
}

// failLink, next and dictLink expect a frozen automaton and a live state.
func (a *Automaton) failLink(state trie.NodeID) trie.NodeID {
	errutil.BugOn(!a.Valid(state), "failLink on invalid state %d", state)
	if a.fail[state] == unknown {
		n := a.trie.Node(state)
		if n.Parent == trie.Root {
			a.fail[state] = trie.Root
		} else {
			// failLink(parent) is strictly shallower, so this terminates at depth 1.
			a.fail[state] = a.next(a.failLink(n.Parent), n.EdgeChar)
		}
	}
	return a.fail[state]
}

func (a *Automaton) next(state trie.NodeID, ch byte) trie.NodeID {
	errutil.BugOn(!a.Valid(state), "next on invalid state %d", state)
	if next, ok := a.trans[state][ch]; ok {
		return next
	}
	if a.precomputed && !a.alphabet[ch] {
		// no pattern contains ch, every state falls back to the root
		return trie.Root
	}

	var next trie.NodeID
	if child, ok := a.trie.Child(state, ch); ok {
		next = child
	} else if state == trie.Root {
		next = trie.Root
	} else {
		next = a.next(a.failLink(state), ch)
	}

	if a.trans[state] == nil {
		a.trans[state] = make(map[byte]trie.NodeID)
	}
	a.trans[state][ch] = next
	return next
}

func (a *Automaton) dictLink(state trie.NodeID) trie.NodeID {
	if a.dict[state] == unknown {
		f := a.failLink(state)
		if f == trie.Root || a.trie.Node(f).Terminal {
			a.dict[state] = f
		} else {
			a.dict[state] = a.dictLink(f)
		}
	}
	return a.dict[state]
}

// Precompute fills every memo table breadth first. Afterwards no method
// writes to the automaton, so it can be read from several goroutines.
func (a *Automaton) Precompute() {
	if a.precomputed {
		return
	}
	a.freeze()

	symbols := make([]byte, 0, 256)
	for c, ok := range a.alphabet {
		if ok {
			symbols = append(symbols, byte(c))
		}
	}

	// Fail targets are shallower than their node, so in BFS order every
	// recursive call below hits a cached entry.
	queue := []trie.NodeID{trie.Root}
	for head := 0; head < len(queue); head++ {
		id := queue[head]
		a.failLink(id)
		a.dictLink(id)
		for _, c := range symbols {
			a.next(id, c)
		}
		for _, child := range a.trie.Node(id).Children {
			queue = append(queue, child)
		}
	}
	a.precomputed = true
}

// IsTerminal reports whether some pattern ends exactly at state. It is false
// for a state outside the automaton.
func (a *Automaton) IsTerminal(state trie.NodeID) bool {
	return a.Valid(state) && a.trie.Node(state).Terminal
}

// PatternIndex returns the first pattern index inserted at state, or
// trie.NoPattern if state is not terminal or not a state at all.
func (a *Automaton) PatternIndex(state trie.NodeID) int {
	if !a.Valid(state) {
		return trie.NoPattern
	}
	return a.trie.Node(state).PatternIndex
}

// Outputs returns every pattern index that ends at state, including the
// patterns that are proper suffixes of state's string.
func (a *Automaton) Outputs(state trie.NodeID) ([]int, error) {
	if !a.Valid(state) {
		return nil, errors.Wrapf(ErrInvalidState, "state %d", state)
	}
	a.freeze()
	res := make([]int, 0)
	a.emit(state, func(pattern int, _ trie.NodeID) {
		res = append(res, pattern)
	})
	return res, nil
}

// emit calls fn for each pattern ending at state, longest first.
func (a *Automaton) emit(state trie.NodeID, fn func(pattern int, node trie.NodeID)) {
	for id := state; id != trie.Root; id = a.dictLink(id) {
		if !a.trie.Node(id).Terminal {
			continue
		}
		for _, p := range a.outputs[id] {
			fn(p, id)
		}
	}
}

// Label returns the string spelled by state.
func (a *Automaton) Label(state trie.NodeID) (string, error) {
	if !a.Valid(state) {
		return "", errors.Wrapf(ErrInvalidState, "state %d", state)
	}
	return a.trie.Label(state), nil
}

// Patterns returns the patterns indexed by pattern index. Unused indices hold "".
func (a *Automaton) Patterns() []string {
	out := make([]string, len(a.patterns))
	copy(out, a.patterns)
	return out
}

// States returns the number of states, the root included.
func (a *Automaton) States() int {
	return a.trie.NodeCount() + 1
}

// Find returns the state spelled by word, if word is a prefix of some pattern.
func (a *Automaton) Find(word string) (trie.NodeID, bool) {
	return a.trie.Find(word)
}

// Walk visits every state in lexicographic order of its string. The trie
// itself stays private so the pattern set cannot change behind the memo tables.
func (a *Automaton) Walk(fn func(state trie.NodeID) bool) {
	a.trie.Walk(func(id trie.NodeID, _ *trie.Node) bool {
		return fn(id)
	})
}

func (a *Automaton) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Automaton: patterns=%d states=%d frozen=%t precomputed=%t\n",
		len(a.patterns), a.States(), a.frozen, a.precomputed))
	a.trie.Walk(func(id trie.NodeID, n *trie.Node) bool {
		sb.WriteString(fmt.Sprintf("%s%q [%d]", strings.Repeat("  ", int(n.Depth)), a.trie.Label(id), id))
		if n.Terminal {
			sb.WriteString(fmt.Sprintf(" patterns=%v", a.outputs[id]))
		}
		if a.frozen && a.fail[id] != unknown {
			sb.WriteString(fmt.Sprintf(" fail=%d", a.fail[id]))
		}
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}

func (a *Automaton) transBytes() int {
	entry := int(unsafe.Sizeof(byte(0)) + unsafe.Sizeof(trie.NodeID(0)))
	size := len(a.trans) * int(unsafe.Sizeof(map[byte]trie.NodeID(nil)))
	for _, m := range a.trans {
		if m != nil {
			size += 48 + len(m)*entry
		}
	}
	return size
}

func (a *Automaton) patternBytes() int {
	size := len(a.patterns) * int(unsafe.Sizeof(""))
	for _, p := range a.patterns {
		size += len(p)
	}
	for _, out := range a.outputs {
		size += len(out) * int(unsafe.Sizeof(0))
	}
	return size
}

// ByteSize returns an estimate of the structure size in bytes.
func (a *Automaton) ByteSize() int {
	if a == nil {
		return 0
	}
	links := (len(a.fail) + len(a.dict)) * int(unsafe.Sizeof(trie.NodeID(0)))
	return int(unsafe.Sizeof(*a)) + a.trie.ByteSize() + a.patternBytes() + links + a.transBytes()
}

func (a *Automaton) MemDetailed() utils.MemReport {
	if a == nil {
		return utils.MemReport{Name: "Automaton", TotalBytes: 0}
	}
	id := int(unsafe.Sizeof(trie.NodeID(0)))
	return utils.MemReport{
		Name:       "Automaton",
		TotalBytes: a.ByteSize(),
		Children: []utils.MemReport{
			{Name: "header", TotalBytes: int(unsafe.Sizeof(*a))},
			a.trie.MemDetailed(),
			{Name: "patterns", TotalBytes: a.patternBytes()},
			{Name: "fail", TotalBytes: len(a.fail) * id},
			{Name: "dict", TotalBytes: len(a.dict) * id},
			{Name: "transitions", TotalBytes: a.transBytes()},
		},
	}
}
