package ahocorasick

import "Algorithms/trie"

// Match is one pattern occurrence; End is the offset of its last byte.
type Match struct {
	Pattern int
	Start   int
	End     int
}

// ScanFunc feeds text through the automaton and calls fn for every pattern
// occurrence, ordered by End and, for equal End, longest pattern first.
// Scanning stops early when fn returns false.
func (a *Automaton) ScanFunc(text string, fn func(m Match) bool) {
	a.freeze()
	state := a.Start()
	for i := 0; i < len(text); i++ {
		state = a.next(state, text[i])
		stop := false
		a.emit(state, func(pattern int, node trie.NodeID) {
			if stop {
				return
			}
			depth := int(a.trie.Node(node).Depth)
			if !fn(Match{Pattern: pattern, Start: i - depth + 1, End: i}) {
				stop = true
			}
		})
		if stop {
			return
		}
	}
}

// Scan returns every occurrence of every pattern in text, including patterns
// that end inside a longer match.
func (a *Automaton) Scan(text string) []Match {
	res := make([]Match, 0)
	a.ScanFunc(text, func(m Match) bool {
		res = append(res, m)
		return true
	})
	return res
}

// Count returns the number of occurrences of each pattern, indexed by pattern index.
func (a *Automaton) Count(text string) []int {
	freq := make([]int, len(a.patterns))
	a.ScanFunc(text, func(m Match) bool {
		freq[m.Pattern]++
		return true
	})
	return freq
}

// Contains reports whether any pattern occurs in text.
func (a *Automaton) Contains(text string) bool {
	found := false
	a.ScanFunc(text, func(Match) bool {
		found = true
		return false
	})
	return found
}

// TerminalPositions returns the offsets at which the scan lands on a terminal
// state, checking only the current state and not its suffixes.
func (a *Automaton) TerminalPositions(text string) []int {
	res := make([]int, 0)
	a.scanStates(text, func(i int, state trie.NodeID) {
		if a.trie.Node(state).Terminal {
			res = append(res, i)
		}
	})
	return res
}

// CountExact counts, per pattern index, the positions at which the scan lands
// exactly on that pattern's node. Suffix matches and duplicate insertions of
// the same word are not counted.
func (a *Automaton) CountExact(text string) []int {
	freq := make([]int, len(a.patterns))
	a.scanStates(text, func(_ int, state trie.NodeID) {
		if n := a.trie.Node(state); n.Terminal {
			freq[n.PatternIndex]++
		}
	})
	return freq
}

func (a *Automaton) scanStates(text string, fn func(i int, state trie.NodeID)) {
	a.freeze()
	state := a.Start()
	for i := 0; i < len(text); i++ {
		state = a.next(state, text[i])
		fn(i, state)
	}
}
