package trie

import (
	"fmt"
	"strings"
	"unsafe"

	"Algorithms/errutil"
	"Algorithms/utils"

	"golang.org/x/exp/slices"
)

// Trie maps byte strings to presence markers. Nodes are kept in a slice and
// referenced by NodeID; slots released by Delete are reused by Insert.
type Trie struct {
	nodes []Node
	free  []NodeID
	words int
}

func New() *Trie {
	t := &Trie{nodes: make([]Node, 1)}
	t.nodes[Root].reset(Root, 0, 0)
	return t
}

func NewFromWords(words []string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds word and returns its terminal node. The empty word marks the root.
func (t *Trie) Insert(word string) NodeID {
	id := Root
	for i := 0; i < len(word); i++ {
		next, ok := t.nodes[id].Children[word[i]]
		if !ok {
			next = t.alloc(id, word[i])
		}
		id = next
	}
	if !t.nodes[id].Terminal {
		t.nodes[id].Terminal = true
		t.words++
	}
	return id
}

// InsertWithIndex is Insert that also stores index on the terminal node,
// replacing any index stored there before.
func (t *Trie) InsertWithIndex(word string, index int) NodeID {
	id := t.Insert(word)
	t.nodes[id].PatternIndex = index
	return id
}

func (t *Trie) alloc(parent NodeID, ch byte) NodeID {
	depth := t.nodes[parent].Depth + 1
	var id NodeID
	if k := len(t.free); k > 0 {
		id = t.free[k-1]
		t.free = t.free[:k-1]
	} else {
		id = NodeID(len(t.nodes))
		t.nodes = append(t.nodes, Node{})
	}
	t.nodes[id].reset(parent, ch, depth)
	if t.nodes[parent].Children == nil {
		t.nodes[parent].Children = make(map[byte]NodeID)
	}
	t.nodes[parent].Children[ch] = id
	return id
}

func (t *Trie) release(id NodeID) {
	errutil.BugOn(id == Root, "cannot release the root")
	t.nodes[id].reset(None, 0, 0)
	t.free = append(t.free, id)
}

// Find follows word from the root and returns the node it lands on, terminal or not.
func (t *Trie) Find(word string) (NodeID, bool) {
	id := Root
	for i := 0; i < len(word); i++ {
		next, ok := t.nodes[id].Children[word[i]]
		if !ok {
			return None, false
		}
		id = next
	}
	return id, true
}

// Search reports whether word itself was inserted; a proper prefix of an
// inserted word is not enough.
func (t *Trie) Search(word string) bool {
	id, ok := t.Find(word)
	return ok && t.nodes[id].Terminal
}

// StartsWith reports whether some inserted word has the given prefix.
func (t *Trie) StartsWith(prefix string) bool {
	_, ok := t.Find(prefix)
	return ok
}

// Delete unmarks word and prunes the nodes that no longer lead to any word.
// Pruning walks up from the word's node and stops at the root, at a terminal
// node, or at a node that still has children. Returns false if word is absent.
func (t *Trie) Delete(word string) bool {
	id, ok := t.Find(word)
	if !ok || !t.nodes[id].Terminal {
		return false
	}
	t.nodes[id].Terminal = false
	t.nodes[id].PatternIndex = NoPattern
	t.words--

	for id != Root && !t.nodes[id].Terminal && t.nodes[id].IsLeaf() {
		parent := t.nodes[id].Parent
		delete(t.nodes[parent].Children, t.nodes[id].EdgeChar)
		t.release(id)
		id = parent
	}
	return true
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	return t.words
}

// NodeCount returns the number of live nodes excluding the root.
func (t *Trie) NodeCount() int {
	return len(t.nodes) - len(t.free) - 1
}

// Capacity returns the arena length; valid NodeIDs are below it.
func (t *Trie) Capacity() int {
	return len(t.nodes)
}

// Node returns the node for id. The pointer is valid until the next Insert.
func (t *Trie) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Child returns the literal edge from id on ch.
func (t *Trie) Child(id NodeID, ch byte) (NodeID, bool) {
	next, ok := t.nodes[id].Children[ch]
	return next, ok
}

// Live reports whether id addresses a node currently in the trie.
func (t *Trie) Live(id NodeID) bool {
	if id < 0 || int(id) >= len(t.nodes) {
		return false
	}
	return id == Root || t.nodes[id].Parent != None
}

// Label returns the string spelled by the path from the root to id.
func (t *Trie) Label(id NodeID) string {
	buf := make([]byte, t.nodes[id].Depth)
	for i := len(buf) - 1; id != Root; i-- {
		buf[i] = t.nodes[id].EdgeChar
		id = t.nodes[id].Parent
	}
	return string(buf)
}

// Walk visits live nodes in lexicographic order of their labels.
func (t *Trie) Walk(fn func(id NodeID, n *Node) bool) {
	stack := []NodeID{Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[id]
		if !fn(id, n) {
			return
		}
		keys := sortedKeys(n.Children)
		// push in reverse so the smallest edge is popped first
		for i := len(keys) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[keys[i]])
		}
	}
}

// Words returns the stored words in lexicographic order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.words)
	t.Walk(func(id NodeID, n *Node) bool {
		if n.Terminal {
			words = append(words, t.Label(id))
		}
		return true
	})
	return words
}

func sortedKeys(m map[byte]NodeID) []byte {
	keys := make([]byte, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (t *Trie) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Trie: words=%d nodes=%d\n", t.words, t.NodeCount()))
	t.Walk(func(id NodeID, n *Node) bool {
		marker := ""
		if n.Terminal {
			marker = " *"
		}
		sb.WriteString(fmt.Sprintf("%s%q [%d]%s\n", strings.Repeat("  ", int(n.Depth)), t.Label(id), id, marker))
		return true
	})
	return sb.String()
}

const mapHeaderSize = 48

func (t *Trie) childrenBytes() int {
	entry := int(unsafe.Sizeof(byte(0)) + unsafe.Sizeof(NodeID(0)))
	size := 0
	for i := range t.nodes {
		if t.nodes[i].Children != nil {
			size += mapHeaderSize + len(t.nodes[i].Children)*entry
		}
	}
	return size
}

// ByteSize returns an estimate of the structure size in bytes.
func (t *Trie) ByteSize() int {
	if t == nil {
		return 0
	}
	return int(unsafe.Sizeof(*t)) +
		len(t.nodes)*int(unsafe.Sizeof(Node{})) +
		t.childrenBytes() +
		len(t.free)*int(unsafe.Sizeof(NodeID(0)))
}

func (t *Trie) MemDetailed() utils.MemReport {
	if t == nil {
		return utils.MemReport{Name: "Trie", TotalBytes: 0}
	}
	return utils.MemReport{
		Name:       "Trie",
		TotalBytes: t.ByteSize(),
		Children: []utils.MemReport{
			{Name: "header", TotalBytes: int(unsafe.Sizeof(*t))},
			{Name: "nodes", TotalBytes: len(t.nodes) * int(unsafe.Sizeof(Node{}))},
			{Name: "children", TotalBytes: t.childrenBytes()},
			{Name: "free", TotalBytes: len(t.free) * int(unsafe.Sizeof(NodeID(0)))},
		},
	}
}
