package trie

import "fmt"

// NodeID addresses a node inside its Trie's arena.
type NodeID int32

const (
	Root NodeID = 0
	// None is never a valid node.
	None NodeID = -1

	NoPattern = -1
)

// Node is one prefix of the inserted words. Parent and EdgeChar are plain
// indices back into the arena; only Children owns nodes.
type Node struct {
	Terminal     bool
	PatternIndex int
	Children     map[byte]NodeID
	Parent       NodeID
	EdgeChar     byte
	Depth        int32
}

func (n *Node) reset(parent NodeID, ch byte, depth int32) {
	n.Terminal = false
	n.PatternIndex = NoPattern
	n.Children = nil
	n.Parent = parent
	n.EdgeChar = ch
	n.Depth = depth
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Node{Terminal: %t, PatternIndex: %d, Parent: %d, EdgeChar: %q, Depth: %d, Children: %d}",
		n.Terminal, n.PatternIndex, n.Parent, n.EdgeChar, n.Depth, len(n.Children))
}
