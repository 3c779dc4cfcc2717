package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// A Node is one node of an encoding tree: either a *Leaf holding a single
// symbol, or a *Branch with exactly two children.  The root-to-leaf paths
// spell the prefix code, reading a step to the zero child as bit 0 and a step
// to the one child as bit 1.
type Node interface {
	isNode()
}

// Leaf is a terminal node holding one symbol of the alphabet.
type Leaf struct {
	Sym byte
}

// Branch is an interior node.  Both children are always present.
type Branch struct {
	Zero Node
	One  Node
}

func (*Leaf) isNode()   {}
func (*Branch) isNode() {}

// NewLeaf constructs a Leaf.
func NewLeaf(sym byte) *Leaf {
	return &Leaf{Sym: sym}
}

// NewBranch constructs a Branch.  Both children must be non-nil.
func NewBranch(zero Node, one Node) *Branch {
	assert.Assertf(zero != nil, "zero child is nil")
	assert.Assertf(one != nil, "one child is nil")
	return &Branch{Zero: zero, One: one}
}

// Equal reports whether two trees have the same shape and the same symbol at
// every corresponding leaf.
func Equal(a Node, b Node) bool {
	switch a := a.(type) {
	case *Leaf:
		b, ok := b.(*Leaf)
		return ok && a.Sym == b.Sym
	case *Branch:
		b, ok := b.(*Branch)
		return ok && Equal(a.Zero, b.Zero) && Equal(a.One, b.One)
	}
	return a == nil && b == nil
}

// DumpTree writes a programmer-readable debugging dump of the tree to the
// given writer.
func DumpTree(w io.Writer, root Node) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	dumpNode(&buf, root, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n Node, depth int) {
	indent := strings.Repeat("\t", depth)
	switch n := n.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "%sLeaf(%q)\n", indent, n.Sym)
	case *Branch:
		fmt.Fprintf(buf, "%sBranch{\n", indent)
		dumpNode(buf, n.Zero, depth+1)
		dumpNode(buf, n.One, depth+1)
		fmt.Fprintf(buf, "%s}\n", indent)
	}
}
