package huffman

import (
	"fmt"
	"strings"
)

// EncodeText encodes text against the given tree, emitting the root-to-leaf
// path of each byte in text order.  Every byte of the text must have a leaf
// in the tree; a byte with no code fails with ErrMalformedInput.
func EncodeText(root Node, text string) (Bits, error) {
	paths := pathTable(root)
	var bits Bits
	for i := 0; i < len(text); i++ {
		sym := text[i]
		path, ok := paths[sym]
		if !ok {
			return nil, fmt.Errorf("%w: no code for symbol %q", ErrMalformedInput, sym)
		}
		bits = append(bits, path...)
	}
	return bits, nil
}

// pathTable maps each leaf symbol to its root-to-leaf path, computed in one
// traversal so encoding is a single lookup per input byte.
func pathTable(root Node) map[byte]Bits {
	paths := make(map[byte]Bits)

	var walk func(n Node, prefix Bits)
	walk = func(n Node, prefix Bits) {
		switch n := n.(type) {
		case *Leaf:
			// Copy: the prefix slice mutates as the walk continues
			// into siblings.
			path := make(Bits, len(prefix))
			copy(path, prefix)
			paths[n.Sym] = path
		case *Branch:
			walk(n.Zero, append(prefix, 0))
			walk(n.One, append(prefix, 1))
		}
	}
	walk(root, nil)
	return paths
}

// DecodeText decodes a bit sequence against the given tree by walking from
// the root: bit 0 steps to the zero child, bit 1 to the one child, and
// reaching a leaf emits its symbol and resets the walk.  The sequence must
// end exactly on a symbol boundary; otherwise DecodeText fails with
// ErrMalformedInput.
func DecodeText(root Node, bits Bits) (string, error) {
	var sb strings.Builder
	cur := root
	for _, b := range bits {
		checkBit(b)
		br, ok := cur.(*Branch)
		if !ok {
			return "", fmt.Errorf("%w: tree has no branch to follow", ErrMalformedInput)
		}
		if b == 0 {
			cur = br.Zero
		} else {
			cur = br.One
		}
		if leaf, ok := cur.(*Leaf); ok {
			sb.WriteByte(leaf.Sym)
			cur = root
		}
	}
	if cur != root {
		return "", fmt.Errorf("%w: bit sequence ends mid-symbol", ErrMalformedInput)
	}
	return sb.String(), nil
}
