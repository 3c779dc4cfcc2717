package huffman

import (
	"fmt"
)

// FlattenTree serializes a tree into its canonical flattened form: a
// pre-order shape sequence (1 for a branch, 0 for a leaf, zero child before
// one child) and the leaf symbols in the same traversal order.
func FlattenTree(root Node) (Bits, []byte) {
	var shape Bits
	var leaves []byte

	var walk func(n Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Leaf:
			shape = append(shape, 0)
			leaves = append(leaves, n.Sym)
		case *Branch:
			shape = append(shape, 1)
			walk(n.Zero)
			walk(n.One)
		}
	}
	walk(root)
	return shape, leaves
}

// UnflattenTree rebuilds a tree from its flattened form.  The shape and leaf
// sequences must describe exactly one well-formed tree; truncated or trailing
// data fails with ErrMalformedInput.
func UnflattenTree(shape Bits, leaves []byte) (Node, error) {
	sr := &bitReader{bits: shape}
	lr := &leafReader{leaves: leaves}
	root, err := unflatten(sr, lr)
	if err != nil {
		return nil, err
	}
	if n := sr.remaining(); n != 0 {
		return nil, fmt.Errorf("%w: %d trailing shape bits", ErrMalformedInput, n)
	}
	if n := lr.remaining(); n != 0 {
		return nil, fmt.Errorf("%w: %d trailing leaf symbols", ErrMalformedInput, n)
	}
	return root, nil
}

// unflatten consumes one subtree.  Both readers are shared down the
// recursion; each call advances them past exactly the data it used.
func unflatten(sr *bitReader, lr *leafReader) (Node, error) {
	b, ok := sr.next()
	if !ok {
		return nil, fmt.Errorf("%w: tree shape ends early", ErrMalformedInput)
	}
	if b == 0 {
		sym, ok := lr.next()
		if !ok {
			return nil, fmt.Errorf("%w: tree shape names more leaves than given", ErrMalformedInput)
		}
		return NewLeaf(sym), nil
	}
	zero, err := unflatten(sr, lr)
	if err != nil {
		return nil, err
	}
	one, err := unflatten(sr, lr)
	if err != nil {
		return nil, err
	}
	return NewBranch(zero, one), nil
}
