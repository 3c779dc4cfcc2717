package huffman

import (
	"container/heap"
	"fmt"
)

// BuildTree constructs an optimal encoding tree for the given text.  The text
// must contain at least two distinct byte values; otherwise BuildTree fails
// with ErrInvalidInput.
//
// Construction is the classic greedy merge: seed a min-heap with one leaf per
// distinct byte, weighted by frequency, then repeatedly pop the two lightest
// subtrees and join them under a new branch (first popped on the zero side,
// second on the one side) until one tree remains.  Equal weights dequeue
// most-recently-inserted first, and leaves are seeded in order of first
// appearance in the text, so the output shape is deterministic for a given
// input.
func BuildTree(text string) (Node, error) {
	freqs := make(map[byte]int, 256)
	order := make([]byte, 0, 256)
	for i := 0; i < len(text); i++ {
		sym := text[i]
		if freqs[sym] == 0 {
			order = append(order, sym)
		}
		freqs[sym]++
	}
	if len(order) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 distinct symbols, have %d", ErrInvalidInput, len(order))
	}

	h := weightHeap{list: make([]weightedTree, 0, len(order))}
	for seq, sym := range order {
		h.list = append(h.list, weightedTree{node: NewLeaf(sym), weight: freqs[sym], seq: seq})
	}
	h.Init()

	nextSeq := len(order)
	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedTree)
		b := heap.Pop(&h).(weightedTree)
		merged := weightedTree{
			node:   NewBranch(a.node, b.node),
			weight: a.weight + b.weight,
			seq:    nextSeq,
		}
		heap.Push(&h, merged)
		nextSeq++
	}

	root := heap.Pop(&h).(weightedTree)
	return root.node, nil
}

// type weightedTree + type weightHeap {{{

type weightedTree struct {
	node   Node
	weight int
	seq    int
}

type weightHeap struct {
	list []weightedTree
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	// Newest first: a freshly merged subtree outranks an older entry of
	// equal weight.
	return a.seq > b.seq
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedTree))
}

func (h *weightHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
