package huffman

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a Huffman tree node.  It is a closed union: the only
// implementations are *Leaf and *Internal.
type Node interface {
	// Freq returns the aggregate frequency of the subtree.
	Freq() uint64

	isNode()
}

// Leaf is a tree node holding one Symbol.
type Leaf struct {
	Symbol    Symbol
	Frequency uint64
}

// Internal is a tree node with exactly two children.  Its frequency is the
// sum of its children's frequencies.
type Internal struct {
	Left      Node
	Right     Node
	Frequency uint64
}

// Freq implements Node.
func (leaf *Leaf) Freq() uint64 { return leaf.Frequency }

// Freq implements Node.
func (node *Internal) Freq() uint64 { return node.Frequency }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// BuildTree constructs a Huffman tree from the given frequencies.  It fails
// with ErrEmptyInput if no symbol has a non-zero count.
//
// Equal frequencies are resolved in insertion order: leaves are inserted in
// ascending Symbol order, and each merged subtree is inserted after every
// tree that already exists.  The first tree removed from the queue becomes
// the left child.  If only one symbol is present, the root is that Leaf.
func BuildTree(freqs FrequencyTable) (Node, error) {
	h := treeHeap{list: make([]treeItem, 0, NumSymbols)}
	var seq uint32
	for symbol, freq := range freqs {
		if freq == 0 {
			continue
		}
		h.list = append(h.list, treeItem{&Leaf{Symbol(symbol), freq}, seq})
		seq++
	}
	if len(h.list) == 0 {
		return nil, ErrEmptyInput
	}

	h.Init()
	for h.Len() > 1 {
		a := heap.Pop(&h).(treeItem)
		b := heap.Pop(&h).(treeItem)

		// Compute freqSum using saturating addition
		freqSum := a.node.Freq() + b.node.Freq()
		if freqSum < a.node.Freq() {
			freqSum = math.MaxUint64
		}

		merged := &Internal{Left: a.node, Right: b.node, Frequency: freqSum}
		heap.Push(&h, treeItem{merged, seq})
		seq++
	}

	root := heap.Pop(&h).(treeItem).node
	assert.Assertf(root.Freq() != 0, "root of Huffman tree has zero frequency")
	return root, nil
}

// LeafCount returns the number of leaves under n.
func LeafCount(n Node) int {
	switch n := n.(type) {
	case *Leaf:
		return 1
	case *Internal:
		return LeafCount(n.Left) + LeafCount(n.Right)
	default:
		assert.Assertf(false, "unexpected Huffman node type %T", n)
	}
	return 0
}

// Depth returns the length of the longest root-to-leaf path under n.
func Depth(n Node) int {
	switch n := n.(type) {
	case *Leaf:
		return 0
	case *Internal:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	default:
		assert.Assertf(false, "unexpected Huffman node type %T", n)
	}
	return 0
}

// type treeItem + type treeHeap {{{

type treeItem struct {
	node Node
	seq  uint32
}

type treeHeap struct {
	list []treeItem
}

func (h *treeHeap) Init() {
	heap.Init(h)
}

func (h *treeHeap) Len() int {
	return len(h.list)
}

func (h *treeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *treeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := a.node.Freq(), b.node.Freq()
	if af != bf {
		return af < bf
	}
	return a.seq < b.seq
}

func (h *treeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(treeItem))
}

func (h *treeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = treeItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*treeHeap)(nil)

// }}}
