package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Decoder unpacks Huffman-coded bit streams by walking the tree one bit at a
// time.  A Decoder is immutable after NewDecoder and safe for concurrent use.
type Decoder struct {
	root     Node
	leaves   int
	maxDepth int
}

// NewDecoder returns a Decoder for the tree rooted at root.
func NewDecoder(root Node) Decoder {
	assert.Assertf(root != nil, "nil Huffman tree")
	return Decoder{
		root:     root,
		leaves:   LeafCount(root),
		maxDepth: Depth(root),
	}
}

// Decode reads exactly bitLength bits from data, most significant bit first,
// and returns the symbols they spell.  A 0 bit moves to the left child and a
// 1 bit to the right child; reaching a Leaf emits its symbol and returns to
// the root.
//
// Decode fails with ErrMalformedPayload if bitLength is negative or larger
// than 8*len(data), or if the bits run out in the middle of a code.
func (d Decoder) Decode(data []byte, bitLength int) ([]byte, error) {
	if bitLength < 0 {
		return nil, fmt.Errorf("%w: negative bit length %d", ErrMalformedPayload, bitLength)
	}
	if capacity := uint64(len(data)) * 8; uint64(bitLength) > capacity {
		return nil, fmt.Errorf("%w: bit length %d exceeds %d available bits", ErrMalformedPayload, bitLength, capacity)
	}

	r := bitio.NewReader(bytes.NewReader(data))

	if leaf, ok := d.root.(*Leaf); ok {
		out := make([]byte, 0, bitLength)
		for i := 0; i < bitLength; i++ {
			bit, err := r.ReadBool()
			if err != nil {
				return nil, fmt.Errorf("%w: bit %d: %v", ErrMalformedPayload, i, err)
			}
			if bit {
				return nil, fmt.Errorf("%w: bit %d is 1 in a single-symbol code", ErrMalformedPayload, i)
			}
			out = append(out, byte(leaf.Symbol))
		}
		return out, nil
	}

	out := make([]byte, 0, bitLength/max(d.maxDepth, 1))
	cursor := d.root
	var depth int
	for i := 0; i < bitLength; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("%w: bit %d: %v", ErrMalformedPayload, i, err)
		}

		node, ok := cursor.(*Internal)
		assert.Assertf(ok, "Huffman decoder cursor at %T, not *Internal", cursor)
		if bit {
			cursor = node.Right
		} else {
			cursor = node.Left
		}
		depth++

		switch n := cursor.(type) {
		case *Leaf:
			out = append(out, byte(n.Symbol))
			cursor = d.root
			depth = 0
		case *Internal:
			// keep descending
		default:
			assert.Assertf(false, "unexpected Huffman node type %T", n)
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("%w: bit stream ends %d bits into a code", ErrMalformedPayload, depth)
	}
	return out, nil
}

// DecodePayload is shorthand for d.Decode(p.Data, p.BitLength).
func (d Decoder) DecodePayload(p Payload) ([]byte, error) {
	return d.Decode(p.Data, p.BitLength)
}

// Root returns the root of the Decoder's tree.
func (d Decoder) Root() Node {
	return d.root
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() int {
	if d.maxDepth == 0 && d.root != nil {
		return 1
	}
	return d.maxDepth
}

// String returns a short description of this Decoder.
func (d Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with tree depth %d)", d.leaves, d.maxDepth)
}

// Dump writes a programmer-readable debugging dump of the Decoder's tree to
// the given writer, one node per line, indented by depth.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	dumpNode(&buf, d.root, 1, "")
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n Node, indent int, edge string) {
	pad := strings.Repeat("\t", indent)
	switch n := n.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "%s%sLeaf{symbol=%d, freq=%d}\n", pad, edge, n.Symbol, n.Frequency)
	case *Internal:
		fmt.Fprintf(buf, "%s%sInternal{freq=%d}\n", pad, edge, n.Frequency)
		dumpNode(buf, n.Left, indent+1, "0: ")
		dumpNode(buf, n.Right, indent+1, "1: ")
	case nil:
		fmt.Fprintf(buf, "%s%snil\n", pad, edge)
	default:
		assert.Assertf(false, "unexpected Huffman node type %T", n)
	}
}

var _ fmt.Stringer = Decoder{}
