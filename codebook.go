package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Codebook maps each Symbol to its Code.  A Code with Size 0 means the
// symbol is not in the alphabet.
type Codebook [NumSymbols]Code

// NewCodebook derives the codes from a Huffman tree by walking it depth
// first: a left edge appends 0, a right edge appends 1.  A tree consisting of
// a single Leaf gets the one-bit code "0".
func NewCodebook(root Node) Codebook {
	var book Codebook
	if leaf, ok := root.(*Leaf); ok {
		book[leaf.Symbol] = MakeCode(1, 0)
		return book
	}
	assignCodes(&book, root, Code{})
	return book
}

func assignCodes(book *Codebook, n Node, prefix Code) {
	switch n := n.(type) {
	case *Leaf:
		assert.Assertf(prefix.Size != 0, "empty code for symbol %d", n.Symbol)
		assert.Assertf(book[n.Symbol].Size == 0, "symbol %d appears twice in Huffman tree", n.Symbol)
		book[n.Symbol] = prefix
	case *Internal:
		assert.Assertf(prefix.Size < maxBitsPerCode, "Huffman tree deeper than %d bits", maxBitsPerCode)
		assignCodes(book, n.Left, prefix.Append(false))
		assignCodes(book, n.Right, prefix.Append(true))
	default:
		assert.Assertf(false, "unexpected Huffman node type %T", n)
	}
}

// Lookup returns the Code for symbol, and false if symbol is not in the
// alphabet.
func (book *Codebook) Lookup(symbol Symbol) (Code, bool) {
	hc := book[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols in the alphabet.
func (book *Codebook) Len() int {
	var n int
	for _, hc := range book {
		if hc.Size != 0 {
			n++
		}
	}
	return n
}

// Symbols returns the symbols of the alphabet in ascending order.
func (book *Codebook) Symbols() []Symbol {
	out := make([]Symbol, 0, book.Len())
	for symbol, hc := range book {
		if hc.Size != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// SizeBySymbol returns an array containing the bit length for each Symbol,
// with 0 for symbols outside the alphabet.
func (book *Codebook) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol, hc := range book {
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Codebook to the
// given writer.  Symbols outside the alphabet are omitted.
func (book *Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	for symbol, hc := range book {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
