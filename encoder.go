package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Encoder packs byte buffers into Huffman-coded bit streams.  An Encoder is
// immutable after NewEncoder and safe for concurrent use.
type Encoder struct {
	book    *Codebook
	minSize byte
	maxSize byte
}

// NewEncoder returns an Encoder for the given Codebook.
func NewEncoder(book Codebook) Encoder {
	e := Encoder{book: &book}
	var hasMinMax bool
	for _, hc := range book {
		if hc.Size == 0 {
			continue
		}
		if !hasMinMax {
			hasMinMax = true
			e.minSize = hc.Size
			e.maxSize = hc.Size
		} else if e.minSize > hc.Size {
			e.minSize = hc.Size
		} else if e.maxSize < hc.Size {
			e.maxSize = hc.Size
		}
	}
	return e
}

// Encode packs data most-significant-bit first, one code per byte, and pads
// the last byte with zero bits.  It fails with an *UnknownSymbolError if data
// contains a byte outside the alphabet; no output is produced in that case.
func (e Encoder) Encode(data []byte) (Payload, error) {
	bitLength, err := e.EncodedBitLength(data)
	if err != nil {
		return Payload{}, err
	}

	var buf bytes.Buffer
	buf.Grow(int((bitLength + 7) / 8))
	w := bitio.NewWriter(&buf)
	for _, b := range data {
		hc := e.book[b]
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return Payload{}, fmt.Errorf("failed to write code for byte 0x%02x: %w", b, err)
		}
	}
	if err := w.Close(); err != nil {
		return Payload{}, fmt.Errorf("failed to flush bit stream: %w", err)
	}

	return Payload{Data: buf.Bytes(), BitLength: int(bitLength)}, nil
}

// EncodedBitLength returns the number of bits Encode would produce for data,
// which is the sum of the code sizes of its bytes.
func (e Encoder) EncodedBitLength(data []byte) (uint64, error) {
	var bitLength uint64
	for i, b := range data {
		hc := e.book[b]
		if hc.Size == 0 {
			return 0, &UnknownSymbolError{Symbol: Symbol(b), Offset: i}
		}
		bitLength += uint64(hc.Size)
	}
	return bitLength, nil
}

// EncodeSymbol returns the Code for a single Symbol.  The Code has Size 0 if the
// symbol is outside the alphabet.
func (e Encoder) EncodeSymbol(symbol Symbol) Code {
	return e.book[symbol]
}

// Codebook returns a copy of the Encoder's Codebook.
func (e Encoder) Codebook() Codebook {
	if e.book == nil {
		return Codebook{}
	}
	return *e.book
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// String returns a short description of this Encoder.
func (e Encoder) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)", e.book.Len(), e.minSize, e.maxSize)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol, hc := range e.book {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = Encoder{}
