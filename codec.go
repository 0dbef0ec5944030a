package huffman

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// tableVersion is the first byte of a serialized frequency table.
const tableVersion = 1

// Codec is a Huffman code built from one sample.  It owns its tree and
// Codebook; both are fixed at construction, so Encode and Decode may be
// called concurrently.  Two Codecs never share state.
type Codec struct {
	freqs     FrequencyTable
	root      Node
	enc       Encoder
	dec       Decoder
	bitLength atomic.Int64
}

// New builds a Codec from the byte frequencies of sample.  It fails with
// ErrEmptyInput if sample is empty.
func New(sample []byte) (*Codec, error) {
	freqs, err := CountFrequencies(sample)
	if err != nil {
		return nil, err
	}
	return NewFromFrequencies(freqs)
}

// NewFromFrequencies builds a Codec from a previously counted table.  It
// fails with ErrEmptyInput if every count is zero, and with ErrMalformedTable
// if the counts would need a code longer than 64 bits.
func NewFromFrequencies(freqs FrequencyTable) (*Codec, error) {
	c := new(Codec)
	if err := c.init(freqs); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Codec) init(freqs FrequencyTable) error {
	root, err := BuildTree(freqs)
	if err != nil {
		return err
	}
	if depth := Depth(root); depth > maxBitsPerCode {
		return fmt.Errorf("%w: tree depth %d exceeds %d bits", ErrMalformedTable, depth, maxBitsPerCode)
	}
	c.freqs = freqs
	c.root = root
	c.enc = NewEncoder(NewCodebook(root))
	c.dec = NewDecoder(root)
	c.bitLength.Store(0)
	return nil
}

// Encode packs data and returns the packed bytes and the number of
// meaningful bits in them.  The bit count is also remembered for BitLength.
func (c *Codec) Encode(data []byte) ([]byte, int, error) {
	p, err := c.EncodePayload(data)
	if err != nil {
		return nil, 0, err
	}
	return p.Data, p.BitLength, nil
}

// EncodePayload is like Encode but returns a Payload.
func (c *Codec) EncodePayload(data []byte) (Payload, error) {
	p, err := c.enc.Encode(data)
	if err != nil {
		return Payload{}, err
	}
	c.bitLength.Store(int64(p.BitLength))
	return p, nil
}

// Decode unpacks exactly bitLength bits of packed.
func (c *Codec) Decode(packed []byte, bitLength int) ([]byte, error) {
	return c.dec.Decode(packed, bitLength)
}

// DecodePayload is shorthand for c.Decode(p.Data, p.BitLength).
func (c *Codec) DecodePayload(p Payload) ([]byte, error) {
	return c.dec.DecodePayload(p)
}

// BitLength returns the bit count of the most recent successful Encode, or 0
// if there has been none.  With concurrent encodes it is one of them.
func (c *Codec) BitLength() int {
	return int(c.bitLength.Load())
}

// Frequencies returns the table the Codec was built from.
func (c *Codec) Frequencies() FrequencyTable {
	return c.freqs
}

// Tree returns the root of the Huffman tree.  Callers must not modify it.
func (c *Codec) Tree() Node {
	return c.root
}

// Codebook returns a copy of the Codebook.
func (c *Codec) Codebook() Codebook {
	return c.enc.Codebook()
}

// Encoder returns the Codec's Encoder.
func (c *Codec) Encoder() Encoder {
	return c.enc
}

// Decoder returns the Codec's Decoder.
func (c *Codec) Decoder() Decoder {
	return c.dec
}

// String returns a short description of this Codec.
func (c *Codec) String() string {
	return fmt.Sprintf("(Huffman codec with %d symbols from %d sample bytes)", c.freqs.Len(), c.freqs.Total())
}

// MarshalBinary serializes the frequency table, which is all a receiver needs
// to rebuild an identical Codec.  The layout is a version byte, a uvarint
// symbol count, and one (symbol byte, uvarint count) pair per symbol in
// ascending order.
func (c *Codec) MarshalBinary() ([]byte, error) {
	symbols := c.freqs.Symbols()
	out := make([]byte, 0, 2+len(symbols)*(1+binary.MaxVarintLen64))
	out = append(out, tableVersion)
	out = binary.AppendUvarint(out, uint64(len(symbols)))
	for _, symbol := range symbols {
		out = append(out, byte(symbol))
		out = binary.AppendUvarint(out, c.freqs[symbol])
	}
	return out, nil
}

// UnmarshalBinary rebuilds the Codec from the output of MarshalBinary.
func (c *Codec) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: no data", ErrMalformedTable)
	}
	if data[0] != tableVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedTable, data[0])
	}
	data = data[1:]

	count, n := binary.Uvarint(data)
	if n <= 0 {
		return fmt.Errorf("%w: bad symbol count", ErrMalformedTable)
	}
	if count == 0 || count > NumSymbols {
		return fmt.Errorf("%w: symbol count %d out of range", ErrMalformedTable, count)
	}
	data = data[n:]

	var freqs FrequencyTable
	last := -1
	for i := uint64(0); i < count; i++ {
		if len(data) == 0 {
			return fmt.Errorf("%w: truncated at entry %d", ErrMalformedTable, i)
		}
		symbol := int(data[0])
		if symbol <= last {
			return fmt.Errorf("%w: symbol %d out of order", ErrMalformedTable, symbol)
		}
		freq, n := binary.Uvarint(data[1:])
		if n <= 0 {
			return fmt.Errorf("%w: bad count for symbol %d", ErrMalformedTable, symbol)
		}
		if freq == 0 {
			return fmt.Errorf("%w: zero count for symbol %d", ErrMalformedTable, symbol)
		}
		freqs[symbol] = freq
		last = symbol
		data = data[1+n:]
	}
	if len(data) != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformedTable, len(data))
	}

	return c.init(freqs)
}

// Fingerprint returns the xxHash64 of the serialized frequency table.  Codecs
// built from equal tables have equal fingerprints and identical codes.
func (c *Codec) Fingerprint() uint64 {
	raw, _ := c.MarshalBinary()
	return xxhash.Sum64(raw)
}

var (
	_ encoding.BinaryMarshaler   = (*Codec)(nil)
	_ encoding.BinaryUnmarshaler = (*Codec)(nil)
	_ fmt.Stringer               = (*Codec)(nil)
)
