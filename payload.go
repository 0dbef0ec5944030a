package huffman

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"
	"io"
)

// payloadHeaderSize is the width of the bit count that precedes the packed
// bytes on the wire.
const payloadHeaderSize = 8

// Payload is a packed bit stream together with its exact length in bits.  The
// final byte of Data is zero-padded, so BitLength cannot be recovered from
// Data alone.
type Payload struct {
	Data      []byte
	BitLength int
}

// Validate checks that BitLength fits in Data.
func (p Payload) Validate() error {
	if p.BitLength < 0 {
		return fmt.Errorf("%w: negative bit length %d", ErrMalformedPayload, p.BitLength)
	}
	if want := payloadByteLen(uint64(p.BitLength)); uint64(len(p.Data)) < want {
		return fmt.Errorf("%w: bit length %d needs %d bytes, have %d", ErrMalformedPayload, p.BitLength, want, len(p.Data))
	}
	return nil
}

// MarshalBinary encodes the Payload as a big-endian uint64 bit count
// followed by the packed bytes.  Bytes beyond the bit count are dropped.
func (p Payload) MarshalBinary() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := payloadByteLen(uint64(p.BitLength))
	out := make([]byte, 0, payloadHeaderSize+n)
	out = binary.BigEndian.AppendUint64(out, uint64(p.BitLength))
	out = append(out, p.Data[:n]...)
	return out, nil
}

// UnmarshalBinary decodes a Payload produced by MarshalBinary.  The byte
// count must match the bit count exactly.
func (p *Payload) UnmarshalBinary(data []byte) error {
	if len(data) < payloadHeaderSize {
		return fmt.Errorf("%w: need %d header bytes, have %d", ErrMalformedPayload, payloadHeaderSize, len(data))
	}
	bitLength := binary.BigEndian.Uint64(data)
	body := data[payloadHeaderSize:]
	if bitLength > uint64(len(body))*8 || payloadByteLen(bitLength) != uint64(len(body)) {
		return fmt.Errorf("%w: bit length %d does not match %d data bytes", ErrMalformedPayload, bitLength, len(body))
	}
	*p = Payload{
		Data:      append([]byte(nil), body...),
		BitLength: int(bitLength),
	}
	return nil
}

// WriteTo writes the MarshalBinary form of the Payload to w.
func (p Payload) WriteTo(w io.Writer) (int64, error) {
	raw, err := p.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(raw)
	return int64(n), err
}

// ReadFrom reads one Payload in MarshalBinary form from r.  Unlike
// UnmarshalBinary it stops after the packed bytes, so several payloads may be
// read from the same stream in sequence.
func (p *Payload) ReadFrom(r io.Reader) (int64, error) {
	var header [payloadHeaderSize]byte
	n, err := io.ReadFull(r, header[:])
	total := int64(n)
	if err != nil {
		return total, fmt.Errorf("%w: reading header: %v", ErrMalformedPayload, err)
	}

	bitLength := binary.BigEndian.Uint64(header[:])
	if bitLength > uint64(maxInt) {
		return total, fmt.Errorf("%w: bit length %d out of range", ErrMalformedPayload, bitLength)
	}
	want := int64(payloadByteLen(bitLength))
	var body bytes.Buffer
	copied, err := io.CopyN(&body, r, want)
	total += copied
	if err != nil {
		return total, fmt.Errorf("%w: reading %d data bytes: %v", ErrMalformedPayload, want, err)
	}

	*p = Payload{Data: body.Bytes(), BitLength: int(bitLength)}
	return total, nil
}

const maxInt = int(^uint(0) >> 1)

func payloadByteLen(bitLength uint64) uint64 {
	return bitLength/8 + (bitLength%8+7)/8
}

var (
	_ encoding.BinaryMarshaler   = Payload{}
	_ encoding.BinaryUnmarshaler = (*Payload)(nil)
	_ io.WriterTo                = Payload{}
	_ io.ReaderFrom              = (*Payload)(nil)
)
