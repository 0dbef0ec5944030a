package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a code is requested for a sample with
	// no symbols in it.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrUnknownSymbol is matched by errors.Is for every *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrMalformedPayload is returned when a packed bit stream is truncated,
	// corrupt, or claims more bits than it carries.
	ErrMalformedPayload = errors.New("huffman: malformed payload")

	// ErrMalformedTable is returned when a serialized frequency table cannot
	// be parsed.
	ErrMalformedTable = errors.New("huffman: malformed frequency table")
)

// UnknownSymbolError reports a byte that has no code in the Codebook.
type UnknownSymbolError struct {
	// Symbol is the offending byte value.
	Symbol Symbol

	// Offset is the index of the first occurrence in the input.
	Offset int
}

// Error implements error.
func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%v: byte 0x%02x at offset %d", ErrUnknownSymbol, byte(e.Symbol), e.Offset)
}

// Is reports whether target is ErrUnknownSymbol.
func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

var _ error = (*UnknownSymbolError)(nil)
