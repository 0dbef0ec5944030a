package huffman

import (
	"math"
)

// Symbol represents one byte of input.  Symbols are unsigned; they are never
// interpreted as characters.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint8)
