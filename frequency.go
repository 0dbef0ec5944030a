package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// FrequencyTable holds the number of occurrences of each Symbol in a sample.
// Symbols with a count of 0 are not part of the alphabet.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies tallies every byte of sample.  It fails with ErrEmptyInput
// if sample has zero length.
func CountFrequencies(sample []byte) (FrequencyTable, error) {
	var freqs FrequencyTable
	if len(sample) == 0 {
		return freqs, ErrEmptyInput
	}
	for _, b := range sample {
		freqs[b]++
	}
	return freqs, nil
}

// Count returns the number of occurrences of symbol.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	return ft[symbol]
}

// Len returns the number of distinct symbols with a non-zero count.
func (ft *FrequencyTable) Len() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		next := sum + freq
		if next < sum {
			return math.MaxUint64
		}
		sum = next
	}
	return sum
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.Len())
	for symbol, freq := range ft {
		if freq != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, ft[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
