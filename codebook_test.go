package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{MakeCode(0, 0), "\"\""},
		{MakeCode(1, 0), "\"0\""},
		{MakeCode(2, 2), "\"10\""},
		{MakeCode(4, 3), "\"0011\""},
		{MakeCode(0, 0).Append(true).Append(false).Append(true), "\"101\""},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			assert.Equal(t, row.expect, row.code.String())
		})
	}
}

func TestCode_Bit(t *testing.T) {
	hc := MakeCode(4, 0b1011)
	assert.True(t, hc.Bit(0))
	assert.False(t, hc.Bit(1))
	assert.True(t, hc.Bit(2))
	assert.True(t, hc.Bit(3))
}

func TestCode_HasPrefix(t *testing.T) {
	assert.True(t, MakeCode(3, 0b101).HasPrefix(MakeCode(1, 0b1)))
	assert.True(t, MakeCode(3, 0b101).HasPrefix(MakeCode(2, 0b10)))
	assert.True(t, MakeCode(3, 0b101).HasPrefix(MakeCode(3, 0b101)))
	assert.False(t, MakeCode(3, 0b101).HasPrefix(MakeCode(2, 0b11)))
	assert.False(t, MakeCode(1, 0b1).HasPrefix(MakeCode(3, 0b101)))
}

func TestNewCodebook(t *testing.T) {
	book := NewCodebook(mustBuildTree(t, "AABBCCCC"))

	assert.Equal(t, MakeCode(1, 0b0), book['C'])
	assert.Equal(t, MakeCode(2, 0b10), book['A'])
	assert.Equal(t, MakeCode(2, 0b11), book['B'])
	assert.Equal(t, 3, book.Len())
	assert.Equal(t, []Symbol{'A', 'B', 'C'}, book.Symbols())

	_, ok := book.Lookup('D')
	assert.False(t, ok)
	hc, ok := book.Lookup('A')
	assert.True(t, ok)
	assert.Equal(t, "\"10\"", hc.String())
}

func TestNewCodebook_SingleSymbol(t *testing.T) {
	book := NewCodebook(mustBuildTree(t, "AAAA"))

	hc, ok := book.Lookup('A')
	require.True(t, ok)
	assert.Equal(t, "\"0\"", hc.String())
	assert.Equal(t, 1, book.Len())
}

func TestNewCodebook_SizeBySymbol(t *testing.T) {
	var freqs FrequencyTable
	copy(freqs[:], []uint64{5, 9, 12, 13, 16, 45})
	root, err := BuildTree(freqs)
	require.NoError(t, err)
	book := NewCodebook(root)

	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	assert.Equal(t, expectSizes, book.SizeBySymbol()[:6])
	for _, size := range book.SizeBySymbol()[6:] {
		assert.Zero(t, size)
	}

	expectDump := strings.Join([]string{
		"Codebook{\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")
	var buf strings.Builder
	_, err = book.Dump(&buf)
	require.NoError(t, err)
	assert.Equal(t, expectDump, buf.String())
}

func TestNewCodebook_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 20; round++ {
		var freqs FrequencyTable
		alphabet := 2 + rng.Intn(NumSymbols-1)
		for _, symbol := range rng.Perm(NumSymbols)[:alphabet] {
			freqs[symbol] = uint64(1 + rng.Intn(1000))
		}
		root, err := BuildTree(freqs)
		require.NoError(t, err)
		book := NewCodebook(root)
		require.Equal(t, alphabet, book.Len())

		symbols := book.Symbols()
		for i, x := range symbols {
			for _, y := range symbols[i+1:] {
				cx, cy := book[x], book[y]
				require.False(t, cx.HasPrefix(cy), "%s has prefix %s", cx, cy)
				require.False(t, cy.HasPrefix(cx), "%s has prefix %s", cy, cx)
			}
		}
	}
}
