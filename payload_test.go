package huffman

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayload_MarshalBinary(t *testing.T) {
	p := Payload{Data: []byte{0xaf, 0x00}, BitLength: 12}

	raw, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 12, 0xaf, 0x00}, raw)

	var q Payload
	require.NoError(t, q.UnmarshalBinary(raw))
	require.Equal(t, p, q)
}

func TestPayload_MarshalBinary_DropsExtraBytes(t *testing.T) {
	p := Payload{Data: []byte{0xc0, 0xee, 0xee}, BitLength: 2}

	raw, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 2, 0xc0}, raw)
}

func TestPayload_MarshalBinary_Invalid(t *testing.T) {
	_, err := Payload{Data: []byte{0x00}, BitLength: 9}.MarshalBinary()
	require.ErrorIs(t, err, ErrMalformedPayload)

	_, err = Payload{BitLength: -1}.MarshalBinary()
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestPayload_UnmarshalBinary_Invalid(t *testing.T) {
	type testRow struct {
		name string
		raw  []byte
	}

	testData := [...]testRow{
		{"short header", []byte{0, 0, 0}},
		{"missing data", []byte{0, 0, 0, 0, 0, 0, 0, 9, 0x00}},
		{"extra data", []byte{0, 0, 0, 0, 0, 0, 0, 1, 0x00, 0x00}},
		{"huge bit length", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var p Payload
			require.ErrorIs(t, p.UnmarshalBinary(row.raw), ErrMalformedPayload)
		})
	}
}

func TestPayload_WriteToReadFrom(t *testing.T) {
	first := Payload{Data: []byte{0xaf, 0x00}, BitLength: 12}
	second := Payload{Data: []byte{0x00}, BitLength: 4}

	var buf bytes.Buffer
	n, err := first.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(10), n)
	_, err = second.WriteTo(&buf)
	require.NoError(t, err)

	var p Payload
	n, err = p.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(10), n)
	require.Equal(t, first, p)

	_, err = p.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, second, p)

	_, err = p.ReadFrom(&buf)
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestPayload_ReadFrom_Truncated(t *testing.T) {
	var p Payload
	_, err := p.ReadFrom(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 16, 0x01}))
	require.ErrorIs(t, err, ErrMalformedPayload)
}
