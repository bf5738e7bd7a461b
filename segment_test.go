package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-qrcode/qrcode/internal/bitset"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		mode Mode
	}{
		{"01234567", ModeNumeric},
		{"HELLO WORLD", ModeAlphanumeric},
		{"a", ModeByte},
		{"", ModeNumeric},
	}

	for _, c := range cases {
		mode, err := classify([]byte(c.text))
		require.NoError(t, err)
		assert.Equal(t, c.mode, mode, "text=%q", c.text)
	}
}

func TestClassifyRejectsControlCharacters(t *testing.T) {
	_, err := classify([]byte{0x01})
	require.Error(t, err)
}

// TestNumericTailUsesStandardBitWidths checks that a 1-digit tail uses 4
// bits and a 2-digit tail uses 7, not the `1 + 3*n` formula some source
// trees use.
func TestNumericTailUsesStandardBitWidths(t *testing.T) {
	buf := bitset.New()
	require.NoError(t, encodeNumeric(buf, []byte("1")))
	assert.Equal(t, 4, buf.Len())

	buf = bitset.New()
	require.NoError(t, encodeNumeric(buf, []byte("12")))
	assert.Equal(t, 7, buf.Len())

	buf = bitset.New()
	require.NoError(t, encodeNumeric(buf, []byte("123")))
	assert.Equal(t, 10, buf.Len())
}

func TestEncodeAlphanumericTailWidth(t *testing.T) {
	buf := bitset.New()
	require.NoError(t, encodeAlphanumeric(buf, []byte("A")))
	assert.Equal(t, 6, buf.Len())

	buf = bitset.New()
	require.NoError(t, encodeAlphanumeric(buf, []byte("AB")))
	assert.Equal(t, 11, buf.Len())
}

// TestTerminatorCountNeverUnderflows checks that a full buffer yields
// zero terminator bits, computed with signed arithmetic rather than
// wrapping around to a huge unsigned count.
func TestTerminatorCountNeverUnderflows(t *testing.T) {
	buf := bitset.New()
	require.NoError(t, buf.AppendBytes([]byte{0xFF}))

	require.NoError(t, appendTerminatorAndPadding(buf, 8))

	assert.Equal(t, 8, buf.Len())
}

func TestPaddingAlternatesECAnd11(t *testing.T) {
	buf := bitset.New()
	require.NoError(t, buf.AppendBytes([]byte{0x00}))

	require.NoError(t, appendTerminatorAndPadding(buf, 8*4))

	b1, err := buf.ByteAt(16)
	require.NoError(t, err)
	assert.Equal(t, byte(0xEC), b1)

	b2, err := buf.ByteAt(24)
	require.NoError(t, err)
	assert.Equal(t, byte(0x11), b2)
}
