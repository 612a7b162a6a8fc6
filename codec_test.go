package membuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultCodecByteOrder pins the wire bytes of the default codec: fixed
// width, big-endian. Round-trip tests alone would pass with either order.
func TestDefaultCodecByteOrder(t *testing.T) {
	assert.Equal(t, []byte{0x11, 0x22}, DefaultCodec.EncodeInt16(0x1122))
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, DefaultCodec.EncodeInt32(0x11223344))
	assert.Equal(t,
		[]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88},
		DefaultCodec.EncodeInt64(0x1122334455667788))

	// Negative values are two's complement at the fixed width.
	assert.Equal(t, []byte{0xFF, 0xFF}, DefaultCodec.EncodeInt16(-1))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFE}, DefaultCodec.EncodeInt32(-2))
}

func TestLittleEndianCodecByteOrder(t *testing.T) {
	le := OrderCodec(LE)
	assert.Equal(t, []byte{0x22, 0x11}, le.EncodeInt16(0x1122))
	assert.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, le.EncodeInt32(0x11223344))
	assert.Equal(t,
		[]byte{0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11},
		le.EncodeInt64(0x1122334455667788))
}

func TestCodecRoundTrip(t *testing.T) {
	for _, codec := range []Codec{OrderCodec(BE), OrderCodec(LE)} {
		for _, v := range []int16{0, 1, -1, 257, -257, 32767, -32768} {
			assert.Equal(t, v, codec.DecodeInt16(codec.EncodeInt16(v)))
		}
		for _, v := range []int32{0, 1, -1, 1 << 24, 2147483647, -2147483648} {
			assert.Equal(t, v, codec.DecodeInt32(codec.EncodeInt32(v)))
		}
		for _, v := range []int64{0, 1, -1, 1 << 56, 9223372036854775807, -9223372036854775808} {
			assert.Equal(t, v, codec.DecodeInt64(codec.EncodeInt64(v)))
		}
	}
}

func TestCodecText(t *testing.T) {
	for _, s := range []string{"", "mmv", "héllo", "世界", "a\x00b"} {
		p := DefaultCodec.EncodeString(s)
		assert.Equal(t, s, DefaultCodec.DecodeString(p))
	}
	// UTF-8 is passed through byte-for-byte.
	assert.Equal(t, []byte{0xE4, 0xB8, 0x96}, DefaultCodec.EncodeString("世"))
}

func TestCopyRange(t *testing.T) {
	src := []byte{0, 1, 2, 3, 4}

	got, err := CopyRange(src, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	// The copy is independent of the source.
	got[0] = 0xFF
	assert.Equal(t, byte(1), src[1])

	empty, err := CopyRange(src, 2, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, bad := range [][2]int{{-1, 2}, {3, 2}, {0, 6}} {
		_, err := CopyRange(src, bad[0], bad[1])
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRange)
	}
}
