package membuf

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func BenchmarkPutInt32(b *testing.B) {
	buf := NewSize(4 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		for j := 0; j < 256; j++ {
			buf.PutInt32(int32(j))
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := GetBuffer(64)
		buf.PutInt64(int64(i))
		buf.PutInt32(int32(i))
		buf.PutString("frame")
		buf.Flip()
		_, _ = buf.ReadInt64()
		_, _ = buf.ReadInt32()
		_, _ = buf.ReadString(5)
		PutBuffer(buf)
	}
}

// Baseline comparison using binary.Write into a bytes.Buffer, to see the
// overhead of the mode state machine.
func BenchmarkStandardBinaryWrite(b *testing.B) {
	var buf bytes.Buffer
	buf.Grow(4 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		for j := 0; j < 256; j++ {
			_ = binary.Write(&buf, Order, int32(j))
		}
	}
}
