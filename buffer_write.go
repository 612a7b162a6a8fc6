package membuf

import "io"

// put is the append primitive every write funnels through.
//
// A Buffer in Reading mode transitions back to Writing first: the cursor
// jumps past the readable window (pos = limit), the ceiling returns to the
// capacity and the mark is dropped. New data always lands after everything
// previously written; nothing unread is overwritten.
//
// When the remaining room cannot hold len(p) the storage grows to exactly
// pos+len(p), preserving the written prefix [0, pos) byte-for-byte.
//
// The cursor then advances by the full source length len(p), not by n.
// Appending a sub-range of a larger source still advances past the whole
// source, leaving the uncopied tail as a gap of stale bytes. Callers depend
// on this cursor arithmetic; see PutRange.
func (b *Buffer) put(p []byte, off, n int) {
	if b.mode == Reading {
		b.pos = b.limit
		b.limit = len(b.buf)
		b.mark = 0
		b.mode = Writing
	}
	if len(b.buf)-b.pos < len(p) {
		grown := make([]byte, b.pos+len(p))
		copy(grown, b.buf[:b.pos])
		b.buf = grown
		b.limit = len(grown)
	}
	copy(b.buf[b.pos:b.pos+n], p[off:off+n])
	b.pos += len(p)
}

// Put appends p in its entirety. Defined regardless of mode: a Buffer in
// Reading mode implicitly transitions back to Writing, so callers may
// alternate draining and appending without an explicit mode call.
func (b *Buffer) Put(p []byte) { b.put(p, 0, len(p)) }

// PutRange appends n bytes of p starting at off. The cursor advances by
// len(p) regardless of n, so capacity is reserved for the whole source and
// the bytes beyond the copied sub-range are left unspecified. An off/n pair
// outside p panics, as slicing does.
func (b *Buffer) PutRange(p []byte, off, n int) { b.put(p, off, n) }

// PutByte appends a single byte.
func (b *Buffer) PutByte(c byte) { b.put([]byte{c}, 0, 1) }

// PutInt16 appends v as 2 bytes in the codec's byte order.
func (b *Buffer) PutInt16(v int16) { b.Put(b.codec.EncodeInt16(v)) }

// PutInt32 appends v as 4 bytes in the codec's byte order.
func (b *Buffer) PutInt32(v int32) { b.Put(b.codec.EncodeInt32(v)) }

// PutInt64 appends v as 8 bytes in the codec's byte order.
func (b *Buffer) PutInt64(v int64) { b.Put(b.codec.EncodeInt64(v)) }

// PutString appends the UTF-8 bytes of s.
func (b *Buffer) PutString(s string) { b.Put(b.codec.EncodeString(s)) }

// PutInt32s appends vs element-wise. An empty slice is a no-op.
func (b *Buffer) PutInt32s(vs []int32) {
	for _, v := range vs {
		b.PutInt32(v)
	}
}

// Write implements the io.Writer interface. Growth means an append never
// fails, so the returned error is always nil.
func (b *Buffer) Write(p []byte) (int, error) {
	b.Put(p)
	return len(p), nil
}

// WriteByte implements the io.ByteWriter interface.
func (b *Buffer) WriteByte(c byte) error {
	b.PutByte(c)
	return nil
}

// WriteString implements the io.StringWriter interface.
func (b *Buffer) WriteString(s string) (int, error) {
	b.PutString(s)
	return len(s), nil
}

// ReadFrom implements the io.ReaderFrom interface, appending everything r
// yields until EOF.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	chunkPtr := chunkPool.Get().(*[]byte)
	defer chunkPool.Put(chunkPtr)
	chunk := *chunkPtr

	var total int64
	for {
		n, err := r.Read(chunk)
		if n < 0 {
			return total, ErrInvalidRead
		}
		if n > 0 {
			b.Put(chunk[:n])
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
