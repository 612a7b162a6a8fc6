package membuf

import (
	"fmt"
	"io"
)

// checkBounds guards every read: size bytes must fit inside the readable
// window [pos, limit). Reading 0 bytes never fails.
func (b *Buffer) checkBounds(size int) error {
	if size > b.limit || b.pos+size > b.limit {
		return fmt.Errorf("%w: need %d bytes, %d readable", ErrOutOfBounds, size, b.limit-b.pos)
	}
	return nil
}

// read is the bounds-checked primitive every read funnels through: copy size
// bytes from the cursor, advance past them, return the copy.
func (b *Buffer) read(size int) ([]byte, error) {
	if err := b.checkBounds(size); err != nil {
		return nil, err
	}
	out := make([]byte, size)
	copy(out, b.buf[b.pos:b.pos+size])
	b.pos += size
	return out, nil
}

// ReadByte reads a single byte. It implements the io.ByteReader interface
// over the readable window.
func (b *Buffer) ReadByte() (byte, error) {
	p, err := b.read(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadInt16 reads 2 bytes and decodes them in the codec's byte order.
func (b *Buffer) ReadInt16() (int16, error) {
	p, err := b.read(2)
	if err != nil {
		return 0, err
	}
	return b.codec.DecodeInt16(p), nil
}

// ReadInt32 reads 4 bytes and decodes them in the codec's byte order.
func (b *Buffer) ReadInt32() (int32, error) {
	p, err := b.read(4)
	if err != nil {
		return 0, err
	}
	return b.codec.DecodeInt32(p), nil
}

// ReadInt64 reads 8 bytes and decodes them in the codec's byte order.
func (b *Buffer) ReadInt64() (int64, error) {
	p, err := b.read(8)
	if err != nil {
		return 0, err
	}
	return b.codec.DecodeInt64(p), nil
}

// ReadBytes returns an independent copy of the next size bytes.
func (b *Buffer) ReadBytes(size int) ([]byte, error) { return b.read(size) }

// ReadString reads size bytes and decodes them as UTF-8 text.
func (b *Buffer) ReadString(size int) (string, error) {
	p, err := b.read(size)
	if err != nil {
		return "", err
	}
	return b.codec.DecodeString(p), nil
}

// Bytes returns an independent copy of the valid byte range. A Buffer in
// Writing mode is flipped first, so the copy covers everything written so
// far and the Buffer is left in Reading mode.
func (b *Buffer) Bytes() []byte {
	if b.mode != Reading {
		b.Flip()
	}
	out := make([]byte, b.limit-b.pos)
	copy(out, b.buf[b.pos:b.limit])
	return out
}

// WriteTo implements the io.WriterTo interface, draining the readable window
// to w. A Buffer in Writing mode is flipped first.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if b.mode != Reading {
		b.Flip()
	}
	avail := b.limit - b.pos
	if avail <= 0 {
		return 0, nil
	}
	n, err := w.Write(b.buf[b.pos:b.limit])
	if n > avail {
		return int64(n), ErrInvalidWrite
	}
	b.pos += n
	if err != nil {
		return int64(n), err
	}
	if n < avail {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}
