// Package membuf implements a growable dual-mode byte buffer for binary
// protocol encoding.
//
// A Buffer accumulates bytes in Writing mode, is flipped into Reading mode
// to drain them, and can be compacted to discard the consumed prefix. The
// primitive encoding (integer widths, byte order, text) is delegated to a
// Codec; the Buffer itself only manages the capacity/position/limit/mark
// state machine.
package membuf

// Mode is the Buffer state: accumulating bytes or draining them.
type Mode uint8

const (
	// Writing permits appends; the limit tracks the capacity.
	Writing Mode = iota
	// Reading permits reads; the limit marks the end of valid data.
	Reading
)

func (m Mode) String() string {
	if m == Reading {
		return "Reading"
	}
	return "Writing"
}

// Buffer is a growable byte container with an explicit write/read mode.
//
// In Writing mode pos is the next write index and limit equals the current
// capacity. Flip freezes the written extent: limit becomes pos, pos rewinds
// to zero and the Buffer enters Reading mode, where pos is the next read
// index and limit the end of valid data. 0 <= pos <= limit <= capacity
// holds at all times.
//
// A Buffer is single-owner. It is not safe for concurrent use; callers that
// share one must impose their own exclusion.
type Buffer struct {
	buf   []byte
	pos   int
	limit int
	mark  int
	mode  Mode
	codec Codec
}

// New creates an empty Buffer in Writing mode with the default capacity.
func New() *Buffer { return NewSize(DEFAULT_CAPACITY) }

// NewSize creates an empty Buffer in Writing mode with the given capacity.
func NewSize(size int) *Buffer {
	return &Buffer{
		buf:   make([]byte, size),
		limit: size,
		codec: DefaultCodec,
	}
}

// NewFrom creates a Buffer sized to p and appends p.
func NewFrom(p []byte) *Buffer {
	b := NewSize(len(p))
	b.Put(p)
	return b
}

// WithCodec allows setting a custom primitive codec and returns the Buffer
// for chaining.
func (b *Buffer) WithCodec(c Codec) *Buffer {
	b.codec = c
	return b
}

// Position returns the cursor: the next write index in Writing mode, the
// next read index in Reading mode.
func (b *Buffer) Position() int { return b.pos }

// Limit returns the writable ceiling in Writing mode or the end of valid
// data in Reading mode.
func (b *Buffer) Limit() int { return b.limit }

// Capacity returns the allocated storage size.
func (b *Buffer) Capacity() int { return len(b.buf) }

// Mode reports whether the Buffer is accumulating or draining.
func (b *Buffer) Mode() Mode { return b.mode }

// Available returns the number of unread bytes while in Reading mode, or -1
// while in Writing mode. Callers must check the mode before relying on the
// count.
func (b *Buffer) Available() int {
	if b.mode != Reading {
		return -1
	}
	return b.limit - b.pos
}

// Flip freezes everything written so far as the readable window: the limit
// becomes the write cursor, the cursor rewinds to zero and the Buffer enters
// Reading mode. Flipping twice without intervening writes collapses the
// window to zero; avoiding that is the caller's responsibility.
func (b *Buffer) Flip() {
	b.limit = b.pos
	b.pos = 0
	b.mode = Reading
}

// Clear rewinds the cursor to zero. Limit, capacity and mode are untouched,
// so in Writing mode this restarts a write pass over the same storage
// without reallocating. Compare Clean, which discards the storage.
func (b *Buffer) Clear() { b.pos = 0 }

// Mark saves the cursor. Valid in any mode, but only meaningful for reads
// after a later Flip.
func (b *Buffer) Mark() { b.mark = b.pos }

// Reset rewinds the cursor to the mark and re-enters Writing mode. Limit and
// capacity keep their values, so a subsequent append overwrites everything
// from the mark on: this is rewind-and-overwrite, not a pure re-read.
func (b *Buffer) Reset() {
	b.pos = b.mark
	b.mode = Writing
}

// Compact discards the consumed prefix [0, pos) and keeps the rest of the
// storage, through the full capacity, as a new smaller allocation. The
// Buffer re-enters Writing mode with cursor and mark at zero; the retained
// bytes stay directly readable because the limit equals their length.
//
// Only effective in Reading mode with pos > 0, otherwise a no-op. This is
// the only operation that shrinks capacity.
func (b *Buffer) Compact() {
	if b.mode != Reading || b.pos == 0 {
		return
	}
	rest := make([]byte, len(b.buf)-b.pos)
	copy(rest, b.buf[b.pos:])
	b.buf = rest
	b.limit = len(rest)
	b.pos = 0
	b.mark = 0
	b.mode = Writing
}

// Clean discards the storage and returns the Buffer to its freshly created
// state: default capacity, cursor and mark at zero, Writing mode.
func (b *Buffer) Clean() {
	b.buf = make([]byte, DEFAULT_CAPACITY)
	b.limit = DEFAULT_CAPACITY
	b.pos = 0
	b.mark = 0
	b.mode = Writing
}
