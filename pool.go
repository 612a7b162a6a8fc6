package membuf

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
)

// Size classes are multiples of POOL_CLASS. Requests above MAX_POOLED bypass
// the pool: buffers that large are rare enough that keeping them alive would
// only pin memory.
const (
	POOL_CLASS = 512
	MAX_POOLED = 64 * 1024
)

// classes maps a size class to its free list. The table is a concurrent map
// so independent goroutines can each run their own Buffers; a Buffer handed
// out is still single-owner.
var classes = xsync.NewMap[int, *sync.Pool]()

// GetBuffer returns an empty Writing-mode Buffer with capacity at least
// size, reusing a pooled one when available.
func GetBuffer(size int) *Buffer {
	if size > MAX_POOLED {
		return NewSize(size)
	}
	class := Roundup(size, POOL_CLASS)
	pool, ok := classes.Load(class)
	if !ok {
		pool, _ = classes.LoadOrStore(class, &sync.Pool{
			New: func() any { return NewSize(class) },
		})
	}
	return pool.Get().(*Buffer)
}

// PutBuffer hands b back to its size class for reuse. Buffers whose capacity
// no longer matches a class (grown, compacted, or never pooled) are dropped
// for the collector.
func PutBuffer(b *Buffer) {
	if b == nil {
		return
	}
	class := b.Capacity()
	if class == 0 || class > MAX_POOLED || class%POOL_CLASS != 0 {
		return
	}
	pool, ok := classes.Load(class)
	if !ok {
		return
	}
	// Restart the write pass over the retained storage before pooling.
	b.pos = 0
	b.mark = 0
	b.limit = len(b.buf)
	b.mode = Writing
	b.codec = DefaultCodec
	pool.Put(b)
}

// CHUNK_SIZE is the copy granularity of Buffer.ReadFrom. 32KB matches the
// default used by io.Copy.
const CHUNK_SIZE = 32 * 1024

var chunkPool = sync.Pool{
	New: func() any {
		b := make([]byte, CHUNK_SIZE)
		return &b
	},
}
