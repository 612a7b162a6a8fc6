package membuf

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the package default byte order.
	Order = BE
)

// DEFAULT_CAPACITY is the storage size of a freshly created Buffer.
const DEFAULT_CAPACITY = 16

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// CopyRange returns an independent copy of p[from:to].
func CopyRange(p []byte, from, to int) ([]byte, error) {
	if from < 0 || to < from || to > len(p) {
		return nil, fmt.Errorf("%w: [%d:%d) of %d bytes", ErrRange, from, to, len(p))
	}
	out := make([]byte, to-from)
	copy(out, p[from:to])
	return out, nil
}
