package membuf

import "errors"

var (
	// ErrOutOfBounds indicates a read requested more bytes than the readable
	// window holds. The operation is aborted; nothing is consumed.
	ErrOutOfBounds = errors.New("membuf: read exceeds readable limit")

	// ErrRange indicates an invalid sub-range was passed to CopyRange.
	ErrRange = errors.New("membuf: invalid range")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid count from Write.
	ErrInvalidWrite = errors.New("membuf: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid count from Read.
	ErrInvalidRead = errors.New("membuf: reader returned invalid count from Read")
)
