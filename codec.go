package membuf

import "encoding/binary"

// Codec converts primitive values to and from fixed-width byte sequences.
// An implementation commits to a single byte order so that every
// Encode/Decode pair round-trips. The Buffer never inspects encoded bytes;
// it only moves them.
type Codec interface {
	EncodeInt16(v int16) []byte
	EncodeInt32(v int32) []byte
	EncodeInt64(v int64) []byte
	DecodeInt16(p []byte) int16
	DecodeInt32(p []byte) int32
	DecodeInt64(p []byte) int64
	// EncodeString returns the UTF-8 bytes of s.
	EncodeString(s string) []byte
	// DecodeString interprets p as UTF-8 text.
	DecodeString(p []byte) string
}

// orderCodec encodes integers at their fixed width in a configurable byte
// order and text as UTF-8.
type orderCodec struct {
	order binary.ByteOrder
}

// OrderCodec returns a Codec using the given byte order.
func OrderCodec(order binary.ByteOrder) Codec { return orderCodec{order: order} }

// DefaultCodec is the codec a new Buffer starts with: fixed-width integers
// in the package default Order (big-endian), UTF-8 text.
var DefaultCodec = OrderCodec(Order)

func (c orderCodec) EncodeInt16(v int16) []byte {
	var buf [2]byte
	c.order.PutUint16(buf[:], uint16(v))
	return buf[:]
}

func (c orderCodec) EncodeInt32(v int32) []byte {
	var buf [4]byte
	c.order.PutUint32(buf[:], uint32(v))
	return buf[:]
}

func (c orderCodec) EncodeInt64(v int64) []byte {
	var buf [8]byte
	c.order.PutUint64(buf[:], uint64(v))
	return buf[:]
}

func (c orderCodec) DecodeInt16(p []byte) int16 { return int16(c.order.Uint16(p)) }

func (c orderCodec) DecodeInt32(p []byte) int32 { return int32(c.order.Uint32(p)) }

func (c orderCodec) DecodeInt64(p []byte) int64 { return int64(c.order.Uint64(p)) }

func (c orderCodec) EncodeString(s string) []byte { return []byte(s) }

func (c orderCodec) DecodeString(p []byte) string { return string(p) }
