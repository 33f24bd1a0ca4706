// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: marshal.go: position-tracked serializer / deserializer
//
// Purpose:
//   - Packs u8/u16/u32/f32 and raw byte runs into a caller-owned buffer in
//     network (big-endian) or host byte order, and reads them back.
//
// Notes:
//   - Put*/Get* work at the current position and advance it.
//   - Write*At/Read*At work at an explicit position and leave it alone.
//   - No bounds checks beyond Go's own: overflowing the buffer panics.
//   - Skip and Seek clamp the position to the buffer capacity.
// ─────────────────────────────────────────────────────────────────────────────

package marshal

import (
	"encoding/binary"
	"math"
)

// Order selects the byte order of a multi-byte field.
type Order uint8

const (
	Network Order = iota // big-endian
	Host                 // native order of the running machine
)

//go:nosplit
func (o Order) codec() binary.ByteOrder {
	if o == Host {
		return binary.NativeEndian
	}
	return binary.BigEndian
}

// cursor is the position bookkeeping shared by both directions.
type cursor struct {
	buf []byte
	pos int
}

// Reset rewinds to position 0, keeping the buffer.
func (c *cursor) Reset() { c.pos = 0 }

// Skip advances by n bytes, stopping at capacity.
func (c *cursor) Skip(n int) { c.Seek(c.pos + n) }

// Seek moves to pos, clamped to [0, capacity].
func (c *cursor) Seek(pos int) {
	switch {
	case pos < 0:
		c.pos = 0
	case pos > len(c.buf):
		c.pos = len(c.buf)
	default:
		c.pos = pos
	}
}

// Position returns the current offset.
func (c *cursor) Position() int { return c.pos }

// Capacity returns the buffer length.
func (c *cursor) Capacity() int { return len(c.buf) }

// Remaining returns the bytes between the position and capacity.
func (c *cursor) Remaining() int { return len(c.buf) - c.pos }

// ============================================================================
// SERIALIZER
// ============================================================================

// Serializer writes into a fixed buffer it does not own.
type Serializer struct{ cursor }

// NewSerializer returns a serializer over buf positioned at 0.
func NewSerializer(buf []byte) *Serializer {
	return &Serializer{cursor{buf: buf}}
}

// Bytes returns the written prefix of the buffer.
func (s *Serializer) Bytes() []byte { return s.buf[:s.pos] }

func (s *Serializer) WriteUint8At(pos int, v uint8) { s.buf[pos] = v }

func (s *Serializer) WriteUint16At(pos int, o Order, v uint16) {
	o.codec().PutUint16(s.buf[pos:pos+2], v)
}

func (s *Serializer) WriteUint32At(pos int, o Order, v uint32) {
	o.codec().PutUint32(s.buf[pos:pos+4], v)
}

func (s *Serializer) WriteFloat32At(pos int, o Order, v float32) {
	s.WriteUint32At(pos, o, math.Float32bits(v))
}

// WriteBufferAt copies all of b to pos.
func (s *Serializer) WriteBufferAt(pos int, b []byte) {
	copy(s.buf[pos:pos+len(b)], b)
}

func (s *Serializer) PutUint8(v uint8) {
	s.WriteUint8At(s.pos, v)
	s.pos++
}

func (s *Serializer) PutUint16(o Order, v uint16) {
	s.WriteUint16At(s.pos, o, v)
	s.pos += 2
}

func (s *Serializer) PutUint32(o Order, v uint32) {
	s.WriteUint32At(s.pos, o, v)
	s.pos += 4
}

func (s *Serializer) PutFloat32(o Order, v float32) {
	s.WriteFloat32At(s.pos, o, v)
	s.pos += 4
}

// PutBuffer copies all of b and advances past it.
func (s *Serializer) PutBuffer(b []byte) {
	s.WriteBufferAt(s.pos, b)
	s.pos += len(b)
}

// ============================================================================
// DESERIALIZER
// ============================================================================

// Deserializer reads from a fixed buffer it does not own.
type Deserializer struct{ cursor }

// NewDeserializer returns a deserializer over buf positioned at 0.
func NewDeserializer(buf []byte) *Deserializer {
	return &Deserializer{cursor{buf: buf}}
}

func (d *Deserializer) ReadUint8At(pos int) uint8 { return d.buf[pos] }

func (d *Deserializer) ReadUint16At(pos int, o Order) uint16 {
	return o.codec().Uint16(d.buf[pos : pos+2])
}

func (d *Deserializer) ReadUint32At(pos int, o Order) uint32 {
	return o.codec().Uint32(d.buf[pos : pos+4])
}

func (d *Deserializer) ReadFloat32At(pos int, o Order) float32 {
	return math.Float32frombits(d.ReadUint32At(pos, o))
}

// ReadBufferAt copies at most len(dst) bytes starting at pos, never past
// capacity, and returns how many it copied. pos beyond capacity copies
// nothing.
func (d *Deserializer) ReadBufferAt(pos int, dst []byte) int {
	if pos >= len(d.buf) || pos < 0 {
		return 0
	}
	return copy(dst, d.buf[pos:])
}

func (d *Deserializer) GetUint8() uint8 {
	v := d.ReadUint8At(d.pos)
	d.pos++
	return v
}

func (d *Deserializer) GetUint16(o Order) uint16 {
	v := d.ReadUint16At(d.pos, o)
	d.pos += 2
	return v
}

func (d *Deserializer) GetUint32(o Order) uint32 {
	v := d.ReadUint32At(d.pos, o)
	d.pos += 4
	return v
}

func (d *Deserializer) GetFloat32(o Order) float32 {
	v := d.ReadFloat32At(d.pos, o)
	d.pos += 4
	return v
}

// GetBuffer copies at most len(dst) of the remaining bytes, advances past
// them and returns the count.
func (d *Deserializer) GetBuffer(dst []byte) int {
	n := d.ReadBufferAt(d.pos, dst)
	d.pos += n
	return n
}
