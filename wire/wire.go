package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a read would run past the end of the
// buffer, for example when a count prefix promises more data than follows.
var ErrShortBuffer = errors.New("wire: read past end of buffer")

// RangeError reports a field value that does not fit its wire encoding.
type RangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("wire: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Buffer is the byte buffer shared by serializable game components.
// Writes append to the underlying slice, reads advance a cursor.
// Multi-byte integers are big-endian.
type Buffer struct {
	data []byte
	pos  int
}

// NewBuffer wraps data for reading. Pass nil to start an empty write buffer.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns everything written or wrapped so far.
func (b *Buffer) Bytes() []byte { return b.data }

// Remaining reports how many unread bytes are left.
func (b *Buffer) Remaining() int { return len(b.data) - b.pos }

// WriteUint8 appends v as a single byte. The field name is carried into the
// RangeError when v does not fit.
func (b *Buffer) WriteUint8(field string, v int) error {
	if v < 0 || v > 0xff {
		return &RangeError{Field: field, Value: v, Min: 0, Max: 0xff}
	}
	b.data = append(b.data, byte(v))
	return nil
}

// WriteUint16 appends v as two big-endian bytes.
func (b *Buffer) WriteUint16(field string, v int) error {
	if v < 0 || v > 0xffff {
		return &RangeError{Field: field, Value: v, Min: 0, Max: 0xffff}
	}
	b.data = binary.BigEndian.AppendUint16(b.data, uint16(v))
	return nil
}

// ReadUint8 consumes and returns the next byte.
func (b *Buffer) ReadUint8() (int, error) {
	if b.pos >= len(b.data) {
		return 0, ErrShortBuffer
	}
	v := int(b.data[b.pos])
	b.pos++
	return v, nil
}

// ReadUint16 consumes and returns the next two bytes as a big-endian value.
func (b *Buffer) ReadUint16() (int, error) {
	if b.pos+2 > len(b.data) {
		return 0, ErrShortBuffer
	}
	v := int(binary.BigEndian.Uint16(b.data[b.pos:]))
	b.pos += 2
	return v, nil
}
