package wire

import (
	"errors"
	"testing"
)

func TestUint8RoundTrip(t *testing.T) {
	b := NewBuffer(nil)
	for _, v := range []int{0, 1, 127, 255} {
		if err := b.WriteUint8("v", v); err != nil {
			t.Fatal(err)
		}
	}
	for _, want := range []int{0, 1, 127, 255} {
		got, err := b.ReadUint8()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ReadUint8 = %d, want %d", got, want)
		}
	}
}

func TestUint16RoundTrip(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.WriteUint16("v", 0xbeef); err != nil {
		t.Fatal(err)
	}
	if got := b.Bytes(); got[0] != 0xbe || got[1] != 0xef {
		t.Errorf("encoding not big-endian: % x", got)
	}
	got, err := b.ReadUint16()
	if err != nil {
		t.Fatal(err)
	}
	if got != 0xbeef {
		t.Errorf("ReadUint16 = %#x, want 0xbeef", got)
	}
}

func TestWriteUint8Range(t *testing.T) {
	b := NewBuffer(nil)
	for _, v := range []int{-1, 256} {
		err := b.WriteUint8("count", v)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("WriteUint8(%d) err = %v, want RangeError", v, err)
		}
		if rangeErr.Field != "count" || rangeErr.Value != v {
			t.Errorf("RangeError = %+v", rangeErr)
		}
	}
	if len(b.Bytes()) != 0 {
		t.Error("rejected write still appended bytes")
	}
}

func TestWriteUint16Range(t *testing.T) {
	b := NewBuffer(nil)
	if err := b.WriteUint16("v", 0x10000); err == nil {
		t.Error("WriteUint16(0x10000) did not fail")
	}
}

func TestReadPastEnd(t *testing.T) {
	b := NewBuffer([]byte{1})
	if _, err := b.ReadUint8(); err != nil {
		t.Fatal(err)
	}
	if _, err := b.ReadUint8(); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("err = %v, want ErrShortBuffer", err)
	}
	if _, err := b.ReadUint16(); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("ReadUint16 err = %v, want ErrShortBuffer", err)
	}
}

func TestRemaining(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3})
	if b.Remaining() != 3 {
		t.Errorf("Remaining = %d, want 3", b.Remaining())
	}
	b.ReadUint8()
	if b.Remaining() != 2 {
		t.Errorf("Remaining = %d after one read, want 2", b.Remaining())
	}
}
