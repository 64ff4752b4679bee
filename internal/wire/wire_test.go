package wire

import (
	"bytes"
	"testing"
)

func TestReaderExactFit(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09})
	if got := r.Uint8(); got != 0x01 {
		t.Errorf("Uint8 = %#x", got)
	}
	if got := r.Uint16(); got != 0x0203 {
		t.Errorf("Uint16 = %#x", got)
	}
	if got := r.Uint32(); got != 0x04050607 {
		t.Errorf("Uint32 = %#x", got)
	}
	if got := r.Rest(); !bytes.Equal(got, []byte{0x08, 0x09}) {
		t.Errorf("Rest = %v", got)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d after Rest", r.Len())
	}
}

func TestReaderShortReadsYieldZero(t *testing.T) {
	r := NewReader([]byte{0xaa})
	// One byte cannot hold a 16-bit field: absent, not partial.
	if got := r.Uint16(); got != 0 {
		t.Errorf("short Uint16 = %#x, want 0", got)
	}
	if got := r.Uint8(); got != 0 {
		t.Errorf("Uint8 past end = %#x, want 0", got)
	}
	if got := r.Uint32(); got != 0 {
		t.Errorf("Uint32 past end = %#x, want 0", got)
	}
	if got := r.Bytes(4); len(got) != 0 {
		t.Errorf("Bytes past end has length %d", len(got))
	}
}

func TestReaderClamping(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if got := r.Bytes(10); !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("clamped Bytes = %v", got)
	}
	r = NewReader([]byte{1, 2})
	var dst [4]byte
	r.Copy(dst[:])
	if dst != [4]byte{1, 2, 0, 0} {
		t.Errorf("Copy = %v, want tail zeroed", dst)
	}
	if got := r.Bytes(-1); len(got) != 0 {
		t.Errorf("negative Bytes has length %d", len(got))
	}
}
