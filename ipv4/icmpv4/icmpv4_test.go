package icmpv4

import (
	"bytes"
	"testing"

	"github.com/netviewio/netview"
)

func TestEchoRoundTrip(t *testing.T) {
	v := NewEcho(TypeEcho, 0x1234, 7, []byte("abcdefgh"))
	enc := v.Encode()
	if len(enc) != 4+4+8 {
		t.Fatalf("encoded length = %d", len(enc))
	}
	// A message carrying a correct checksum sums to zero.
	if got := netview.Sum16(enc); got != 0 {
		t.Errorf("checksum verification sum = %#x, want 0", got)
	}

	back := Decode(enc, nil)
	if back.Type != TypeEcho || back.Code != 0 {
		t.Errorf("type/code = %d/%d", back.Type, back.Code)
	}
	if back.Checksum != v.Checksum {
		t.Errorf("checksum = %#x, want %#x", back.Checksum, v.Checksum)
	}
	id, seq, data := back.Echo()
	if id != 0x1234 || seq != 7 {
		t.Errorf("echo id/seq = %#x/%d", id, seq)
	}
	if !bytes.Equal(data, []byte("abcdefgh")) {
		t.Errorf("echo data = %q", data)
	}
	if !bytes.Equal(back.Encode(), enc) {
		t.Error("re-encode of unmodified view differs from input")
	}
}

func TestOddLengthPayloadChecksum(t *testing.T) {
	// Odd segment length exercises the checksum zero-pad.
	v := NewEcho(TypeEchoReply, 1, 1, []byte("odd"))
	enc := v.Encode()
	if got := netview.Sum16(enc); got != 0 {
		t.Errorf("checksum verification sum = %#x, want 0", got)
	}
	if !bytes.Equal(Decode(enc, nil).Encode(), enc) {
		t.Error("odd-length re-encode differs")
	}
}

func TestDecodeTruncated(t *testing.T) {
	v := Decode([]byte{8, 0}, nil)
	if v.Type != TypeEcho || v.Code != 0 {
		t.Errorf("type/code = %d/%d", v.Type, v.Code)
	}
	if v.Checksum != 0 || len(v.Payload) != 0 {
		t.Error("fields past the buffer must be zero")
	}
	id, seq, data := v.Echo()
	if id != 0 || seq != 0 || len(data) != 0 {
		t.Error("echo accessors on empty payload must be zero")
	}
	if got := Decode(nil, nil); got.Type != 0 {
		t.Error("empty buffer must decode to zero view")
	}
}

func TestZeroPayload(t *testing.T) {
	v := &View{Type: TypeDestinationUnreachable, Code: uint8(CodePortUnreachable)}
	enc := v.Encode()
	if len(enc) != 4 {
		t.Fatalf("encoded length = %d, want 4", len(enc))
	}
	if got := netview.Sum16(enc); got != 0 {
		t.Errorf("checksum verification sum = %#x, want 0", got)
	}
	if len(Strip(enc)) != 0 {
		t.Error("Strip of header-only message must be empty")
	}
}
