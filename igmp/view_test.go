package igmp

import (
	"bytes"
	"testing"

	"github.com/netviewio/netview"
)

func TestReportRoundTrip(t *testing.T) {
	v := &View{
		Type:      TypeMembershipReportV2,
		GroupAddr: [4]byte{224, 0, 0, 251},
	}
	enc := v.Encode()
	if len(enc) != 8 {
		t.Fatalf("encoded length = %d, want 8", len(enc))
	}
	// A message carrying a correct checksum sums to zero.
	if got := netview.Sum16(enc); got != 0 {
		t.Errorf("checksum verification sum = %#x, want 0", got)
	}

	back := Decode(enc, nil)
	if back.Type != TypeMembershipReportV2 {
		t.Errorf("Type = %#x", uint8(back.Type))
	}
	if back.GroupAddr != v.GroupAddr {
		t.Errorf("GroupAddr = %v", back.GroupAddr)
	}
	if back.Checksum != v.Checksum {
		t.Errorf("checksum = %#x, want %#x", back.Checksum, v.Checksum)
	}
	if !bytes.Equal(back.Encode(), enc) {
		t.Error("re-encode of unmodified view differs from input")
	}
}

func TestQueryMaxResponseTime(t *testing.T) {
	v := &View{Type: TypeMembershipQuery, MaxResponseTime: 100}
	back := Decode(v.Encode(), nil)
	if back.MaxResponseTime != 100 {
		t.Errorf("MaxResponseTime = %d, want 100", back.MaxResponseTime)
	}
}

func TestDecodeTruncated(t *testing.T) {
	v := Decode([]byte{0x11, 100, 0xde}, nil)
	if v.Type != TypeMembershipQuery || v.MaxResponseTime != 100 {
		t.Errorf("type/mrt = %#x/%d", uint8(v.Type), v.MaxResponseTime)
	}
	if v.Checksum != 0 || v.GroupAddr != ([4]byte{}) {
		t.Error("fields past the buffer must be zero")
	}
	if len(v.Payload) != 0 {
		t.Errorf("payload length = %d", len(v.Payload))
	}
}

func TestTrailingPayloadKept(t *testing.T) {
	v := &View{Type: TypeMembershipReportV3, Payload: []byte{0, 1, 2, 3}}
	enc := v.Encode()
	if got := netview.Sum16(enc); got != 0 {
		t.Errorf("checksum verification sum = %#x, want 0", got)
	}
	if !bytes.Equal(Strip(enc), []byte{0, 1, 2, 3}) {
		t.Errorf("Strip = % x", Strip(enc))
	}
}
