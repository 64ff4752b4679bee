package udp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netviewio/netview"
	"github.com/netviewio/netview/ipv4"
)

func testIP() *ipv4.View {
	return &ipv4.View{
		Version:  4,
		TTL:      64,
		Protocol: netview.IPProtoUDP,
		Src:      [4]byte{10, 0, 0, 1},
		Dst:      [4]byte{10, 0, 0, 2},
	}
}

// Regression fixture: the checksum of this exact datagram was computed once
// with the standard Internet checksum over pseudo-header plus segment.
func TestEncodePinnedChecksum(t *testing.T) {
	v := &View{SrcPort: 12345, DstPort: 53, Payload: []byte("ping")}
	enc, err := v.Encode(testIP())
	require.NoError(t, err)
	assert.Equal(t, uint16(12), v.Length)
	assert.Equal(t, uint16(0xdc94), v.Checksum)
	require.Len(t, enc, 12)
	assert.Equal(t, []byte{0xdc, 0x94}, enc[6:8])
}

func TestDecodeAndReencodeViaParent(t *testing.T) {
	ip := testIP()
	enc, err := (&View{SrcPort: 12345, DstPort: 53, Payload: []byte("ping")}).Encode(ip)
	require.NoError(t, err)

	v := Decode(enc, ip)
	assert.Equal(t, uint16(12345), v.SrcPort)
	assert.Equal(t, uint16(53), v.DstPort)
	assert.Equal(t, uint16(12), v.Length)
	assert.Equal(t, uint16(0xdc94), v.Checksum)
	assert.Equal(t, []byte("ping"), v.Payload)
	assert.Same(t, netview.Layer(ip), v.Parent())
	assert.Equal(t, enc, v.RawData())

	// nil context falls back to the parent view; unmodified re-encode is
	// byte-identical.
	back, err := v.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, enc, back)
}

func TestEncodeWithoutContextFails(t *testing.T) {
	v := &View{SrcPort: 1, DstPort: 2}
	_, err := v.Encode(nil)
	require.ErrorIs(t, err, netview.ErrNoChecksumContext)

	// A parent that cannot supply network addresses does not help.
	raw := []byte{0, 1, 0, 2, 0, 8, 0, 0}
	parent := Decode(raw, nil)
	v = Decode(raw, parent)
	_, err = v.Encode(nil)
	require.ErrorIs(t, err, netview.ErrNoChecksumContext)
}

func TestZeroPayload(t *testing.T) {
	v := &View{SrcPort: 4000, DstPort: 4001}
	enc, err := v.Encode(testIP())
	require.NoError(t, err)
	assert.Equal(t, uint16(8), v.Length)
	require.Len(t, enc, 8)
	back := Decode(enc, nil)
	assert.Empty(t, back.Payload)
}

func TestDecodeLengthBoundsPayload(t *testing.T) {
	buf := []byte{0x30, 0x39, 0x00, 0x35, 0x00, 0x09, 0x00, 0x00, 'a', 'b', 'c', 'd'}
	// Declared length 9 cuts the payload to one byte, the rest is padding.
	v := Decode(buf, nil)
	assert.Equal(t, []byte("a"), v.Payload)

	// A length too small for its own header is ignored.
	buf[4], buf[5] = 0, 0
	v = Decode(buf, nil)
	assert.Equal(t, []byte("abcd"), v.Payload)

	// A length past the buffer is ignored too.
	buf[4], buf[5] = 0xff, 0xff
	v = Decode(buf, nil)
	assert.Equal(t, []byte("abcd"), v.Payload)
}

func TestDecodeTruncated(t *testing.T) {
	v := Decode([]byte{0x30, 0x39}, nil)
	assert.Equal(t, uint16(12345), v.SrcPort)
	assert.Zero(t, v.DstPort)
	assert.Zero(t, v.Length)
	assert.Zero(t, v.Checksum)
	assert.Empty(t, v.Payload)

	v = Decode(nil, nil)
	assert.Zero(t, v.SrcPort)
	assert.Empty(t, v.Payload)
}
