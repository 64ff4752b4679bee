// Package ipv4 decodes and encodes IPv4 packets. See [RFC791].
//
// [RFC791]: https://tools.ietf.org/html/rfc791
package ipv4

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/netviewio/netview"
	"github.com/netviewio/netview/internal/wire"
)

// View is the decoded form of one IPv4 packet. IHL and TotalLength hold what
// was found on the wire; they are not trusted after mutation and encode
// recomputes both from the current Options and Payload. Checksum is the wire
// value after decode (never verified here) and the freshly computed header
// checksum after encode.
type View struct {
	Version     uint8  // 4 for IPv4; stored as decoded, not enforced
	IHL         uint8  // header length in 32-bit words, minimum 5
	ToS         ToS    // DSCP+ECN byte
	TotalLength uint16 // header plus payload length in bytes
	ID          uint16 // fragment group identification
	Flags       Flags  // 3 flag bits plus 13-bit fragment offset
	TTL         uint8
	Protocol    netview.IPProto
	Checksum    uint16
	Src         [4]byte
	Dst         [4]byte
	// Options holds the bytes between the fixed header and the payload,
	// IHL*4-20 of them. Encode pads them to a 32-bit boundary.
	Options []byte
	Payload []byte

	raw    []byte
	parent netview.Layer
}

const sizeHeader = 20

// Decode parses the IPv4 packet in buf and returns the resulting view. It
// never fails: truncated input yields zeroed fields, an IHL pointing past the
// buffer clamps the options to what is available, and TotalLength bounds the
// payload only when it fits the buffer.
func Decode(buf []byte, parent netview.Layer) *View {
	v := &View{raw: buf, parent: parent}
	r := wire.NewReader(buf)
	vihl := r.Uint8()
	v.Version = vihl >> 4
	v.IHL = vihl & 0xf
	v.ToS = ToS(r.Uint8())
	v.TotalLength = r.Uint16()
	v.ID = r.Uint16()
	v.Flags = Flags(r.Uint16())
	v.TTL = r.Uint8()
	v.Protocol = netview.IPProto(r.Uint8())
	v.Checksum = r.Uint16()
	r.Copy(v.Src[:])
	r.Copy(v.Dst[:])
	optLen := int(v.IHL)*4 - sizeHeader
	if optLen < 0 {
		optLen = 0
	}
	v.Options = r.Bytes(optLen)
	rest := r.Rest()
	if declared := int(v.TotalLength) - sizeHeader - len(v.Options); declared >= 0 && declared < len(rest) {
		rest = rest[:declared]
	}
	v.Payload = rest
	return v
}

// Strip returns only the payload of the IPv4 packet in buf.
func Strip(buf []byte) []byte { return Decode(buf, nil).Payload }

// Encode serializes the view into a fresh wire buffer. Options are padded to
// a 32-bit boundary, IHL and TotalLength are recomputed from them and the
// payload, and the header checksum is computed over the full header with the
// checksum field zeroed.
func (v *View) Encode() []byte {
	return v.AppendEncode(make([]byte, 0, sizeHeader+len(v.Options)+3+len(v.Payload)))
}

// AppendEncode appends the wire form of the view to dst. See [View.Encode].
func (v *View) AppendEncode(dst []byte) []byte {
	pad := (4 - len(v.Options)&3) & 3
	hdrLen := sizeHeader + len(v.Options) + pad
	v.IHL = uint8(hdrLen / 4)
	v.TotalLength = uint16(hdrLen + len(v.Payload))
	start := len(dst)
	dst = append(dst, v.Version<<4|v.IHL&0xf, byte(v.ToS))
	dst = binary.BigEndian.AppendUint16(dst, v.TotalLength)
	dst = binary.BigEndian.AppendUint16(dst, v.ID)
	dst = binary.BigEndian.AppendUint16(dst, uint16(v.Flags))
	dst = append(dst, v.TTL, byte(v.Protocol))
	dst = append(dst, 0, 0) // checksum, patched below
	dst = append(dst, v.Src[:]...)
	dst = append(dst, v.Dst[:]...)
	dst = append(dst, v.Options...)
	for i := 0; i < pad; i++ {
		dst = append(dst, 0)
	}
	v.Checksum = netview.Sum16(dst[start:])
	binary.BigEndian.PutUint16(dst[start+10:], v.Checksum)
	return append(dst, v.Payload...)
}

// ChecksumPseudo adds the UDP/TCP pseudo-header for this packet's addresses
// to sum: source address, destination address, zero byte joined with the
// protocol number, and the transport segment length. Implements
// [netview.ChecksumContext].
func (v *View) ChecksumPseudo(sum *netview.Checksum, proto netview.IPProto, segmentLen uint16) {
	sum.Write(v.Src[:])
	sum.Write(v.Dst[:])
	sum.AddUint16(uint16(proto))
	sum.AddUint16(segmentLen)
}

// RawData returns the buffer the view was decoded from, nil for hand-built views.
func (v *View) RawData() []byte { return v.raw }

// LayerPayload returns the bytes following the IPv4 header and options.
func (v *View) LayerPayload() []byte { return v.Payload }

// Parent returns the view this view was decoded from.
func (v *View) Parent() netview.Layer { return v.parent }

func (v *View) String() string {
	src := netip.AddrFrom4(v.Src)
	dst := netip.AddrFrom4(v.Dst)
	return fmt.Sprintf("IP proto=%d SRC=%s DST=%s LEN=%d OPT=%d TTL=%d ID=%d ToS=0x%x",
		uint8(v.Protocol), src, dst, v.TotalLength, len(v.Options), v.TTL, v.ID, uint8(v.ToS))
}
