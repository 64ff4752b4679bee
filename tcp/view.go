// Package tcp decodes and encodes TCP segment headers. See [RFC9293].
//
// Only the wire format lives here: no connection state, retransmission or
// sequence-space logic, in line with the rest of the module being a pure
// byte-to-view transform.
//
// [RFC9293]: https://datatracker.ietf.org/doc/html/rfc9293
package tcp

import (
	"encoding/binary"
	"fmt"

	"github.com/netviewio/netview"
	"github.com/netviewio/netview/internal/wire"
)

// View is the decoded form of one TCP segment. DataOffset holds the header
// length in 32-bit words as found on the wire; it is not trusted after
// mutation and encode recomputes it from the current Options, padding them to
// a 32-bit boundary. Flags keeps the reserved bits next to the flag bits so
// an unmodified view re-encodes byte-identically; use [Flags.Mask] for the
// defined bits only.
type View struct {
	SrcPort    uint16
	DstPort    uint16
	Seq        uint32
	Ack        uint32
	DataOffset uint8 // header length in 32-bit words, minimum 5
	Flags      Flags
	Window     uint16
	Checksum   uint16
	UrgentPtr  uint16
	// Options holds the bytes between the fixed header and the payload,
	// DataOffset*4-20 of them.
	Options []byte
	Payload []byte

	raw    []byte
	parent netview.Layer
}

const sizeHeader = 20

// Decode parses the TCP segment in buf and returns the resulting view. It
// never fails: truncated input yields zeroed fields and a DataOffset pointing
// past the buffer clamps the options to what is available. The payload is
// everything past the options; the enclosing network layer has already cut
// the segment to its declared length.
func Decode(buf []byte, parent netview.Layer) *View {
	v := &View{raw: buf, parent: parent}
	r := wire.NewReader(buf)
	v.SrcPort = r.Uint16()
	v.DstPort = r.Uint16()
	v.Seq = r.Uint32()
	v.Ack = r.Uint32()
	offFlags := r.Uint16()
	v.DataOffset = uint8(offFlags >> 12)
	v.Flags = Flags(offFlags & 0x0fff)
	v.Window = r.Uint16()
	v.Checksum = r.Uint16()
	v.UrgentPtr = r.Uint16()
	optLen := int(v.DataOffset)*4 - sizeHeader
	if optLen < 0 {
		optLen = 0
	}
	v.Options = r.Bytes(optLen)
	v.Payload = r.Rest()
	return v
}

// Strip returns only the payload of the TCP segment in buf.
func Strip(buf []byte) []byte { return Decode(buf, nil).Payload }

// Encode serializes the view into a fresh wire buffer. ctx supplies the
// enclosing network-layer addresses for the pseudo-header checksum; when nil,
// the view's parent is used if it can serve as one. With neither,
// [netview.ErrNoChecksumContext] is returned. The pseudo-header carries the
// full segment length, header including options plus payload.
func (v *View) Encode(ctx netview.ChecksumContext) ([]byte, error) {
	return v.AppendEncode(make([]byte, 0, sizeHeader+len(v.Options)+3+len(v.Payload)), ctx)
}

// AppendEncode appends the wire form of the view to dst. See [View.Encode].
func (v *View) AppendEncode(dst []byte, ctx netview.ChecksumContext) ([]byte, error) {
	if ctx == nil {
		ctx, _ = v.parent.(netview.ChecksumContext)
	}
	if ctx == nil {
		return dst, netview.ErrNoChecksumContext
	}
	pad := (4 - len(v.Options)&3) & 3
	hdrLen := sizeHeader + len(v.Options) + pad
	v.DataOffset = uint8(hdrLen / 4)
	start := len(dst)
	dst = binary.BigEndian.AppendUint16(dst, v.SrcPort)
	dst = binary.BigEndian.AppendUint16(dst, v.DstPort)
	dst = binary.BigEndian.AppendUint32(dst, v.Seq)
	dst = binary.BigEndian.AppendUint32(dst, v.Ack)
	dst = binary.BigEndian.AppendUint16(dst, uint16(v.DataOffset)<<12|uint16(v.Flags&0x0fff))
	dst = binary.BigEndian.AppendUint16(dst, v.Window)
	dst = append(dst, 0, 0) // checksum, patched below
	dst = binary.BigEndian.AppendUint16(dst, v.UrgentPtr)
	dst = append(dst, v.Options...)
	for i := 0; i < pad; i++ {
		dst = append(dst, 0)
	}
	dst = append(dst, v.Payload...)
	var sum netview.Checksum
	ctx.ChecksumPseudo(&sum, netview.IPProtoTCP, uint16(hdrLen+len(v.Payload)))
	sum.Write(dst[start:])
	v.Checksum = sum.Sum16()
	binary.BigEndian.PutUint16(dst[start+16:], v.Checksum)
	return dst, nil
}

// RawData returns the buffer the view was decoded from, nil for hand-built views.
func (v *View) RawData() []byte { return v.raw }

// LayerPayload returns the bytes following the TCP header and options.
func (v *View) LayerPayload() []byte { return v.Payload }

// Parent returns the view this view was decoded from.
func (v *View) Parent() netview.Layer { return v.parent }

func (v *View) String() string {
	return fmt.Sprintf("TCP :%d -> :%d seq=%d ack=%d %s", v.SrcPort, v.DstPort, v.Seq, v.Ack, v.Flags.Mask())
}
