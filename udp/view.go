// Package udp decodes and encodes UDP datagrams. See [RFC768].
//
// [RFC768]: https://tools.ietf.org/html/rfc768
package udp

import (
	"encoding/binary"

	"github.com/netviewio/netview"
	"github.com/netviewio/netview/internal/wire"
)

// View is the decoded form of one UDP datagram. Length and Checksum hold the
// wire values after decode; encode recomputes both, Length from the current
// payload and Checksum over the pseudo-header supplied by the enclosing
// network-layer view.
type View struct {
	SrcPort  uint16
	DstPort  uint16
	Length   uint16 // header plus payload length in bytes, minimum 8
	Checksum uint16
	Payload  []byte

	raw    []byte
	parent netview.Layer
}

const sizeHeader = 8

// Decode parses the UDP datagram in buf and returns the resulting view. It
// never fails: truncated input yields zeroed fields, and the Length field
// bounds the payload only when it fits the buffer.
func Decode(buf []byte, parent netview.Layer) *View {
	v := &View{raw: buf, parent: parent}
	r := wire.NewReader(buf)
	v.SrcPort = r.Uint16()
	v.DstPort = r.Uint16()
	v.Length = r.Uint16()
	v.Checksum = r.Uint16()
	rest := r.Rest()
	if declared := int(v.Length) - sizeHeader; declared >= 0 && declared < len(rest) {
		rest = rest[:declared]
	}
	v.Payload = rest
	return v
}

// Strip returns only the payload of the UDP datagram in buf.
func Strip(buf []byte) []byte { return Decode(buf, nil).Payload }

// Encode serializes the view into a fresh wire buffer. ctx supplies the
// enclosing network-layer addresses for the pseudo-header checksum; when nil,
// the view's parent is used if it can serve as one. With neither,
// [netview.ErrNoChecksumContext] is returned: a UDP checksum cannot be
// computed without the enclosing addresses. A computed checksum of zero is
// transmitted as 0xffff since zero on the wire means "no checksum".
func (v *View) Encode(ctx netview.ChecksumContext) ([]byte, error) {
	return v.AppendEncode(make([]byte, 0, sizeHeader+len(v.Payload)), ctx)
}

// AppendEncode appends the wire form of the view to dst. See [View.Encode].
func (v *View) AppendEncode(dst []byte, ctx netview.ChecksumContext) ([]byte, error) {
	if ctx == nil {
		ctx, _ = v.parent.(netview.ChecksumContext)
	}
	if ctx == nil {
		return dst, netview.ErrNoChecksumContext
	}
	v.Length = uint16(sizeHeader + len(v.Payload))
	start := len(dst)
	dst = binary.BigEndian.AppendUint16(dst, v.SrcPort)
	dst = binary.BigEndian.AppendUint16(dst, v.DstPort)
	dst = binary.BigEndian.AppendUint16(dst, v.Length)
	dst = append(dst, 0, 0) // checksum, patched below
	dst = append(dst, v.Payload...)
	var sum netview.Checksum
	ctx.ChecksumPseudo(&sum, netview.IPProtoUDP, v.Length)
	sum.Write(dst[start:])
	v.Checksum = netview.NeverZeroChecksum(sum.Sum16())
	binary.BigEndian.PutUint16(dst[start+6:], v.Checksum)
	return dst, nil
}

// RawData returns the buffer the view was decoded from, nil for hand-built views.
func (v *View) RawData() []byte { return v.raw }

// LayerPayload returns the bytes following the UDP header.
func (v *View) LayerPayload() []byte { return v.Payload }

// Parent returns the view this view was decoded from.
func (v *View) Parent() netview.Layer { return v.parent }
