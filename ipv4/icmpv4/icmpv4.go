// Package icmpv4 decodes and encodes ICMP messages. See [RFC792].
//
// [RFC792]: https://tools.ietf.org/html/rfc792
package icmpv4

import (
	"encoding/binary"

	"github.com/netviewio/netview"
	"github.com/netviewio/netview/internal/wire"
)

// View is the decoded form of one ICMP message. Payload holds everything
// past the 4-byte type/code/checksum prefix, including the type-specific
// region (echo identifier and sequence number, unused words, ...); the Echo
// accessors slice that region out for echo messages. The checksum covers the
// entire message with no pseudo-header, unlike UDP and TCP.
type View struct {
	Type     Type
	Code     uint8
	Checksum uint16
	Payload  []byte

	raw    []byte
	parent netview.Layer
}

const sizeHeader = 4

// Decode parses the ICMP message in buf and returns the resulting view. It
// never fails: a buffer shorter than 4 bytes yields zeroed fields and an
// empty payload.
func Decode(buf []byte, parent netview.Layer) *View {
	v := &View{raw: buf, parent: parent}
	r := wire.NewReader(buf)
	v.Type = Type(r.Uint8())
	v.Code = r.Uint8()
	v.Checksum = r.Uint16()
	v.Payload = r.Rest()
	return v
}

// Strip returns the bytes past the ICMP type/code/checksum prefix in buf.
func Strip(buf []byte) []byte { return Decode(buf, nil).Payload }

// NewEcho returns a view for an echo or echo-reply message with the given
// identifier, sequence number and echo data.
func NewEcho(t Type, id, seq uint16, data []byte) *View {
	p := make([]byte, 4, 4+len(data))
	binary.BigEndian.PutUint16(p[0:2], id)
	binary.BigEndian.PutUint16(p[2:4], seq)
	return &View{Type: t, Payload: append(p, data...)}
}

// Echo returns the identifier, sequence number and data of an echo or
// echo-reply message, zero values when the payload is too short to hold them.
func (v *View) Echo() (id, seq uint16, data []byte) {
	r := wire.NewReader(v.Payload)
	id = r.Uint16()
	seq = r.Uint16()
	return id, seq, r.Rest()
}

// Encode serializes the view into a fresh wire buffer, computing the
// checksum over the whole message with the checksum field zeroed.
func (v *View) Encode() []byte {
	return v.AppendEncode(make([]byte, 0, sizeHeader+len(v.Payload)))
}

// AppendEncode appends the wire form of the view to dst. See [View.Encode].
func (v *View) AppendEncode(dst []byte) []byte {
	start := len(dst)
	dst = append(dst, byte(v.Type), v.Code, 0, 0)
	dst = append(dst, v.Payload...)
	v.Checksum = netview.Sum16(dst[start:])
	binary.BigEndian.PutUint16(dst[start+2:], v.Checksum)
	return dst
}

// RawData returns the buffer the view was decoded from, nil for hand-built views.
func (v *View) RawData() []byte { return v.raw }

// LayerPayload returns the bytes past the type/code/checksum prefix.
func (v *View) LayerPayload() []byte { return v.Payload }

// Parent returns the view this view was decoded from.
func (v *View) Parent() netview.Layer { return v.parent }
