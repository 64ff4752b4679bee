// Package igmp decodes and encodes IGMPv1/v2 membership messages. See
// [RFC2236].
//
// [RFC2236]: https://tools.ietf.org/html/rfc2236
package igmp

import (
	"encoding/binary"

	"github.com/netviewio/netview"
	"github.com/netviewio/netview/internal/wire"
)

// View is the decoded form of one IGMP message. Like ICMP the checksum
// covers the entire message and needs no pseudo-header. Payload holds any
// bytes past the fixed 8-byte header; v1/v2 messages carry none there.
type View struct {
	Type Type
	// MaxResponseTime is the v2 query response deadline in tenths of a
	// second, zero in every other message type.
	MaxResponseTime uint8
	Checksum        uint16
	GroupAddr       [4]byte
	Payload         []byte

	raw    []byte
	parent netview.Layer
}

const sizeHeader = 8

// Decode parses the IGMP message in buf and returns the resulting view. It
// never fails: truncated input yields zeroed fields and an empty payload.
func Decode(buf []byte, parent netview.Layer) *View {
	v := &View{raw: buf, parent: parent}
	r := wire.NewReader(buf)
	v.Type = Type(r.Uint8())
	v.MaxResponseTime = r.Uint8()
	v.Checksum = r.Uint16()
	r.Copy(v.GroupAddr[:])
	v.Payload = r.Rest()
	return v
}

// Strip returns the bytes past the fixed IGMP header in buf.
func Strip(buf []byte) []byte { return Decode(buf, nil).Payload }

// Encode serializes the view into a fresh wire buffer, computing the
// checksum over the whole message with the checksum field zeroed.
func (v *View) Encode() []byte {
	return v.AppendEncode(make([]byte, 0, sizeHeader+len(v.Payload)))
}

// AppendEncode appends the wire form of the view to dst. See [View.Encode].
func (v *View) AppendEncode(dst []byte) []byte {
	start := len(dst)
	dst = append(dst, byte(v.Type), v.MaxResponseTime, 0, 0)
	dst = append(dst, v.GroupAddr[:]...)
	dst = append(dst, v.Payload...)
	v.Checksum = netview.Sum16(dst[start:])
	binary.BigEndian.PutUint16(dst[start+2:], v.Checksum)
	return dst
}

// RawData returns the buffer the view was decoded from, nil for hand-built views.
func (v *View) RawData() []byte { return v.raw }

// LayerPayload returns the bytes past the fixed IGMP header.
func (v *View) LayerPayload() []byte { return v.Payload }

// Parent returns the view this view was decoded from.
func (v *View) Parent() netview.Layer { return v.parent }
