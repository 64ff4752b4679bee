// Package arp decodes and encodes Address Resolution Protocol packets. See
// [RFC826].
//
// [RFC826]: https://tools.ietf.org/html/rfc826
package arp

import (
	"github.com/netviewio/netview"
	"github.com/netviewio/netview/internal/wire"
)

// View is the decoded form of one ARP packet. The four address fields are
// variable width: the wire declares their sizes in HardwareLen and
// ProtocolLen (6 and 4 for Ethernet/IPv4). Decode slices the addresses out
// by the declared widths; encode re-declares the widths from the sender
// address slices, so mutating an address also updates the length fields.
type View struct {
	HardwareType uint16            // link protocol type, Ethernet is 1
	ProtocolType netview.EtherType // internet protocol type, IPv4 is 0x0800
	HardwareLen  uint8             // declared hardware address width
	ProtocolLen  uint8             // declared protocol address width
	Op           Operation

	SenderHardwareAddr []byte
	SenderProtoAddr    []byte
	TargetHardwareAddr []byte
	TargetProtoAddr    []byte

	// Payload holds any bytes trailing the addresses. ARP itself carries
	// nothing there, but link layers pad short frames and keeping the
	// padding lets an unmodified view re-encode byte-identically.
	Payload []byte

	raw    []byte
	parent netview.Layer
}

const sizeHeader = 8

// Decode parses the ARP packet in buf and returns the resulting view. It
// never fails: truncated packets yield zeroed fields and address slices
// clamped to the available bytes.
func Decode(buf []byte, parent netview.Layer) *View {
	v := &View{raw: buf, parent: parent}
	r := wire.NewReader(buf)
	v.HardwareType = r.Uint16()
	v.ProtocolType = netview.EtherType(r.Uint16())
	v.HardwareLen = r.Uint8()
	v.ProtocolLen = r.Uint8()
	v.Op = Operation(r.Uint16())
	v.SenderHardwareAddr = r.Bytes(int(v.HardwareLen))
	v.SenderProtoAddr = r.Bytes(int(v.ProtocolLen))
	v.TargetHardwareAddr = r.Bytes(int(v.HardwareLen))
	v.TargetProtoAddr = r.Bytes(int(v.ProtocolLen))
	v.Payload = r.Rest()
	return v
}

// Strip returns only the bytes trailing the ARP addresses in buf.
func Strip(buf []byte) []byte { return Decode(buf, nil).Payload }

// Encode serializes the view into a fresh wire buffer, re-declaring the
// address width fields from the sender address slices.
func (v *View) Encode() []byte {
	n := sizeHeader + len(v.SenderHardwareAddr) + len(v.SenderProtoAddr) +
		len(v.TargetHardwareAddr) + len(v.TargetProtoAddr) + len(v.Payload)
	return v.AppendEncode(make([]byte, 0, n))
}

// AppendEncode appends the wire form of the view to dst. See [View.Encode].
func (v *View) AppendEncode(dst []byte) []byte {
	v.HardwareLen = uint8(len(v.SenderHardwareAddr))
	v.ProtocolLen = uint8(len(v.SenderProtoAddr))
	dst = append(dst, byte(v.HardwareType>>8), byte(v.HardwareType))
	dst = append(dst, byte(v.ProtocolType>>8), byte(v.ProtocolType))
	dst = append(dst, v.HardwareLen, v.ProtocolLen)
	dst = append(dst, byte(v.Op>>8), byte(v.Op))
	dst = append(dst, v.SenderHardwareAddr...)
	dst = append(dst, v.SenderProtoAddr...)
	dst = append(dst, v.TargetHardwareAddr...)
	dst = append(dst, v.TargetProtoAddr...)
	return append(dst, v.Payload...)
}

// RawData returns the buffer the view was decoded from, nil for hand-built views.
func (v *View) RawData() []byte { return v.raw }

// LayerPayload returns the bytes trailing the ARP addresses.
func (v *View) LayerPayload() []byte { return v.Payload }

// Parent returns the view this view was decoded from.
func (v *View) Parent() netview.Layer { return v.parent }
