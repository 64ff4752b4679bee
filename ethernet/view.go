// Package ethernet decodes and encodes Ethernet frames, covering Ethernet II,
// 802.3/802.2 LLC and SNAP framing as well as 802.1Q tagged frames. See
// [IEEE 802.3].
//
// [IEEE 802.3]: https://standards.ieee.org/ieee/802.3/7071/
package ethernet

import (
	"encoding/binary"
	"fmt"

	"github.com/netviewio/netview"
	"github.com/netviewio/netview/internal/wire"
)

// View is the decoded form of one Ethernet frame, without preamble (the first
// byte is the start of the destination address) and without trailing FCS.
//
// Kind is the frame type normalized across framings: the EtherType field for
// Ethernet II, the SNAP-embedded EtherType for 802.2 SNAP frames, and
// [netview.EtherTypeLLC] for raw 802.2 frames which carry no EtherType at
// all. Which framing goes back on the wire during encode is controlled by the
// LLC and SNAP fields; a zero View encodes as an untagged Ethernet II frame.
type View struct {
	Dst [6]byte // destination hardware address
	Src [6]byte // source hardware address
	// Kind is the normalized frame type. See the View doc comment.
	Kind netview.EtherType
	// Tagged records an 802.1Q tag between the addresses and the
	// type/length field. Tag holds it when Tagged is true.
	Tagged bool
	Tag    VLANTag
	// LLC records 802.3 length framing: the wire carries a payload length
	// where Ethernet II carries an EtherType, followed by an 802.2 LLC
	// header. Length is the length field as found on the wire; encode
	// recomputes it.
	LLC     bool
	Length  uint16
	DSAP    uint8
	SSAP    uint8
	Control uint8
	// SNAP records the 5-byte SNAP extension (OUI + embedded EtherType)
	// after the LLC header, present when DSAP and SSAP are both 0xAA.
	SNAP bool
	OUI  [3]byte

	// Payload is everything after the header for this framing.
	Payload []byte

	raw    []byte
	parent netview.Layer
}

const (
	sizeHeader = 14
	sizeLLC    = 3
	sizeSNAP   = 5
	snapSAP    = 0xAA
)

// Decode parses the leading Ethernet header from buf and returns the
// resulting view. It never fails: a buffer shorter than 14 bytes yields a
// view with the absent fields zeroed, and an 802.3 length field larger than
// the available buffer is ignored for the payload extent.
func Decode(buf []byte, parent netview.Layer) *View {
	v := &View{raw: buf, parent: parent}
	r := wire.NewReader(buf)
	r.Copy(v.Dst[:])
	r.Copy(v.Src[:])
	typePresent := r.Len() >= 2
	tp := r.Uint16()
	if netview.EtherType(tp) == netview.EtherTypeVLAN {
		v.Tagged = true
		v.Tag = VLANTag(r.Uint16())
		typePresent = r.Len() >= 2
		tp = r.Uint16()
	}
	switch {
	case !typePresent:
		// Truncated before the type/length field: leave the defaults.
		v.Payload = r.Rest()
	case netview.EtherType(tp).IsSize():
		v.LLC = true
		v.Length = tp
		v.DSAP = r.Uint8()
		v.SSAP = r.Uint8()
		v.Control = r.Uint8()
		llc := sizeLLC
		if v.DSAP == snapSAP && v.SSAP == snapSAP {
			v.SNAP = true
			r.Copy(v.OUI[:])
			v.Kind = netview.EtherType(r.Uint16())
			llc += sizeSNAP
		}
		v.Payload = r.Rest()
		// The 802.3 length counts the LLC header and payload. Honor it
		// when it fits the buffer so Ethernet padding is cut off.
		if n := int(v.Length) - llc; n >= 0 && n < len(v.Payload) {
			v.Payload = v.Payload[:n]
		}
	default:
		v.Kind = netview.EtherType(tp)
		v.Payload = r.Rest()
	}
	return v
}

// Strip returns only the payload of the Ethernet frame in buf.
func Strip(buf []byte) []byte { return Decode(buf, nil).Payload }

// Encode serializes the view into a fresh wire buffer. The framing recorded
// by the LLC and SNAP fields is reconstructed; the Length field is recomputed
// from the current payload first.
func (v *View) Encode() []byte {
	return v.AppendEncode(make([]byte, 0, v.headerLength()+len(v.Payload)))
}

// AppendEncode appends the wire form of the view to dst. See [View.Encode].
func (v *View) AppendEncode(dst []byte) []byte {
	dst = append(dst, v.Dst[:]...)
	dst = append(dst, v.Src[:]...)
	if v.Tagged {
		dst = binary.BigEndian.AppendUint16(dst, uint16(netview.EtherTypeVLAN))
		dst = binary.BigEndian.AppendUint16(dst, uint16(v.Tag))
	}
	if v.LLC {
		n := sizeLLC + len(v.Payload)
		if v.SNAP {
			n += sizeSNAP
		}
		v.Length = uint16(n)
		dst = binary.BigEndian.AppendUint16(dst, v.Length)
		dst = append(dst, v.DSAP, v.SSAP, v.Control)
		if v.SNAP {
			dst = append(dst, v.OUI[:]...)
			dst = binary.BigEndian.AppendUint16(dst, uint16(v.Kind))
		}
	} else {
		dst = binary.BigEndian.AppendUint16(dst, uint16(v.Kind))
	}
	return append(dst, v.Payload...)
}

func (v *View) headerLength() int {
	n := sizeHeader
	if v.Tagged {
		n += 4
	}
	if v.LLC {
		n += sizeLLC
		if v.SNAP {
			n += sizeSNAP
		}
	}
	return n
}

// IsBroadcast returns true if the destination is the broadcast address
// ff:ff:ff:ff:ff:ff.
func (v *View) IsBroadcast() bool { return v.Dst == BroadcastAddr() }

// RawData returns the buffer the view was decoded from, nil for hand-built views.
func (v *View) RawData() []byte { return v.raw }

// LayerPayload returns the bytes following the Ethernet header.
func (v *View) LayerPayload() []byte { return v.Payload }

// Parent returns the view this view was decoded from, normally nil since
// Ethernet is the outermost layer.
func (v *View) Parent() netview.Layer { return v.parent }

func (v *View) String() string {
	var src, dst []byte
	src = AppendAddr(src, v.Src)
	dst = AppendAddr(dst, v.Dst)
	return fmt.Sprintf("ETH %s -> %s type=0x%04x len=%d", src, dst, uint16(v.Kind), len(v.Payload))
}
