package ethernet

import "strconv"

// AppendAddr appends the text representation of the hardware address to dst.
func AppendAddr(dst []byte, hwAddr [6]byte) []byte {
	for i, b := range hwAddr {
		if i != 0 {
			dst = append(dst, ':')
		}
		if b < 16 {
			dst = append(dst, '0')
		}
		dst = strconv.AppendUint(dst, uint64(b), 16)
	}
	return dst
}

// BroadcastAddr returns the all 0xff's broadcast hardware address.
func BroadcastAddr() [6]byte {
	return [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
}

// VLANTag holds the priority (PCP), drop indicator (DEI) and VLAN ID bits of
// an 802.1Q tag.
type VLANTag uint16

// PriorityCodePoint is the 3-bit 802.1p class-of-service field.
func (vt VLANTag) PriorityCodePoint() uint8 { return uint8(vt >> 13) }

// DropEligibleIndicator returns true if the DEI bit is set, marking the frame
// eligible to be dropped under congestion.
func (vt VLANTag) DropEligibleIndicator() bool { return vt&(1<<12) != 0 }

// VLANIdentifier is the 12-bit VLAN the frame belongs to. 0 and 4095 are reserved.
func (vt VLANTag) VLANIdentifier() uint16 { return uint16(vt) & 0x0fff }
