package ipv4

// ToS is the IPv4 Type of Service byte, today a DSCP+ECN union.
type ToS uint8

// DS returns the top 6 bits holding the Differentiated Services field used to
// classify packets (RFC 2474).
func (tos ToS) DS() uint8 { return uint8(tos) >> 2 }

// ECN returns the Explicit Congestion Notification bits (RFC 3168).
func (tos ToS) ECN() uint8 { return uint8(tos) & 0b11 }

// Flags holds the fragmentation fields of an IPv4 header: three flag bits
// followed by the 13-bit fragment offset.
type Flags uint16

const (
	// FlagDontFragment forbids fragmentation; routers drop the packet when
	// it would not fit the next link.
	FlagDontFragment Flags = 0x4000
	// FlagMoreFragments is set on every fragment except the last. The last
	// fragment is told apart from an unfragmented packet by its non-zero
	// offset.
	FlagMoreFragments Flags = 0x2000
)

// DontFragment reports whether the datagram may not be fragmented.
func (f Flags) DontFragment() bool { return f&FlagDontFragment != 0 }

// MoreFragments reports whether further fragments follow this one.
func (f Flags) MoreFragments() bool { return f&FlagMoreFragments != 0 }

// FragmentOffset is the fragment position within the original datagram, in
// units of 8 bytes.
func (f Flags) FragmentOffset() uint16 { return uint16(f) & 0x1fff }
