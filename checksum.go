package netview

import (
	"encoding/binary"
)

// Checksum is a running Internet checksum as defined by RFC 791 and RFC 1071:
// the 16-bit ones' complement of the ones' complement sum of all 16-bit words
// of the input, with an odd trailing octet padded on the right with zeros.
// IPv4, ICMP and IGMP sum their own bytes directly; UDP and TCP prepend a
// pseudo-header through [ChecksumContext] before summing the segment.
//
// The zero value of Checksum is ready to use.
type Checksum struct {
	sum uint32
}

// Write adds the bytes in b to the running checksum interpreted as big-endian
// 16-bit words. An odd-length b is zero-padded; padding happens per call, so
// only the final Write of a sum may have odd length.
func (c *Checksum) Write(b []byte) {
	odd := len(b) & 1
	for i := 0; i < len(b)-odd; i += 2 {
		c.sum += uint32(binary.BigEndian.Uint16(b[i:]))
	}
	if odd != 0 {
		c.sum += uint32(b[len(b)-1]) << 8
	}
}

// AddUint16 adds a 16-bit value to the running checksum in network order.
func (c *Checksum) AddUint16(v uint16) {
	c.sum += uint32(v)
}

// AddUint32 adds a 32-bit value to the running checksum in network order.
func (c *Checksum) AddUint32(v uint32) {
	c.AddUint16(uint16(v >> 16))
	c.AddUint16(uint16(v))
}

// Sum16 folds carries above bit 16 back into the low word and returns the
// ones' complement of the result.
func (c *Checksum) Sum16() uint16 {
	sum := (c.sum & 0xffff) + c.sum>>16
	// after one fold the maximum is 0x1fffe, a second fold always suffices.
	return ^uint16(sum + sum>>16)
}

// Reset returns the checksum to its initial state.
func (c *Checksum) Reset() { *c = Checksum{} }

// Sum16 computes the Internet checksum of b in one shot.
func Sum16(b []byte) uint16 {
	var c Checksum
	c.Write(b)
	return c.Sum16()
}

// NeverZeroChecksum maps a computed checksum of zero to 0xffff, its ones'
// complement equal. UDP transmits zero to mean "no checksum computed" (RFC
// 768), so a real computed zero must be sent as 0xffff.
func NeverZeroChecksum(sum16 uint16) uint16 {
	if sum16 == 0 {
		return 0xffff
	}
	return sum16
}
