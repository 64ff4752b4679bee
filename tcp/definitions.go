package tcp

import "math/bits"

// Flags holds the TCP flag bits together with the three reserved bits that
// share their byte pair with the data offset.
type Flags uint16

const (
	FlagFIN Flags = 1 << iota // FIN - no more data from sender
	FlagSYN                   // SYN - synchronize sequence numbers
	FlagRST                   // RST - reset the connection
	FlagPSH                   // PSH - push function
	FlagACK                   // ACK - acknowledgment field significant
	FlagURG                   // URG - urgent pointer field significant
	FlagECE                   // ECE - ECN echo
	FlagCWR                   // CWR - congestion window reduced
	FlagNS                    // NS  - nonce sum (RFC 3540)
)

const flagMask = 0x01ff

// HasAll checks if mask bits are all set in the receiver flags.
func (flags Flags) HasAll(mask Flags) bool { return flags&mask == mask }

// HasAny checks if one or more mask bits are set in receiver flags.
func (flags Flags) HasAny(mask Flags) bool { return flags&mask != 0 }

// Mask returns the flags with the reserved bits unset.
func (flags Flags) Mask() Flags { return flags & flagMask }

var flagNames = [...]string{"FIN", "SYN", "RST", "PSH", "ACK", "URG", "ECE", "CWR", "NS"}

// String returns a human readable flag string such as "[SYN,ACK]". Flags are
// printed in order from LSB (FIN) to MSB (NS); reserved bits are omitted.
func (flags Flags) String() string {
	flags = flags.Mask()
	buf := make([]byte, 0, 2+4*bits.OnesCount16(uint16(flags)))
	buf = append(buf, '[')
	for i, name := range flagNames {
		if flags&(1<<i) == 0 {
			continue
		}
		if len(buf) > 1 {
			buf = append(buf, ',')
		}
		buf = append(buf, name...)
	}
	return string(append(buf, ']'))
}
