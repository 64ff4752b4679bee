package icmpv4

// Type is the ICMP message type.
type Type uint8

const (
	TypeEchoReply Type = 0 // echo reply
	TypeEcho      Type = 8 // echo

	TypeDestinationUnreachable Type = 3 // destination unreachable
	TypeSourceQuench           Type = 4 // source quench
	TypeRedirect               Type = 5 // redirect

	TypeTimeExceeded     Type = 11 // time exceeded
	TypeParameterProblem Type = 12 // parameter problem

	TypeTimestamp      Type = 13 // timestamp
	TypeTimestampReply Type = 14 // timestamp reply
)

// CodeDestinationUnreachable are the code values of a destination
// unreachable message.
type CodeDestinationUnreachable uint8

const (
	CodeNetUnreachable     CodeDestinationUnreachable = iota // net unreachable
	CodeHostUnreachable                                      // host unreachable
	CodeProtoUnreachable                                     // protocol unreachable
	CodePortUnreachable                                      // port unreachable
	CodeFragNeededAndDFSet                                   // fragmentation needed and DF set
	CodeSourceRouteFailed                                    // source route failed
)

// CodeTimeExceeded are the code values of a time exceeded message.
type CodeTimeExceeded uint8

const (
	CodeExceededInTransit  CodeTimeExceeded = iota // TTL exceeded in transit
	CodeFragmentReassembly                         // fragment reassembly time exceeded
)
