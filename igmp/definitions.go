package igmp

// Type is the IGMP message type.
type Type uint8

const (
	TypeMembershipQuery    Type = 0x11 // membership query
	TypeMembershipReportV1 Type = 0x12 // v1 membership report
	TypeMembershipReportV2 Type = 0x16 // v2 membership report
	TypeLeaveGroup         Type = 0x17 // leave group
	TypeMembershipReportV3 Type = 0x22 // v3 membership report
)
