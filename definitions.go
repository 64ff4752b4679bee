package netview

// EtherType identifies the protocol encapsulated in an Ethernet frame. Values
// of 1500 and below are not EtherTypes at all but 802.3 payload lengths; see
// [EtherType.IsSize].
type EtherType uint16

// IsSize returns true if the value is an 802.3 payload length rather than an
// EtherType and the frame carries an 802.2 LLC header after it.
func (et EtherType) IsSize() bool { return et <= 1500 }

// EtherType values of the protocols this module and its callers dispatch on.
const (
	// EtherTypeLLC is the normalized frame kind reported for 802.2 LLC frames
	// whose SNAP extension is absent, where no real EtherType exists on the
	// wire. Same sentinel value gopacket uses.
	EtherTypeLLC            EtherType = 0
	EtherTypeIPv4           EtherType = 0x0800 // IPv4
	EtherTypeARP            EtherType = 0x0806 // ARP
	EtherTypeWakeOnLAN      EtherType = 0x0842 // wake on LAN
	EtherTypeRARP           EtherType = 0x8035 // RARP
	EtherTypeAppleTalk      EtherType = 0x809B // AppleTalk
	EtherTypeVLAN           EtherType = 0x8100 // 802.1Q VLAN tag
	EtherTypeIPX            EtherType = 0x8137 // IPX
	EtherTypeIPv6           EtherType = 0x86DD // IPv6
	EtherTypeMPLSUnicast    EtherType = 0x8847 // MPLS unicast
	EtherTypeMPLSMulticast  EtherType = 0x8848 // MPLS multicast
	EtherTypePPPoEDiscovery EtherType = 0x8863 // PPPoE discovery
	EtherTypePPPoESession   EtherType = 0x8864 // PPPoE session
	EtherTypeServiceVLAN    EtherType = 0x88A8 // 802.1ad service VLAN
	EtherTypeLLDP           EtherType = 0x88CC // LLDP
)

// IPProto is an IP protocol number as found in the IPv4 header's protocol
// field. The table is exposed so callers can dispatch an IP payload to the
// matching transport decoder; the module itself never dispatches.
type IPProto uint8

// IP protocol numbers.
const (
	IPProtoICMP     IPProto = 1   // Internet Control Message [RFC792]
	IPProtoIGMP     IPProto = 2   // Internet Group Management [RFC1112]
	IPProtoIPv4     IPProto = 4   // IPv4 encapsulation [RFC2003]
	IPProtoTCP      IPProto = 6   // Transmission Control [RFC793]
	IPProtoUDP      IPProto = 17  // User Datagram [RFC768]
	IPProtoIPv6     IPProto = 41  // IPv6 encapsulation [RFC2473]
	IPProtoGRE      IPProto = 47  // Generic Routing Encapsulation [RFC2784]
	IPProtoESP      IPProto = 50  // Encap Security Payload [RFC4303]
	IPProtoAH       IPProto = 51  // Authentication Header [RFC4302]
	IPProtoIPv6ICMP IPProto = 58  // ICMP for IPv6 [RFC8200]
	IPProtoEIGRP    IPProto = 88  // EIGRP
	IPProtoOSPF     IPProto = 89  // OSPF
	IPProtoEtherIP  IPProto = 97  // Ethernet-within-IP [RFC3378]
	IPProtoL2TP     IPProto = 115 // Layer Two Tunneling Protocol v3
	IPProtoSCTP     IPProto = 132 // Stream Control Transmission Protocol
	IPProtoUDPLite  IPProto = 136 // UDPLite [RFC3828]
)
