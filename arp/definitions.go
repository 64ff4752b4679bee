package arp

// HardwareEthernet is the ARP hardware type for Ethernet links.
const HardwareEthernet uint16 = 1

// Operation is the ARP opcode, request or reply.
type Operation uint16

const (
	OpRequest Operation = 1 // request
	OpReply   Operation = 2 // reply
)
