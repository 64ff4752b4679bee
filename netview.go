// Package netview provides structured per-layer views over raw network packet
// bytes for the link (Ethernet), network (IPv4, ARP) and transport (UDP, TCP)
// layers plus the ICMP and IGMP control protocols.
//
// Each protocol subpackage exposes the same contract: Decode remaps a byte
// buffer into a View without ever failing (short or malformed input yields
// zero-valued fields and clamped slices), Encode serializes the view back into
// wire form recomputing derived length and checksum fields, and Strip returns
// only the payload of a buffer. Views form a chain through non-owning parent
// references: a layer's decode receives the view it was cut out of, and
// transport encodes read network-layer addresses through that link to build
// their pseudo-header checksums.
//
// The root package holds what the layers share: the Internet checksum engine,
// the EtherType and IP protocol number tables used for external dispatch, and
// the Layer and ChecksumContext interfaces.
package netview

import "errors"

// Layer is implemented by every protocol view in this module. It exposes the
// pieces common to all layers: the original bytes the view was decoded from,
// the payload following the layer's own header, and the view that produced
// this one (nil at the outermost layer or for hand-built views).
//
// Parent links are non-owning: a parent never references its child, so no
// cycle can form, and the child uses the link only to read cross-layer fields
// during encode.
type Layer interface {
	// RawData returns the buffer the view was decoded from, nil for views
	// built by hand. Kept for inspection; decode results are not re-derived
	// from it.
	RawData() []byte
	// LayerPayload returns the bytes following this layer's header.
	LayerPayload() []byte
	// Parent returns the view whose payload this view was decoded from.
	Parent() Layer
}

// ChecksumContext supplies the enclosing network-layer fields a transport
// checksum needs. The UDP and TCP pseudo-header has identical shape: source
// address, destination address, a zero byte joined with the protocol number,
// and the transport segment length. *ipv4.View implements this interface.
type ChecksumContext interface {
	// ChecksumPseudo adds the pseudo-header for a segment of the given
	// protocol and length to the running checksum.
	ChecksumPseudo(sum *Checksum, proto IPProto, segmentLen uint16)
}

// ErrNoChecksumContext is returned by UDP and TCP encode when no enclosing
// network-layer view is available, neither as an explicit argument nor as the
// view's parent. The checksum cannot be computed without source and
// destination addresses and silently emitting a wrong one would produce
// frames that every receiver discards.
var ErrNoChecksumContext = errors.New("netview: transport encode requires a network-layer checksum context")
