package ipaddr

import (
	"net/netip"

	"inspectx/internal/core/domain"
	"inspectx/internal/core/pass"
	"inspectx/internal/platform/registry"
)

// Auto-registration on package import
func init() {
	registry.RegisterGlobal(NewInspector())
}

// NewInspector returns the ip inspector.
func NewInspector() *registry.SequenceInspector[netip.Addr] {
	return registry.NewInspector(domain.KindIP, "IPv4/IPv6 addresses: scope, embedded addresses, encodings", domain.ParseIP, Build)
}

// Build registers the ip passes in execution order.
func Build(seq *pass.Sequence[netip.Addr]) {
	seq.AddFunc(
		ipVersion,
		checkPrivate,
		checkLoopback,
		ipScope,
		ipClass,
		ipMapped,
		ipInteger,
		ipReversePointer,
		ipExpanded,
	)
}
