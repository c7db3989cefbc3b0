package integer

import (
	"math/big"

	"inspectx/internal/core/domain"
	"inspectx/internal/core/pass"
	"inspectx/internal/platform/registry"
)

// Auto-registration on package import
func init() {
	registry.RegisterGlobal(NewInspector())
}

// NewInspector returns the int inspector.
func NewInspector() *registry.SequenceInspector[*big.Int] {
	return registry.NewInspector(domain.KindInt, "integers: bases, bits, bytes, timestamps, addresses", domain.ParseInteger, Build)
}

// Build registers the int passes in execution order.
func Build(seq *pass.Sequence[*big.Int]) {
	seq.AddFunc(
		intBases,
		intBits,
		intBytes,
		intASCII,
		intUnixTime,
		intIPv4,
	)
}
