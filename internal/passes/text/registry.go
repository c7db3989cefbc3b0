package text

import (
	"inspectx/internal/core/domain"
	"inspectx/internal/core/pass"
	"inspectx/internal/platform/registry"
)

// Auto-registration on package import
func init() {
	registry.RegisterGlobal(NewInspector())
}

// NewInspector returns the string inspector.
func NewInspector() *registry.SequenceInspector[domain.Text] {
	return registry.NewInspector(domain.KindString, "strings: length, charset, hashes, encodings, urls, domains, emails", domain.ParseText, Build)
}

// Build registers the string passes in execution order.
func Build(seq *pass.Sequence[domain.Text]) {
	seq.AddFunc(
		strLength,
		strCharset,
		strHashes,
		strBase64,
		strHex,
		strURL,
		strDomain,
		strEmail,
	)
}
