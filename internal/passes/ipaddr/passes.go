// Package ipaddr holds the analysis passes for IPv4 and IPv6 addresses.
package ipaddr

import (
	"fmt"
	"math/big"
	"net/netip"
	"strings"

	"inspectx/internal/core/pass"
)

func ipVersion(r *pass.Report, addr netip.Addr) {
	if addr.Is4() {
		r.Info(0, "version", 4)
	} else {
		r.Info(0, "version", 6)
	}
	if zone := addr.Zone(); zone != "" {
		r.Info(0, "zone", zone)
	}
}

func checkPrivate(r *pass.Report, addr netip.Addr) {
	r.Info(0, "private", addr.IsPrivate())
}

func checkLoopback(r *pass.Report, addr netip.Addr) {
	r.Info(0, "loopback", addr.IsLoopback())
}

func ipScope(r *pass.Report, addr netip.Addr) {
	nr, ok := lookupRange(addr)
	if !ok {
		r.Info(0, "scope", "global")
		r.NA(1, "range")
		return
	}
	r.Info(0, "scope", nr.scope)
	r.Info(1, "range", nr.prefix)
}

func ipClass(r *pass.Report, addr netip.Addr) {
	if !addr.Is4() {
		r.NA(0, "class")
		return
	}

	first := addr.As4()[0]
	var class string
	switch {
	case first < 128:
		class = "A"
	case first < 192:
		class = "B"
	case first < 224:
		class = "C"
	case first < 240:
		class = "D"
	default:
		class = "E"
	}
	r.Info(0, "class", class)
}

func ipMapped(r *pass.Report, addr netip.Addr) {
	mechanism, v4, ok := embeddedIPv4(addr)
	if !ok {
		r.NA(0, "embedded ipv4")
		return
	}
	r.Info(0, "embedded ipv4", v4)
	r.Info(1, "via", mechanism)
}

func ipInteger(r *pass.Report, addr netip.Addr) {
	n := new(big.Int).SetBytes(addr.AsSlice())
	r.Info(0, "decimal", n)
	r.Infof(0, "hex", "%#x", n)
}

func ipReversePointer(r *pass.Report, addr netip.Addr) {
	r.Info(0, "ptr", reversePointer(addr))
}

func reversePointer(addr netip.Addr) string {
	b := addr.WithZone("").AsSlice()

	if len(b) == 4 {
		return fmt.Sprintf("%d.%d.%d.%d.in-addr.arpa", b[3], b[2], b[1], b[0])
	}

	labels := make([]string, 0, 32)
	for i := len(b) - 1; i >= 0; i-- {
		labels = append(labels, fmt.Sprintf("%x", b[i]&0x0f), fmt.Sprintf("%x", b[i]>>4))
	}
	return strings.Join(labels, ".") + ".ip6.arpa"
}

func ipExpanded(r *pass.Report, addr netip.Addr) {
	if addr.Is4() {
		b := addr.As4()
		r.Info(0, "binary", fmt.Sprintf("%08b.%08b.%08b.%08b", b[0], b[1], b[2], b[3]))
		return
	}
	r.Info(0, "expanded", addr.WithZone("").StringExpanded())
}
