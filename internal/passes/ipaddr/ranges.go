package ipaddr

import "net/netip"

// namedRange is a special-purpose block from the IANA registries.
type namedRange struct {
	prefix netip.Prefix
	scope  string
}

var specialRanges = []namedRange{
	{netip.MustParsePrefix("0.0.0.0/8"), "this-network"},
	{netip.MustParsePrefix("0.0.0.0/32"), "unspecified"},
	{netip.MustParsePrefix("10.0.0.0/8"), "private"},
	{netip.MustParsePrefix("100.64.0.0/10"), "shared"},
	{netip.MustParsePrefix("127.0.0.0/8"), "loopback"},
	{netip.MustParsePrefix("169.254.0.0/16"), "link-local"},
	{netip.MustParsePrefix("172.16.0.0/12"), "private"},
	{netip.MustParsePrefix("192.0.0.0/24"), "ietf-protocol"},
	{netip.MustParsePrefix("192.0.2.0/24"), "documentation"},
	{netip.MustParsePrefix("192.88.99.0/24"), "6to4-relay"},
	{netip.MustParsePrefix("192.168.0.0/16"), "private"},
	{netip.MustParsePrefix("198.18.0.0/15"), "benchmarking"},
	{netip.MustParsePrefix("198.51.100.0/24"), "documentation"},
	{netip.MustParsePrefix("203.0.113.0/24"), "documentation"},
	{netip.MustParsePrefix("224.0.0.0/4"), "multicast"},
	{netip.MustParsePrefix("240.0.0.0/4"), "reserved"},
	{netip.MustParsePrefix("255.255.255.255/32"), "broadcast"},

	{netip.MustParsePrefix("::/128"), "unspecified"},
	{netip.MustParsePrefix("::1/128"), "loopback"},
	{netip.MustParsePrefix("::ffff:0:0/96"), "ipv4-mapped"},
	{netip.MustParsePrefix("64:ff9b::/96"), "nat64"},
	{netip.MustParsePrefix("100::/64"), "discard"},
	{netip.MustParsePrefix("2001::/32"), "teredo"},
	{netip.MustParsePrefix("2001:2::/48"), "benchmarking"},
	{netip.MustParsePrefix("2001:db8::/32"), "documentation"},
	{netip.MustParsePrefix("2002::/16"), "6to4"},
	{netip.MustParsePrefix("fc00::/7"), "unique-local"},
	{netip.MustParsePrefix("fe80::/10"), "link-local"},
	{netip.MustParsePrefix("ff00::/8"), "multicast"},
}

// lookupRange returns the most specific special range containing addr.
func lookupRange(addr netip.Addr) (namedRange, bool) {
	addr = addr.WithZone("")

	var best namedRange
	found := false
	for _, nr := range specialRanges {
		if !nr.prefix.Contains(addr) {
			continue
		}
		if !found || nr.prefix.Bits() > best.prefix.Bits() {
			best = nr
			found = true
		}
	}
	return best, found
}

var (
	prefix6to4   = netip.MustParsePrefix("2002::/16")
	prefixNAT64  = netip.MustParsePrefix("64:ff9b::/96")
	prefixTeredo = netip.MustParsePrefix("2001::/32")
)

// embeddedIPv4 extracts an IPv4 address carried inside an IPv6 one.
func embeddedIPv4(addr netip.Addr) (mechanism string, v4 netip.Addr, ok bool) {
	addr = addr.WithZone("")
	if !addr.Is6() {
		return "", netip.Addr{}, false
	}

	b := addr.As16()
	switch {
	case addr.Is4In6():
		return "ipv4-mapped", addr.Unmap(), true
	case prefix6to4.Contains(addr):
		return "6to4", netip.AddrFrom4([4]byte{b[2], b[3], b[4], b[5]}), true
	case prefixNAT64.Contains(addr):
		return "nat64", netip.AddrFrom4([4]byte{b[12], b[13], b[14], b[15]}), true
	case prefixTeredo.Contains(addr):
		// Teredo stores the client address inverted in the last 32 bits
		return "teredo", netip.AddrFrom4([4]byte{^b[12], ^b[13], ^b[14], ^b[15]}), true
	default:
		return "", netip.Addr{}, false
	}
}
