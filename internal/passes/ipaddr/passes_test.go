package ipaddr

import (
	"bytes"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspectx/internal/core/pass"
	"inspectx/internal/core/ports"
	"inspectx/internal/platform/ui"
	"inspectx/internal/testutil"
)

func run(t *testing.T, fn pass.ExecFunc[netip.Addr], raw string) []string {
	t.Helper()
	var buf bytes.Buffer
	fn(pass.NewReport(&buf, nil), netip.MustParseAddr(raw))
	return testutil.Lines(buf.String())
}

func TestIPVersion(t *testing.T) {
	assert.Equal(t, []string{"   version 4"}, run(t, ipVersion, "10.1.2.3"))
	assert.Equal(t, []string{"   version 6", "   zone eth0"}, run(t, ipVersion, "fe80::1%eth0"))
}

func TestCheckPrivateAndLoopback(t *testing.T) {
	tests := []struct {
		input    string
		private  string
		loopback string
	}{
		{"192.168.1.1", "   private true", "   loopback false"},
		{"127.0.0.1", "   private false", "   loopback true"},
		{"::1", "   private false", "   loopback true"},
		{"fd00::1", "   private true", "   loopback false"},
		{"8.8.8.8", "   private false", "   loopback false"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, []string{tt.private}, run(t, checkPrivate, tt.input))
			assert.Equal(t, []string{tt.loopback}, run(t, checkLoopback, tt.input))
		})
	}
}

func TestIPScope(t *testing.T) {
	tests := []struct {
		input string
		scope string
		rng   string
	}{
		{"192.168.1.1", "private", "192.168.0.0/16"},
		{"100.64.1.1", "shared", "100.64.0.0/10"},
		{"0.0.0.0", "unspecified", "0.0.0.0/32"},
		{"255.255.255.255", "broadcast", "255.255.255.255/32"},
		{"198.51.100.7", "documentation", "198.51.100.0/24"},
		{"2001:db8::1", "documentation", "2001:db8::/32"},
		{"2001:2::1", "benchmarking", "2001:2::/48"},
		{"fe80::1%eth0", "link-local", "fe80::/10"},
		{"::ffff:10.0.0.1", "ipv4-mapped", "::ffff:0.0.0.0/96"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, []string{"   scope " + tt.scope, "    range " + tt.rng}, run(t, ipScope, tt.input))
		})
	}

	assert.Equal(t, []string{"   scope global", "    range n/a"}, run(t, ipScope, "8.8.8.8"))
}

func TestIPClass(t *testing.T) {
	assert.Equal(t, []string{"   class A"}, run(t, ipClass, "10.0.0.1"))
	assert.Equal(t, []string{"   class B"}, run(t, ipClass, "172.16.0.1"))
	assert.Equal(t, []string{"   class C"}, run(t, ipClass, "192.168.0.1"))
	assert.Equal(t, []string{"   class D"}, run(t, ipClass, "224.0.0.1"))
	assert.Equal(t, []string{"   class E"}, run(t, ipClass, "250.0.0.1"))
	assert.Equal(t, []string{"   class n/a"}, run(t, ipClass, "::1"))
}

func TestIPMapped(t *testing.T) {
	tests := []struct {
		input     string
		expected  string
		mechanism string
	}{
		{"::ffff:192.0.2.1", "192.0.2.1", "ipv4-mapped"},
		{"2002:c000:0204::1", "192.0.2.4", "6to4"},
		{"64:ff9b::c000:221", "192.0.2.33", "nat64"},
		{"2001:0:4136:e378:8000:63bf:3fff:fdd2", "192.0.2.45", "teredo"},
	}

	for _, tt := range tests {
		t.Run(tt.mechanism, func(t *testing.T) {
			assert.Equal(t, []string{
				"   embedded ipv4 " + tt.expected,
				"    via " + tt.mechanism,
			}, run(t, ipMapped, tt.input))
		})
	}

	assert.Equal(t, []string{"   embedded ipv4 n/a"}, run(t, ipMapped, "10.0.0.1"))
	assert.Equal(t, []string{"   embedded ipv4 n/a"}, run(t, ipMapped, "2001:db8::1"))
}

func TestIPInteger(t *testing.T) {
	assert.Equal(t, []string{"   decimal 3232235777", "   hex 0xc0a80101"}, run(t, ipInteger, "192.168.1.1"))
	assert.Equal(t, []string{"   decimal 1", "   hex 0x1"}, run(t, ipInteger, "::1"))
}

func TestIPReversePointer(t *testing.T) {
	assert.Equal(t, []string{"   ptr 1.1.168.192.in-addr.arpa"}, run(t, ipReversePointer, "192.168.1.1"))
	assert.Equal(t,
		[]string{"   ptr 1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa"},
		run(t, ipReversePointer, "2001:db8::1"))
}

func TestIPExpanded(t *testing.T) {
	assert.Equal(t, []string{"   binary 11000000.10101000.00000001.00000001"}, run(t, ipExpanded, "192.168.1.1"))
	assert.Equal(t, []string{"   expanded 2001:0db8:0000:0000:0000:0000:0000:0001"}, run(t, ipExpanded, "2001:db8::1"))
}

func TestInspector(t *testing.T) {
	insp := NewInspector()
	assert.Equal(t, []string{
		"ip_version", "check_private", "check_loopback", "ip_scope", "ip_class",
		"ip_mapped", "ip_integer", "ip_reverse_pointer", "ip_expanded",
	}, insp.Passes())

	var buf bytes.Buffer
	ignore := pass.IgnoreFunc(func(name string) bool { return name != "check_private" && name != "check_loopback" })
	err := insp.Inspect(ports.Env{Out: &buf, Theme: ui.PlainTheme{}, Ignore: ignore}, "192.168.1.1")
	require.NoError(t, err)

	lines := testutil.Lines(buf.String())
	assert.Equal(t, "found ip(192.168.1.1)", lines[0])
	assert.Equal(t, "✘ ip_version ignored", lines[1])
	assert.Equal(t, "➔ check_private", lines[2])
	assert.Equal(t, "   private true", lines[3])
	assert.Equal(t, "➔ check_loopback", lines[4])
	assert.Equal(t, "   loopback false", lines[5])
	assert.Len(t, lines, 1+9+2)
}

func TestInspector_RejectsNonIP(t *testing.T) {
	err := NewInspector().Inspect(ports.Env{Out: &bytes.Buffer{}}, "example.com")
	assert.Error(t, err)
}
