// Package integer holds the analysis passes for integers of arbitrary size.
package integer

import (
	"fmt"
	"math/big"
	"math/bits"
	"net/netip"
	"strings"
	"time"
	"unicode"

	"inspectx/internal/core/pass"
)

var (
	maxUnixSeconds = big.NewInt(253402300799)    // 9999-12-31T23:59:59Z
	maxUnixMillis  = big.NewInt(253402300799999) // same instant in ms
	maxUint32      = new(big.Int).SetUint64(1<<32 - 1)
	maxUint128     = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

func intBases(r *pass.Report, n *big.Int) {
	r.Infof(0, "bin", "%#b", n)
	r.Infof(0, "oct", "%O", n)
	r.Infof(0, "hex", "%#x", n)
}

func intBits(r *pass.Report, n *big.Int) {
	abs := new(big.Int).Abs(n)

	ones := 0
	for _, w := range abs.Bits() {
		ones += bits.OnesCount(uint(w))
	}

	sign := "zero"
	switch n.Sign() {
	case 1:
		sign = "positive"
	case -1:
		sign = "negative"
	}

	parity := "even"
	if abs.Bit(0) == 1 {
		parity = "odd"
	}

	r.Info(0, "sign", sign)
	r.Info(0, "parity", parity)
	r.Info(0, "bit length", abs.BitLen())
	r.Info(0, "popcount", ones)
	r.Info(0, "power of two", n.Sign() > 0 && ones == 1)
}

func intBytes(r *pass.Report, n *big.Int) {
	if n.Sign() < 0 {
		r.NA(0, "big endian")
		r.NA(0, "little endian")
		return
	}

	be := n.Bytes()
	if len(be) == 0 {
		be = []byte{0}
	}
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}

	r.Info(0, "big endian", hexBytes(be))
	r.Info(0, "little endian", hexBytes(le))
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, " ")
}

func intASCII(r *pass.Report, n *big.Int) {
	if !n.IsInt64() || n.Int64() < 0 || n.Int64() > unicode.MaxRune {
		r.NA(0, "char")
		return
	}

	c := rune(n.Int64())
	if !unicode.IsPrint(c) {
		r.NA(0, "char")
		r.Infof(1, "codepoint", "%U", c)
		return
	}
	r.Infof(0, "char", "%q", c)
	r.Infof(1, "codepoint", "%U", c)
}

func intUnixTime(r *pass.Report, n *big.Int) {
	if n.Sign() >= 0 && n.Cmp(maxUnixSeconds) <= 0 {
		r.Info(0, "unix seconds", time.Unix(n.Int64(), 0).UTC().Format(time.RFC3339))
	} else {
		r.NA(0, "unix seconds")
	}

	if n.Sign() >= 0 && n.Cmp(maxUnixMillis) <= 0 {
		r.Info(0, "unix millis", time.UnixMilli(n.Int64()).UTC().Format(time.RFC3339Nano))
	} else {
		r.NA(0, "unix millis")
	}
}

func intIPv4(r *pass.Report, n *big.Int) {
	if n.Sign() < 0 || n.Cmp(maxUint32) > 0 {
		r.NA(0, "ipv4")
	} else {
		v := uint32(n.Uint64())
		r.Info(0, "ipv4", netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}))
	}

	if n.Sign() < 0 || n.Cmp(maxUint128) > 0 {
		r.NA(0, "ipv6")
		return
	}
	var b [16]byte
	n.FillBytes(b[:])
	r.Info(0, "ipv6", netip.AddrFrom16(b))
}
