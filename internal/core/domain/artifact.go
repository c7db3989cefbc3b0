// internal/core/domain/artifact.go
package domain

import (
	"fmt"
	"math/big"
	"net/netip"
	"strings"
)

// Text es el artefacto de tipo string. Se conserva tal cual, sin trim.
type Text string

// String implementa fmt.Stringer.
func (t Text) String() string {
	return string(t)
}

// ParseIP parsea una dirección IP (v4, v6, v6 con zona).
func ParseIP(raw string) (netip.Addr, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return netip.Addr{}, ErrEmptyArtifact
	}
	addr, err := netip.ParseAddr(v)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q is not an ip: %v", ErrKindMismatch, raw, err)
	}
	return addr, nil
}

// ParseInteger parsea un entero con signo opcional en decimal o con prefijo
// 0x, 0o o 0b. Se admiten guiones bajos entre dígitos.
func ParseInteger(raw string) (*big.Int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, ErrEmptyArtifact
	}

	// big.Int acepta "0755" como octal con base 0; un cero inicial sin prefijo
	// se lee aquí como decimal, igual que lo escribiría una persona.
	digits := strings.TrimLeft(v, "+-")
	base := 0
	if len(digits) > 1 && digits[0] == '0' && isDigit(digits[1]) {
		base = 10
		v = strings.ReplaceAll(v, "_", "")
	}

	n, ok := new(big.Int).SetString(v, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrKindMismatch, raw)
	}
	return n, nil
}

// ParseText nunca falla salvo con entrada vacía.
func ParseText(raw string) (Text, error) {
	if raw == "" {
		return "", ErrEmptyArtifact
	}
	return Text(raw), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
