// internal/core/domain/kind.go
package domain

import (
	"fmt"
	"net/netip"
	"strings"
)

// Kind clasifica un artefacto y es a la vez la etiqueta que aparece en la
// cabecera de la traza ("found ip(...)").
type Kind string

const (
	// KindIP representa una dirección IPv4 o IPv6
	KindIP Kind = "ip"

	// KindInt representa un entero de tamaño arbitrario
	KindInt Kind = "int"

	// KindString representa cualquier otro valor
	KindString Kind = "string"
)

// IsValid verifica si el kind es conocido.
func (k Kind) IsValid() bool {
	switch k {
	case KindIP, KindInt, KindString:
		return true
	default:
		return false
	}
}

// String retorna la representación string del kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind convierte un nombre ("ip", "int", "string", o sus alias) en Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ip", "addr", "address":
		return KindIP, nil
	case "int", "integer", "number":
		return KindInt, nil
	case "string", "str", "text":
		return KindString, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Classify elige el kind más específico que acepta el valor:
// ip antes que int, int antes que string.
func Classify(raw string) Kind {
	v := strings.TrimSpace(raw)
	if _, err := netip.ParseAddr(v); err == nil {
		return KindIP
	}
	if _, err := ParseInteger(v); err == nil {
		return KindInt
	}
	return KindString
}
