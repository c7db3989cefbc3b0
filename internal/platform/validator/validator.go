// internal/platform/validator/validator.go
package validator

import (
	"net/netip"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

var (
	domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	hexRegex    = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	base64Regex = regexp.MustCompile(`^[A-Za-z0-9+/_\-]+={0,2}$`)
)

// Domain validators

// IsDomain verifica si un string es un dominio ASCII válido (punycode incluido).
// Requiere al menos un punto: "localhost" no cuenta como dominio aquí.
func IsDomain(domain string) bool {
	domain = strings.TrimSuffix(domain, ".")
	if len(domain) == 0 || len(domain) > 253 || !strings.Contains(domain, ".") {
		return false
	}

	if !domainRegex.MatchString(domain) {
		return false
	}

	// Una IP con puntos pasa la regex
	if _, err := netip.ParseAddr(domain); err == nil {
		return false
	}

	// El TLD nunca es solo numérico
	labels := strings.Split(domain, ".")
	tld := labels[len(labels)-1]
	return strings.IndexFunc(tld, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0
}

// NormalizeDomain normaliza un dominio a su forma canónica.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimSuffix(domain, ".")
}

// Email validators

// IsEmail valida formato de email (RFC 5322 simplificado).
func IsEmail(email string) bool {
	if len(email) == 0 || len(email) > 254 {
		return false
	}
	return emailRegex.MatchString(email)
}

// SplitEmail separa local part y dominio. ok es false si no es un email.
func SplitEmail(email string) (local, domain string, ok bool) {
	if !IsEmail(email) {
		return "", "", false
	}
	i := strings.LastIndex(email, "@")
	return email[:i], NormalizeDomain(email[i+1:]), true
}

// URL validators

// IsURL verifica si un string es una URL absoluta con scheme y host.
func IsURL(urlStr string) bool {
	if len(urlStr) == 0 {
		return false
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}

// Encoding validators

// IsHex verifica si s es hexadecimal de longitud par (bytes completos).
func IsHex(s string) bool {
	return len(s) > 0 && len(s)%2 == 0 && hexRegex.MatchString(s)
}

// IsBase64 verifica el alfabeto base64 (estándar o URL) y el padding.
// No garantiza que decodifique: eso lo decide el decoder.
func IsBase64(s string) bool {
	return len(s) >= 4 && base64Regex.MatchString(s)
}

// HashAlgorithm adivina el algoritmo de un digest hexadecimal por su longitud.
// Retorna "" si s no parece un digest.
func HashAlgorithm(s string) string {
	s = strings.TrimSpace(s)
	if !hexRegex.MatchString(s) {
		return ""
	}

	switch len(s) {
	case 32:
		return "md5"
	case 40:
		return "sha1"
	case 56:
		return "sha224"
	case 64:
		return "sha256"
	case 96:
		return "sha384"
	case 128:
		return "sha512"
	default:
		return ""
	}
}

// Generic validators

// IsPrintable verifica que todas las runas sean imprimibles (espacios incluidos).
func IsPrintable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// IsASCII verifica que todos los bytes sean ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
