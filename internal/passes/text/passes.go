// Package text holds the analysis passes for free-form strings.
package text

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/unicode/norm"

	"inspectx/internal/core/domain"
	"inspectx/internal/core/pass"
	"inspectx/internal/platform/urlnorm"
	"inspectx/internal/platform/validator"
)

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.URLEncoding,
	base64.RawStdEncoding,
	base64.RawURLEncoding,
}

func strLength(r *pass.Report, s domain.Text) {
	v := string(s)
	r.Info(0, "bytes", len(v))
	r.Info(0, "runes", utf8.RuneCountInString(v))
	r.Info(0, "width", runewidth.StringWidth(v))
	r.Info(0, "lines", strings.Count(v, "\n")+1)
}

func strCharset(r *pass.Report, s domain.Text) {
	v := string(s)
	r.Info(0, "ascii", validator.IsASCII(v))
	r.Info(0, "utf8", utf8.ValidString(v))
	r.Info(0, "nfc", norm.NFC.IsNormalString(v))
	r.Info(0, "printable", validator.IsPrintable(v))
}

func strHashes(r *pass.Report, s domain.Text) {
	v := []byte(s)
	md := md5.Sum(v)
	s1 := sha1.Sum(v)
	s256 := sha256.Sum256(v)

	r.Info(0, "md5", hex.EncodeToString(md[:]))
	r.Info(0, "sha1", hex.EncodeToString(s1[:]))
	r.Info(0, "sha256", hex.EncodeToString(s256[:]))

	if alg := validator.HashAlgorithm(string(s)); alg != "" {
		r.Info(0, "looks like", alg)
	} else {
		r.NA(0, "looks like")
	}
}

func strBase64(r *pass.Report, s domain.Text) {
	v := strings.TrimSpace(string(s))
	if !validator.IsBase64(v) {
		r.NA(0, "base64")
		return
	}

	for _, enc := range base64Encodings {
		if decoded, err := enc.DecodeString(v); err == nil {
			printDecoded(r, "base64", decoded)
			return
		}
	}
	r.NA(0, "base64")
}

func strHex(r *pass.Report, s domain.Text) {
	v := strings.TrimSpace(string(s))
	v = strings.TrimPrefix(strings.TrimPrefix(v, "0x"), "0X")
	if !validator.IsHex(v) {
		r.NA(0, "hex")
		return
	}

	decoded, err := hex.DecodeString(v)
	if err != nil {
		r.NA(0, "hex")
		return
	}
	printDecoded(r, "hex", decoded)
}

// printDecoded shows decoded text verbatim, or its size when it is binary.
func printDecoded(r *pass.Report, label string, decoded []byte) {
	if utf8.Valid(decoded) && validator.IsPrintable(string(decoded)) {
		r.Infof(0, label, "%q", decoded)
		return
	}
	r.Infof(0, label, "%d bytes (binary)", len(decoded))
}

func strURL(r *pass.Report, s domain.Text) {
	v := strings.TrimSpace(string(s))
	if !validator.IsURL(v) {
		r.NA(0, "url")
		return
	}
	u, err := url.Parse(v)
	if err != nil {
		r.NA(0, "url")
		return
	}

	r.Info(0, "scheme", u.Scheme)
	r.Info(0, "host", u.Hostname())
	if port := u.Port(); port != "" {
		r.Info(0, "port", port)
	} else {
		r.NA(0, "port")
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	r.Info(0, "path", path)

	if u.RawQuery != "" {
		r.Info(0, "query", u.RawQuery)
		r.Info(1, "params", len(u.Query()))
	}
	if u.Fragment != "" {
		r.Info(0, "fragment", u.Fragment)
	}

	norm, err := urlnorm.Normalize(v)
	if err != nil {
		return
	}
	r.Info(0, "canonical", norm.Canonical)
	if len(norm.ParamsRemoved) > 0 {
		r.Info(1, "tracking removed", strings.Join(norm.ParamsRemoved, ","))
	}
	if len(norm.DynamicSegments) > 0 {
		r.Info(0, "template", norm.Template)
	}
}

func strDomain(r *pass.Report, s domain.Text) {
	ascii, err := idna.Lookup.ToASCII(strings.TrimSpace(string(s)))
	if err != nil || !validator.IsDomain(ascii) {
		r.NA(0, "domain")
		return
	}
	ascii = validator.NormalizeDomain(ascii)

	r.Info(0, "domain", ascii)
	if uni, err := idna.Display.ToUnicode(ascii); err == nil && uni != ascii {
		r.Info(1, "unicode", uni)
	}

	suffix, icann := publicsuffix.PublicSuffix(ascii)
	r.Info(0, "public suffix", suffix)
	r.Info(1, "icann", icann)

	if etld1, err := publicsuffix.EffectiveTLDPlusOne(ascii); err == nil {
		r.Info(0, "registrable", etld1)
	} else {
		r.NA(0, "registrable")
	}
}

func strEmail(r *pass.Report, s domain.Text) {
	local, host, ok := validator.SplitEmail(strings.TrimSpace(string(s)))
	if !ok {
		r.NA(0, "email")
		return
	}
	r.Info(0, "local", local)
	r.Info(0, "domain", host)
}
