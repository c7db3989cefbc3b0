package text

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspectx/internal/core/domain"
	"inspectx/internal/core/pass"
	"inspectx/internal/core/ports"
	"inspectx/internal/platform/ui"
	"inspectx/internal/testutil"
)

func run(fn pass.ExecFunc[domain.Text], raw string) []string {
	var buf bytes.Buffer
	fn(pass.NewReport(&buf, nil), domain.Text(raw))
	return testutil.Lines(buf.String())
}

func TestStrLength(t *testing.T) {
	assert.Equal(t, []string{
		"   bytes 8",
		"   runes 4",
		"   width 6",
		"   lines 1",
	}, run(strLength, "日本ab"))

	lines := run(strLength, "a\nb")
	require.Len(t, lines, 4)
	assert.Equal(t, "   lines 2", lines[3])
}

func TestStrCharset(t *testing.T) {
	assert.Equal(t, []string{
		"   ascii true", "   utf8 true", "   nfc true", "   printable true",
	}, run(strCharset, "hello"))

	assert.Equal(t, []string{
		"   ascii false", "   utf8 true", "   nfc false", "   printable true",
	}, run(strCharset, "e\u0301"))

	lines := run(strCharset, "\xff")
	require.Len(t, lines, 4)
	assert.Equal(t, "   utf8 false", lines[1])
}

func TestStrHashes(t *testing.T) {
	assert.Equal(t, []string{
		"   md5 900150983cd24fb0d6963f7d28e17f72",
		"   sha1 a9993e364706816aba3e25717850c26c9cd0d89d",
		"   sha256 ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		"   looks like n/a",
	}, run(strHashes, "abc"))

	lines := run(strHashes, "900150983cd24fb0d6963f7d28e17f72")
	require.Len(t, lines, 4)
	assert.Equal(t, "   looks like md5", lines[3])
}

func TestStrBase64(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"aGVsbG8=", `   base64 "hello"`},
		{"aGVsbG8", `   base64 "hello"`},
		{"test", "   base64 3 bytes (binary)"},
		{"abc", "   base64 n/a"},
		{"not base64!", "   base64 n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, []string{tt.expected}, run(strBase64, tt.input))
		})
	}
}

func TestStrHex(t *testing.T) {
	assert.Equal(t, []string{`   hex "Hello"`}, run(strHex, "48656c6c6f"))
	assert.Equal(t, []string{`   hex "Hello"`}, run(strHex, "0x48656C6C6F"))
	assert.Equal(t, []string{"   hex 2 bytes (binary)"}, run(strHex, "ff00"))
	assert.Equal(t, []string{"   hex n/a"}, run(strHex, "abc"))
	assert.Equal(t, []string{"   hex n/a"}, run(strHex, "zz"))
}

func TestStrURL(t *testing.T) {
	assert.Equal(t, []string{
		"   scheme https",
		"   host example.com",
		"   port 8443",
		"   path /a/b",
		"   query x=1&y=2",
		"    params 2",
		"   fragment top",
		"   canonical https://example.com:8443/a/b?x=1&y=2",
	}, run(strURL, "https://example.com:8443/a/b?x=1&y=2#top"))

	assert.Equal(t, []string{
		"   scheme http",
		"   host example.com",
		"   port n/a",
		"   path /",
		"   canonical http://example.com",
	}, run(strURL, "http://example.com"))

	assert.Equal(t, []string{
		"   scheme https",
		"   host Example.COM",
		"   port 443",
		"   path /users/12345/",
		"   query utm_source=x&b=2",
		"    params 2",
		"   canonical https://example.com/users/12345?b=2",
		"    tracking removed utm_source",
		"   template https://example.com/users/{id}?b=2",
	}, run(strURL, "HTTPS://Example.COM:443/users/12345/?utm_source=x&b=2"))

	assert.Equal(t, []string{"   url n/a"}, run(strURL, "example.com/path"))
}

func TestStrDomain(t *testing.T) {
	assert.Equal(t, []string{
		"   domain www.example.co.uk",
		"   public suffix co.uk",
		"    icann true",
		"   registrable example.co.uk",
	}, run(strDomain, "WWW.Example.co.uk"))

	assert.Equal(t, []string{
		"   domain xn--mnchen-3ya.de",
		"    unicode münchen.de",
		"   public suffix de",
		"    icann true",
		"   registrable xn--mnchen-3ya.de",
	}, run(strDomain, "münchen.de"))

	assert.Equal(t, []string{"   domain n/a"}, run(strDomain, "localhost"))
	assert.Equal(t, []string{"   domain n/a"}, run(strDomain, "user@example.com"))
}

func TestStrEmail(t *testing.T) {
	assert.Equal(t, []string{"   local Alice", "   domain example.com"}, run(strEmail, "Alice@Example.COM"))
	assert.Equal(t, []string{"   email n/a"}, run(strEmail, "alice"))
}

func TestInspector(t *testing.T) {
	insp := NewInspector()
	assert.Equal(t, domain.KindString, insp.Kind())
	assert.Equal(t, []string{
		"str_length", "str_charset", "str_hashes", "str_base64",
		"str_hex", "str_url", "str_domain", "str_email",
	}, insp.Passes())

	var buf bytes.Buffer
	ignore := pass.IgnoreFunc(func(name string) bool { return name != "str_email" })
	require.NoError(t, insp.Inspect(ports.Env{Out: &buf, Theme: ui.PlainTheme{}, Ignore: ignore}, "bob@example.org"))

	lines := testutil.Lines(buf.String())
	require.Len(t, lines, 1+8+2)
	assert.Equal(t, "found string(bob@example.org)", lines[0])
	assert.Equal(t, "➔ str_email", lines[8])
	assert.Equal(t, "   local bob", lines[9])
	assert.Equal(t, "   domain example.org", lines[10])
}

func TestInspector_RejectsEmpty(t *testing.T) {
	err := NewInspector().Inspect(ports.Env{Out: &bytes.Buffer{}}, "")
	assert.ErrorIs(t, err, domain.ErrEmptyArtifact)
}
