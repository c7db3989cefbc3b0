package pass

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"
	"unicode"

	"inspectx/internal/platform/ui"
)

// FuncName returns the identifier of a named function in snake_case, without
// its package path or type parameters: ipaddr.checkPrivate -> check_private.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}

	name := f.Name()
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return snakeCase(strings.TrimSuffix(name, "-fm"))
}

func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// parseIPAddr -> parse_ip_addr: split after lower/digit, and before
			// the last upper of an acronym that starts a new word.
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(unicode.IsUpper(runes[i-1]) && startsWord(runes, i+1))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// startsWord reports whether runes[i:] opens a lowercase word. A single
// lowercase letter before a digit stays with the acronym: IPv4 -> ipv4.
func startsWord(runes []rune, i int) bool {
	if i >= len(runes) || !unicode.IsLower(runes[i]) {
		return false
	}
	return i+1 >= len(runes) || !unicode.IsDigit(runes[i+1])
}

// RunFuncs builds a sequence whose passes are named after fns and runs it
// once against in.
func RunFuncs[T fmt.Stringer](w io.Writer, theme ui.Theme, config Ignorer, ty string, in T, fns ...ExecFunc[T]) {
	NewSequence[T](config, ty, WithWriter(w), WithTheme(theme)).
		AddFunc(fns...).
		Run(in)
}
