// internal/platform/config/ignore.go
package config

import (
	"path"
	"strings"
)

// IgnoreSet decide qué passes se saltan. Entradas exactas o patrones glob
// (path.Match). Es inmutable tras construirse: seguro para uso concurrente.
type IgnoreSet struct {
	exact    map[string]struct{}
	patterns []string
	entries  []string
}

// NewIgnoreSet construye el conjunto a partir de las entradas configuradas.
func NewIgnoreSet(entries []string) *IgnoreSet {
	s := &IgnoreSet{
		exact:   make(map[string]struct{}, len(entries)),
		entries: append([]string(nil), entries...),
	}
	for _, e := range entries {
		if IsPattern(e) {
			s.patterns = append(s.patterns, e)
			continue
		}
		s.exact[e] = struct{}{}
	}
	return s
}

// IsIgnored implementa pass.Ignorer.
func (s *IgnoreSet) IsIgnored(name string) bool {
	if s == nil {
		return false
	}
	if _, ok := s.exact[name]; ok {
		return true
	}
	for _, p := range s.patterns {
		if ok, _ := path.Match(p, name); ok {
			return true
		}
	}
	return false
}

// Entries retorna las entradas en el orden configurado.
func (s *IgnoreSet) Entries() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.entries...)
}

// Len retorna el número de entradas.
func (s *IgnoreSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// IsPattern reporta si entry contiene metacaracteres glob.
func IsPattern(entry string) bool {
	return strings.ContainsAny(entry, "*?[")
}

// MatchPass reporta si una entrada de ignore cubre el pass name.
func MatchPass(entry, name string) bool {
	if !IsPattern(entry) {
		return entry == name
	}
	ok, _ := path.Match(entry, name)
	return ok
}
