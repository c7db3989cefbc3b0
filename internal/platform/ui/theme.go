// internal/platform/ui/theme.go
package ui

import "fmt"

// Theme decora cada elemento de la traza. Es puramente cosmético: quitar el
// color no cambia el texto que queda tras eliminar los códigos ANSI.
type Theme interface {
	Keyword(s string) string
	Kind(s string) string
	Artifact(s string) string
	Pass(s string) string
	Label(s string) string
	Value(s string) string
	NA(s string) string
}

// NewTheme retorna el tema con colores pterm o el tema plano.
func NewTheme(color bool) Theme {
	if color {
		return PtermTheme{}
	}
	return PlainTheme{}
}

// PlainTheme no aplica ningún estilo.
type PlainTheme struct{}

func (PlainTheme) Keyword(s string) string  { return s }
func (PlainTheme) Kind(s string) string     { return s }
func (PlainTheme) Artifact(s string) string { return s }
func (PlainTheme) Pass(s string) string     { return s }
func (PlainTheme) Label(s string) string    { return s }
func (PlainTheme) Value(s string) string    { return s }
func (PlainTheme) NA(s string) string       { return s }

// PtermTheme usa la paleta de colors.go.
type PtermTheme struct{}

func (PtermTheme) Keyword(s string) string  { return StyleKeyword.Sprint(s) }
func (PtermTheme) Kind(s string) string     { return StyleKind.Sprint(s) }
func (PtermTheme) Artifact(s string) string { return StyleArtifact.Sprint(s) }
func (PtermTheme) Pass(s string) string     { return StylePass.Sprint(s) }
func (PtermTheme) Label(s string) string    { return StyleLabel.Sprint(s) }
func (PtermTheme) Value(s string) string    { return StyleValue.Sprint(s) }
func (PtermTheme) NA(s string) string       { return StyleNA.Sprint(s) }

// Header arma la línea "found TY(value)".
func Header(t Theme, kind, value string) string {
	return fmt.Sprintf("%s %s(%s)", t.Keyword(WordFound), t.Kind(kind), t.Artifact(value))
}

// PassLine arma la línea de un pass según su status.
func PassLine(t Theme, status Status, name string) string {
	line := fmt.Sprintf("%s %s", t.Keyword(status.Symbol()), t.Pass(name))
	if status == StatusSkipped {
		line += " " + t.Keyword(WordIgnored)
	}
	return line
}
