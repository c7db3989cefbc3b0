// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Paleta de la traza. Todo va en negrita; cada elemento tiene su color para
// que el ojo separe cabecera, passes y hallazgos sin leer.
var (
	// StyleKeyword - "found", marcadores y la etiqueta "ignored"
	StyleKeyword = pterm.NewStyle(pterm.FgWhite, pterm.Bold)

	// StyleKind - etiqueta del tipo de artefacto (ip, int, string)
	StyleKind = pterm.NewStyle(pterm.FgYellow, pterm.Bold)

	// StyleArtifact - representación textual del artefacto
	StyleArtifact = pterm.NewStyle(pterm.FgRed, pterm.Bold)

	// StylePass - nombre del pass
	StylePass = pterm.NewStyle(pterm.FgMagenta, pterm.Bold)

	// StyleLabel - etiqueta de un hallazgo
	StyleLabel = pterm.NewStyle(pterm.FgBlue, pterm.Bold)

	// StyleValue - valor de un hallazgo
	StyleValue = pterm.NewStyle(pterm.FgGreen, pterm.Bold)

	// StyleNA - valor "n/a"
	StyleNA = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
)
