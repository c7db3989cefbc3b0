// internal/platform/ui/symbols.go
package ui

// Status representa lo que la secuencia hizo con un pass
type Status int

const (
	StatusRunning Status = iota
	StatusSkipped
)

// String convierte el status a string
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Symbol retorna el marcador que precede al nombre del pass
func (s Status) Symbol() string {
	switch s {
	case StatusRunning:
		return "➔"
	case StatusSkipped:
		return "✘"
	default:
		return "?"
	}
}

// Palabras fijas de la traza
const (
	WordFound   = "found"
	WordIgnored = "ignored"
	WordNA      = "n/a"
)
