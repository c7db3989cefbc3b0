// internal/core/ports/inspector.go
package ports

import (
	"io"

	"inspectx/internal/core/domain"
	"inspectx/internal/core/pass"
	"inspectx/internal/platform/ui"
)

// Env es lo que un Inspector necesita para imprimir una traza. Ignore es de
// solo lectura y puede compartirse entre goroutines; Out no.
type Env struct {
	Out    io.Writer
	Theme  ui.Theme
	Ignore pass.Ignorer
}

// Inspector es el port que agrupa los passes de un kind de artefacto.
// Cada paquete bajo internal/passes registra uno desde init().
type Inspector interface {
	// Kind retorna el kind que inspecciona; también es la etiqueta de la traza
	Kind() domain.Kind

	// Description es una línea para --list
	Description() string

	// Passes retorna los nombres de los passes en orden de ejecución
	Passes() []string

	// Inspect parsea raw y ejecuta una secuencia nueva sobre él. Solo falla si
	// raw no es un valor válido del kind.
	Inspect(env Env, raw string) error
}
