// internal/platform/registry/inspector_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"inspectx/internal/core/domain"
	"inspectx/internal/core/ports"
	"inspectx/internal/platform/logx"
)

// InspectorRegistry guarda un Inspector por kind de artefacto.
// Los paquetes de passes se registran solos desde init(), igual que hacían
// las sources, y el CLI solo pregunta por kind.
type InspectorRegistry struct {
	mu         sync.RWMutex
	inspectors map[domain.Kind]ports.Inspector
	logger     logx.Logger
}

var globalRegistry *InspectorRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *InspectorRegistry {
	once.Do(func() {
		globalRegistry = NewInspectorRegistry(logx.New())
	})
	return globalRegistry
}

// NewInspectorRegistry crea un registry vacío.
func NewInspectorRegistry(logger logx.Logger) *InspectorRegistry {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &InspectorRegistry{
		inspectors: make(map[domain.Kind]ports.Inspector),
		logger:     logger.With("component", "inspector-registry"),
	}
}

// Register añade un inspector. Falla si es nil, si su kind no es válido o si
// el kind ya tiene inspector.
func (r *InspectorRegistry) Register(insp ports.Inspector) error {
	if insp == nil {
		return fmt.Errorf("inspector cannot be nil")
	}

	kind := insp.Kind()
	if !kind.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.inspectors[kind]; exists {
		return fmt.Errorf("inspector for %s is already registered", kind)
	}

	r.inspectors[kind] = insp
	r.logger.Debug("inspector registered", "kind", kind, "passes", len(insp.Passes()))

	return nil
}

// Get retorna el inspector de un kind.
func (r *InspectorRegistry) Get(kind domain.Kind) (ports.Inspector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	insp, ok := r.inspectors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInspectorNotFound, kind)
	}
	return insp, nil
}

// IsRegistered verifica si un kind tiene inspector.
func (r *InspectorRegistry) IsRegistered(kind domain.Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.inspectors[kind]
	return exists
}

// Kinds retorna los kinds registrados, ordenados.
func (r *InspectorRegistry) Kinds() []domain.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]domain.Kind, 0, len(r.inspectors))
	for k := range r.inspectors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Catalog retorna, por kind, los passes en orden de ejecución.
func (r *InspectorRegistry) Catalog() map[domain.Kind][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catalog := make(map[domain.Kind][]string, len(r.inspectors))
	for k, insp := range r.inspectors {
		catalog[k] = insp.Passes()
	}
	return catalog
}

// UnknownPasses retorna las entradas de la lista de ignore que no casan con
// ningún pass registrado. match decide si una entrada cubre un nombre.
func (r *InspectorRegistry) UnknownPasses(entries []string, match func(entry, name string) bool) []string {
	catalog := r.Catalog()

	unknown := make([]string, 0)
	for _, entry := range entries {
		found := false
		for _, names := range catalog {
			for _, name := range names {
				if match(entry, name) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			unknown = append(unknown, entry)
		}
	}
	return unknown
}

// Clear elimina todos los inspectors (útil para testing).
func (r *InspectorRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inspectors = make(map[domain.Kind]ports.Inspector)
}
