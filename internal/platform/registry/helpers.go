package registry

import (
	"fmt"

	"inspectx/internal/core/domain"
	"inspectx/internal/core/pass"
	"inspectx/internal/core/ports"
)

// Type-safe glue between the generic pass.Sequence and the untyped
// ports.Inspector the registry stores.

// ParseFunc turns raw input into the artifact type.
type ParseFunc[T any] func(raw string) (T, error)

// BuildFunc registers the passes of a kind on a fresh sequence.
type BuildFunc[T fmt.Stringer] func(seq *pass.Sequence[T])

// SequenceInspector implements ports.Inspector on top of a pass.Sequence.
// A new sequence is built per Inspect call, so concurrent calls never share
// a pass list.
type SequenceInspector[T fmt.Stringer] struct {
	kind        domain.Kind
	description string
	parse       ParseFunc[T]
	build       BuildFunc[T]
	names       []string
}

// NewInspector creates an inspector for kind.
func NewInspector[T fmt.Stringer](kind domain.Kind, description string, parse ParseFunc[T], build BuildFunc[T]) *SequenceInspector[T] {
	draft := pass.NewSequence[T](pass.NoIgnore, kind.String())
	build(draft)

	return &SequenceInspector[T]{
		kind:        kind,
		description: description,
		parse:       parse,
		build:       build,
		names:       draft.Names(),
	}
}

// Kind implements ports.Inspector.
func (s *SequenceInspector[T]) Kind() domain.Kind { return s.kind }

// Description implements ports.Inspector.
func (s *SequenceInspector[T]) Description() string { return s.description }

// Passes implements ports.Inspector.
func (s *SequenceInspector[T]) Passes() []string {
	return append([]string{}, s.names...)
}

// Inspect implements ports.Inspector.
func (s *SequenceInspector[T]) Inspect(env ports.Env, raw string) error {
	in, err := s.parse(raw)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", s.kind, err)
	}

	seq := pass.NewSequence[T](env.Ignore, s.kind.String(),
		pass.WithWriter(env.Out),
		pass.WithTheme(env.Theme),
	)
	s.build(seq)
	seq.Run(in)

	return nil
}

// RegisterGlobal registers insp on the global registry. Failures are logged,
// not returned.
func RegisterGlobal(insp ports.Inspector) {
	if err := Global().Register(insp); err != nil {
		Global().logger.Warn("failed to register inspector", "error", err.Error())
	}
}
