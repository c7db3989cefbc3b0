package pass

import (
	"fmt"
	"io"
	"os"

	"inspectx/internal/platform/ui"
)

// Sequence is an ordered list of passes bound to one artifact type label and
// one Ignorer.
type Sequence[T fmt.Stringer] struct {
	passes []Pass[T]
	config Ignorer
	ty     string
	out    io.Writer
	theme  ui.Theme
}

// Option configures a Sequence.
type Option func(*options)

type options struct {
	out   io.Writer
	theme ui.Theme
}

// WithWriter sets where the trace goes. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithTheme sets the trace styling. Defaults to ui.PlainTheme.
func WithTheme(t ui.Theme) Option {
	return func(o *options) {
		if t != nil {
			o.theme = t
		}
	}
}

// NewSequence creates an empty sequence. config must outlive the sequence.
func NewSequence[T fmt.Stringer](config Ignorer, ty string, opts ...Option) *Sequence[T] {
	o := options{out: os.Stdout, theme: ui.PlainTheme{}}
	for _, opt := range opts {
		opt(&o)
	}
	if config == nil {
		config = NoIgnore
	}

	return &Sequence[T]{
		config: config,
		ty:     ty,
		out:    o.out,
		theme:  o.theme,
	}
}

// AddPass appends p. Duplicate names are accepted and both run.
func (s *Sequence[T]) AddPass(p Pass[T]) {
	s.passes = append(s.passes, p)
}

// Add appends a pass built from fn and returns s for chaining.
func (s *Sequence[T]) Add(name string, fn ExecFunc[T]) *Sequence[T] {
	s.AddPass(New(fn, name))
	return s
}

// AddFunc appends each fn under its own identifier (see FuncName). Closures
// get compiler-generated names, so give them an explicit one with Add.
func (s *Sequence[T]) AddFunc(fns ...ExecFunc[T]) *Sequence[T] {
	for _, fn := range fns {
		s.AddPass(New(fn, FuncName(fn)))
	}
	return s
}

// Type returns the artifact type label.
func (s *Sequence[T]) Type() string {
	return s.ty
}

// Len returns the number of registered passes.
func (s *Sequence[T]) Len() int {
	return len(s.passes)
}

// Names returns the pass names in execution order.
func (s *Sequence[T]) Names() []string {
	names := make([]string, len(s.passes))
	for i, p := range s.passes {
		names[i] = p.name
	}
	return names
}

// Run prints the header and executes every non-ignored pass in order.
func (s *Sequence[T]) Run(in T) {
	r := NewReport(s.out, s.theme)

	r.raw(ui.Header(s.theme, s.ty, in.String()))

	for _, p := range s.passes {
		if s.config.IsIgnored(p.name) {
			r.raw(ui.PassLine(s.theme, ui.StatusSkipped, p.name))
			continue
		}

		r.raw(ui.PassLine(s.theme, ui.StatusRunning, p.name))
		p.Run(r, in)
	}
}
