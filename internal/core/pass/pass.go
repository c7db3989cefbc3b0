package pass

// ExecFunc is the body of a pass. It prints its findings through r and must
// not mutate in.
type ExecFunc[T any] func(r *Report, in T)

// Pass is a named unit of work over one artifact value.
type Pass[T any] struct {
	name string
	exec ExecFunc[T]
}

// New creates a pass. The name is used as-is for display and ignore lookups.
func New[T any](exec ExecFunc[T], name string) Pass[T] {
	return Pass[T]{
		exec: exec,
		name: name,
	}
}

// Name returns the identifier used for display and ignore lookups.
func (p Pass[T]) Name() string {
	return p.name
}

// Run invokes the pass body.
func (p Pass[T]) Run(r *Report, in T) {
	p.exec(r, in)
}

// Ignorer decides whether a pass is skipped. Implementations must be free of
// side effects and safe for concurrent reads.
type Ignorer interface {
	IsIgnored(name string) bool
}

// IgnoreFunc adapts a plain function to Ignorer.
type IgnoreFunc func(name string) bool

// IsIgnored implements Ignorer.
func (f IgnoreFunc) IsIgnored(name string) bool {
	return f(name)
}

// NoIgnore runs every pass.
var NoIgnore Ignorer = IgnoreFunc(func(string) bool { return false })
