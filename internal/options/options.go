// Package options provides the generic functional-option mechanism used by
// configurable constructors in this module.
package options

// Option configures a value of type T during construction.
type Option[T any] interface {
	apply(T) error
}

type funcOption[T any] struct {
	fn func(T) error
}

func (o funcOption[T]) apply(target T) error {
	return o.fn(target)
}

// New wraps fn as an Option for type T.
func New[T any](fn func(T) error) Option[T] {
	return funcOption[T]{fn: fn}
}

// Apply runs opts against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
