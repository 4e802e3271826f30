// Package options implements the generic functional-option plumbing behind
// the stream package's pass configuration (block size, stride factor, pinned
// candidate).
package options

// Option configures a target of type T. Concrete option constructors such as
// stream.WithBlockSize return values of this interface.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option for any type T.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that validates its input. Options
// like stream.WithBlockSize use this form to reject out-of-range values.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply applies the options to target in order, stopping at the first
// validation failure.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
