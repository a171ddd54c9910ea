package simulation

import "strconv"

// Optional holds a value that may be unset.
type Optional[T any] struct {
	value T
	set   bool
}

// Some wraps v as a set Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

func formatOptionalInt(o Optional[int]) string {
	v, ok := o.Get()
	if !ok {
		return "none"
	}
	return strconv.Itoa(v)
}
