package common

// Optional represents a configuration value that can be:
// - Unset (nil) - the option is absent and must not be emitted
// - Set - the option was explicitly configured, including to its zero value
//
// This type provides explicit semantics compared to using *T directly.
type Optional[T any] struct {
	value *T
}

// NewOptional creates an Optional with the specified value.
func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{value: &value}
}

// NewUnsetOptional creates an unset Optional.
func NewUnsetOptional[T any]() Optional[T] {
	return Optional[T]{value: nil}
}

// IsSet returns true if the value has been explicitly set (non-nil).
func (o Optional[T]) IsSet() bool {
	return o.value != nil
}

// Value returns the value.
// Panics if the value is not set (IsSet() == false).
// Callers must check IsSet() before calling Value().
func (o Optional[T]) Value() T {
	if o.value == nil {
		panic("Optional.Value() called on unset value: use IsSet() to check if the value is set before calling Value()")
	}
	return *o.value
}

// Ptr returns the underlying pointer (can be nil).
// This is useful for serialization or when you need to distinguish between
// unset and zero.
func (o Optional[T]) Ptr() *T {
	return o.value
}
