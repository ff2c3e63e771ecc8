package managed

import (
	glueerror "MicroGlue/GlueError"
)

// Ref is a shared handle to one heap-allocated value, default-constructed at
// creation, so a factory-made Ref is never empty. Only the zero-value handle
// can fail, and it fails the same way an uninitialized collection does.
type Ref[T any] struct {
	inner *refData[T]
}

type refData[T any] struct {
	value T
}

func NewRef[T any]() Ref[T] {
	return Ref[T]{inner: &refData[T]{}}
}

func (instance Ref[T]) Valid() bool {
	return instance.inner != nil
}

func (instance Ref[T]) Get() (T, error) {
	var zero T
	if instance.inner == nil {
		return zero, glueerror.Wrap(nil, glueerror.UninitializedObject, "Get on uninitialized ref")
	}
	return instance.inner.value, nil
}

func (instance Ref[T]) Set(y T) error {
	if instance.inner == nil {
		return glueerror.Wrap(nil, glueerror.UninitializedObject, "Set on uninitialized ref")
	}
	instance.inner.value = y
	return nil
}
