// Package managed implements the shared-ownership value types the generated
// code manipulates: Collection, a growable sequence, and Ref, a single-value
// cell. Handles are small values that share heap backing storage; the zero
// value of a handle is the uninitialized state, distinct from an empty
// collection. Methods report contract violations as errors; the package-level
// functions in fatal.go are the device-facing layer that routes those errors
// into the fatal handler.
package managed

import (
	glueerror "MicroGlue/GlueError"
	"fmt"
)

type Collection[T comparable] struct {
	inner *collectionData[T]
}

type collectionData[T comparable] struct {
	items []T
}

// NewCollection allocates a fresh empty valid collection. There is no
// operation that returns a handle to the uninitialized state.
func NewCollection[T comparable]() Collection[T] {
	return Collection[T]{inner: &collectionData[T]{items: make([]T, 0)}}
}

func (instance Collection[T]) Valid() bool {
	return instance.inner != nil
}

func (instance Collection[T]) Count() (int, error) {
	if instance.inner == nil {
		return 0, glueerror.Wrap(nil, glueerror.UninitializedObject, "Count on uninitialized collection")
	}
	return len(instance.inner.items), nil
}

func (instance Collection[T]) Add(x T) error {
	if instance.inner == nil {
		return glueerror.Wrap(nil, glueerror.UninitializedObject, "Add on uninitialized collection")
	}
	instance.inner.items = append(instance.inner.items, x)
	return nil
}

func (instance Collection[T]) InRange(x int) (bool, error) {
	if instance.inner == nil {
		return false, glueerror.Wrap(nil, glueerror.UninitializedObject, "InRange on uninitialized collection")
	}
	return x >= 0 && x < len(instance.inner.items), nil
}

func (instance Collection[T]) At(x int) (T, error) {
	var zero T
	inRange, err := instance.InRange(x)
	if err != nil {
		return zero, err
	}
	if !inRange {
		return zero, glueerror.Wrap(nil, glueerror.OutOfBounds, fmt.Sprintf("index %d out of range", x))
	}
	return instance.inner.items[x], nil
}

// RemoveAt deletes the element at index x, shifting later elements down.
// An out-of-range index is a silent no-op; only an uninitialized handle is an
// error. Reads are strict, range-checked mutation is permissive.
func (instance Collection[T]) RemoveAt(x int) error {
	inRange, err := instance.InRange(x)
	if err != nil {
		return err
	}
	if !inRange {
		return nil
	}
	instance.inner.items = append(instance.inner.items[:x], instance.inner.items[x+1:]...)
	return nil
}

// SetAt overwrites the element at index x. Out of range is a silent no-op,
// same policy as RemoveAt.
func (instance Collection[T]) SetAt(x int, y T) error {
	inRange, err := instance.InRange(x)
	if err != nil {
		return err
	}
	if !inRange {
		return nil
	}
	instance.inner.items[x] = y
	return nil
}

// IndexOf scans forward from start and returns the highest index >= start
// whose element equals x, or -1 when start is out of range or nothing
// matches. The last match wins; generated code depends on this.
func (instance Collection[T]) IndexOf(x T, start int) (int, error) {
	inRange, err := instance.InRange(start)
	if err != nil {
		return -1, err
	}
	if !inRange {
		return -1, nil
	}
	found := -1
	for index := start; index < len(instance.inner.items); index++ {
		if instance.inner.items[index] == x {
			found = index
		}
	}
	return found, nil
}

// Remove deletes the occurrence of x located by IndexOf(x, 0); absent values
// are a no-op.
func (instance Collection[T]) Remove(x T) error {
	index, err := instance.IndexOf(x, 0)
	if err != nil {
		return err
	}
	if index < 0 {
		return nil
	}
	return instance.RemoveAt(index)
}
