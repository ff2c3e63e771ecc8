package managed

import (
	glueerror "MicroGlue/GlueError"
)

// Device-facing forms of the Collection and Ref operations. The generated
// code has no error path, so contract violations are routed to the fatal
// handler and the zero value is returned to keep the caller well-typed until
// the handler halts the process.

func Count[T comparable](c Collection[T]) int {
	count, err := c.Count()
	if err != nil {
		glueerror.Fail(err)
		return 0
	}
	return count
}

func Add[T comparable](c Collection[T], x T) {
	if err := c.Add(x); err != nil {
		glueerror.Fail(err)
	}
}

func InRange[T comparable](c Collection[T], x int) bool {
	inRange, err := c.InRange(x)
	if err != nil {
		glueerror.Fail(err)
		return false
	}
	return inRange
}

func At[T comparable](c Collection[T], x int) T {
	value, err := c.At(x)
	if err != nil {
		glueerror.Fail(err)
		var zero T
		return zero
	}
	return value
}

func RemoveAt[T comparable](c Collection[T], x int) {
	if err := c.RemoveAt(x); err != nil {
		glueerror.Fail(err)
	}
}

func SetAt[T comparable](c Collection[T], x int, y T) {
	if err := c.SetAt(x, y); err != nil {
		glueerror.Fail(err)
	}
}

func IndexOf[T comparable](c Collection[T], x T, start int) int {
	index, err := c.IndexOf(x, start)
	if err != nil {
		glueerror.Fail(err)
		return -1
	}
	return index
}

func Remove[T comparable](c Collection[T], x T) {
	if err := c.Remove(x); err != nil {
		glueerror.Fail(err)
	}
}

func Get[T any](r Ref[T]) T {
	value, err := r.Get()
	if err != nil {
		glueerror.Fail(err)
		var zero T
		return zero
	}
	return value
}

func Set[T any](r Ref[T], y T) {
	if err := r.Set(y); err != nil {
		glueerror.Fail(err)
	}
}
