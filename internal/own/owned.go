// Package own provides a runtime-checked single-owner cell.
//
// Go has no compile-time move tracking, so a binding whose value was handed
// off elsewhere still compiles and silently aliases stale state. Owned
// reproduces move semantics the loud way: taking the value marks the cell
// moved-from, and every later access panics with a diagnostic naming the
// binding.
package own

import "fmt"

// Owned holds a value with exactly one owner at a time.
type Owned[T any] struct {
	name  string
	val   T
	moved bool
}

// New places v under single ownership. name labels the binding in
// moved-from diagnostics.
func New[T any](name string, v T) *Owned[T] {
	return &Owned[T]{name: name, val: v}
}

// Borrow grants temporary read access without transferring ownership. The
// returned pointer must not outlive the caller's frame and must not be
// written through.
func (o *Owned[T]) Borrow() *T {
	if o.moved {
		panic(fmt.Sprintf("own: borrow of %q after move", o.name))
	}
	return &o.val
}

// Take moves the value out of the cell. The cell is moved-from afterward:
// any later Borrow or Take panics.
func (o *Owned[T]) Take() T {
	if o.moved {
		panic(fmt.Sprintf("own: use of %q after move", o.name))
	}
	o.moved = true
	v := o.val
	var zero T
	o.val = zero
	return v
}

// Moved reports whether the value has been taken.
func (o *Owned[T]) Moved() bool {
	return o.moved
}
