// Package share provides a reference-counted, immutable handle so that many
// holders can read one allocation without copying it.
//
// A Handle grants read access only. The refcount is atomic, so handles may be
// retained, read, and released from concurrent goroutines; with no mutable
// access path, concurrent readers are safe by construction.
package share

import "sync/atomic"

// Handle is one holder's view of a shared allocation. Copy a view with
// Retain, never by assignment.
type Handle[T any] struct {
	cell *cell[T]
}

// cell is the single shared allocation plus its refcount.
type cell[T any] struct {
	val  *T
	refs atomic.Int32
}

// Share consumes v and places it behind a fresh handle with refcount 1. The
// caller's original binding must not be used afterward; the handle is the
// only access path.
func Share[T any](v T) *Handle[T] {
	c := &cell[T]{val: &v}
	c.refs.Store(1)
	return &Handle[T]{cell: c}
}

// Retain returns a new handle aliasing the same allocation. Cost is one
// atomic increment regardless of the size of T; the data is never copied.
func (h *Handle[T]) Retain() *Handle[T] {
	if h.cell.refs.Add(1) <= 1 {
		panic("share: retain after final release")
	}
	return &Handle[T]{cell: h.cell}
}

// Value returns a read-only view of the shared allocation. Holders must not
// write through the pointer.
func (h *Handle[T]) Value() *T {
	v := h.cell.val
	if v == nil {
		panic("share: access after final release")
	}
	return v
}

// Release drops this holder's reference. When the last reference goes, the
// allocation is freed and any further access through a stale handle panics.
func (h *Handle[T]) Release() {
	if h.cell.refs.Add(-1) == 0 {
		h.cell.val = nil
	}
}

// Refs returns the current reference count.
func (h *Handle[T]) Refs() int32 {
	return h.cell.refs.Load()
}
