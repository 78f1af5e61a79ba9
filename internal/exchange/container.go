package exchange

import "unsafe"

// Container is a single-value inbox: either Full(v) or Empty. It is the
// slot a value crosses the stack boundary through — the sender fills the
// receiver's slot, switches control, and the receiver drains its own slot
// by move.
//
// A Container must not move in memory while a peer holds an address to it
// (see Ref). In practice that means it always lives as a field directly
// inside the ExchangingTransfer that owns it, never behind a second level
// of indirection that could be reallocated out from under an outstanding
// pointer.
type Container[V any] struct {
	v    V
	full bool
}

// PrepareExchange wraps val as a Full container.
func PrepareExchange[V any](val V) Container[V] {
	return Container[V]{v: val, full: true}
}

// HasContent reports whether the container currently holds a value.
func (c *Container[V]) HasContent() bool {
	return c.full
}

// ReceiveContent moves the value out, leaving the container Empty.
// Panics if the container is already Empty — reading an empty slot is a
// protocol violation at a layer below where it can be reported as one.
func (c *Container[V]) ReceiveContent() V {
	if !c.full {
		panic("exchange: receive from empty container")
	}
	v := c.v
	var zero V
	c.v = zero
	c.full = false
	return v
}

// MakePointer encodes this container's address as an opaque word, valid
// for exactly one peer access during the current suspension. Used both to
// hand a peer a value to drain (container Full) and to hand a peer the
// address of this side's own receive slot for it to write into later
// (container Empty) — suspend's own receive container is always Empty at
// the point its address is shared, so MakePointer intentionally does not
// require Full.
func (c *Container[V]) MakePointer() uintptr {
	return uintptr(unsafe.Pointer(c))
}

// OfPointer reconstructs a mutable reference to a Container from an
// address produced by MakePointer.
func OfPointer[V any](p uintptr) *Container[V] {
	return (*Container[V])(unsafe.Pointer(p))
}
