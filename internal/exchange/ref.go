package exchange

// Ref is a non-owning, relocatable reference to a peer's Container. The
// peer hands over its slot address on every switch, and Rebind points the
// reference at whatever address arrived; in this module each side's slot is
// a field of its Transfer, so in practice the address stays the same.
type Ref[V any] struct {
	target *Container[V]
}

// NewRef wraps an existing container reference.
func NewRef[V any](c *Container[V]) Ref[V] {
	return Ref[V]{target: c}
}

// RefOfPointer reconstructs a Ref from an address produced by
// Container.MakePointer.
func RefOfPointer[V any](p uintptr) Ref[V] {
	return NewRef(OfPointer[V](p))
}

// Send writes val into the referenced container. Panics if the target is
// not Empty — the peer must drain before it is written again.
func (r *Ref[V]) Send(val V) {
	if r.target.HasContent() {
		panic("exchange: send to non-empty container")
	}
	*r.target = PrepareExchange(val)
}

// Rebind points the reference at a new target. Panics if the current
// target is not Empty, since rebinding away from a still-full slot would
// strand its value unreachable.
func (r *Ref[V]) Rebind(p uintptr) {
	if r.target.HasContent() {
		panic("exchange: rebind over non-empty container ref")
	}
	r.target = OfPointer[V](p)
}
