package generator

import "iter"

// All returns a range-over-func iterator over g's yielded values, sending
// the zero value of Rx at each resume (meaningful when Rx is struct{}; for
// a receiving generator it is equivalent to AllFrom with a source that
// always returns the zero value — use AllFrom directly to drive one with
// real resume values).
//
// Breaking out of the for loop early leaves g mid-flight, exactly like a
// partially consumed iterator later dropped: g is not closed automatically,
// call Close (directly, or via defer) to run its unwind protocol.
func (g *Generator[Y, Ret, Rx]) All() iter.Seq[Y] {
	var zero Rx
	return g.AllFrom(func() Rx { return zero })
}

// AllFrom returns a range-over-func iterator over g's yielded values, where
// source supplies the value resumed with at every step, including the
// first. Iteration stops as soon as g completes; source is not called
// again after that. g's Result becomes available once the loop ends
// without an early break.
func (g *Generator[Y, Ret, Rx]) AllFrom(source func() Rx) iter.Seq[Y] {
	return func(yield func(Y) bool) {
		for {
			y, ok := g.Resume(source())
			if !ok {
				return
			}
			if !yield(y) {
				return
			}
		}
	}
}
