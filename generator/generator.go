// Package generator implements Generator, a thin facade over corogo.Coroutine
// presenting a lazy sequence of Yield values with an optional terminal
// Return, plus composition helpers (YieldAll, YieldFrom) and Go-native
// iter.Seq adapters.
package generator

import (
	"github.com/danzcode/corogo"
)

// Generator wraps a Coroutine[Y, Ret, Rx], presenting its yields as an
// Option-shaped Resume and caching its terminal Return.
type Generator[Y, Ret, Rx any] struct {
	co          *corogo.Coroutine[Y, Ret, Rx]
	result      Ret
	resultValid bool
	aborted     bool
}

// New constructs a receive-less generator: f is driven purely by repeated
// Resume calls and never reads anything a caller sends.
func New[Y, Ret any](f func(*GeneratorChannel[Y, Ret, struct{}]) Ret, opts ...corogo.Option) *Generator[Y, Ret, struct{}] {
	return NewReceiving(func(c *GeneratorChannel[Y, Ret, struct{}], _ struct{}) Ret {
		return f(c)
	}, opts...)
}

// NewReceiving constructs a generator whose function also receives the
// value passed to its first Resume call.
func NewReceiving[Y, Ret, Rx any](f func(*GeneratorChannel[Y, Ret, Rx], Rx) Ret, opts ...corogo.Option) *Generator[Y, Ret, Rx] {
	co := corogo.New(func(ch *corogo.CoroutineChannel[Y, Ret, Rx], rx Rx) Ret {
		return f(&GeneratorChannel[Y, Ret, Rx]{channel: ch}, rx)
	}, opts...)
	return &Generator[Y, Ret, Rx]{co: co}
}

// Resume drives the generator forward. The second return value is true with
// a yielded value, or false once the generator has completed — at which
// point Result holds its return value. If the generator's function panics,
// Resume re-raises that panic verbatim; a subsequent call to Result then
// panics, since there is no return value to report.
func (g *Generator[Y, Ret, Rx]) Resume(v Rx) (y Y, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			g.aborted = true
			panic(p)
		}
	}()
	r := g.co.Resume(v)
	if r.Returned {
		g.result = r.Return
		g.resultValid = true
		return y, false
	}
	return r.Yield, true
}

// HasCompleted reports whether the generator has stopped producing values,
// whether by returning, panicking, or being Closed.
func (g *Generator[Y, Ret, Rx]) HasCompleted() bool {
	return g.co.IsCompleted()
}

// Result returns the generator's cached return value. Panics wrapping
// ErrProtocolViolation if called before HasCompleted, or if the generator
// reached completion by panicking or by Close rather than by its function
// actually returning.
func (g *Generator[Y, Ret, Rx]) Result() Ret {
	if !g.co.IsCompleted() {
		panic(&corogo.ProtocolError{Reason: "result called before generator completed"})
	}
	if g.aborted {
		panic(&corogo.ProtocolError{Reason: "result called on a generator that panicked instead of returning"})
	}
	if !g.resultValid {
		panic(&corogo.ProtocolError{Reason: "result called on a generator that was closed instead of returning"})
	}
	return g.result
}

// Close triggers the underlying coroutine's drop/unwind protocol if the
// generator is still running. Idempotent.
func (g *Generator[Y, Ret, Rx]) Close() {
	if g.co.IsCompleted() {
		return
	}
	g.co.Close()
}
