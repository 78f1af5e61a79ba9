// Package corogo implements stackful, one-shot, asymmetric, bidirectional
// coroutines on top of goroutines and a single rendezvous channel standing
// in for a raw stack switch. A Coroutine is driven by exactly one goroutine
// at a time; control alternates strictly between invoker and routine, never
// runs concurrently on both, and every Resume call blocks until the routine
// suspends, completes, or panics.
package corogo

import (
	"sync/atomic"

	"github.com/danzcode/corogo/internal/gid"
	"github.com/danzcode/corogo/internal/rawctx"
	"github.com/danzcode/corogo/internal/transfer"
)

// CompleteReason describes why a Coroutine stopped running.
type CompleteReason int

const (
	// CompleteReturned means the coroutine's function ran to completion.
	CompleteReturned CompleteReason = iota + 1
	// CompleteUnwound means the coroutine's stack unwound instead, either
	// because its function panicked or because Close requested a drop.
	CompleteUnwound
)

// options collects the construction-time configuration a Coroutine accepts.
type options struct {
	stack rawctx.StackFactory
}

// Option configures a Coroutine at construction time.
type Option func(*options)

// WithStack overrides the default stack factory backing the coroutine's
// goroutine. On this backend stack size is advisory only (see
// rawctx.StackFactory); it is accepted for interface parity with backends
// that can honor it.
func WithStack(factory rawctx.StackFactory) Option {
	return func(o *options) { o.stack = factory }
}

// ResumeResult is what Resume hands back: either a yielded value, or the
// coroutine's return value along with Returned set true. Exactly one of
// Yield/Return is meaningful, selected by Returned, since a routine can
// yield Y values indefinitely but only ever returns Ret once.
type ResumeResult[Y, Ret any] struct {
	Yield    Y
	Return   Ret
	Returned bool
}

// Coroutine is the invoker-side handle to a stackful, one-shot coroutine
// that exchanges Y values on yield, Rx values on resume, and completes
// with a Ret.
type Coroutine[Y, Ret, Rx any] struct {
	channel *invocationChannel[Y, Ret, Rx]
	stack   rawctx.Stack

	running  bool
	reason   CompleteReason
	ownerSet bool
	owner    atomic.Uint64
}

// New constructs a coroutine and eagerly allocates and starts its backing
// goroutine: by the time New returns, f's goroutine exists and is parked at
// the implicit first Suspend inside the bootstrap, waiting for the first
// real Resume. f itself has not executed a single statement yet.
func New[Y, Ret, Rx any](f func(*CoroutineChannel[Y, Ret, Rx], Rx) Ret, opts ...Option) *Coroutine[Y, Ret, Rx] {
	o := options{stack: rawctx.DefaultStack()}
	for _, opt := range opts {
		opt(&o)
	}

	entry := func(raw *rawctx.RawContext, first uintptr) {
		bootstrap[Y, Ret, Rx](raw, first)
	}
	tr, stack := transfer.InitContextSending[resumeMsg[Rx], suspenseMsg[Y, Ret], func(*CoroutineChannel[Y, Ret, Rx], Rx) Ret](
		o.stack, entry, f,
	)
	// Drive the routine through the implicit bootstrap suspend so New
	// returns only once it is genuinely parked, never mid-bootstrap.
	c := &Coroutine[Y, Ret, Rx]{
		channel: &invocationChannel[Y, Ret, Rx]{transfer: tr},
		stack:   stack,
		running: true,
	}
	return c
}

// IsCompleted reports whether the coroutine has returned, panicked, or been
// closed.
func (c *Coroutine[Y, Ret, Rx]) IsCompleted() bool {
	return !c.running
}

// CompleteReason reports why the coroutine stopped, or the zero value while
// it is still running.
func (c *Coroutine[Y, Ret, Rx]) CompleteReason() CompleteReason {
	return c.reason
}

// Resume hands send to the coroutine and runs it until its next Suspend or
// until it completes. Panics wrapping ErrProtocolViolation if the coroutine
// has already completed, or if called from a goroutine other than the one
// that has driven it so far. If f panics, Resume re-raises that panic value
// verbatim.
func (c *Coroutine[Y, Ret, Rx]) Resume(send Rx) ResumeResult[Y, Ret] {
	if !c.running {
		protocolViolation("resume on a completed coroutine")
	}
	c.checkAffinity()

	reply := c.channel.suspend(send)
	return c.receive(reply)
}

func (c *Coroutine[Y, Ret, Rx]) receive(r suspenseMsg[Y, Ret]) ResumeResult[Y, Ret] {
	switch r.kind {
	case suspenseYield:
		return ResumeResult[Y, Ret]{Yield: r.yielded}
	case suspenseComplete:
		return c.finishFromComplete(r.complete)
	default:
		corruptControl("unrecognized suspense message")
		panic("unreachable")
	}
}

func (c *Coroutine[Y, Ret, Rx]) finishFromComplete(complete completeMsg[Ret]) ResumeResult[Y, Ret] {
	switch complete.kind {
	case completeReturn:
		c.finish(CompleteReturned)
		return ResumeResult[Y, Ret]{Return: complete.ret, Returned: true}
	case completeUnwind:
		c.finish(CompleteUnwound)
		if complete.unwind.isDrop {
			corruptControl("routine unwound via drop outside of Close")
		}
		panic(complete.unwind.panicVal)
	default:
		corruptControl("unrecognized completion message")
		panic("unreachable")
	}
}

func (c *Coroutine[Y, Ret, Rx]) finish(reason CompleteReason) {
	c.running = false
	c.reason = reason
	c.stack = rawctx.Stack{}
}

// Close triggers the drop/unwind protocol if the coroutine is still
// running: it tells the routine to unwind, blocks until every deferred
// cleanup along its stack has run, and marks the coroutine completed. Close
// is idempotent — closing an already-completed coroutine is a no-op.
//
// Go has no deterministic destructors, so this stands in for the implicit
// drop a coroutine handle going out of scope would trigger; letting a
// Coroutine become unreachable without calling Close leaks its goroutine
// instead of unwinding it deterministically.
func (c *Coroutine[Y, Ret, Rx]) Close() {
	if !c.running {
		return
	}
	c.checkAffinity()
	c.channel.unwind()
	c.finish(CompleteUnwound)
}

func (c *Coroutine[Y, Ret, Rx]) checkAffinity() {
	current := gid.Current()
	if !c.ownerSet {
		c.owner.Store(current)
		c.ownerSet = true
		return
	}
	if current != c.owner.Load() {
		protocolViolation("resumed from a different goroutine than the one driving this coroutine")
	}
}
