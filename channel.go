package corogo

import "github.com/danzcode/corogo/internal/transfer"

// CoroutineChannel is the routine-side handle passed into a coroutine's
// function. It is the only way user code can suspend execution and hand
// control back to the invoker.
type CoroutineChannel[Y, Ret, Rx any] struct {
	transfer      *transfer.Transfer[suspenseMsg[Y, Ret], resumeMsg[Rx]]
	dropRequested bool
}

// Suspend yields y to the invoker and blocks until the invoker resumes
// with a new value, which it returns.
//
// If the invoker instead drops the coroutine handle while this call is
// blocked, Suspend never returns: it raises dropSignal, a panic value
// private to this package, which unwinds the routine's stack running every
// deferred cleanup along the way. User code must not recover and suppress
// this panic — doing so leaves the coroutine unable to acknowledge the
// drop, and the invoker's Close panics with a CorruptControlError as soon
// as the routine next suspends or finishes.
func (c *CoroutineChannel[Y, Ret, Rx]) Suspend(y Y) Rx {
	received := c.transfer.YieldWith(yieldSuspense[Y, Ret](y))
	return c.receive(received)
}

func (c *CoroutineChannel[Y, Ret, Rx]) receive(r resumeMsg[Rx]) Rx {
	switch r.kind {
	case resumeYield:
		return r.val
	case resumeDrop:
		c.dropRequested = true
		panic(dropSignal{})
	default:
		corruptControl("unrecognized resume message")
		panic("unreachable")
	}
}

// invocationChannel is the invoker-side counterpart to CoroutineChannel: it
// drives a routine forward and requests its unwind on drop. It is never
// exposed outside Coroutine.
type invocationChannel[Y, Ret, Rx any] struct {
	transfer *transfer.Transfer[resumeMsg[Rx], suspenseMsg[Y, Ret]]
}

func (c *invocationChannel[Y, Ret, Rx]) suspend(send Rx) suspenseMsg[Y, Ret] {
	return c.transfer.YieldWith(yieldResume[Rx](send))
}

// unwind requests that the routine unwind its stack and blocks until it
// acknowledges. Anything other than an acknowledged drop indicates the
// wire state machine produced an impossible reply.
func (c *invocationChannel[Y, Ret, Rx]) unwind() {
	reply := c.transfer.YieldWith(dropResume[Rx]())
	if reply.kind != suspenseComplete || reply.complete.kind != completeUnwind || !reply.complete.unwind.isDrop {
		corruptControl("routine did not acknowledge drop")
	}
}
