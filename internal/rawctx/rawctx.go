// Package rawctx implements corogo's realization of the raw stack-switch
// primitive that the execution-transfer layer is built on.
//
// A stackful coroutine needs an independently executing call context that
// can be switched to and from, carrying exactly one machine word per switch.
// Goroutines already have their own runtime-managed, independently growable
// stacks, and a synchronous unbuffered channel send/receive pair is a
// baton-pass: at any instant exactly one side holds the baton. That is the
// same invariant a ucontext/fiber assembly trampoline provides, so this
// package realizes RawContext on top of a goroutine plus one channel instead
// of platform assembly.
package rawctx

// Disposed is the sentinel word meaning "I will never be resumed again."
const Disposed uintptr = 0

// RawContext is a handle to a goroutine-backed execution context. Resume
// transfers control to whichever side is currently waiting inside it,
// carrying a single word, and blocks until that side hands a word back.
type RawContext struct {
	baton chan uintptr
}

// New spawns the goroutine backing a fresh context. entry does not run
// until the first call to Resume; entry receives the RawContext (so it can
// resume its own caller in turn) and the first word sent to it.
func New(entry func(r *RawContext, first uintptr)) *RawContext {
	r := &RawContext{baton: make(chan uintptr)}
	go func() {
		first := <-r.baton
		entry(r, first)
	}()
	return r
}

// Resume hands word to the peer side, then blocks until the peer switches
// back, returning the word it replied with. Called symmetrically from both
// the invoker's goroutine and the routine's goroutine; the strict
// alternation invariant of the layers above guarantees only one of the two
// is ever blocked here waiting to send at a time.
func (r *RawContext) Resume(word uintptr) uintptr {
	r.baton <- word
	return <-r.baton
}

// Dispose hands word to the peer side and returns immediately, without
// waiting for a reply. It is the terminal switch: used only by a side that
// knows it will never be resumed again, so that its goroutine can return
// and exit instead of blocking forever on a reply nobody will ever send.
func (r *RawContext) Dispose(word uintptr) {
	r.baton <- word
}
