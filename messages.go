package corogo

// The types in this file are the wire messages ExchangingTransfer carries
// between an invoker and its routine. They never escape the package: the
// public surface only ever sees the yield/return/panic distinctions these
// encode, never the messages themselves.

// resumeKind distinguishes why an invoker resumed (or is about to resume)
// a routine.
type resumeKind int

const (
	resumeYield resumeKind = iota
	resumeDrop
)

// resumeMsg is what an invoker sends a routine on every resume: either a
// real value to hand to user code, or notice that the handle is being
// dropped and the routine's stack must unwind.
type resumeMsg[Rx any] struct {
	kind resumeKind
	val  Rx
}

func yieldResume[Rx any](v Rx) resumeMsg[Rx] {
	return resumeMsg[Rx]{kind: resumeYield, val: v}
}

func dropResume[Rx any]() resumeMsg[Rx] {
	return resumeMsg[Rx]{kind: resumeDrop}
}

// unwindReason is why a routine's stack unwound instead of returning
// normally: a user panic whose payload must be re-raised on the invoker,
// or an invoker-requested drop, acknowledged with no payload at all.
type unwindReason struct {
	isDrop   bool
	panicVal any
}

// completeKind distinguishes the two ways a routine can finish.
type completeKind int

const (
	completeReturn completeKind = iota
	completeUnwind
)

// completeMsg is the routine's final message: either the value its
// function returned, or the reason its stack unwound instead.
type completeMsg[Ret any] struct {
	kind   completeKind
	ret    Ret
	unwind unwindReason
}

func returnComplete[Ret any](v Ret) completeMsg[Ret] {
	return completeMsg[Ret]{kind: completeReturn, ret: v}
}

func panicComplete[Ret any](p any) completeMsg[Ret] {
	return completeMsg[Ret]{kind: completeUnwind, unwind: unwindReason{panicVal: p}}
}

func dropComplete[Ret any]() completeMsg[Ret] {
	return completeMsg[Ret]{kind: completeUnwind, unwind: unwindReason{isDrop: true}}
}

// suspenseKind distinguishes a mid-execution yield from a terminal message.
type suspenseKind int

const (
	suspenseYield suspenseKind = iota
	suspenseComplete
)

// suspenseMsg is what a routine sends an invoker on every suspension:
// either a yielded value (more is coming) or the terminal completion
// message (nothing more will ever come).
type suspenseMsg[Y, Ret any] struct {
	kind     suspenseKind
	yielded  Y
	complete completeMsg[Ret]
}

func yieldSuspense[Y, Ret any](v Y) suspenseMsg[Y, Ret] {
	return suspenseMsg[Y, Ret]{kind: suspenseYield, yielded: v}
}

func completeSuspense[Y, Ret any](c completeMsg[Ret]) suspenseMsg[Y, Ret] {
	return suspenseMsg[Y, Ret]{kind: suspenseComplete, complete: c}
}
