package corogo

import (
	"github.com/danzcode/corogo/internal/rawctx"
	"github.com/danzcode/corogo/internal/transfer"
)

// dropSignal is the panic value that unwinds a routine's stack on request.
// It is unexported so no caller can name it in a type switch and catch it
// deliberately; a bare recover() can still swallow it, which is why
// CoroutineChannel.Suspend documents that user code must never do that.
type dropSignal struct{}

// bootstrap is the function every coroutine's backing goroutine actually
// runs. It drains the boxed entry closure sent across the first switch,
// hands control back to the invoker before any user code executes (so New
// returns with the routine parked at its very first Suspend, never having
// run a single line of the user's function), then calls the closure under
// a recover guard and reports however it finished.
func bootstrap[Y, Ret, Rx any](raw *rawctx.RawContext, first uintptr) {
	exT, f := transfer.CreateReceiving[suspenseMsg[Y, Ret], resumeMsg[Rx], func(*CoroutineChannel[Y, Ret, Rx], Rx) Ret](raw, first)
	initial := exT.Suspend()

	channel := &CoroutineChannel[Y, Ret, Rx]{transfer: exT}
	completion := runGuarded(channel, f, initial)
	channel.transfer.DisposeWith(completeSuspense[Y, Ret](completion))
}

func runGuarded[Y, Ret, Rx any](channel *CoroutineChannel[Y, Ret, Rx], f func(*CoroutineChannel[Y, Ret, Rx], Rx) Ret, initial resumeMsg[Rx]) (completion completeMsg[Ret]) {
	defer func() {
		if r := recover(); r != nil {
			if channel.dropRequested {
				completion = dropComplete[Ret]()
			} else {
				completion = panicComplete[Ret](r)
			}
		}
	}()
	rx := channel.receive(initial)
	completion = returnComplete(f(channel, rx))
	return
}
