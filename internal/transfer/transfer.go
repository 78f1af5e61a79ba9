// Package transfer implements ExchangingTransfer, the symmetric, typed
// control-transfer primitive coroutines and generators are built from: it
// owns a raw context, one receive slot, and a reference to the peer's
// receive slot, and exposes exactly the three operations the layers above
// it need — yield a value and wait for a reply, wait for a reply without
// sending, and send a final value expecting never to be resumed again.
package transfer

import (
	"github.com/danzcode/corogo/internal/exchange"
	"github.com/danzcode/corogo/internal/rawctx"
)

// Transfer is one side of a two-stack value exchange. Send is the type of
// value this side transmits; Receive is the type it drains out of its own
// slot.
type Transfer[Send, Receive any] struct {
	ctx exchange.SelfUpdating[*rawctx.RawContext]
	rx  exchange.Container[Receive]
	tx  *exchange.Ref[Send]
}

// CreateWithoutSend wraps a raw context whose peer slot address is not yet
// known. The first control operation on the result must be Suspend (it has
// no send capability until a later resume rebinds tx).
func CreateWithoutSend[Send, Receive any](raw *rawctx.RawContext) *Transfer[Send, Receive] {
	t := &Transfer[Send, Receive]{}
	t.ctx.Set(raw)
	return t
}

// CreateWithSend wraps a raw context whose last-received word is already
// the address of the peer's receive slot, so Yield can be used immediately.
func CreateWithSend[Send, Receive any](raw *rawctx.RawContext, peerSlot uintptr) *Transfer[Send, Receive] {
	t := CreateWithoutSend[Send, Receive](raw)
	ref := exchange.RefOfPointer[Send](peerSlot)
	t.tx = &ref
	return t
}

// CreateReceiving interprets word as the address of a Full container
// holding a bootstrap payload, drains it, and returns a transfer not yet
// connected for sending (the payload's sender does not yet know where this
// side's own first receive slot will live).
func CreateReceiving[Send, Receive, Payload any](raw *rawctx.RawContext, word uintptr) (*Transfer[Send, Receive], Payload) {
	payload := exchange.OfPointer[Payload](word).ReceiveContent()
	return CreateWithoutSend[Send, Receive](raw), payload
}

// InitContextSending builds a stack via factory, creates a raw context
// entered at entry, and performs the first switch carrying initial as a
// one-shot boxed payload. It returns the resulting transfer — already able
// to send, since the first switch's reply carries the routine's first
// receive slot address — and the stack backing it.
func InitContextSending[Send, Receive, Payload any](factory rawctx.StackFactory, entry func(*rawctx.RawContext, uintptr), initial Payload) (*Transfer[Send, Receive], rawctx.Stack) {
	stack := factory.Build()
	raw := rawctx.New(entry)
	box := exchange.PrepareExchange(initial)
	word := raw.Resume(box.MakePointer())
	return CreateWithSend[Send, Receive](raw, word), stack
}

// send writes val into the peer's slot via tx. Panics if tx is unset — the
// caller tried to send before any peer slot address was ever received.
func (t *Transfer[Send, Receive]) send(val Send) {
	if t.tx == nil {
		panic("transfer: invalid exchange state for sending")
	}
	t.tx.Send(val)
}

// Suspend performs the switch without sending a value first, and returns
// whatever the peer sends on resumption.
func (t *Transfer[Send, Receive]) Suspend() Receive {
	rxPointer := t.rx.MakePointer()
	var wordIn uintptr
	t.ctx.Update(func(raw *rawctx.RawContext) *rawctx.RawContext {
		wordIn = raw.Resume(rxPointer)
		return raw
	})
	if wordIn != rawctx.Disposed {
		if t.tx == nil {
			ref := exchange.RefOfPointer[Send](wordIn)
			t.tx = &ref
		} else {
			t.tx.Rebind(wordIn)
		}
	} else {
		t.tx = nil
	}
	return t.rx.ReceiveContent()
}

// YieldWith sends val to the peer, switches control, and returns whatever
// the peer sends back. Requires a known peer slot (tx != nil); panics
// otherwise via send.
func (t *Transfer[Send, Receive]) YieldWith(val Send) Receive {
	t.send(val)
	return t.Suspend()
}

// DisposeWith sends val to the peer and hands control back one last time,
// passing the sentinel word meaning "I will never be resumed again." Unlike
// YieldWith, this does not wait for a reply: the caller is declaring it will
// never be resumed again, so waiting here would block its goroutine forever
// once the peer stops driving it. DisposeWith returns once the peer has
// received the final message; the caller should return immediately after,
// letting its goroutine exit.
func (t *Transfer[Send, Receive]) DisposeWith(val Send) {
	t.send(val)
	t.ctx.Update(func(raw *rawctx.RawContext) *rawctx.RawContext {
		raw.Dispose(rawctx.Disposed)
		return raw
	})
}
