package generator

import (
	"iter"

	"github.com/danzcode/corogo"
)

// GeneratorChannel is the routine-side handle passed into a generator's
// function.
type GeneratorChannel[Y, Ret, Rx any] struct {
	channel *corogo.CoroutineChannel[Y, Ret, Rx]
}

// YieldVal yields y to the invoker and returns whatever value it resumes
// with.
func (c *GeneratorChannel[Y, Ret, Rx]) YieldVal(y Y) Rx {
	return c.channel.Suspend(y)
}

// YieldAll yields every value ys produces, in order, discarding whatever
// the invoker resumes with at each step.
func (c *GeneratorChannel[Y, Ret, Rx]) YieldAll(ys iter.Seq[Y]) {
	for y := range ys {
		c.channel.Suspend(y)
	}
}

// YieldFrom drives inner to completion, forwarding every value it yields up
// through c's own YieldVal, and returns inner's result. If inner panics,
// the panic propagates verbatim out of YieldFrom.
func YieldFrom[Y, Ret, Rx, InnerRet any](c *GeneratorChannel[Y, Ret, Rx], inner *Generator[Y, InnerRet, struct{}]) InnerRet {
	var rx struct{}
	for {
		y, ok := inner.Resume(rx)
		if !ok {
			return inner.Result()
		}
		c.YieldVal(y)
	}
}
