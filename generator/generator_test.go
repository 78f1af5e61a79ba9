package generator_test

import (
	"bufio"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/danzcode/corogo/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkNumGoroutines snapshots the current goroutine count and returns a
// check to run at the end of a test (typically deferred), failing it if the
// count has not settled back down within timeout — the same idiom used
// elsewhere in the corpus to prove a construct does not leak goroutines.
func checkNumGoroutines(timeout time.Duration) func(t *testing.T) {
	before := runtime.NumGoroutine()
	return func(t *testing.T) {
		t.Helper()
		deadline := time.Now().Add(timeout)
		for {
			after := runtime.NumGoroutine()
			if after <= before {
				return
			}
			if time.Now().After(deadline) {
				assert.LessOrEqual(t, after, before, "goroutines leaked")
				return
			}
			runtime.Gosched()
			time.Sleep(time.Millisecond)
		}
	}
}

func TestGeneratorNeverYields(t *testing.T) {
	g := generator.New(func(ch *generator.GeneratorChannel[int, string, struct{}]) string {
		return "done"
	})

	y, ok := g.Resume(struct{}{})
	assert.False(t, ok)
	assert.Zero(t, y)
	assert.Equal(t, "done", g.Result())
}

func TestGeneratorMonogeneratorReturnNotObserved(t *testing.T) {
	g := generator.New(func(ch *generator.GeneratorChannel[int, int, struct{}]) int {
		ch.YieldVal(1)
		ch.YieldVal(2)
		return 99
	})

	var yielded []int
	for {
		y, ok := g.Resume(struct{}{})
		if !ok {
			break
		}
		yielded = append(yielded, y)
	}

	assert.Equal(t, []int{1, 2}, yielded)
	assert.Equal(t, 99, g.Result())
}

func lineGenerator(input string, failure error) *generator.Generator[string, error, struct{}] {
	return generator.New(func(ch *generator.GeneratorChannel[string, error, struct{}]) error {
		if failure != nil {
			return failure
		}
		scanner := bufio.NewScanner(strings.NewReader(input))
		for scanner.Scan() {
			ch.YieldVal(strings.TrimSpace(scanner.Text()))
		}
		return nil
	})
}

func TestLineGeneratorSuccess(t *testing.T) {
	g := lineGenerator("1 line\n2 line\n3 line\n4 line", nil)

	var lines []string
	for {
		y, ok := g.Resume(struct{}{})
		if !ok {
			break
		}
		lines = append(lines, y)
	}

	assert.Equal(t, []string{"1 line", "2 line", "3 line", "4 line"}, lines)
	require.NoError(t, g.Result())
}

func TestLineGeneratorFailure(t *testing.T) {
	upstream := errors.New("upstream read failed")
	g := lineGenerator("", upstream)

	y, ok := g.Resume(struct{}{})
	assert.False(t, ok)
	assert.Zero(t, y)
	assert.ErrorIs(t, g.Result(), upstream)
}

func TestGeneratorDropDuringExecution(t *testing.T) {
	defer checkNumGoroutines(time.Second * 3)(t)

	cleaned := false
	g := generator.New(func(ch *generator.GeneratorChannel[int, int, struct{}]) int {
		defer func() { cleaned = true }()
		ch.YieldVal(0)
		ch.YieldVal(1)
		return 0
	})

	y, ok := g.Resume(struct{}{})
	require.True(t, ok)
	assert.Equal(t, 0, y)

	assert.NotPanics(t, func() {
		g.Close()
	})
	assert.True(t, cleaned)
	assert.True(t, g.HasCompleted())
	assert.Panics(t, func() {
		g.Result()
	})
}

func TestYieldFrom(t *testing.T) {
	inner := generator.New(func(ch *generator.GeneratorChannel[int, string, struct{}]) string {
		ch.YieldVal(1)
		ch.YieldVal(2)
		return "inner done"
	})

	outer := generator.New(func(ch *generator.GeneratorChannel[int, string, struct{}]) string {
		ch.YieldVal(0)
		r := generator.YieldFrom(ch, inner)
		ch.YieldVal(3)
		return r
	})

	var yields []int
	for {
		y, ok := outer.Resume(struct{}{})
		if !ok {
			break
		}
		yields = append(yields, y)
	}

	assert.Equal(t, []int{0, 1, 2, 3}, yields)
	assert.Equal(t, "inner done", outer.Result())
}

func TestYieldFromEmptyInner(t *testing.T) {
	inner := generator.New(func(ch *generator.GeneratorChannel[int, string, struct{}]) string {
		return "empty"
	})

	outer := generator.New(func(ch *generator.GeneratorChannel[int, string, struct{}]) string {
		return generator.YieldFrom(ch, inner)
	})

	y, ok := outer.Resume(struct{}{})
	assert.False(t, ok)
	assert.Zero(t, y)
	assert.Equal(t, "empty", outer.Result())
}

func TestAllIteratorEarlyBreak(t *testing.T) {
	defer checkNumGoroutines(time.Second * 3)(t)

	g := generator.New(func(ch *generator.GeneratorChannel[int, int, struct{}]) int {
		ch.YieldVal(1)
		ch.YieldVal(2)
		ch.YieldVal(3)
		return 0
	})

	var seen []int
	for y := range g.All() {
		seen = append(seen, y)
		if y == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, seen)
	assert.False(t, g.HasCompleted())
	g.Close()
	assert.True(t, g.HasCompleted())
}
