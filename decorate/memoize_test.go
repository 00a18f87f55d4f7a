package decorate_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hasbyte1/go-underbar/decorate"
	"github.com/hasbyte1/go-underbar/value"
)

func countingSum() (*decorate.Memoized[int], *int) {
	calls := 0
	m := decorate.Memoize(func(args ...any) int {
		calls++
		sum := 0
		for _, a := range args {
			if n, ok := a.(int); ok {
				sum += n
			}
		}
		return sum
	})
	return m, &calls
}

func TestMemoizeCachesPerArgumentList(t *testing.T) {
	m, calls := countingSum()

	assert.Equal(t, 3, m.Call(1, 2))
	assert.Equal(t, 3, m.Call(1, 2))
	assert.Equal(t, 1, *calls)

	assert.Equal(t, 5, m.Call(2, 3))
	assert.Equal(t, 2, *calls)
	assert.Equal(t, 2, m.Len())
}

func TestMemoizeDifferentLengthsNeverMatch(t *testing.T) {
	m, calls := countingSum()
	m.Call(1)
	m.Call(1, 0)
	m.Call()
	assert.Equal(t, 3, *calls)
	assert.Equal(t, 3, m.Len())
}

func TestMemoizeDeepArguments(t *testing.T) {
	calls := 0
	m := decorate.Memoize(func(args ...any) int { calls++; return calls })

	first := m.Call([]any{1, []any{2}}, map[string]any{"a": 1})
	again := m.Call([]int{1}, map[string]int{"a": 1})
	assert.Equal(t, 2, calls, "different nesting is a different list")

	assert.Equal(t, first, m.Call([]any{1, []any{2}}, map[string]any{"a": 1}))
	assert.Equal(t, again, m.Call([]any{1}, map[string]any{"a": 1}))
	assert.Equal(t, 2, calls)

	m.Call([]any{1, []any{2}}, map[string]any{"a": 1, "b": 2})
	assert.Equal(t, 3, calls, "mappings with extra keys differ")
}

func TestMemoizeLooseByDefault(t *testing.T) {
	m, calls := countingSum()
	m.Call(1)
	m.Call("1")
	assert.Equal(t, 1, *calls)
}

func TestMemoizeDistinctStringsAreDistinctEntries(t *testing.T) {
	calls := 0
	m := decorate.Memoize(func(args ...any) any { calls++; return args[0] })

	assert.Equal(t, "yes", m.Call("yes"))
	assert.Equal(t, "on", m.Call("on"))
	assert.Equal(t, "1", m.Call("1"))
	assert.Equal(t, "1.0", m.Call("1.0"))
	assert.Equal(t, []any{"on"}, m.Call([]any{"on"}))
	assert.Equal(t, []any{"yes"}, m.Call([]any{"yes"}))
	assert.Equal(t, 6, calls)
	assert.Equal(t, 6, m.Len())

	assert.Equal(t, "1", m.Call(1), "numbers still coerce against strings")
	assert.Equal(t, 6, calls)
}

func TestMemoizeStrictEquality(t *testing.T) {
	calls := 0
	m := decorate.Memoize(func(...any) int { calls++; return calls }, decorate.WithEquality(value.Equal))
	assert.Equal(t, 1, m.Call(1))
	assert.Equal(t, 2, m.Call("1"))
	assert.Equal(t, 1, m.Call(1))
}

func TestMemoizeSnapshotsArguments(t *testing.T) {
	calls := 0
	m := decorate.Memoize(func(...any) int { calls++; return calls })

	arg := map[string]any{"k": 1}
	m.Call(arg)
	arg["k"] = 2

	assert.Equal(t, 2, m.Call(arg), "mutated argument is a new list")
	assert.Equal(t, 1, m.Call(map[string]any{"k": 1}))
}

func TestMemoizeRecursive(t *testing.T) {
	var fib func(int) int
	calls := 0
	fib = decorate.Memoize1(func(n int) int {
		calls++
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	assert.Equal(t, 832040, fib(30))
	assert.Equal(t, 31, calls)
}

func TestMemoizeConcurrent(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	m := decorate.Memoize(func(args ...any) int {
		calls.Add(1)
		<-release
		return args[0].(int) * 10
	})

	var wg sync.WaitGroup
	results := make([]int, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.Call(7)
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for _, r := range results {
		assert.Equal(t, 70, r)
	}
}

func TestMemoizePanicIsNotCached(t *testing.T) {
	calls := 0
	m := decorate.Memoize(func(args ...any) int {
		calls++
		if calls == 1 {
			panic("first attempt fails")
		}
		return 42
	})

	assert.Panics(t, func() { m.Call("x") })
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 42, m.Call("x"))
	assert.Equal(t, 1, m.Len())
}

func TestMemoize2(t *testing.T) {
	calls := 0
	pow := decorate.Memoize2(func(base, exp int) int {
		calls++
		out := 1
		for i := 0; i < exp; i++ {
			out *= base
		}
		return out
	}, decorate.WithEquality(value.Equal))

	assert.Equal(t, 8, pow(2, 3))
	assert.Equal(t, 8, pow(2, 3))
	assert.Equal(t, 9, pow(3, 2))
	assert.Equal(t, 2, calls)
}

func TestMemoizeLogsMisses(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := decorate.Memoize(func(...any) int { return 0 }, decorate.WithLogger(zap.New(core)))

	m.Call(1)
	m.Call(1)
	m.Call(2)

	entries := logs.FilterMessage("memoize miss").All()
	require.Len(t, entries, 2)
	assert.EqualValues(t, 2, entries[1].ContextMap()["entries"])
}
