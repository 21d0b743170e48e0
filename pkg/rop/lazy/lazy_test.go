package lazy

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()
	l := New(func() int { return 1 })
	assert.Equal(t, 1, l.Value())
	assert.Equal(t, 1, l.Value())
}

func TestValue_BuildsOnce(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	l := New(func() int {
		calls.Add(1)
		return 42
	})
	assert.Zero(t, calls.Load(), "builder must not run before the value is read")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 42, l.Value())
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestChain(t *testing.T) {
	t.Parallel()
	built := false
	base := New(func() string {
		built = true
		return "aa"
	})
	converted := Chain(base, func(v string) int64 {
		n, _ := strconv.ParseInt(v, 16, 64)
		return n
	})
	assert.False(t, built, "chaining must not build the base value")
	assert.Equal(t, int64(170), converted.Value())
	assert.True(t, built)
}

func TestOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ready", Of("ready").Value())
}
