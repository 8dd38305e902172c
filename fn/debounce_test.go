package fn_test

import (
	"sync"
	"testing"
	"time"

	"github.com/on-the-ground/support_ive_go/fn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const debounceDelay = 20 * time.Millisecond

type recorder[T any] struct {
	mu    sync.Mutex
	calls []T
}

func (r *recorder[T]) record(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.calls...)
}

func TestDebouncer_BurstCollapsesToLastCall(t *testing.T) {
	rec := &recorder[int]{}
	d := fn.NewDebouncer(rec.record, debounceDelay)

	d.Call(1)
	d.Call(2)
	d.Call(3)

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 10*debounceDelay, time.Millisecond)
	assert.Equal(t, []int{3}, rec.snapshot())

	// quiet period over, no second invocation appears
	time.Sleep(2 * debounceDelay)
	assert.Equal(t, []int{3}, rec.snapshot())
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	rec := &recorder[string]{}
	d := fn.NewDebouncer(rec.record, debounceDelay)

	d.Call("first")
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 10*debounceDelay, time.Millisecond)

	d.Call("second")
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, 10*debounceDelay, time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.snapshot())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	rec := &recorder[int]{}
	d := fn.NewDebouncer(rec.record, debounceDelay)

	d.Call(7)
	d.Stop()

	time.Sleep(3 * debounceDelay)
	assert.Empty(t, rec.snapshot())

	_, pending := d.PendingWindow()
	assert.False(t, pending)
}

func TestDebouncer_PendingWindow(t *testing.T) {
	rec := &recorder[int]{}
	d := fn.NewDebouncer(rec.record, time.Minute)
	defer d.Stop()

	_, pending := d.PendingWindow()
	assert.False(t, pending)

	d.Call(1)
	window, pending := d.PendingWindow()
	require.True(t, pending)
	assert.Equal(t, time.Minute, window.Duration())
}

func TestDebounce_FunctionalForm(t *testing.T) {
	rec := &recorder[int]{}
	debounced := fn.Debounce(rec.record, debounceDelay)

	debounced(1)
	debounced(2)

	assert.Eventually(t, func() bool {
		calls := rec.snapshot()
		return len(calls) == 1 && calls[0] == 2
	}, 10*debounceDelay, time.Millisecond)
}
