package fn

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Debouncer collapses bursts of calls into one trailing invocation of fn:
// calling it any number of times within a rolling window shorter than delay
// results in exactly one invocation, delay after the last call of the burst,
// with that call's argument. Nothing is returned from fn to callers
// (fire-and-forget); a panic in fn propagates on the timer goroutine.
//
// At most one invocation is ever pending. Each Call supersedes the previous
// one synchronously and totally: a superseded callback never fires, even if
// its timer already expired and lost the race for the instance lock.
type Debouncer[T any] struct {
	fn        func(T)
	delay     time.Duration
	logger    *zap.Logger
	collector *Collector
	id        string

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending bool
	window  timespan.TimeSpan
}

// NewDebouncer wraps fn with a debounce window of delay.
func NewDebouncer[T any](fn func(T), delay time.Duration, opts ...Option) *Debouncer[T] {
	conf := newConfig(opts)
	id := uuid.New().String()
	return &Debouncer[T]{
		fn:        fn,
		delay:     delay,
		logger:    conf.logger.With(zap.String("debouncer_id", id)),
		collector: conf.collector,
		id:        id,
	}
}

// Debounce wraps fn and returns just the debounced callable, for callers
// that never need Stop or PendingWindow.
func Debounce[T any](fn func(T), delay time.Duration, opts ...Option) func(T) {
	return NewDebouncer(fn, delay, opts...).Call
}

// Call schedules fn(v) to run once the debounce window elapses, cancelling
// any previously scheduled invocation.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.collector.debounceCall(d.id)
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.logger.Debug("pending invocation superseded")
	}

	now := time.Now()
	d.window = timespan.BetweenTimes(now, now.Add(d.delay))
	d.pending = true

	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen, v)
	})
}

func (d *Debouncer[T]) fire(gen uint64, v T) {
	d.mu.Lock()
	if gen != d.gen {
		// superseded or stopped between timer expiry and lock acquisition
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.collector.debounceFire(d.id)
	d.logger.Debug("trailing invocation fired")
	d.fn(v)
}

// Stop cancels any pending invocation. It does not wait for an invocation
// that has already begun running.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
}

// PendingWindow reports the current debounce window, from the last Call to
// the moment the trailing invocation is due. ok is false when nothing is
// pending.
func (d *Debouncer[T]) PendingWindow() (window timespan.TimeSpan, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.window, d.pending
}
