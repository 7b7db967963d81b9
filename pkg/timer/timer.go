// Package timer provides injectable clocks. Components take a Timer instead
// of calling time.Now directly so tests can substitute a fake.
package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timer is a source of the current time.
type Timer interface {
	Now() time.Time
	Stop()
}

// SystemTimer reads the wall clock on every call.
type SystemTimer struct{}

// NewSystemTimer returns a Timer backed by time.Now.
func NewSystemTimer() *SystemTimer {
	return &SystemTimer{}
}

func (*SystemTimer) Now() time.Time {
	return time.Now()
}

// Stop is a no-op; the system clock owns no resources.
func (*SystemTimer) Stop() {}

// CachedTimer trades precision for speed: a background goroutine refreshes a
// cached timestamp every step, and Now is a single atomic load. Useful when
// timestamps are taken at a high rate and step-level precision is enough.
type CachedTimer struct {
	now    atomic.Value
	step   time.Duration
	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewCachedTimer starts a timer that refreshes every step.
func NewCachedTimer(step time.Duration) *CachedTimer {
	t := &CachedTimer{
		step:   step,
		ticker: time.NewTicker(step),
		done:   make(chan struct{}),
	}
	t.now.Store(time.Now())

	t.wg.Add(1)
	go t.run()

	return t
}

func (t *CachedTimer) run() {
	defer t.wg.Done()

	current := t.Now()

	for {
		select {
		case <-t.ticker.C:
			current = current.Add(t.step)
			t.now.Store(current)
		case <-t.done:
			t.ticker.Stop()
			return
		}
	}
}

// Now returns the cached timestamp, at most one step behind the wall clock.
func (t *CachedTimer) Now() time.Time {
	return t.now.Load().(time.Time)
}

// Stop terminates the refresh goroutine and waits for it to exit.
func (t *CachedTimer) Stop() {
	close(t.done)
	t.wg.Wait()
}

var (
	_ Timer = (*SystemTimer)(nil)
	_ Timer = (*CachedTimer)(nil)
)
