package watcher

import (
	"time"

	"go.uber.org/zap"

	"github.com/hxann/go-toolbox/pkg/settings"
	"github.com/hxann/go-toolbox/pkg/timer"
)

const (
	defaultInterval         = 2 * time.Second
	defaultQueueSize        = 1024
	defaultSubscriberBuffer = 64
)

// Option configures a Watcher before it starts.
type Option func(*Watcher)

// WithInterval sets the poll interval.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithClock substitutes the time source used to stamp events.
func WithClock(clock timer.Timer) Option {
	return func(w *Watcher) {
		if clock != nil {
			w.clock = clock
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

// WithQueueSize sets the capacity of the internal event conduit.
func WithQueueSize(n int) Option {
	return func(w *Watcher) {
		if n > 0 {
			w.queueSize = n
		}
	}
}

// WithSubscriberBuffer sets the default channel buffer handed to subscribers
// that pass Subscribe a non-positive size.
func WithSubscriberBuffer(n int) Option {
	return func(w *Watcher) {
		if n > 0 {
			w.subBuf = n
		}
	}
}

// FromSettings applies a loaded watcher configuration section.
func FromSettings(cfg settings.Watcher) Option {
	return func(w *Watcher) {
		WithInterval(time.Duration(cfg.Interval) * time.Millisecond)(w)
		WithQueueSize(cfg.QueueSize)(w)
		WithSubscriberBuffer(cfg.SubscriberBuffer)(w)
	}
}
