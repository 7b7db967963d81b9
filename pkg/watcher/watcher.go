// Package watcher polls directories on an afero filesystem and publishes
// change events to subscribers. It watches the direct children of each
// registered root, comparing size, mode and modification time between polls.
//
// The watcher is a long-lived service: register roots with Watch, attach
// consumers with Subscribe, then Start the poll and dispatch loops. Polling
// keeps the implementation portable across afero backends; there is no
// dependency on OS-level change notification.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/hxann/go-toolbox/pkg/datastructs/queue"
	"github.com/hxann/go-toolbox/pkg/hash"
	pkgRuntime "github.com/hxann/go-toolbox/pkg/runtime"
	"github.com/hxann/go-toolbox/pkg/timer"
)

const (
	stateIdle = iota
	stateRunning
	stateStopped
)

// entrySig is the per-child fingerprint compared between polls.
type entrySig struct {
	size    int64
	mode    os.FileMode
	modTime int64
}

// rootState is the last snapshot taken of one watched root. names preserves
// directory order so diffs emit events deterministically; sum is a digest of
// the whole snapshot used to skip unchanged roots without diffing.
type rootState struct {
	names   []string
	entries map[string]entrySig
	sum     uint64
}

// Stats is a point-in-time view of watcher counters.
type Stats struct {
	Polls    uint64
	Events   uint64
	Dropped  uint64
	LastPoll time.Duration
}

// Subscription is one consumer's view of the event stream. Events delivered
// while the channel buffer is full displace the oldest buffered event.
type Subscription struct {
	w    *Watcher
	ch   chan Event
	once sync.Once
}

// Events returns the channel events arrive on. It is closed by Close or when
// the watcher stops.
func (s *Subscription) Events() <-chan Event { return s.ch }

// Close detaches the subscription and closes its channel. Safe to call more
// than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.w.mu.Lock()
		delete(s.w.subs, s)
		close(s.ch)
		s.w.mu.Unlock()
	})
}

// Watcher polls registered roots and fans change events out to subscribers.
type Watcher struct {
	fs        afero.Fs
	interval  time.Duration
	clock     timer.Timer
	log       *zap.Logger
	queueSize int
	subBuf    int

	// conduit between the poll loop (producer) and dispatch loop (consumer);
	// when saturated the poll loop displaces the oldest pending event.
	queue *queue.MPMC[Event]

	mu    sync.Mutex
	state int
	roots map[string]*rootState
	subs  map[*Subscription]struct{}

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup

	polls    atomic.Uint64
	events   atomic.Uint64
	dropped  atomic.Uint64
	lastPoll atomic.Int64
}

// New builds a watcher over fs. It does not poll until Start is called.
func New(fs afero.Fs, opts ...Option) *Watcher {
	w := &Watcher{
		fs:        fs,
		interval:  defaultInterval,
		clock:     timer.NewSystemTimer(),
		log:       zap.NewNop(),
		queueSize: defaultQueueSize,
		subBuf:    defaultSubscriberBuffer,
		roots:     make(map[string]*rootState),
		subs:      make(map[*Subscription]struct{}),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.queue = queue.NewMPMC[Event](w.queueSize)
	return w
}

// Watch registers root and takes its initial snapshot synchronously. The
// snapshot itself produces no events; only changes after it do.
func (w *Watcher) Watch(root string) error {
	root = filepath.Clean(root)

	w.mu.Lock()
	if w.state == stateStopped {
		w.mu.Unlock()
		return ErrStopped
	}
	if _, dup := w.roots[root]; dup {
		w.mu.Unlock()
		return ErrAlreadyWatched
	}
	w.mu.Unlock()

	snap, err := w.snapshot(root)
	if err != nil {
		return errors.Wrapf(err, "watch %s", root)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, dup := w.roots[root]; dup {
		return ErrAlreadyWatched
	}
	w.roots[root] = snap
	w.log.Debug("watching root", zap.String("root", root), zap.Int("entries", len(snap.names)))
	return nil
}

// Unwatch removes root from the poll set.
func (w *Watcher) Unwatch(root string) error {
	root = filepath.Clean(root)

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.roots[root]; !ok {
		return ErrNotWatched
	}
	delete(w.roots, root)
	return nil
}

// Subscribe attaches a consumer with the given channel buffer. A non-positive
// buffer uses the watcher default.
func (w *Watcher) Subscribe(buffer int) (*Subscription, error) {
	if buffer <= 0 {
		buffer = w.subBuf
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == stateStopped {
		return nil, ErrStopped
	}
	s := &Subscription{w: w, ch: make(chan Event, buffer)}
	w.subs[s] = struct{}{}
	return s, nil
}

// Start launches the poll and dispatch loops. Cancelling ctx stops the
// watcher as if Stop were called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	switch w.state {
	case stateRunning:
		w.mu.Unlock()
		return ErrAlreadyStarted
	case stateStopped:
		w.mu.Unlock()
		return ErrStopped
	}
	w.state = stateRunning
	w.mu.Unlock()

	w.wg.Add(2)
	go w.pollLoop()
	go w.dispatchLoop()

	go func() {
		select {
		case <-ctx.Done():
			w.Stop()
		case <-w.done:
		}
	}()

	w.log.Debug("watcher started", zap.Duration("interval", w.interval))
	return nil
}

// Stop halts the loops, drains pending events to subscribers and closes their
// channels. Idempotent; a watcher cannot be restarted after Stop.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.state == stateRunning
	w.state = stateStopped
	w.mu.Unlock()

	if running {
		close(w.done)
		w.wg.Wait()
	}

	w.mu.Lock()
	subs := make([]*Subscription, 0, len(w.subs))
	for s := range w.subs {
		subs = append(subs, s)
	}
	w.mu.Unlock()
	for _, s := range subs {
		s.Close()
	}

	w.log.Debug("watcher stopped")
}

// Stats returns current counter values.
func (w *Watcher) Stats() Stats {
	return Stats{
		Polls:    w.polls.Load(),
		Events:   w.events.Load(),
		Dropped:  w.dropped.Load(),
		LastPoll: time.Duration(w.lastPoll.Load()),
	}
}

func (w *Watcher) pollLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			w.poll()
		}
	}
}

func (w *Watcher) poll() {
	start := pkgRuntime.NanoTime()

	w.mu.Lock()
	names := make([]string, 0, len(w.roots))
	for root := range w.roots {
		names = append(names, root)
	}
	w.mu.Unlock()
	sort.Strings(names)

	for _, root := range names {
		w.pollRoot(root)
	}

	w.polls.Add(1)
	w.lastPoll.Store(pkgRuntime.NanoTime() - start)
}

func (w *Watcher) pollRoot(root string) {
	next, err := w.snapshot(root)
	if err != nil {
		// Keep the previous snapshot; a transient error should not fabricate
		// remove events for every child.
		w.log.Debug("poll failed", zap.String("root", root), zap.Error(err))
		return
	}

	w.mu.Lock()
	prev, ok := w.roots[root]
	if !ok || prev.sum == next.sum {
		w.mu.Unlock()
		return
	}
	w.roots[root] = next
	w.mu.Unlock()

	at := w.clock.Now()

	for _, name := range next.names {
		sig := next.entries[name]
		old, existed := prev.entries[name]
		switch {
		case !existed:
			w.publish(Event{Root: root, Path: filepath.Join(root, name), Op: OpCreate, At: at})
		case old != sig:
			w.publish(Event{Root: root, Path: filepath.Join(root, name), Op: OpModify, At: at})
		}
	}

	var removed []string
	for name := range prev.entries {
		if _, still := next.entries[name]; !still {
			removed = append(removed, name)
		}
	}
	sort.Strings(removed)
	for _, name := range removed {
		w.publish(Event{Root: root, Path: filepath.Join(root, name), Op: OpRemove, At: at})
	}
}

// snapshot fingerprints the direct children of root. The digest over names
// and signatures lets pollRoot skip unchanged roots with one comparison.
func (w *Watcher) snapshot(root string) (*rootState, error) {
	infos, err := afero.ReadDir(w.fs, root)
	if err != nil {
		return nil, err
	}

	st := &rootState{
		names:   make([]string, 0, len(infos)),
		entries: make(map[string]entrySig, len(infos)),
	}
	d := hash.NewDigest()
	for _, info := range infos {
		sig := entrySig{
			size:    info.Size(),
			mode:    info.Mode(),
			modTime: info.ModTime().UnixNano(),
		}
		st.names = append(st.names, info.Name())
		st.entries[info.Name()] = sig

		d.WriteString(info.Name())
		d.WriteUint64(uint64(sig.size))
		d.WriteUint64(uint64(sig.mode))
		d.WriteUint64(uint64(sig.modTime))
	}
	st.sum = d.Sum64()
	return st, nil
}

// publish hands an event to the dispatch loop, displacing the oldest pending
// event when the conduit is saturated.
func (w *Watcher) publish(ev Event) {
	for !w.queue.Enqueue(ev) {
		if _, ok := w.queue.Dequeue(); ok {
			w.dropped.Add(1)
		}
	}
	w.events.Add(1)

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Watcher) dispatchLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			w.drain()
			return
		case <-w.wake:
			w.drain()
		}
	}
}

func (w *Watcher) drain() {
	for {
		ev, ok := w.queue.Dequeue()
		if !ok {
			return
		}
		w.deliver(ev)
	}
}

// deliver fans one event out to every subscriber. Sends never block: a full
// subscriber loses its oldest buffered event to make room, and if the buffer
// is still full the new event is dropped for that subscriber.
func (w *Watcher) deliver(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for s := range w.subs {
		select {
		case s.ch <- ev:
			continue
		default:
		}

		select {
		case <-s.ch:
			w.dropped.Add(1)
		default:
		}
		select {
		case s.ch <- ev:
		default:
			w.dropped.Add(1)
		}
	}
}
