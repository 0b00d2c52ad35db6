package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect is a reactive side effect that re-runs when its dependencies
// change. Dependencies are tracked automatically: every signal read
// during the effect body subscribes the effect, and the subscription
// set is rebuilt from scratch on each run.
type Effect struct {
	id uint64

	// fn is the effect body.
	fn func() Cleanup

	// cleanup is the cleanup function from the last run.
	cleanup Cleanup

	// sources are the signals this effect currently depends on.
	sources   []*signalBase
	sourcesMu sync.Mutex

	// running guards against re-entrant runs when the effect body
	// writes one of its own dependencies.
	running atomic.Bool

	// pending records a dependency change that arrived mid-run, so
	// the change re-runs the body instead of being lost.
	pending atomic.Bool

	// disposed indicates the effect has been disposed.
	disposed atomic.Bool
}

// NewEffect creates an effect and runs it immediately. The effect
// re-runs synchronously whenever a signal it read changes. If the body
// returns a Cleanup, it is called before the next run and on Dispose.
func NewEffect(fn func() Cleanup) *Effect {
	e := &Effect{
		id: nextID(),
		fn: fn,
	}
	e.run()
	return e
}

// MarkDirty re-runs the effect. Implements Listener.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}
	e.run()
}

// ID returns the unique identifier for this effect. Implements Listener.
func (e *Effect) ID() uint64 {
	return e.id
}

// run executes the effect body with dependency tracking.
func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}

	// A write to a dependency from inside the body recurses here; the
	// nested run becomes a pending re-run of the outer one, so the
	// change is deferred rather than lost.
	if !e.running.CompareAndSwap(false, true) {
		e.pending.Store(true)
		return
	}
	defer e.running.Store(false)

	for {
		e.pending.Store(false)

		if e.cleanup != nil {
			e.cleanup()
			e.cleanup = nil
		}

		// Unsubscribe from old sources before re-tracking
		e.sourcesMu.Lock()
		for _, source := range e.sources {
			source.unsubscribe(e)
		}
		e.sources = e.sources[:0]
		e.sourcesMu.Unlock()

		oldListener := setCurrentListener(e)
		e.cleanup = e.fn()
		setCurrentListener(oldListener)

		if e.disposed.Load() || !e.pending.Load() {
			return
		}
	}
}

// addSource records a dependency. Called by signals read during a run.
func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// Dispose runs the pending cleanup and unsubscribes from all sources.
// A disposed effect never runs again.
func (e *Effect) Dispose() {
	if e.disposed.Swap(true) {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}
