package reactive

// Listener is anything that can be notified when a signal changes.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies
	// has changed. For effects this re-runs the effect body.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used for deduplication during subscription and batching.
	ID() uint64
}

// Cleanup is a function returned by effects to release resources.
// It is called before the effect re-runs and when the effect is disposed.
type Cleanup func()
