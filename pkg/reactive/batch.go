package reactive

// Batch runs fn with notifications deferred. Signal writes inside fn
// queue their subscribers instead of notifying immediately; when the
// outermost batch ends, queued listeners are notified once each,
// deduplicated by ID.
func Batch(fn func()) {
	incrementBatchDepth()

	defer func() {
		if decrementBatchDepth() {
			flushPendingUpdates()
		}
	}()

	fn()
}

// flushPendingUpdates notifies every queued listener exactly once.
func flushPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	for _, l := range updates {
		if seen[l.ID()] {
			continue
		}
		seen[l.ID()] = true
		l.MarkDirty()
	}
}
