package history

import "sync"

// memoryEntry is one history stack entry. Path and fragment live side
// by side so path and hash bindings share the same stack, as they do
// in a real host.
type memoryEntry struct {
	path     string
	fragment string
}

// MemoryHost is an in-process navigation host with a full history
// stack. It is the standard host for tests and for embedding wayfind
// in environments without a browser-like location.
type MemoryHost struct {
	mu      sync.Mutex
	entries []memoryEntry
	idx     int
	modes   map[Mode]bool

	nextSub    int
	pathSubs   map[int]func(string)
	hashSubs   map[int]func(string)
	unloadSubs map[int]func(UnloadEvent)
}

// NewMemoryHost creates a host positioned at the initial path. With no
// explicit modes it supports both ModePath and ModeHash; passing a
// subset restricts the host, which makes unsupported-mode setups
// testable.
func NewMemoryHost(initial string, modes ...Mode) *MemoryHost {
	if len(modes) == 0 {
		modes = []Mode{ModePath, ModeHash}
	}
	supported := make(map[Mode]bool, len(modes))
	for _, m := range modes {
		supported[m] = true
	}

	return &MemoryHost{
		entries:    []memoryEntry{{path: initial}},
		modes:      supported,
		pathSubs:   make(map[int]func(string)),
		hashSubs:   make(map[int]func(string)),
		unloadSubs: make(map[int]func(UnloadEvent)),
	}
}

// Binding implements Host.
func (h *MemoryHost) Binding(mode Mode) (Binding, error) {
	h.mu.Lock()
	supported := h.modes[mode]
	h.mu.Unlock()

	if !supported {
		return nil, ErrModeUnsupported
	}
	return &memoryBinding{host: h, mode: mode}, nil
}

// Back moves one entry back in the history stack, notifying both
// bindings. No-op at the oldest entry.
func (h *MemoryHost) Back() {
	h.mu.Lock()
	if h.idx == 0 {
		h.mu.Unlock()
		return
	}
	h.idx--
	notify := h.collectNotifyLocked()
	h.mu.Unlock()
	notify()
}

// Forward moves one entry forward in the history stack. No-op at the
// newest entry.
func (h *MemoryHost) Forward() {
	h.mu.Lock()
	if h.idx == len(h.entries)-1 {
		h.mu.Unlock()
		return
	}
	h.idx++
	notify := h.collectNotifyLocked()
	h.mu.Unlock()
	notify()
}

// Depth returns the number of entries on the history stack.
func (h *MemoryHost) Depth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// SubscribeUnload implements UnloadEventSource.
func (h *MemoryHost) SubscribeUnload(fn func(UnloadEvent)) (cancel func()) {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.unloadSubs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.unloadSubs, id)
		h.mu.Unlock()
	}
}

// FireUnload delivers an unload event to every unload subscriber and
// reports whether the unload may proceed (no subscriber prevented it).
func (h *MemoryHost) FireUnload() bool {
	h.mu.Lock()
	subs := make([]func(UnloadEvent), 0, len(h.unloadSubs))
	for _, fn := range h.unloadSubs {
		subs = append(subs, fn)
	}
	h.mu.Unlock()

	ev := &memoryUnloadEvent{}
	for _, fn := range subs {
		fn(ev)
	}
	return !ev.prevented
}

// push appends a new entry after the current one, discarding any
// forward history, and returns the notification closure to run
// outside the lock.
func (h *MemoryHost) push(mode Mode, path string) {
	h.mu.Lock()
	entry := h.entries[h.idx]
	h.applyLocked(&entry, mode, path)
	h.entries = append(h.entries[:h.idx+1], entry)
	h.idx++
	notify := h.collectNotifyLocked()
	h.mu.Unlock()
	notify()
}

// replace rewrites the current entry in place.
func (h *MemoryHost) replace(mode Mode, path string) {
	h.mu.Lock()
	h.applyLocked(&h.entries[h.idx], mode, path)
	notify := h.collectNotifyLocked()
	h.mu.Unlock()
	notify()
}

func (h *MemoryHost) applyLocked(entry *memoryEntry, mode Mode, path string) {
	if mode == ModeHash {
		entry.fragment = PathToFragment(path)
	} else {
		entry.path = path
	}
}

// collectNotifyLocked snapshots subscribers and current values under
// the lock, returning a closure that notifies after release. Listener
// code (signal writes, effects) must never run while the host mutex
// is held.
func (h *MemoryHost) collectNotifyLocked() func() {
	entry := h.entries[h.idx]
	pathValue := entry.path
	hashValue := FragmentToPath(entry.fragment)

	pathSubs := make([]func(string), 0, len(h.pathSubs))
	for _, fn := range h.pathSubs {
		pathSubs = append(pathSubs, fn)
	}
	hashSubs := make([]func(string), 0, len(h.hashSubs))
	for _, fn := range h.hashSubs {
		hashSubs = append(hashSubs, fn)
	}

	return func() {
		for _, fn := range pathSubs {
			fn(pathValue)
		}
		for _, fn := range hashSubs {
			fn(hashValue)
		}
	}
}

func (h *MemoryHost) subscribe(mode Mode, fn func(string)) func() {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	if mode == ModeHash {
		h.hashSubs[id] = fn
	} else {
		h.pathSubs[id] = fn
	}
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		if mode == ModeHash {
			delete(h.hashSubs, id)
		} else {
			delete(h.pathSubs, id)
		}
		h.mu.Unlock()
	}
}

// memoryBinding is the per-mode view over a MemoryHost.
type memoryBinding struct {
	host *MemoryHost
	mode Mode
}

func (b *memoryBinding) Current() string {
	b.host.mu.Lock()
	defer b.host.mu.Unlock()
	entry := b.host.entries[b.host.idx]
	if b.mode == ModeHash {
		return FragmentToPath(entry.fragment)
	}
	return entry.path
}

func (b *memoryBinding) Push(path string) {
	b.host.push(b.mode, path)
}

func (b *memoryBinding) Replace(path string) {
	b.host.replace(b.mode, path)
}

func (b *memoryBinding) Subscribe(fn func(string)) func() {
	return b.host.subscribe(b.mode, fn)
}

// memoryUnloadEvent implements UnloadEvent for MemoryHost.
type memoryUnloadEvent struct {
	prevented bool
}

func (e *memoryUnloadEvent) Prevent() {
	e.prevented = true
}
