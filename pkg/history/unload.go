package history

import "github.com/wayfind-dev/wayfind/pkg/reactive"

// UnloadEvent is a cancellable leave-the-page event delivered by a
// host.
type UnloadEvent interface {
	// Prevent asks the host to warn or block the unload.
	Prevent()
}

// UnloadEventSource is an event source for unload notifications.
// MemoryHost implements it; browser-like hosts adapt their
// beforeunload equivalent.
type UnloadEventSource interface {
	SubscribeUnload(fn func(UnloadEvent)) (cancel func())
}

// UnloadGuard prevents unload while a boolean signal is true. It is a
// thin adapter over the host event source and shares no state with
// routing.
type UnloadGuard struct {
	cancel func()
}

// GuardUnload installs a guard: every unload event fired while dirty
// currently reads true is prevented. The read does not subscribe; the
// guard only consults the value at unload time.
func GuardUnload(src UnloadEventSource, dirty *reactive.Signal[bool]) *UnloadGuard {
	g := &UnloadGuard{}
	g.cancel = src.SubscribeUnload(func(ev UnloadEvent) {
		if dirty.Peek() {
			ev.Prevent()
		}
	})
	return g
}

// Release removes the guard.
func (g *UnloadGuard) Release() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
