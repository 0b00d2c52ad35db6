package history

import (
	"testing"

	"github.com/wayfind-dev/wayfind/pkg/reactive"
)

func TestUnloadGuardPrevents(t *testing.T) {
	host := NewMemoryHost("/")
	dirty := reactive.NewSignal(false)

	guard := GuardUnload(host, dirty)
	defer guard.Release()

	if !host.FireUnload() {
		t.Error("clean state should allow unload")
	}

	dirty.Set(true)
	if host.FireUnload() {
		t.Error("dirty state should prevent unload")
	}

	dirty.Set(false)
	if !host.FireUnload() {
		t.Error("cleared state should allow unload again")
	}
}

func TestUnloadGuardRelease(t *testing.T) {
	host := NewMemoryHost("/")
	dirty := reactive.NewSignal(true)

	guard := GuardUnload(host, dirty)
	guard.Release()

	if !host.FireUnload() {
		t.Error("released guard must not prevent unload")
	}

	// Release twice is fine.
	guard.Release()
}
