package history

import (
	"errors"
	"testing"
)

func TestSourceTracksHost(t *testing.T) {
	host := NewMemoryHost("/start")
	src, err := NewSource(host, ModePath)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	defer src.Close()

	if src.Location().Get() != "/start" {
		t.Errorf("initial location = %q", src.Location().Get())
	}

	src.Navigate("/users/42")
	if src.Location().Get() != "/users/42" {
		t.Errorf("location = %q, want /users/42", src.Location().Get())
	}

	// Host-side navigation (back button) flows into the signal too.
	host.Back()
	if src.Location().Get() != "/start" {
		t.Errorf("location after back = %q, want /start", src.Location().Get())
	}
}

func TestSourceReplace(t *testing.T) {
	host := NewMemoryHost("/")
	src, err := NewSource(host, ModePath)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	defer src.Close()

	src.Navigate("/a")
	src.Replace("/a2")

	if src.Location().Get() != "/a2" {
		t.Errorf("location = %q, want /a2", src.Location().Get())
	}
	if host.Depth() != 2 {
		t.Errorf("replace grew the stack: depth %d", host.Depth())
	}
}

func TestSourceHashMode(t *testing.T) {
	host := NewMemoryHost("/index.html")
	src, err := NewSource(host, ModeHash)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	defer src.Close()

	if src.Location().Get() != "/" {
		t.Errorf("initial hash location = %q, want /", src.Location().Get())
	}
	if src.Mode() != ModeHash {
		t.Errorf("mode = %v, want hash", src.Mode())
	}

	src.Navigate("/users/42")
	if src.Location().Get() != "/users/42" {
		t.Errorf("location = %q, want /users/42", src.Location().Get())
	}
}

// driftingBinding moves between the initial read and the subscription
// registration, like a host pushed concurrently during setup.
type driftingBinding struct {
	reads int
	fn    func(string)
}

func (b *driftingBinding) Current() string {
	b.reads++
	if b.reads == 1 {
		return "/stale"
	}
	return "/fresh"
}

func (b *driftingBinding) Push(path string)    {}
func (b *driftingBinding) Replace(path string) {}

func (b *driftingBinding) Subscribe(fn func(string)) func() {
	b.fn = fn
	return func() {}
}

type driftingHost struct {
	b *driftingBinding
}

func (h *driftingHost) Binding(mode Mode) (Binding, error) {
	return h.b, nil
}

func TestSourceCatchesPushDuringSetup(t *testing.T) {
	host := &driftingHost{b: &driftingBinding{}}

	src, err := NewSource(host, ModePath)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	defer src.Close()

	// The location moved before the subscription was in place; the
	// signal must still end up at the fresh value.
	if got := src.Location().Get(); got != "/fresh" {
		t.Errorf("location = %q, want /fresh", got)
	}
}

func TestSourceConfigurationError(t *testing.T) {
	host := NewMemoryHost("/", ModeHash)

	_, err := NewSource(host, ModePath)
	if err == nil {
		t.Fatal("expected error for unsupported mode")
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
	if cfgErr.Mode != ModePath {
		t.Errorf("mode = %v, want path", cfgErr.Mode)
	}
	if !errors.Is(err, ErrModeUnsupported) {
		t.Errorf("errors.Is(err, ErrModeUnsupported) = false")
	}
}

func TestSourceClose(t *testing.T) {
	host := NewMemoryHost("/")
	src, err := NewSource(host, ModePath)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	src.Close()
	b, _ := host.Binding(ModePath)
	b.Push("/after-close")

	if src.Location().Get() != "/" {
		t.Errorf("closed source updated: %q", src.Location().Get())
	}

	// Close twice is fine.
	src.Close()
}
