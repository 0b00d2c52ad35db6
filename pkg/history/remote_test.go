package history

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// locationPeer is a minimal server side of the remote location
// protocol: it answers hello with a location push and records
// navigate frames.
type locationPeer struct {
	upgrader  websocket.Upgrader
	initial   string
	navigates chan RemoteFrame
}

func newLocationPeer(initial string) *locationPeer {
	return &locationPeer{
		upgrader:  websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		initial:   initial,
		navigates: make(chan RemoteFrame, 8),
	}
}

func (p *locationPeer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var frame RemoteFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		switch frame.Type {
		case "hello":
			conn.WriteJSON(RemoteFrame{Type: "location", Path: p.initial})
		case "navigate":
			p.navigates <- frame
			// Echo the navigation back as the new location.
			conn.WriteJSON(RemoteFrame{Type: "location", Path: frame.Path})
		}
	}
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialTestRemote(t *testing.T, srv *httptest.Server) *RemoteHost {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	host, err := DialRemote(ctx, RemoteConfig{URL: wsURL(srv)})
	if err != nil {
		t.Fatalf("DialRemote: %v", err)
	}
	t.Cleanup(func() { host.Close() })
	return host
}

func waitFor(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %q", want)
	}
}

func TestRemoteHostReceivesLocation(t *testing.T) {
	peer := newLocationPeer("/remote/start")
	srv := httptest.NewServer(peer)
	defer srv.Close()

	host := dialTestRemote(t, srv)

	b, err := host.Binding(ModePath)
	if err != nil {
		t.Fatalf("Binding: %v", err)
	}

	updates := make(chan string, 8)
	cancel := b.Subscribe(func(path string) { updates <- path })
	defer cancel()

	// The hello handshake triggers the initial push.
	waitFor(t, updates, "/remote/start")
	if b.Current() != "/remote/start" {
		t.Errorf("current = %q", b.Current())
	}
}

func TestRemoteHostNavigateRoundTrip(t *testing.T) {
	peer := newLocationPeer("/")
	srv := httptest.NewServer(peer)
	defer srv.Close()

	host := dialTestRemote(t, srv)
	b, err := host.Binding(ModePath)
	if err != nil {
		t.Fatalf("Binding: %v", err)
	}

	updates := make(chan string, 8)
	cancel := b.Subscribe(func(path string) { updates <- path })
	defer cancel()
	waitFor(t, updates, "/")

	b.Push("/users/42")

	select {
	case frame := <-peer.navigates:
		if frame.Path != "/users/42" || frame.Replace {
			t.Errorf("navigate frame = %+v", frame)
		}
		if frame.Client != host.ID() {
			t.Errorf("frame client = %q, want %q", frame.Client, host.ID())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for navigate frame")
	}

	// Peer echoed the location back.
	waitFor(t, updates, "/users/42")
}

func TestRemoteHostReplaceFlag(t *testing.T) {
	peer := newLocationPeer("/")
	srv := httptest.NewServer(peer)
	defer srv.Close()

	host := dialTestRemote(t, srv)
	b, _ := host.Binding(ModePath)

	b.Replace("/swapped")

	select {
	case frame := <-peer.navigates:
		if !frame.Replace {
			t.Errorf("expected replace flag on %+v", frame)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for navigate frame")
	}
}

func TestRemoteHostHashUnsupported(t *testing.T) {
	peer := newLocationPeer("/")
	srv := httptest.NewServer(peer)
	defer srv.Close()

	host := dialTestRemote(t, srv)

	if _, err := host.Binding(ModeHash); err != ErrModeUnsupported {
		t.Errorf("expected ErrModeUnsupported, got %v", err)
	}
}

func TestRemoteHostWithSource(t *testing.T) {
	peer := newLocationPeer("/dashboard")
	srv := httptest.NewServer(peer)
	defer srv.Close()

	host := dialTestRemote(t, srv)

	src, err := NewSource(host, ModePath)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	defer src.Close()

	deadline := time.Now().Add(5 * time.Second)
	for src.Location().Peek() != "/dashboard" {
		if time.Now().After(deadline) {
			t.Fatalf("location never arrived, still %q", src.Location().Peek())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
