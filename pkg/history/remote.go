package history

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Frame types of the remote location protocol. The peer pushes
// "location" frames; the host writes "navigate" frames back.
const (
	frameHello    = "hello"
	frameLocation = "location"
	frameNavigate = "navigate"
)

// RemoteFrame is one message of the remote location protocol, JSON
// over a WebSocket text stream.
type RemoteFrame struct {
	Type    string `json:"type"`
	Path    string `json:"path,omitempty"`
	Client  string `json:"client,omitempty"`
	Replace bool   `json:"replace,omitempty"`
}

// RemoteConfig configures DialRemote.
type RemoteConfig struct {
	// URL is the ws:// or wss:// endpoint of the location peer.
	URL string

	// Header is sent with the handshake request.
	Header http.Header

	// Logger receives connection diagnostics. Default: slog.Default().
	Logger *slog.Logger
}

// RemoteHost is a navigation host driven by a WebSocket peer: the
// active location arrives as location frames and navigation requests
// are written back. It serves ModePath only; hash routing has no
// meaning on the wire.
type RemoteHost struct {
	conn   *websocket.Conn
	id     string
	logger *slog.Logger

	writeMu sync.Mutex

	mu      sync.Mutex
	current string
	subs    map[int]func(string)
	nextSub int

	closeOnce sync.Once
	done      chan struct{}
}

// DialRemote connects to a location peer and starts consuming its
// pushes. The host's location is "/" until the first frame arrives.
func DialRemote(ctx context.Context, cfg RemoteConfig) (*RemoteHost, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, cfg.URL, cfg.Header)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &RemoteHost{
		conn:    conn,
		id:      uuid.NewString(),
		logger:  logger,
		current: "/",
		subs:    make(map[int]func(string)),
		done:    make(chan struct{}),
	}

	if err := h.writeFrame(RemoteFrame{Type: frameHello, Client: h.id}); err != nil {
		conn.Close()
		return nil, err
	}

	go h.readLoop()
	return h, nil
}

// ID returns the client id announced to the peer.
func (h *RemoteHost) ID() string {
	return h.id
}

// Binding implements Host. Only ModePath is served.
func (h *RemoteHost) Binding(mode Mode) (Binding, error) {
	if mode != ModePath {
		return nil, ErrModeUnsupported
	}
	return &remoteBinding{host: h}, nil
}

// Close shuts the connection down. Subscribers receive no further
// updates.
func (h *RemoteHost) Close() error {
	var err error
	h.closeOnce.Do(func() {
		h.writeMu.Lock()
		h.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		h.writeMu.Unlock()
		err = h.conn.Close()
	})
	return err
}

// Done is closed when the read loop exits.
func (h *RemoteHost) Done() <-chan struct{} {
	return h.done
}

func (h *RemoteHost) readLoop() {
	defer close(h.done)

	for {
		var frame RemoteFrame
		if err := h.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				h.logger.Error("remote location host: read failed", "client", h.id, "err", err)
			}
			return
		}

		if frame.Type != frameLocation {
			continue
		}
		h.setCurrent(frame.Path)
	}
}

func (h *RemoteHost) setCurrent(path string) {
	h.mu.Lock()
	h.current = path
	subs := make([]func(string), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.Unlock()

	for _, fn := range subs {
		fn(path)
	}
}

func (h *RemoteHost) writeFrame(frame RemoteFrame) error {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	return h.conn.WriteJSON(frame)
}

func (h *RemoteHost) navigate(path string, replace bool) {
	err := h.writeFrame(RemoteFrame{
		Type:    frameNavigate,
		Path:    path,
		Client:  h.id,
		Replace: replace,
	})
	if err != nil {
		h.logger.Error("remote location host: navigate failed", "client", h.id, "path", path, "err", err)
	}
}

// remoteBinding is the ModePath view over a RemoteHost.
type remoteBinding struct {
	host *RemoteHost
}

func (b *remoteBinding) Current() string {
	b.host.mu.Lock()
	defer b.host.mu.Unlock()
	return b.host.current
}

func (b *remoteBinding) Push(path string) {
	b.host.navigate(path, false)
}

func (b *remoteBinding) Replace(path string) {
	b.host.navigate(path, true)
}

func (b *remoteBinding) Subscribe(fn func(string)) func() {
	b.host.mu.Lock()
	id := b.host.nextSub
	b.host.nextSub++
	b.host.subs[id] = fn
	b.host.mu.Unlock()

	return func() {
		b.host.mu.Lock()
		delete(b.host.subs, id)
		b.host.mu.Unlock()
	}
}
