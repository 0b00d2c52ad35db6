package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/pkg/history"
	"github.com/wayfind-dev/wayfind/pkg/manifest"
	"github.com/wayfind-dev/wayfind/pkg/reactive"
	"github.com/wayfind-dev/wayfind/pkg/route"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <manifest>",
		Short: "Run a routing playground for a manifest",
		Long: `Serve loads a route manifest and runs a playground server:

  GET  /match?path=...     resolve a path against the manifest
  POST /navigate?path=...  move the playground location
  GET  /location           read the current location
  GET  /ws                 live location feed (RemoteHost peers)
  GET  /metrics            Prometheus metrics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			if err := m.Validate(); err != nil {
				return err
			}
			return runPlayground(addr, m)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8990", "listen address")
	return cmd
}

// playground wires a manifest router to an in-memory host and fans the
// live location out to WebSocket peers speaking the RemoteHost
// protocol.
type playground struct {
	logger *slog.Logger
	router *route.Router[string]
	source *history.Source
	outlet *route.Outlet[string]

	mu      sync.Mutex
	clients map[string]*wsClient
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) write(frame history.RemoteFrame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(frame)
}

func runPlayground(addr string, m *manifest.Manifest) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	host := history.NewMemoryHost("/")
	source, err := history.NewSource(host, history.ModePath)
	if err != nil {
		return err
	}

	p := &playground{
		logger:  logger,
		router:  m.Router(),
		source:  source,
		clients: make(map[string]*wsClient),
	}

	metrics := route.NewMetricsObserver()
	p.outlet = route.Bind(p.router, source,
		route.WithObserver(metrics),
		route.WithObserver(route.ObserverFunc(func(ev route.Evaluation) {
			logger.Info("evaluated", "location", ev.Location, "pattern", ev.Pattern, "matched", ev.Matched)
		})),
	)

	// Fan location changes out to connected peers.
	broadcast := reactive.NewEffect(func() reactive.Cleanup {
		loc := source.Location().Get()
		p.mu.Lock()
		clients := make([]*wsClient, 0, len(p.clients))
		for _, c := range p.clients {
			clients = append(clients, c)
		}
		p.mu.Unlock()

		for _, c := range clients {
			c.write(history.RemoteFrame{Type: "location", Path: loc})
		}
		return nil
	})
	defer broadcast.Dispose()

	r := chi.NewRouter()
	r.Get("/match", p.handleMatch)
	r.Post("/navigate", p.handleNavigate)
	r.Get("/location", p.handleLocation)
	r.Get("/ws", p.handleWS)
	r.Handle("/metrics", promhttp.Handler())

	logger.Info("playground listening", "addr", addr, "routes", p.router.Len())
	return http.ListenAndServe(addr, r)
}

// matchResponse is the /match payload.
type matchResponse struct {
	Path    string            `json:"path"`
	Route   string            `json:"route,omitempty"`
	Pattern string            `json:"pattern,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
	Rest    string            `json:"rest,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func (p *playground) handleMatch(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, matchResponse{Error: "missing path parameter"})
		return
	}

	m, err := p.router.Match(path)
	if err != nil {
		writeJSON(w, http.StatusNotFound, matchResponse{Path: path, Error: err.Error()})
		return
	}

	ctx := route.Descend(route.NewContext(reactive.NewSignal(path), nil), m.MatchedPath, m.Rest, m.Params)
	writeJSON(w, http.StatusOK, matchResponse{
		Path:    path,
		Route:   m.Handler(ctx),
		Pattern: m.Pattern.Raw,
		Params:  m.Params,
		Rest:    m.Rest,
	})
}

func (p *playground) handleNavigate(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, matchResponse{Error: "missing path parameter"})
		return
	}

	p.source.Navigate(path)
	p.handleLocation(w, r)
}

func (p *playground) handleLocation(w http.ResponseWriter, r *http.Request) {
	loc := p.source.Location().Peek()
	resp := matchResponse{Path: loc, Route: p.outlet.Result().Peek()}
	if err := p.outlet.Err().Peek(); err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

var upgrader = websocket.Upgrader{
	// The playground is a local dev tool, any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (p *playground) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.logger.Error("websocket upgrade failed", "err", err)
		return
	}

	id := uuid.NewString()
	client := &wsClient{conn: conn}

	p.mu.Lock()
	p.clients[id] = client
	p.mu.Unlock()

	p.logger.Info("peer connected", "client", id)
	client.write(history.RemoteFrame{Type: "location", Path: p.source.Location().Peek()})

	defer func() {
		p.mu.Lock()
		delete(p.clients, id)
		p.mu.Unlock()
		conn.Close()
		p.logger.Info("peer disconnected", "client", id)
	}()

	for {
		var frame history.RemoteFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				p.logger.Error("peer read failed", "client", id, "err", err)
			}
			return
		}

		switch frame.Type {
		case "hello":
			client.write(history.RemoteFrame{Type: "location", Path: p.source.Location().Peek()})
		case "navigate":
			if frame.Replace {
				p.source.Replace(frame.Path)
			} else {
				p.source.Navigate(frame.Path)
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
