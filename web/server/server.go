// Package server exposes the renderer over HTTP: a health endpoint and
// a websocket endpoint that streams tiles to the client as they finish,
// so a browser can watch the image fill in.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hackmad/raytracing-series/pkg/core"
	"github.com/hackmad/raytracing-series/pkg/renderer"
	"github.com/hackmad/raytracing-series/pkg/scene"
)

// Server handles render requests over websockets
type Server struct {
	opts     renderer.Options
	log      core.Logger
	upgrader websocket.Upgrader
}

// New creates a server whose renders default to the given options.
// Clients may override scene, size and sample count per request.
func New(opts renderer.Options, log core.Logger) *Server {
	return &Server{
		opts: opts,
		log:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Rendering is a local tool; accept any origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the server's route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// ListenAndServe runs the server on the given address
func (s *Server) ListenAndServe(addr string) error {
	if s.log != nil {
		s.log.Printf("listening on %s", addr)
	}
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// tileBounds mirrors renderer.TileBounds for the wire
type tileBounds struct {
	XMin int `json:"xMin"`
	YMin int `json:"yMin"`
	XMax int `json:"xMax"`
	YMax int `json:"yMax"`
}

// tileMessage carries one finished tile. RGBA is base64 encoded by the
// JSON marshaller.
type tileMessage struct {
	Type   string     `json:"type"`
	Bounds tileBounds `json:"bounds"`
	RGBA   []byte     `json:"rgba"`
}

// completeMessage signals the end of a render
type completeMessage struct {
	Type      string `json:"type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// errorMessage reports a failed render request
type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if s.log != nil {
			s.log.Printf("websocket upgrade failed: %v", err)
		}
		return
	}
	defer conn.Close()

	opts, sceneName := s.requestOptions(r)

	sc, err := scene.New(sceneName, float64(opts.Width)/float64(opts.Height), true,
		core.NewSeededSampler(opts.Seed))
	if err != nil {
		conn.WriteJSON(errorMessage{Type: "error", Error: err.Error()})
		return
	}

	// Gorilla connections allow a single concurrent writer, so tiles
	// from all render workers are funnelled through one goroutine. After
	// a write fails (client gone) the goroutine keeps draining the
	// channel until the render closes it; exiting early would block the
	// tile producers and wedge the render's workers forever.
	messages := make(chan interface{}, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		clientGone := false
		for msg := range messages {
			if clientGone {
				continue
			}
			if err := conn.WriteJSON(msg); err != nil {
				if s.log != nil {
					s.log.Printf("websocket write failed: %v", err)
				}
				clientGone = true
			}
		}
	}()

	rend := renderer.New(opts, s.log)
	rend.OnTile(func(bounds renderer.TileBounds, rgba []byte) {
		messages <- tileMessage{
			Type: "tile",
			Bounds: tileBounds{
				XMin: bounds.XMin, YMin: bounds.YMin,
				XMax: bounds.XMax, YMax: bounds.YMax,
			},
			RGBA: rgba,
		}
	})

	start := time.Now()
	if _, err := rend.Render(sc); err != nil {
		messages <- errorMessage{Type: "error", Error: err.Error()}
	} else {
		messages <- completeMessage{
			Type:      "complete",
			Width:     opts.Width,
			Height:    opts.Height,
			ElapsedMs: time.Since(start).Milliseconds(),
		}
	}

	close(messages)
	<-done
}

// requestOptions merges query parameter overrides into the defaults
func (s *Server) requestOptions(r *http.Request) (renderer.Options, string) {
	opts := s.opts
	q := r.URL.Query()

	sceneName := q.Get("scene")
	if sceneName == "" {
		sceneName = "cornell-box"
	}
	if v, err := strconv.Atoi(q.Get("width")); err == nil && v > 0 {
		opts.Width = v
	}
	if v, err := strconv.Atoi(q.Get("height")); err == nil && v > 0 {
		opts.Height = v
	}
	if v, err := strconv.Atoi(q.Get("samples")); err == nil && v > 0 {
		opts.SamplesPerPixel = v
	}
	if v, err := strconv.ParseInt(q.Get("seed"), 10, 64); err == nil {
		opts.Seed = v
	}
	return opts, sceneName
}

// Addr formats a listen address from a port number
func Addr(port int) string {
	return fmt.Sprintf(":%d", port)
}
