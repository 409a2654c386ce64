package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hackmad/raytracing-series/pkg/renderer"
)

func testServer() *Server {
	return New(renderer.Options{
		Width:           16,
		Height:          16,
		SamplesPerPixel: 1,
		MaxDepth:        1,
		TileSize:        8,
		Threads:         2,
		Seed:            42,
	}, nil)
}

// wireMessage is the union of every message type the server sends
type wireMessage struct {
	Type   string     `json:"type"`
	Bounds tileBounds `json:"bounds"`
	RGBA   []byte     `json:"rgba"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Error  string     `json:"error"`
}

func TestHealthEndpoint(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func dialRender(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/render" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func TestRenderStreamsTiles(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	conn := dialRender(t, srv, "?scene=single-sphere")
	defer conn.Close()

	pixels := 0
	var complete *wireMessage
	for complete == nil {
		var msg wireMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatal(err)
		}
		switch msg.Type {
		case "tile":
			w := msg.Bounds.XMax - msg.Bounds.XMin + 1
			h := msg.Bounds.YMax - msg.Bounds.YMin + 1
			if len(msg.RGBA) != w*h*4 {
				t.Fatalf("tile %+v carries %d bytes", msg.Bounds, len(msg.RGBA))
			}
			pixels += w * h
		case "complete":
			complete = &msg
		case "error":
			t.Fatalf("render failed: %s", msg.Error)
		default:
			t.Fatalf("unknown message type %q", msg.Type)
		}
	}

	if pixels != 16*16 {
		t.Errorf("tiles covered %d pixels, want %d", pixels, 16*16)
	}
	if complete.Width != 16 || complete.Height != 16 {
		t.Errorf("complete = %dx%d, want 16x16", complete.Width, complete.Height)
	}
}

func TestRenderQueryOverrides(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	conn := dialRender(t, srv, "?scene=single-sphere&width=8&height=8")
	defer conn.Close()

	for {
		var msg wireMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatal(err)
		}
		if msg.Type == "error" {
			t.Fatalf("render failed: %s", msg.Error)
		}
		if msg.Type == "complete" {
			if msg.Width != 8 || msg.Height != 8 {
				t.Errorf("complete = %dx%d, want 8x8", msg.Width, msg.Height)
			}
			return
		}
	}
}

// memoryLog collects log lines for inspection from other goroutines
type memoryLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *memoryLog) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *memoryLog) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestRenderFinishesAfterClientDisconnect(t *testing.T) {
	// Far more tiles than the outgoing message buffer holds, so the
	// workers keep producing long after the client is gone. The render
	// must still run to completion rather than leak blocked workers.
	log := &memoryLog{}
	srv := httptest.NewServer(New(renderer.Options{
		Width:           96,
		Height:          96,
		SamplesPerPixel: 1,
		MaxDepth:        1,
		TileSize:        4,
		Threads:         2,
		Seed:            42,
	}, log).Handler())
	defer srv.Close()

	conn := dialRender(t, srv, "?scene=single-sphere")
	conn.Close()

	deadline := time.Now().Add(10 * time.Second)
	for !log.contains("render finished") {
		if time.Now().After(deadline) {
			t.Fatal("render did not finish after the client disconnected")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRenderUnknownScene(t *testing.T) {
	srv := httptest.NewServer(testServer().Handler())
	defer srv.Close()

	conn := dialRender(t, srv, "?scene=no-such-scene")
	defer conn.Close()

	var msg wireMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != "error" {
		t.Fatalf("message type = %q, want error", msg.Type)
	}
}
