// Package net implements the LAN share layer: a websocket hub on the host
// that pushes flattened board frames, mDNS discovery, and the viewer-side
// client. It never feeds anything back into the drawing engine.
package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// viewerPage is served at / so a plain browser can watch the board too.
const viewerPage = `<!DOCTYPE html>
<html>
<head><title>SketchPad</title></head>
<body style="margin:0;background:#333">
<img id="board" style="max-width:100vw;max-height:100vh;display:block;margin:auto">
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.binaryType = "blob";
ws.onmessage = (ev) => {
  const img = document.getElementById("board");
  const url = URL.createObjectURL(ev.data);
  img.onload = () => URL.revokeObjectURL(url);
  img.src = url;
};
</script>
</body>
</html>`

// Hub fans board frames out to every connected viewer. Frames flow one way,
// host to viewers.
type Hub struct {
	sessionID string
	upgrader  websocket.Upgrader

	mu      sync.Mutex
	viewers map[*websocket.Conn]bool
	latest  []byte // most recent frame, replayed to newly connected viewers
}

func NewHub() *Hub {
	return &Hub{
		sessionID: uuid.NewString(),
		upgrader: websocket.Upgrader{
			// Viewers on the LAN connect from arbitrary origins.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		viewers: make(map[*websocket.Conn]bool),
	}
}

// SessionID identifies this share session in logs and status lines.
func (h *Hub) SessionID() string {
	return h.sessionID
}

// ViewerCount returns the number of connected viewers.
func (h *Hub) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Broadcast stores frame as the latest board state and pushes it to every
// connected viewer. Viewers whose connection fails are dropped.
func (h *Hub) Broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = frame
	for conn := range h.viewers {
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			log.Printf("[share] dropping viewer %s: %v", conn.RemoteAddr(), err)
			conn.Close()
			delete(h.viewers, conn)
		}
	}
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[share] upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}

	h.mu.Lock()
	h.viewers[conn] = true
	if h.latest != nil {
		if err := conn.WriteMessage(websocket.BinaryMessage, h.latest); err != nil {
			log.Printf("[share] initial frame to %s: %v", conn.RemoteAddr(), err)
		}
	}
	h.mu.Unlock()
	log.Printf("[share] viewer connected from %s", conn.RemoteAddr())

	// Viewers send nothing; the read loop just notices the disconnect.
	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.viewers, conn)
			h.mu.Unlock()
			conn.Close()
			log.Printf("[share] viewer %s disconnected", conn.RemoteAddr())
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Handler returns the share server's HTTP routes: the browser viewer page
// at / and the frame stream at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, viewerPage)
	})
	mux.HandleFunc("/ws", h.handleWS)
	return mux
}

// Serve runs the share server. It blocks until the listener fails.
func (h *Hub) Serve(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("[share] listening on %s", addr)
	return http.ListenAndServe(addr, h.Handler())
}
