package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/landmark"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// TransformHub broadcasts the rendered transform to WebSocket clients. The
// render loop calls Broadcast once per tick.
type TransformHub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewTransformHub creates an empty hub.
func NewTransformHub() *TransformHub {
	return &TransformHub{clients: make(map[*websocket.Conn]bool)}
}

// ServeHTTP handles WebSocket upgrade requests on /api/transform.
func (h *TransformHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends the transform to all connected clients. Safe to call with
// no clients connected.
func (h *TransformHub) Broadcast(t engine.RenderedTransform) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	msg, err := json.Marshal(map[string]any{
		"transform": t,
		"timestamp": time.Now().UnixMilli(),
	})
	if err != nil {
		return
	}

	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// HandsHandler accepts hand frames over WebSocket as an alternative to the
// built-in camera pipeline. Each text message is a JSON HandFrame.
type HandsHandler struct {
	engine *engine.Engine
}

// NewHandsHandler creates a HandsHandler feeding the given engine.
func NewHandsHandler(e *engine.Engine) *HandsHandler {
	return &HandsHandler{engine: e}
}

// ServeHTTP handles WebSocket upgrade requests on /api/hands.
func (h *HandsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var frame landmark.HandFrame
		if err := json.Unmarshal(msg, &frame); err != nil {
			log.Printf("invalid hand frame: %v", err)
			continue
		}
		h.engine.SubmitFrame(frame)
	}
}
