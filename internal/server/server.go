// Package server provides the HTTP surface of the Mudra engine: command
// ingest, pose presets, and the WebSocket transform feed.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Engine    *engine.Engine
	Store     *store.Store
	Camera    capture.Camera
}

// Server represents the HTTP server for the Mudra application.
type Server struct {
	config    Config
	mux       *http.ServeMux
	transform *TransformHub
	start     time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config:    config,
		mux:       http.NewServeMux(),
		transform: NewTransformHub(),
		start:     time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Engine != nil {
		s.mux.Handle("/api/command", api.NewCommandHandler(s.config.Engine, s.config.Store))
		s.mux.Handle("/api/hands", NewHandsHandler(s.config.Engine))
		s.mux.Handle("/api/transform", s.transform)

		if s.config.Store != nil {
			poseHandler := api.NewPoseHandler(s.config.Engine, s.config.Store)
			s.mux.Handle("/api/poses", poseHandler)
			s.mux.Handle("/api/poses/", poseHandler)
		}
	}

	// Camera preview stream, when a camera is wired in
	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// Transform returns the hub that broadcasts rendered transforms; the render
// loop pushes each tick's output into it.
func (s *Server) Transform() *TransformHub {
	return s.transform
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
