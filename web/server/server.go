package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

var logger = log.New("server")

// Options configures the preview server
type Options struct {
	TextureDir string // Passed to scene constructors
	StaticDir  string // Optional directory served at "/"
	NumWorkers int    // Render workers per request (0 = CPU count)
}

// Server streams progressive renders to websocket clients
type Server struct {
	opts Options
	mux  *http.ServeMux
}

// NewServer creates a new web server
func NewServer(opts Options) *Server {
	s := &Server{opts: opts, mux: http.NewServeMux()}

	if opts.StaticDir != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(opts.StaticDir)))
	}
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/ws/render", s.handleRender)
	return s
}

// Handler returns the HTTP handler serving every endpoint
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving on addr
func (s *Server) ListenAndServe(addr string) error {
	logger.Noticef("starting web server on %s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the registered scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.List())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("encoding response: %v", err)
	}
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	value := values.Get(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, value)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got %d", key, min, max, parsed)
	}
	return parsed, nil
}
