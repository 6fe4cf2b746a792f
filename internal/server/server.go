// Package server assembles the HTTP boundary: the health probe, the list
// persistence API, Prometheus metrics and static asset serving.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okozh/shoplist/internal/catalog"
	"github.com/okozh/shoplist/internal/models"
	"github.com/okozh/shoplist/internal/service"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Server holds the handler dependencies.
type Server struct {
	lists     *service.ListService
	staticDir string
}

// New creates a Server backed by the given list service, serving static
// assets from staticDir.
func New(lists *service.ListService, staticDir string) *Server {
	return &Server{lists: lists, staticDir: staticDir}
}

// Handler builds the full request mux with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/lists", s.handleLists)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.Handle("/metrics", promhttp.Handler())

	// Everything else is a static asset.
	mux.HandleFunc("/", s.handleStatic)

	return loggingMiddleware(corsMiddleware(metricsMiddleware(mux)))
}

// handleHealth answers the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"time":    time.Now().Unix(),
		"version": Version,
	})
}

// handleLists mirrors the client's list collection: GET loads the snapshot,
// PUT replaces it.
func (s *Server) handleLists(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		lists, err := s.lists.Load(r.Context())
		if err != nil {
			slog.Error("Failed to load lists", "error", err)
			http.Error(w, "failed to load lists", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, lists)

	case http.MethodPut:
		var lists []models.List
		if err := json.NewDecoder(r.Body).Decode(&lists); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := s.lists.Save(r.Context(), lists); err != nil {
			slog.Error("Failed to save lists", "error", err)
			http.Error(w, "failed to save lists", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleCategories serves the fixed category catalog.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Categories())
}

// handleStatic serves the client assets, falling back to index.html for
// unknown non-API paths. Unknown API paths are a 404.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}

	urlPath := r.URL.Path
	if urlPath == "/" {
		urlPath = "/index.html"
	}

	filePath := filepath.Join(s.staticDir, filepath.Clean(urlPath))
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
		return
	}

	http.ServeFile(w, r, filePath)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
