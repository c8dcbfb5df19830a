// Package api provides the HTTP server for browsing a generated report
// document: metadata, whole-document reads, and per-bucket reads.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aaxis-ai/reportrunner/internal/domain"
)

// Server serves a generated report document over HTTP.
type Server struct {
	doc            *domain.Document
	metricsEnabled bool
}

// NewServer creates a server over the given document.
func NewServer(doc *domain.Document) *Server {
	return &Server{doc: doc}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Route("/api/report", func(r chi.Router) {
		r.Get("/", s.handleReport)
		r.Get("/meta", s.handleMeta)
		r.Get("/buckets/{bucket}", s.handleBucket)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// handleReport returns the whole document.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.doc)
}

// handleMeta returns run metadata plus per-bucket block counts.
func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	counts := make(map[string]int, len(domain.Buckets()))
	for _, b := range domain.Buckets() {
		m, _ := s.doc.BucketMap(b)
		counts[string(b)] = len(m)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"metadata": s.doc.Metadata,
		"buckets":  counts,
	})
}

// handleBucket returns a single bucket's blocks.
func (s *Server) handleBucket(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "bucket")
	m, ok := s.doc.BucketMap(domain.Bucket(name))
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("%v: %s", domain.ErrUnknownBucket, name))
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
