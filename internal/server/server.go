// Package server provides the HTTP REST API for the audit service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/ourgorithm/seo-audit/internal/db"
	"github.com/ourgorithm/seo-audit/internal/pipeline"
	"github.com/ourgorithm/seo-audit/internal/retrieval"
	"github.com/ourgorithm/seo-audit/internal/types"
)

// auditWriteTimeout must exceed a fully exhausted retrieval walk so a slow
// relay chain cannot sever the connection of an audit run mid-handler:
// 4 URL variants through 4 relays at the 12 second per-attempt timeout is
// 192 seconds before the handler even starts writing.
const auditWriteTimeout = 240 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	runner      *pipeline.Runner
	orgID       uuid.UUID
	notifyEmail string
	branding    types.Branding
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	// OrgID scopes every site operation. The API carries no
	// authentication, so the organization is fixed per process.
	OrgID       uuid.UUID
	Relays      []retrieval.Relay
	NotifyEmail string
	Branding    types.Branding
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	opts := retrieval.DefaultOptions()
	if len(cfg.Relays) > 0 {
		opts.Relays = cfg.Relays
	}

	s := &Server{
		db:          database,
		runner:      pipeline.NewRunner(retrieval.NewFetcher(opts)),
		orgID:       cfg.OrgID,
		notifyEmail: cfg.NotifyEmail,
		branding:    cfg.Branding,
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Site CRUD endpoints
	mux.HandleFunc("GET /sites", s.handleListSites)
	mux.HandleFunc("POST /sites", s.handleCreateSite)
	mux.HandleFunc("PUT /sites/{id}", s.handleUpdateSite)
	mux.HandleFunc("DELETE /sites/{id}", s.handleDeleteSite)

	// Audit endpoints
	mux.HandleFunc("POST /sites/{id}/audit", s.handleRunAudit)
	mux.HandleFunc("GET /sites/{id}/audit", s.handleGetLatestAudit)
	mux.HandleFunc("GET /sites/{id}/report", s.handleGetReport)

	// Sprint request endpoint
	mux.HandleFunc("POST /sites/{id}/sprint-requests", s.handleCreateSprintRequest)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: auditWriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// sitePathID parses the {id} path value, writing a 400 on failure.
func (s *Server) sitePathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	siteID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid site ID")
		return uuid.Nil, false
	}
	return siteID, true
}
