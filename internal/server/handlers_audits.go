package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/ourgorithm/seo-audit/internal/report"
	"github.com/ourgorithm/seo-audit/internal/retrieval"
)

// handleRunAudit runs a full audit for the site's domain and persists the
// result. The in-memory result is still returned when persistence fails so
// the caller is never blocked by storage trouble.
func (s *Server) handleRunAudit(w http.ResponseWriter, r *http.Request) {
	siteID, ok := s.sitePathID(w, r)
	if !ok {
		return
	}

	site, err := s.db.GetSite(r.Context(), siteID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if site == nil {
		s.errorResponse(w, http.StatusNotFound, "Site not found")
		return
	}

	result, err := s.runner.Run(r.Context(), site.Domain)
	if err != nil {
		var retrievalErr *retrieval.Error
		if errors.As(err, &retrievalErr) {
			status := "unreachable"
			if retrievalErr.NoPresence {
				status = "no_presence"
			}
			s.jsonResponse(w, http.StatusBadGateway, map[string]any{
				"error":        retrievalErr.Message,
				"status":       status,
				"last_attempt": retrievalErr.LastAttempt,
			})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Audit failed: "+err.Error())
		return
	}

	persisted := true
	auditID, err := s.db.InsertAudit(r.Context(), siteID, result)
	if err != nil {
		log.Printf("Failed to persist audit for %s: %v", site.Domain, err)
		persisted = false
	} else if err := s.db.UpdateSiteAuditCache(r.Context(), siteID, auditID, result); err != nil {
		log.Printf("Failed to update audit cache for %s: %v", site.Domain, err)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"audit":     result,
		"persisted": persisted,
	})
}

// handleGetLatestAudit returns the most recent persisted audit for a site
func (s *Server) handleGetLatestAudit(w http.ResponseWriter, r *http.Request) {
	siteID, ok := s.sitePathID(w, r)
	if !ok {
		return
	}

	audit, err := s.db.GetLatestAudit(r.Context(), siteID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if audit == nil {
		s.errorResponse(w, http.StatusNotFound, "No audits recorded for this site")
		return
	}

	s.jsonResponse(w, http.StatusOK, audit)
}

// handleGetReport renders the branded HTML report for a site's latest audit.
// A site with no audit history still gets a report with safe defaults.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	siteID, ok := s.sitePathID(w, r)
	if !ok {
		return
	}

	site, err := s.db.GetSite(r.Context(), siteID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if site == nil {
		s.errorResponse(w, http.StatusNotFound, "Site not found")
		return
	}

	audit, err := s.db.GetLatestAudit(r.Context(), siteID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	html, err := report.Render(site, report.ResultFromRecord(site, audit), s.branding)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Report rendering failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("Error writing report response: %v", err)
	}
}
