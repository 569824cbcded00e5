package server

import (
	"encoding/json"
	"net/http"

	"github.com/ourgorithm/seo-audit/internal/retrieval"
	"github.com/ourgorithm/seo-audit/internal/types"
)

// handleListSites lists the organization's sites, newest first
func (s *Server) handleListSites(w http.ResponseWriter, r *http.Request) {
	sites, err := s.db.ListSites(r.Context(), s.orgID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"sites": sites,
		"count": len(sites),
	})
}

// handleCreateSite registers a domain for tracking
func (s *Server) handleCreateSite(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req.Domain = retrieval.Normalize(req.Domain)
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	siteID, err := s.db.CreateSite(r.Context(), s.orgID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	site, err := s.db.GetSite(r.Context(), siteID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, site)
}

// handleUpdateSite edits a site's business metadata
func (s *Server) handleUpdateSite(w http.ResponseWriter, r *http.Request) {
	siteID, ok := s.sitePathID(w, r)
	if !ok {
		return
	}

	var req types.UpdateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.db.UpdateSite(r.Context(), siteID, &req); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
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

	s.jsonResponse(w, http.StatusOK, site)
}

// handleDeleteSite removes a site
func (s *Server) handleDeleteSite(w http.ResponseWriter, r *http.Request) {
	siteID, ok := s.sitePathID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteSite(r.Context(), siteID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
