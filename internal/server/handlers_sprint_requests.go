package server

import (
	"encoding/json"
	"net/http"

	"github.com/ourgorithm/seo-audit/internal/notify"
	"github.com/ourgorithm/seo-audit/internal/types"
)

// handleCreateSprintRequest records a remediation lead for a site and
// returns the composed mailto notification for the caller's environment
// to open.
func (s *Server) handleCreateSprintRequest(w http.ResponseWriter, r *http.Request) {
	siteID, ok := s.sitePathID(w, r)
	if !ok {
		return
	}

	var input types.SprintRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := input.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
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

	tier := types.TierNotReady
	var blockers []string
	audit, err := s.db.GetLatestAudit(r.Context(), siteID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if audit != nil {
		if audit.DirectoryReadiness != "" {
			tier = audit.DirectoryReadiness
		}
		blockers = audit.DirectoryBlockers
	}

	requestID, err := s.db.InsertSprintRequest(r.Context(), siteID, s.orgID, &input, tier, blockers)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	msg := notify.ComposeSprintRequest(s.notifyEmail, site.Domain, types.SprintRequest{
		ID:            requestID,
		SiteID:        siteID,
		Email:         input.Email,
		Phone:         input.Phone,
		ReadinessTier: tier,
		Blockers:      blockers,
	})

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":     requestID,
		"mailto": notify.MailtoURL(msg),
	})
}
