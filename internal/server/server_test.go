package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourgorithm/seo-audit/internal/retrieval"
)

func TestHealthEndpoint(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestJSONResponse(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())
}

func TestErrorResponse(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()

	s.errorResponse(w, http.StatusNotFound, "Site not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Site not found"}`, w.Body.String())
}

func TestSitePathID_Invalid(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/sites/not-a-uuid/audit", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	_, ok := s.sitePathID(w, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid site ID")
}

func TestAuditWriteTimeoutCoversExhaustedRetrieval(t *testing.T) {
	variants := len(retrieval.CandidateURLs("example.com"))
	relays := len(retrieval.DefaultRelays())
	worstCase := time.Duration(variants*relays) * retrieval.DefaultTimeout

	assert.Greater(t, auditWriteTimeout, worstCase)
}

func TestWithCORS(t *testing.T) {
	s := &Server{}
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/sites", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}
