package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// matchRequest is the body of POST /match.
type matchRequest struct {
	ResumeText string `json:"resume_text"`
	JobQuery   string `json:"job_query"`
}

// handleMatch runs one pipeline execution and returns the delivered record.
// The pipeline never surfaces errors, so the response is always 200 with a
// well-formed record once the request body parses.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		writeError(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	rec := s.pipeline.Run(r.Context(), req.ResumeText, req.JobQuery)
	writeJSON(w, http.StatusOK, rec)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
