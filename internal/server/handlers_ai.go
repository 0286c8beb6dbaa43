package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/ai"
	"github.com/jonathan/resume-builder/internal/jobdesc"
)

// generateRequest selects one content generation operation. Kind decides
// which of the remaining fields are read.
type generateRequest struct {
	Kind string `json:"kind"` // summary, skills, courses, enhance

	// summary
	Titles []string `json:"titles,omitempty"`
	Skills []string `json:"skills,omitempty"`
	Years  string   `json:"years,omitempty"`

	// skills and courses
	JobDescription string `json:"jobDescription,omitempty"`
	JobURL         string `json:"jobUrl,omitempty"`
	Degree         string `json:"degree,omitempty"`

	// enhance
	Text string `json:"text,omitempty"`
}

// handleGenerate runs one AI content generation operation. Returns 503
// when the server was started without an API key.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authedUser(w, r); !ok {
		return
	}
	if s.ai == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Content generation is not configured")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Skills and courses accept a job URL in place of pasted text.
	if req.JobDescription == "" && req.JobURL != "" {
		text, err := jobdesc.FetchText(r.Context(), req.JobURL, s.useBrowser)
		if err != nil {
			log.Printf("Error fetching job posting %s: %v", req.JobURL, err)
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting")
			return
		}
		req.JobDescription = text
	}

	switch req.Kind {
	case "summary":
		result, err := s.ai.GenerateSummary(r.Context(), ai.SummaryInput{
			Titles: req.Titles,
			Skills: req.Skills,
			Years:  req.Years,
		})
		s.generateResponse(w, map[string]any{"result": result}, err)

	case "skills":
		if req.JobDescription == "" {
			s.errorResponse(w, http.StatusBadRequest, "jobDescription or jobUrl is required")
			return
		}
		items, err := s.ai.SuggestSkills(r.Context(), req.JobDescription)
		s.generateResponse(w, map[string]any{"items": items}, err)

	case "courses":
		if req.Degree == "" {
			s.errorResponse(w, http.StatusBadRequest, "degree is required")
			return
		}
		items, err := s.ai.SuggestCourses(r.Context(), req.Degree, req.JobDescription)
		s.generateResponse(w, map[string]any{"items": items}, err)

	case "enhance":
		if req.Text == "" {
			s.errorResponse(w, http.StatusBadRequest, "text is required")
			return
		}
		result, err := s.ai.EnhanceText(r.Context(), req.Text)
		s.generateResponse(w, map[string]any{"result": result}, err)

	default:
		s.errorResponse(w, http.StatusBadRequest, "kind must be summary, skills, courses, or enhance")
	}
}

// generateResponse writes the payload, mapping provider outages to 503.
func (s *Server) generateResponse(w http.ResponseWriter, payload map[string]any, err error) {
	if err != nil {
		if errors.Is(err, ai.ErrGenerationUnavailable) {
			s.errorResponse(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, payload)
}
