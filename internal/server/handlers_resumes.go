package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/jobdesc"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/errgroup"
)

// resumeID parses the {id} path segment.
func resumeID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// authedUser extracts the authenticated user, responding 401 on failure.
func (s *Server) authedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// fetchOwnedResume loads one of the user's resumes, responding 404/500
// itself on failure.
func (s *Server) fetchOwnedResume(w http.ResponseWriter, r *http.Request, userID, id uuid.UUID) (*store.ResumeRecord, bool) {
	rec, err := s.store.FetchLatestOrByID(r.Context(), userID, &id)
	if err != nil {
		log.Printf("Error fetching resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch resume")
		return nil, false
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrResumeNotFound{ResumeID: id}).Error())
		return nil, false
	}
	return rec, true
}

// saveResumeRequest is the body for creating or updating a resume.
type saveResumeRequest struct {
	Title    string          `json:"title"`
	Document json.RawMessage `json:"document"`
}

// handleListResumes returns summaries of the user's resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	resumes, err := s.store.ListResumes(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing resumes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}
	if resumes == nil {
		resumes = []store.ResumeSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleCreateResume creates a new resume for the user.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req saveResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc := types.NewResumeDocument()
	if len(req.Document) > 0 {
		if err := schemas.ValidateDocument(req.Document); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		doc = types.DecodeDocument(req.Document)
	}
	if req.Title == "" {
		req.Title = "Untitled resume"
	}

	saved, err := s.store.Upsert(r.Context(), &store.ResumeRecord{
		UserID:   userID,
		Title:    req.Title,
		Document: doc,
	})
	if err != nil {
		log.Printf("Error creating resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, saved)
}

// handleGetResume returns one resume with its full document.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, err := resumeID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	rec, ok := s.fetchOwnedResume(w, r, userID, id)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleUpdateResume replaces a resume's title and document.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, err := resumeID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	var req saveResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, ok := s.fetchOwnedResume(w, r, userID, id)
	if !ok {
		return
	}

	if req.Title != "" {
		rec.Title = req.Title
	}
	if len(req.Document) > 0 {
		if err := schemas.ValidateDocument(req.Document); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		rec.Document = types.DecodeDocument(req.Document)
	}

	saved, err := s.store.Upsert(r.Context(), rec)
	if err != nil {
		log.Printf("Error updating resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, saved)
}

// handleDeleteResume removes one resume.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, err := resumeID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	if _, ok := s.fetchOwnedResume(w, r, userID, id); !ok {
		return
	}

	if err := s.store.DeleteResume(r.Context(), userID, id); err != nil {
		log.Printf("Error deleting resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Resume deleted"})
}

// handleImportResume accepts a raw resume document, validates it against
// the document schema, and stores it as a new resume.
func (s *Server) handleImportResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateDocument(body); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  "document validation failed",
				"fields": ve.Errors,
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid document JSON")
		return
	}

	doc := types.DecodeDocument(body)
	title := doc.Personal.FullName
	if title == "" {
		title = "Imported resume"
	}

	saved, err := s.store.Upsert(r.Context(), &store.ResumeRecord{
		UserID:   userID,
		Title:    title,
		Document: doc,
	})
	if err != nil {
		log.Printf("Error importing resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to import resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, saved)
}

// exportRequest is the optional body for the export endpoint.
type exportRequest struct {
	JobURL    string `json:"jobUrl"`
	JobText   string `json:"jobText"`
	Alignment string `json:"alignment"`
}

// handleExportResume renders the resume to PDF. When a job URL is given,
// the posting text is fetched concurrently with the resume record and
// embedded for ATS scanners.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, err := resumeID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var rec *store.ResumeRecord
	jobText := req.JobText

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		rec, err = s.store.FetchLatestOrByID(gctx, userID, &id)
		return err
	})
	if jobText == "" && req.JobURL != "" {
		g.Go(func() error {
			var err error
			jobText, err = jobdesc.FetchText(gctx, req.JobURL, s.useBrowser)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("Error preparing export for resume %s: %v", id, err)
		s.errorResponse(w, http.StatusBadGateway, "Failed to prepare export")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrResumeNotFound{ResumeID: id}).Error())
		return
	}

	opts := export.DefaultOptions()
	opts.JobDescription = jobText
	if req.Alignment != "" {
		opts.InterestAlignment = export.ParseAlignment(req.Alignment)
	} else {
		opts.InterestAlignment = s.interestAlign
	}

	result, err := export.Generate(rec.Document, opts)
	if err != nil {
		if errors.Is(err, export.ErrMissingName) {
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("Error exporting resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate document")
		return
	}

	filename := export.Filename(rec.Document.Personal.FullName)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Page-Count", fmt.Sprintf("%d", result.Pages))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.PDF); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// handlePreviewResume returns the HTML approximation of the resume.
func (s *Server) handlePreviewResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, err := resumeID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	rec, ok := s.fetchOwnedResume(w, r, userID, id)
	if !ok {
		return
	}

	html, err := preview.Render(rec.Document)
	if err != nil {
		log.Printf("Error rendering preview for resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
