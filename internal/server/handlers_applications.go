package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/HoneyNutz/AI-Job-Coach/internal/db"
	"github.com/HoneyNutz/AI-Job-Coach/internal/server/middleware"
)

type createApplicationRequest struct {
	Company    string     `json:"company"`
	RoleTitle  string     `json:"role_title"`
	JobURL     string     `json:"job_url,omitempty"`
	Status     string     `json:"status,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	AnalysisID *uuid.UUID `json:"analysis_id,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

// handleCreateApplication adds a job application to the tracker.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Company) == "" || strings.TrimSpace(req.RoleTitle) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Both company and role_title are required")
		return
	}
	if req.Status != "" && !db.ValidStatus(req.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application status")
		return
	}

	input := &db.ApplicationInput{
		Company:    req.Company,
		RoleTitle:  req.RoleTitle,
		JobURL:     req.JobURL,
		Status:     req.Status,
		Notes:      req.Notes,
		AnalysisID: req.AnalysisID,
	}
	if userID, err := middleware.GetUserID(r); err == nil {
		input.UserID = &userID
	}

	app, err := s.deps.Store.CreateApplication(r.Context(), input)
	if err != nil {
		log.Printf("Error creating application: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create application")
		return
	}

	s.jsonResponse(w, http.StatusCreated, app)
}

// handleListApplications returns tracked applications, newest first.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	filters := db.ApplicationFilters{
		Company: r.URL.Query().Get("company"),
		Status:  r.URL.Query().Get("status"),
	}
	if filters.Status != "" && !db.ValidStatus(filters.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application status")
		return
	}

	apps, err := s.deps.Store.ListApplications(r.Context(), filters)
	if err != nil {
		log.Printf("Error listing applications: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applications": apps,
		"count":        len(apps),
	})
}

// handleGetApplication returns a single tracked application.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, err := s.deps.Store.GetApplication(r.Context(), id)
	if err != nil {
		log.Printf("Error getting application: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get application")
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, app)
}

// handleUpdateApplicationStatus moves an application through the
// pipeline stages.
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !db.ValidStatus(req.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application status")
		return
	}

	app, err := s.deps.Store.UpdateApplicationStatus(r.Context(), id, req.Status)
	if err != nil {
		log.Printf("Error updating application status: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update application status")
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, app)
}

// handleUpdateApplicationNotes replaces the notes on an application.
func (s *Server) handleUpdateApplicationNotes(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req updateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.deps.Store.UpdateApplicationNotes(r.Context(), id, req.Notes); err != nil {
		log.Printf("Error updating application notes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update application notes")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteApplication removes an application from the tracker.
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	if err := s.deps.Store.DeleteApplication(r.Context(), id); err != nil {
		log.Printf("Error deleting application: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete application")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
