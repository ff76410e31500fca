package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/HoneyNutz/AI-Job-Coach/internal/db"
	"github.com/HoneyNutz/AI-Job-Coach/internal/server/middleware"
	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

// analyzeRequest is the shared payload for the analysis endpoints.
type analyzeRequest struct {
	Resume *types.Resume         `json:"resume"`
	Job    *types.JobDescription `json:"job"`
	// Save controls whether the run is persisted to the analysis history.
	Save bool `json:"save,omitempty"`
}

type analyzeResponse struct {
	AnalysisID *uuid.UUID            `json:"analysis_id,omitempty"`
	Report     *types.AnalysisReport `json:"report"`
}

type skillGapResponse struct {
	AnalysisID *uuid.UUID            `json:"analysis_id,omitempty"`
	Report     *types.SkillGapReport `json:"report"`
}

type blueprintResponse struct {
	AnalysisID *uuid.UUID       `json:"analysis_id,omitempty"`
	Blueprint  *types.Blueprint `json:"blueprint"`
}

func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (*analyzeRequest, bool) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if req.Resume == nil || req.Job == nil {
		s.errorResponse(w, http.StatusBadRequest, "Both resume and job are required")
		return nil, false
	}
	return &req, true
}

// saveAnalysis persists an analysis run and one report. Persistence
// failures are logged but never fail the request, the report was
// already produced.
func (s *Server) saveAnalysis(r *http.Request, req *analyzeRequest, overallScore, kind string, content any) *uuid.UUID {
	if !req.Save {
		return nil
	}

	input := &db.AnalysisInput{
		Company:      req.Job.HiringOrganization,
		RoleTitle:    req.Job.Name,
		JobURL:       req.Job.URL,
		OverallScore: overallScore,
	}
	if userID, err := middleware.GetUserID(r); err == nil {
		input.UserID = &userID
	}

	analysisID, err := s.deps.Store.CreateAnalysis(r.Context(), input)
	if err != nil {
		log.Printf("Error saving analysis: %v", err)
		return nil
	}
	if kind != "" {
		if err := s.deps.Store.SaveReport(r.Context(), analysisID, kind, content); err != nil {
			log.Printf("Error saving %s report: %v", kind, err)
		}
	}
	return &analysisID
}

// handleAnalyze runs the semantic requirement analysis.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	report, err := s.deps.Analyzer.Analyze(r.Context(), req.Resume, req.Job)
	if err != nil {
		log.Printf("Error running analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to run analysis")
		return
	}
	if report.Error != "" {
		s.jsonResponse(w, http.StatusUnprocessableEntity, analyzeResponse{Report: report})
		return
	}

	analysisID := s.saveAnalysis(r, req, report.OverallScore, db.ReportSemantic, report)
	s.jsonResponse(w, http.StatusOK, analyzeResponse{AnalysisID: analysisID, Report: report})
}

// handleSkillGap runs the skill coverage analysis.
func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	report, err := s.deps.Gap.Analyze(r.Context(), req.Resume, req.Job)
	if err != nil {
		log.Printf("Error running skill gap analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to run skill gap analysis")
		return
	}
	if report.Error != "" {
		s.jsonResponse(w, http.StatusUnprocessableEntity, skillGapResponse{Report: report})
		return
	}

	analysisID := s.saveAnalysis(r, req, "", db.ReportSkillGap, report)
	s.jsonResponse(w, http.StatusOK, skillGapResponse{AnalysisID: analysisID, Report: report})
}

// handleBlueprint generates the full coaching blueprint.
func (s *Server) handleBlueprint(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	blueprint := s.deps.Blueprint.Generate(r.Context(), req.Resume, req.Job)

	analysisID := s.saveAnalysis(r, req, "", db.ReportBlueprint, blueprint)
	s.jsonResponse(w, http.StatusOK, blueprintResponse{AnalysisID: analysisID, Blueprint: blueprint})
}

type coverLetterRequest struct {
	analyzeRequest
	Recipient string `json:"recipient,omitempty"`
}

type coverLetterResponse struct {
	AnalysisID *uuid.UUID `json:"analysis_id,omitempty"`
	Letter     string     `json:"letter"`
}

// handleCoverLetter generates a tailored cover letter.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req coverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Resume == nil || req.Job == nil {
		s.errorResponse(w, http.StatusBadRequest, "Both resume and job are required")
		return
	}

	letter, err := s.deps.Blueprint.CoverLetter(r.Context(), req.Resume, req.Job, req.Recipient)
	if err != nil {
		log.Printf("Error generating cover letter: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate cover letter")
		return
	}

	var analysisID *uuid.UUID
	if req.Save {
		analysisID = s.saveAnalysis(r, &req.analyzeRequest, "", "", nil)
		if analysisID != nil {
			if err := s.deps.Store.SaveTextReport(r.Context(), *analysisID, db.ReportCoverLetter, letter); err != nil {
				log.Printf("Error saving cover letter: %v", err)
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, coverLetterResponse{AnalysisID: analysisID, Letter: letter})
}

// handleListAnalyses returns the analysis history, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	filters := db.AnalysisFilters{
		Company: r.URL.Query().Get("company"),
	}

	analyses, err := s.deps.Store.ListAnalyses(r.Context(), filters)
	if err != nil {
		log.Printf("Error listing analyses: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list analyses")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// handleGetAnalysis returns a single analysis record.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	analysis, err := s.deps.Store.GetAnalysis(r.Context(), id)
	if err != nil {
		log.Printf("Error getting analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}
	if analysis == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleGetReport returns a stored report by kind.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}
	kind := r.PathValue("kind")

	// The cover letter is stored as plain text, not JSON.
	if kind == db.ReportCoverLetter {
		letter, err := s.deps.Store.GetTextReport(r.Context(), id, kind)
		if err != nil {
			log.Printf("Error getting cover letter: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to get report")
			return
		}
		if letter == "" {
			s.errorResponse(w, http.StatusNotFound, "Report not found")
			return
		}
		s.jsonResponse(w, http.StatusOK, coverLetterResponse{AnalysisID: &id, Letter: letter})
		return
	}

	content, err := s.deps.Store.GetReport(r.Context(), id, kind)
	if err != nil {
		log.Printf("Error getting report: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get report")
		return
	}
	if content == nil {
		s.errorResponse(w, http.StatusNotFound, "Report not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		log.Printf("Error writing report response: %v", err)
	}
}
