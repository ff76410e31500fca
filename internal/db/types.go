package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	PasswordSet  bool      `json:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Analysis represents one saved resume/posting analysis run.
type Analysis struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	Company      string     `json:"company"`
	RoleTitle    string     `json:"role_title"`
	JobURL       string     `json:"job_url,omitempty"`
	OverallScore string     `json:"overall_score,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Report kinds stored per analysis.
const (
	ReportSemantic    = "semantic"
	ReportSkillGap    = "skill_gap"
	ReportBlueprint   = "blueprint"
	ReportCoverLetter = "cover_letter"
)

// Application statuses, in rough pipeline order.
const (
	StatusSaved        = "saved"
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusOffer        = "offer"
	StatusRejected     = "rejected"
)

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Application represents one tracked job application.
type Application struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Company    string     `json:"company"`
	RoleTitle  string     `json:"role_title"`
	JobURL     string     `json:"job_url,omitempty"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	AnalysisID *uuid.UUID `json:"analysis_id,omitempty"`
	AppliedAt  *time.Time `json:"applied_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
