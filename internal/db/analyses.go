package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AnalysisInput holds the metadata recorded when saving an analysis run.
type AnalysisInput struct {
	UserID       *uuid.UUID
	Company      string
	RoleTitle    string
	JobURL       string
	OverallScore string
}

// CreateAnalysis records a new analysis run and returns its ID.
func (db *DB) CreateAnalysis(ctx context.Context, input *AnalysisInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, company, role_title, job_url, overall_score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		input.UserID, input.Company, input.RoleTitle, input.JobURL, input.OverallScore,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create analysis: %w", err)
	}
	return id, nil
}

// SaveReport stores a JSON report for an analysis, replacing any previous
// report of the same kind.
func (db *DB) SaveReport(ctx context.Context, analysisID uuid.UUID, kind string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analysis_reports (analysis_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (analysis_id, kind) DO UPDATE SET content = $3, created_at = NOW()`,
		analysisID, kind, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save report %s: %w", kind, err)
	}
	return nil
}

// SaveTextReport stores a text report (like a cover letter) for an analysis.
func (db *DB) SaveTextReport(ctx context.Context, analysisID uuid.UUID, kind, text string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO analysis_reports (analysis_id, kind, text_content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (analysis_id, kind) DO UPDATE SET text_content = $3, created_at = NOW()`,
		analysisID, kind, text,
	)
	if err != nil {
		return fmt.Errorf("failed to save text report %s: %w", kind, err)
	}
	return nil
}

// GetReport retrieves a JSON report by analysis ID and kind. Returns nil
// when no report of that kind exists.
func (db *DB) GetReport(ctx context.Context, analysisID uuid.UUID, kind string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM analysis_reports WHERE analysis_id = $1 AND kind = $2`,
		analysisID, kind,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report %s: %w", kind, err)
	}
	return content, nil
}

// GetTextReport retrieves a text report by analysis ID and kind.
func (db *DB) GetTextReport(ctx context.Context, analysisID uuid.UUID, kind string) (string, error) {
	var text string
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(text_content, '') FROM analysis_reports WHERE analysis_id = $1 AND kind = $2`,
		analysisID, kind,
	).Scan(&text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get text report %s: %w", kind, err)
	}
	return text, nil
}

// GetAnalysis retrieves an analysis by ID. Returns nil when not found.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var a Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, company, role_title, job_url, overall_score, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.UserID, &a.Company, &a.RoleTitle, &a.JobURL, &a.OverallScore, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// AnalysisFilters holds optional filters for listing analyses.
type AnalysisFilters struct {
	UserID  *uuid.UUID
	Company string
	Limit   int
}

// ListAnalyses retrieves recent analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]Analysis, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, user_id, company, role_title, job_url, overall_score, created_at
		FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.UserID != nil {
		query += fmt.Sprintf(" AND user_id = $%d", argNum)
		args = append(args, *filters.UserID)
		argNum++
	}
	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.UserID, &a.Company, &a.RoleTitle, &a.JobURL, &a.OverallScore, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// DeleteAnalysis deletes an analysis and its reports (via cascade).
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}
