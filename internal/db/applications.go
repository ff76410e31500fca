package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ApplicationInput holds the fields for creating a tracked application.
type ApplicationInput struct {
	UserID     *uuid.UUID
	Company    string
	RoleTitle  string
	JobURL     string
	Status     string
	Notes      string
	AnalysisID *uuid.UUID
}

const applicationColumns = `id, user_id, company, role_title, job_url, status, notes, analysis_id, applied_at, created_at, updated_at`

func scanApplication(row pgx.Row) (*Application, error) {
	var app Application
	err := row.Scan(&app.ID, &app.UserID, &app.Company, &app.RoleTitle, &app.JobURL,
		&app.Status, &app.Notes, &app.AnalysisID, &app.AppliedAt, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// CreateApplication records a new tracked application.
func (db *DB) CreateApplication(ctx context.Context, input *ApplicationInput) (*Application, error) {
	status := input.Status
	if status == "" {
		status = StatusSaved
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid application status: %s", status)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO applications (user_id, company, role_title, job_url, status, notes, analysis_id, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, CASE WHEN $5 = 'applied' THEN NOW() ELSE NULL END)
		 RETURNING `+applicationColumns,
		input.UserID, input.Company, input.RoleTitle, input.JobURL, status, input.Notes, input.AnalysisID,
	)
	app, err := scanApplication(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

// GetApplication retrieves an application by ID. Returns nil when not found.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// UpdateApplicationStatus moves an application to a new status. Transitioning
// into "applied" stamps applied_at the first time it happens.
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) (*Application, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid application status: %s", status)
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE applications
		 SET status = $1,
		     applied_at = CASE WHEN $1 = 'applied' AND applied_at IS NULL THEN NOW() ELSE applied_at END,
		     updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+applicationColumns,
		status, id,
	)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("application not found: %s", id)
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return app, nil
}

// UpdateApplicationNotes replaces the notes on an application.
func (db *DB) UpdateApplicationNotes(ctx context.Context, id uuid.UUID, notes string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET notes = $1, updated_at = NOW() WHERE id = $2`,
		notes, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update application notes: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

// ApplicationFilters holds optional filters for listing applications.
type ApplicationFilters struct {
	UserID  *uuid.UUID
	Company string
	Status  string
	Limit   int
}

// ListApplications retrieves tracked applications, newest first.
func (db *DB) ListApplications(ctx context.Context, filters ApplicationFilters) ([]Application, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE 1=1`
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
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// DeleteApplication removes a tracked application.
func (db *DB) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}
