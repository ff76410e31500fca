package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/HoneyNutz/AI-Job-Coach/internal/db"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track job applications",
	Long:  "Manage the application tracker: add postings, move them through the pipeline stages, and attach notes.",
}

var (
	trackCompany   string
	trackRole      string
	trackURL       string
	trackStatus    string
	trackNotesText string
)

var trackAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an application to the tracker",
	RunE:  runTrackAdd,
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications",
	RunE:  runTrackList,
}

var trackStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Move an application to a new pipeline stage",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrackStatus,
}

var trackNotesCmd = &cobra.Command{
	Use:   "notes <id>",
	Short: "Replace the notes on an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackNotes,
}

var trackRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an application from the tracker",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackRemove,
}

func init() {
	trackAddCmd.Flags().StringVar(&trackCompany, "company", "", "Company name (required)")
	trackAddCmd.Flags().StringVar(&trackRole, "role", "", "Role title (required)")
	trackAddCmd.Flags().StringVar(&trackURL, "url", "", "Posting URL")
	trackAddCmd.Flags().StringVar(&trackStatus, "status", "", "Initial status (defaults to saved)")
	trackAddCmd.MarkFlagRequired("company")
	trackAddCmd.MarkFlagRequired("role")

	trackListCmd.Flags().StringVar(&trackCompany, "company", "", "Filter by company")
	trackListCmd.Flags().StringVar(&trackStatus, "status", "", "Filter by status")

	trackNotesCmd.Flags().StringVar(&trackNotesText, "text", "", "Notes text (required)")
	trackNotesCmd.MarkFlagRequired("text")

	trackCmd.AddCommand(trackAddCmd, trackListCmd, trackStatusCmd, trackNotesCmd, trackRemoveCmd)
	rootCmd.AddCommand(trackCmd)
}

// openDB connects to the tracker database named by DATABASE_URL.
func openDB(ctx context.Context) (*db.DB, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	conn, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := conn.EnsureSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func runTrackAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	conn, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if trackStatus != "" && !db.ValidStatus(trackStatus) {
		return fmt.Errorf("invalid status: %s", trackStatus)
	}

	app, err := conn.CreateApplication(ctx, &db.ApplicationInput{
		Company:   trackCompany,
		RoleTitle: trackRole,
		JobURL:    trackURL,
		Status:    trackStatus,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Tracked %s at %s (%s)\n", app.RoleTitle, app.Company, app.ID)
	return nil
}

func runTrackList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	conn, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if trackStatus != "" && !db.ValidStatus(trackStatus) {
		return fmt.Errorf("invalid status: %s", trackStatus)
	}

	apps, err := conn.ListApplications(ctx, db.ApplicationFilters{
		Company: trackCompany,
		Status:  trackStatus,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tROLE\tSTATUS\tAPPLIED")
	for _, app := range apps {
		applied := "-"
		if app.AppliedAt != nil {
			applied = app.AppliedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", app.ID, app.Company, app.RoleTitle, app.Status, applied)
	}
	return w.Flush()
}

func runTrackStatus(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid application ID: %s", args[0])
	}

	ctx := cmd.Context()
	conn, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	app, err := conn.UpdateApplicationStatus(ctx, id, args[1])
	if err != nil {
		return err
	}
	if app == nil {
		return fmt.Errorf("application not found: %s", id)
	}

	fmt.Fprintf(os.Stdout, "%s at %s is now %s\n", app.RoleTitle, app.Company, app.Status)
	return nil
}

func runTrackNotes(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid application ID: %s", args[0])
	}

	ctx := cmd.Context()
	conn, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.UpdateApplicationNotes(ctx, id, trackNotesText); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Notes updated")
	return nil
}

func runTrackRemove(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid application ID: %s", args[0])
	}

	ctx := cmd.Context()
	conn, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.DeleteApplication(ctx, id); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Application removed")
	return nil
}
