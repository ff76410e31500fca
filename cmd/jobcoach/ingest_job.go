package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HoneyNutz/AI-Job-Coach/internal/config"
	"github.com/HoneyNutz/AI-Job-Coach/internal/llm"
	"github.com/HoneyNutz/AI-Job-Coach/internal/schemas"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Fetch a job posting and extract it to structured JSON",
	Long:  "Fetch a job posting from a URL or raw text file, extract its structured fields with the LLM, and write a validated job description JSON file.",
	RunE:  runIngestJob,
}

var (
	ingestJobPath    string
	ingestURL        string
	ingestOut        string
	ingestAPIKey     string
	ingestUseBrowser bool
	ingestVerbose    bool
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestJobPath, "text-file", "t", "", "Path to raw text file containing the posting")
	ingestJobCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the posting from")
	ingestJobCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Output JSON file (required)")
	ingestJobCmd.Flags().StringVar(&ingestAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	ingestJobCmd.Flags().BoolVar(&ingestUseBrowser, "browser", false, "Render the posting with a headless browser")
	ingestJobCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")

	ingestJobCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, args []string) error {
	if ingestJobPath == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestJobPath != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	apiKey := ingestAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("Gemini API key is required; set --api-key or GEMINI_API_KEY")
	}

	ctx := cmd.Context()
	cfg := &config.Config{
		Job:        ingestJobPath,
		JobURL:     ingestURL,
		UseBrowser: ingestUseBrowser,
		Verbose:    ingestVerbose,
	}

	rawText, sourceURL, err := rawPostingText(ctx, cfg)
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer client.Close()

	job, err := extractJob(ctx, client, rawText)
	if err != nil {
		return err
	}
	if job.URL == "" {
		job.URL = sourceURL
	}

	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode job description: %w", err)
	}

	// The output must itself pass the schema it will be loaded against.
	if err := schemas.ValidateJobDescription(data); err != nil {
		return err
	}

	if err := os.WriteFile(ingestOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write job description: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested job posting\n")
	fmt.Fprintf(os.Stdout, "Job description: %s\n", ingestOut)

	return nil
}
