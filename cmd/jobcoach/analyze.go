package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/HoneyNutz/AI-Job-Coach/internal/analysis"
	"github.com/HoneyNutz/AI-Job-Coach/internal/embedding"
	"github.com/HoneyNutz/AI-Job-Coach/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job posting",
	Long:  "Embed the resume content and the posting requirements, match each requirement to its closest resume entry by cosine similarity, and print the scored report.",
	RunE:  runAnalyze,
}

var analyzeFlags inputFlags

func init() {
	analyzeFlags.register(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := analyzeFlags.resolve()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}
	job, err := loadJob(ctx, cfg)
	if err != nil {
		return err
	}

	provider, err := embedding.NewGemini(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return err
	}
	defer provider.Close()

	report, err := analysis.NewEngine(provider).Analyze(ctx, resume, job)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintAnalysisReport(report)
	return nil
}
