package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/HoneyNutz/AI-Job-Coach/internal/embedding"
	"github.com/HoneyNutz/AI-Job-Coach/internal/observability"
	"github.com/HoneyNutz/AI-Job-Coach/internal/skills"
)

var skillGapCmd = &cobra.Command{
	Use:   "skill-gap",
	Short: "Rank the posting's skills by resume coverage",
	Long:  "Compare the posting's required skills against the resume's skills with embeddings and print a prioritized gap table, weakest match first.",
	RunE:  runSkillGap,
}

var skillGapFlags inputFlags

func init() {
	skillGapFlags.register(skillGapCmd)
	rootCmd.AddCommand(skillGapCmd)
}

func runSkillGap(cmd *cobra.Command, args []string) error {
	cfg, err := skillGapFlags.resolve()
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

	analyzer := skills.NewAnalyzer(provider, skills.NewLexicalExtractor())
	report, err := analyzer.Analyze(ctx, resume, job)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintSkillGap(report)
	return nil
}
