package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HoneyNutz/AI-Job-Coach/internal/blueprint"
	"github.com/HoneyNutz/AI-Job-Coach/internal/embedding"
	"github.com/HoneyNutz/AI-Job-Coach/internal/llm"
	"github.com/HoneyNutz/AI-Job-Coach/internal/observability"
	"github.com/HoneyNutz/AI-Job-Coach/internal/skills"
)

var blueprintCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Generate a full tailoring blueprint",
	Long:  "Run the strategic assessment, skill gap table, summary rewrite, and achievement rewrites for one resume/posting pair and print the result.",
	RunE:  runBlueprint,
}

var (
	blueprintFlags inputFlags
	blueprintOut   string
)

func init() {
	blueprintFlags.register(blueprintCmd)
	blueprintCmd.Flags().StringVarP(&blueprintOut, "out", "o", "", "Write the blueprint as JSON to this file")
	rootCmd.AddCommand(blueprintCmd)
}

func runBlueprint(cmd *cobra.Command, args []string) error {
	cfg, err := blueprintFlags.resolve()
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

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	gap := skills.NewAnalyzer(provider, skills.NewLexicalExtractor())
	bp := blueprint.NewOrchestrator(client, gap).Generate(ctx, resume, job)

	if blueprintOut != "" {
		data, err := json.MarshalIndent(bp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode blueprint: %w", err)
		}
		if err := os.WriteFile(blueprintOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write blueprint: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Blueprint written to %s\n", blueprintOut)
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintBlueprint(bp)
	return nil
}
