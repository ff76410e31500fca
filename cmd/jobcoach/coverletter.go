package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HoneyNutz/AI-Job-Coach/internal/blueprint"
	"github.com/HoneyNutz/AI-Job-Coach/internal/llm"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate a tailored cover letter",
	RunE:  runCoverLetter,
}

var (
	coverLetterFlags     inputFlags
	coverLetterRecipient string
	coverLetterOut       string
)

func init() {
	coverLetterFlags.register(coverLetterCmd)
	coverLetterCmd.Flags().StringVar(&coverLetterRecipient, "recipient", "", "Addressee name (defaults to Hiring Manager)")
	coverLetterCmd.Flags().StringVarP(&coverLetterOut, "out", "o", "", "Write the letter to this file")
	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, args []string) error {
	cfg, err := coverLetterFlags.resolve()
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

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	letter, err := blueprint.NewOrchestrator(client, nil).CoverLetter(ctx, resume, job, coverLetterRecipient)
	if err != nil {
		return err
	}

	if coverLetterOut != "" {
		if err := os.WriteFile(coverLetterOut, []byte(letter), 0o644); err != nil {
			return fmt.Errorf("failed to write cover letter: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Cover letter written to %s\n", coverLetterOut)
		return nil
	}

	fmt.Fprintln(os.Stdout, letter)
	return nil
}
