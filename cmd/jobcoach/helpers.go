package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HoneyNutz/AI-Job-Coach/internal/config"
	"github.com/HoneyNutz/AI-Job-Coach/internal/fetch"
	"github.com/HoneyNutz/AI-Job-Coach/internal/llm"
	"github.com/HoneyNutz/AI-Job-Coach/internal/parsing"
	"github.com/HoneyNutz/AI-Job-Coach/internal/schemas"
	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

// inputFlags are the flags shared by the analysis commands.
type inputFlags struct {
	configPath string
	resumePath string
	jobPath    string
	jobURL     string
	apiKey     string
	model      string
	useBrowser bool
	verbose    bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to JSON config file")
	cmd.Flags().StringVarP(&f.resumePath, "resume", "r", "", "Path to JSON Resume file")
	cmd.Flags().StringVarP(&f.jobPath, "job", "j", "", "Path to job posting file (JSON or raw text)")
	cmd.Flags().StringVarP(&f.jobURL, "url", "u", "", "URL to fetch the job posting from")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	cmd.Flags().StringVar(&f.model, "model", "", "Embedding model name")
	cmd.Flags().BoolVar(&f.useBrowser, "browser", false, "Render the posting with a headless browser")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
}

// resolve merges CLI flags over the optional config file and applies
// environment fallbacks, then validates the result.
func (f *inputFlags) resolve() (*config.Config, error) {
	cfg := &config.Config{
		Resume:         f.resumePath,
		Job:            f.jobPath,
		JobURL:         f.jobURL,
		APIKey:         f.apiKey,
		EmbeddingModel: f.model,
		UseBrowser:     f.useBrowser,
		Verbose:        f.verbose,
	}

	if f.configPath != "" {
		fileCfg, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		merged.UseBrowser = cfg.UseBrowser
		merged.Verbose = cfg.Verbose
		cfg = &merged
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required; set --api-key or GEMINI_API_KEY")
	}

	if cfg.Resume == "" {
		return nil, fmt.Errorf("a resume file is required; set --resume")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return nil, fmt.Errorf("a job posting is required; set --job or --url")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadResume reads and validates a JSON Resume file.
func loadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := schemas.ValidateResume(data); err != nil {
		return nil, err
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}

// loadJob resolves the job posting from a JSON file, a raw text file, or a
// URL. Raw text and URL sources go through LLM extraction, which needs a
// short-lived client of its own.
func loadJob(ctx context.Context, cfg *config.Config) (*types.JobDescription, error) {
	if cfg.Job != "" && strings.EqualFold(filepath.Ext(cfg.Job), ".json") {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return nil, fmt.Errorf("failed to read job file: %w", err)
		}
		if err := schemas.ValidateJobDescription(data); err != nil {
			return nil, err
		}

		var job types.JobDescription
		if err := json.Unmarshal(data, &job); err != nil {
			return nil, fmt.Errorf("failed to parse job JSON: %w", err)
		}
		return &job, nil
	}

	rawText, sourceURL, err := rawPostingText(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	job, err := extractJob(ctx, client, rawText)
	if err != nil {
		return nil, err
	}
	if job.URL == "" {
		job.URL = sourceURL
	}
	return job, nil
}

// rawPostingText returns the raw posting text from a file or URL.
func rawPostingText(ctx context.Context, cfg *config.Config) (string, string, error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), "", nil
	}

	page, err := fetch.PostingText(ctx, cfg.JobURL, &fetch.Options{
		NoBrowser: !cfg.UseBrowser,
		Verbose:   cfg.Verbose,
	})
	if err != nil {
		return "", "", err
	}
	return page.Text, cfg.JobURL, nil
}

// extractJob turns raw posting text into a structured job description and
// folds LLM-inferred skills into the explicit ones.
func extractJob(ctx context.Context, client llm.Client, rawText string) (*types.JobDescription, error) {
	job, err := parsing.ExtractJobDescription(ctx, client, rawText)
	if err != nil {
		return nil, err
	}

	inferred, err := parsing.InferSkills(ctx, client, rawText)
	if err == nil && inferred != "" {
		job.Skills = strings.Join(parsing.MergeInferredSkills(job, inferred), ", ")
	}
	return job, nil
}
