package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HoneyNutz/AI-Job-Coach/internal/analysis"
	"github.com/HoneyNutz/AI-Job-Coach/internal/blueprint"
	"github.com/HoneyNutz/AI-Job-Coach/internal/embedding"
	"github.com/HoneyNutz/AI-Job-Coach/internal/llm"
	"github.com/HoneyNutz/AI-Job-Coach/internal/server"
	"github.com/HoneyNutz/AI-Job-Coach/internal/skills"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for the analysis engines and the application tracker.`,
	RunE:  runServe,
}

var (
	servePort  int
	serveModel string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Embedding model name")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()

	conn, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	provider, err := embedding.NewGemini(ctx, apiKey, serveModel)
	if err != nil {
		return err
	}
	defer provider.Close()

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer client.Close()

	gap := skills.NewAnalyzer(provider, skills.NewLexicalExtractor())

	srv, err := server.New(server.Config{Port: servePort}, server.Deps{
		Store:     conn,
		Analyzer:  analysis.NewEngine(provider),
		Gap:       gap,
		Blueprint: blueprint.NewOrchestrator(client, gap),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
