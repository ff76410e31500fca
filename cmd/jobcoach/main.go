// Package main provides the AI Job Coach command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobcoach",
	Short: "AI Job Coach semantic matching engine",
	Long:  "AI Job Coach scores a JSON Resume against a job posting with semantic embeddings, flags skill gaps, and generates a tailoring blueprint and cover letter.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
