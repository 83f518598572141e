// Package main provides the resume-grader command line interface.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"resume-grader/internal/analyses"
	"resume-grader/internal/server"
	"resume-grader/internal/shared/config"
)

var rootCmd = &cobra.Command{
	Use:   "grader",
	Short: "Resume grading service",
	Long:  "Resume grader scores resumes against optional job descriptions, using an LLM when configured and a deterministic heuristic engine otherwise.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		r := server.NewRouter(cfg)
		addr := server.Addr(cfg.Port)
		log.Printf("Starting API server on %s", addr)
		return r.Run(addr)
	},
}

var jobDescriptionFile string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume file and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}

		var jobDescription string
		if jobDescriptionFile != "" {
			jd, err := os.ReadFile(jobDescriptionFile)
			if err != nil {
				return fmt.Errorf("read job description: %w", err)
			}
			jobDescription = string(jd)
		}

		cfg := config.Load()
		svc := &analyses.Service{
			Cache: analyses.NewCache(),
			LLM:   server.NewLLMClient(cfg),
		}
		result, err := svc.Analyze(context.Background(), analyses.AnalyzeRequest{
			FileName:       filepath.Base(args[0]),
			Content:        content,
			JobDescription: jobDescription,
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result.Analysis, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	analyzeCmd.Flags().StringVar(&jobDescriptionFile, "job-description-file", "", "path to a job description to match against")
	rootCmd.AddCommand(serveCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
