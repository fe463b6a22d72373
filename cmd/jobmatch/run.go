package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/fetch"
	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the matching pipeline for one resume",
	Long: `Runs the full matching pipeline: parse resume -> select job posting -> extract posting -> analyze and write.

Prints the resulting match record as JSON on stdout.`,
	RunE: runPipelineCmd,
}

var (
	runResumePath string
	runQuery      string
	runAPIKey     string
	runTimeout    time.Duration
	runUseBrowser bool
	runVerbose    bool
	runJSONLogs   bool
)

func init() {
	runCommand.Flags().StringVarP(&runResumePath, "resume", "r", "", "Path to resume text file (required)")
	runCommand.Flags().StringVarP(&runQuery, "query", "q", "", "Job query, e.g. \"python\" or \"backend engineer\" (empty infers from resume)")
	runCommand.Flags().DurationVar(&runTimeout, "timeout", pipeline.DefaultBudget, "Wall-clock budget for the pipeline")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for SPA postings (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().BoolVar(&runJSONLogs, "json-logs", false, "Emit logs as JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	_ = runCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := runAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	resumeText, err := os.ReadFile(runResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	logger, err := newLogger(runVerbose, runJSONLogs)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	p, err := pipeline.New(pipeline.Options{
		Client:  client,
		Fetcher: fetch.NewClient(&fetch.Options{UseBrowser: runUseBrowser}),
		Budget:  runTimeout,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	rec := p.Run(ctx, string(resumeText), runQuery)

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
