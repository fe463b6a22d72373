package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/fetch"
	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/pipeline"
	"github.com/jonathan/jobmatch/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the HTTP server exposing POST /match and GET /health.",
	RunE:  servePipelineCmd,
}

var (
	servePort       int
	serveAPIKey     string
	serveUseBrowser bool
	serveVerbose    bool
	serveJSONLogs   bool
)

func init() {
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCommand.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCommand.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA postings (requires Chrome)")
	serveCommand.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	serveCommand.Flags().BoolVar(&serveJSONLogs, "json-logs", true, "Emit logs as JSON")

	rootCmd.AddCommand(serveCommand)
}

func servePipelineCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := serveAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	logger, err := newLogger(serveVerbose, serveJSONLogs)
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
		Fetcher: fetch.NewClient(&fetch.Options{UseBrowser: serveUseBrowser}),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:     servePort,
		Pipeline: p,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	return srv.Start()
}
