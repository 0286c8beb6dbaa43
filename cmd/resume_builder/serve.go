package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/sanitize"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
	serveUseBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing, previewing, and exporting resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render SPA job boards with a headless browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	fileCfg := config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		fileCfg = *loaded
	}

	// Precedence: flags, then config file, then environment, then defaults.
	cfg := config.Config{Port: servePort}
	cfg = cfg.MergeWithDefaults(fileCfg)
	if err := cfg.FromEnv(); err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(config.Config{Port: config.DefaultPort})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	sanitize.Debug = cfg.Debug

	srv, err := server.New(server.Config{
		Port:              cfg.Port,
		DatabaseURL:       cfg.DatabaseURL,
		GeminiAPIKey:      cfg.GeminiAPIKey,
		GeminiModel:       cfg.GeminiModel,
		UseBrowser:        serveUseBrowser || cfg.UseBrowser,
		InterestAlignment: cfg.InterestAlignment,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
