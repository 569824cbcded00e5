package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ourgorithm/seo-audit/internal/server"
	"github.com/ourgorithm/seo-audit/internal/types"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for managing sites, running audits and rendering reports.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(serveConfigPath)
	if err != nil {
		return err
	}

	databaseURL := cfg.DatabaseURLFromEnv()
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	srvCfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		OrgID:       orgIDFromEnv(),
		Relays:      cfg.RelayChain(),
		NotifyEmail: cfg.NotifyEmail,
		Branding: types.Branding{
			CompanyName:  cfg.CompanyName,
			PrimaryColor: cfg.PrimaryColor,
			LogoURL:      cfg.LogoURL,
		},
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
