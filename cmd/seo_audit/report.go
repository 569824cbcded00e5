package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ourgorithm/seo-audit/internal/db"
	"github.com/ourgorithm/seo-audit/internal/report"
	"github.com/ourgorithm/seo-audit/internal/types"
)

var reportCmd = &cobra.Command{
	Use:   "report <site-id>",
	Short: "Render the latest audit as a branded HTML report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportCmd,
}

var (
	reportConfigPath  string
	reportOutput      string
	reportDatabaseURL string
)

func init() {
	reportCmd.Flags().StringVar(&reportConfigPath, "config", "", "Path to config.json file")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file path (defaults to seo-report-<domain>-<date>.html)")
	reportCmd.Flags().StringVar(&reportDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(reportCmd)
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	siteID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid site id: %w", err)
	}

	cfg, err := loadCLIConfig(reportConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = reportDatabaseURL
	}

	databaseURL := cfg.DatabaseURLFromEnv()
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	site, err := database.GetSite(ctx, siteID)
	if err != nil {
		return err
	}
	if site == nil {
		return fmt.Errorf("site not found: %s", siteID)
	}

	latest, err := database.GetLatestAudit(ctx, siteID)
	if err != nil {
		return err
	}

	branding := types.Branding{
		CompanyName:  cfg.CompanyName,
		PrimaryColor: cfg.PrimaryColor,
		LogoURL:      cfg.LogoURL,
	}

	output := reportOutput
	if output == "" {
		output = report.FileName(site.Domain)
	}

	result := report.ResultFromRecord(site, latest)
	if err := report.WriteFile(output, site, result, branding); err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", output)
	return nil
}
