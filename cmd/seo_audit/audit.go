package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ourgorithm/seo-audit/internal/config"
	"github.com/ourgorithm/seo-audit/internal/db"
	"github.com/ourgorithm/seo-audit/internal/observability"
	"github.com/ourgorithm/seo-audit/internal/pipeline"
	"github.com/ourgorithm/seo-audit/internal/retrieval"
	"github.com/ourgorithm/seo-audit/internal/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit <domain>",
	Short: "Run a full SEO audit against a domain",
	Long: `Retrieves the domain's homepage through the CORS relay chain, detects the
hosting platform, scores ~22 SEO checks across five categories and evaluates
directory readiness.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuditCmd,
}

var (
	auditConfigPath  string
	auditSave        bool
	auditVerbose     bool
	auditDatabaseURL string
)

func init() {
	auditCmd.Flags().StringVar(&auditConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	auditCmd.Flags().BoolVar(&auditSave, "save", false, "Persist the audit (auto-creates the site record)")
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "Print detailed debug information")
	auditCmd.Flags().StringVar(&auditDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(auditCmd)
}

// loadCLIConfig loads and validates the optional JSON config file.
func loadCLIConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path == "" {
		return cfg, nil
	}
	loaded, err := config.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return cfg, err
	}
	return *loaded, nil
}

// orgIDFromEnv returns the organization scope for persistence. Single-tenant
// installs leave ORG_ID unset and share the zero UUID.
func orgIDFromEnv() uuid.UUID {
	raw := os.Getenv("ORG_ID")
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func runAuditCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	domain := retrieval.Normalize(args[0])
	if domain == "" {
		return fmt.Errorf("domain is required")
	}

	cfg, err := loadCLIConfig(auditConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = auditDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = auditVerbose
	}

	opts := retrieval.DefaultOptions()
	opts.Relays = cfg.RelayChain()
	if cfg.UserAgent != "" {
		opts.UserAgent = cfg.UserAgent
	}
	runner := pipeline.NewRunner(retrieval.NewFetcher(opts))

	printer := observability.NewPrinter(os.Stdout)

	result, err := runner.Run(ctx, domain)
	if err != nil {
		var retrievalErr *retrieval.Error
		if errors.As(err, &retrievalErr) {
			printer.PrintRetrievalFailure(retrievalErr)
		}
		return fmt.Errorf("audit failed: %w", err)
	}

	if cfg.Verbose {
		printer.PrintPlatform(&result.Platform)
	}
	printer.PrintAuditResult(result)
	printer.PrintReadiness(&result.Readiness)

	if !auditSave {
		return nil
	}
	if err := saveAudit(ctx, cfg.DatabaseURLFromEnv(), domain, result); err != nil {
		// The score was already printed; persistence trouble should not
		// look like a failed audit.
		fmt.Fprintf(os.Stderr, "Warning: audit not saved: %v\n", err)
	}
	return nil
}

// saveAudit persists an audit, creating the site record when the domain is
// not tracked yet.
func saveAudit(ctx context.Context, databaseURL, domain string, result *types.AuditResult) error {
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	orgID := orgIDFromEnv()
	siteID, err := findOrCreateSite(ctx, database, orgID, domain)
	if err != nil {
		return err
	}

	auditID, err := database.InsertAudit(ctx, siteID, result)
	if err != nil {
		return err
	}
	if err := database.UpdateSiteAuditCache(ctx, siteID, auditID, result); err != nil {
		return err
	}

	fmt.Printf("Saved audit %s for site %s\n", auditID, siteID)
	return nil
}

func findOrCreateSite(ctx context.Context, database *db.DB, orgID uuid.UUID, domain string) (uuid.UUID, error) {
	sites, err := database.ListSites(ctx, orgID)
	if err != nil {
		return uuid.Nil, err
	}
	for _, site := range sites {
		if site.Domain == domain {
			return site.ID, nil
		}
	}
	return database.CreateSite(ctx, orgID, &types.CreateSiteRequest{Domain: domain})
}
