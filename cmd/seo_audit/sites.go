package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ourgorithm/seo-audit/internal/db"
	"github.com/ourgorithm/seo-audit/internal/retrieval"
	"github.com/ourgorithm/seo-audit/internal/types"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Manage tracked sites",
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked sites",
	RunE:  runSitesList,
}

var sitesAddCmd = &cobra.Command{
	Use:   "add <domain>",
	Short: "Register a domain for tracking",
	Args:  cobra.ExactArgs(1),
	RunE:  runSitesAdd,
}

var sitesRemoveCmd = &cobra.Command{
	Use:   "rm <site-id>",
	Short: "Remove a tracked site",
	Args:  cobra.ExactArgs(1),
	RunE:  runSitesRemove,
}

var (
	sitesDatabaseURL  string
	sitesBusinessName string
	sitesPhone        string
)

func init() {
	sitesCmd.PersistentFlags().StringVar(&sitesDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	sitesAddCmd.Flags().StringVar(&sitesBusinessName, "business-name", "", "Business name for the report header")
	sitesAddCmd.Flags().StringVar(&sitesPhone, "phone", "", "Business phone number")

	sitesCmd.AddCommand(sitesListCmd)
	sitesCmd.AddCommand(sitesAddCmd)
	sitesCmd.AddCommand(sitesRemoveCmd)
	rootCmd.AddCommand(sitesCmd)
}

// sitesConnect opens the store used by every sites subcommand.
func sitesConnect(ctx context.Context) (*db.DB, error) {
	databaseURL := sitesDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	return db.Connect(ctx, databaseURL)
}

func runSitesList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, err := sitesConnect(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	sites, err := database.ListSites(ctx, orgIDFromEnv())
	if err != nil {
		return err
	}
	if len(sites) == 0 {
		fmt.Println("No sites tracked yet.")
		return nil
	}

	for _, site := range sites {
		score := "-"
		if site.LatestScore != nil {
			score = fmt.Sprintf("%d", *site.LatestScore)
		}
		fmt.Printf("%s  %-30s  score=%-4s  %s\n", site.ID, site.Domain, score, site.DirectoryReadiness)
	}
	return nil
}

func runSitesAdd(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	domain := retrieval.Normalize(args[0])
	if domain == "" {
		return fmt.Errorf("domain is required")
	}

	database, err := sitesConnect(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	req := &types.CreateSiteRequest{
		Domain:       domain,
		BusinessName: sitesBusinessName,
		Phone:        sitesPhone,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	siteID, err := database.CreateSite(ctx, orgIDFromEnv(), req)
	if err != nil {
		return err
	}

	fmt.Printf("Added site %s (%s)\n", siteID, domain)
	return nil
}

func runSitesRemove(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	siteID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid site id: %w", err)
	}

	database, err := sitesConnect(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DeleteSite(ctx, siteID); err != nil {
		return err
	}

	fmt.Printf("Removed site %s\n", siteID)
	return nil
}
