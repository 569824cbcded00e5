// Package main provides the entry point for the SEO audit CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seo_audit",
	Short: "Client-side SEO audit tool for small business websites",
	Long:  "seo_audit retrieves a site's homepage through CORS relays, classifies its hosting platform, scores it against a fixed rubric of SEO checks, and evaluates directory readiness. Results can be persisted, rendered as branded HTML reports, and served over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
