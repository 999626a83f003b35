// Package main is the entry point for the rentany CLI.
//
// Usage:
//
//	rentany serve                    # Start the site with environment settings
//	rentany serve -c rentany.yaml    # Start the site with a config file
//	rentany validate                 # Check environment and config
//	rentany version                  # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd only displays help; functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "rentany",
	Short: "The Rent Any marketing site",
	Long: `rentany serves the Rent Any property rental marketing site: the home,
about and contact pages with server-side form validation and error pages.

Settings are read from RENT_ANY_* environment variables:
  RENT_ANY_APP_NAME, RENT_ANY_APP_URL, RENT_ANY_CONTACT_EMAIL (required in production)
  RENT_ANY_APP_DESCRIPTION, RENT_ANY_SUPPORT_EMAIL
  RENT_ANY_GOOGLE_ANALYTICS_ID, RENT_ANY_VERCEL_ANALYTICS_ID
  RENT_ANY_ENV (development, production or test)
  RENT_ANY_ENABLE_BETA_FEATURES, RENT_ANY_MAINTENANCE_MODE

An optional YAML file tunes the deployment:
  port: 3000
  submit_delay: 1s
  redirects:
    - from: /listings
      to: /
      permanent: true`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func main() {
	Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this rentany binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rentany %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
