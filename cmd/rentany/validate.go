package main

import (
	"fmt"
	"strings"

	"github.com/rentany/site/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate environment and config file",
	Long: `Validate the RENT_ANY_* environment and an optional config file without
starting the server.

Missing required variables are listed. They fail validation only when
RENT_ANY_ENV is production; otherwise defaults are used.

Exit codes:
  0 - Configuration is valid
  1 - Configuration is invalid (error details printed to stderr)

Example:
  rentany validate
  RENT_ANY_ENV=production rentany validate -c rentany.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, e, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	missing := e.Missing()
	for _, key := range missing {
		fmt.Fprintf(out, "Missing: %s\n", key)
	}
	if err := e.Validate(); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}

	settings := config.Settings(cfg, e)
	sc := config.NewSiteConfig(settings)

	secrets := e.Private.Configured()
	secretList := "none"
	if len(secrets) > 0 {
		secretList = strings.Join(secrets, ", ")
	}

	fmt.Fprintf(out, "Configuration is valid!\n")
	fmt.Fprintf(out, "  Environment:  %s\n", settings.Environment)
	fmt.Fprintf(out, "  Site:         %s (%s)\n", sc.Name, sc.URL)
	fmt.Fprintf(out, "  Contact:      %s\n", sc.ContactLink)
	fmt.Fprintf(out, "  Port:         %d\n", cfg.Port)
	fmt.Fprintf(out, "  Submit delay: %s\n", cfg.Delay())
	fmt.Fprintf(out, "  Redirects:    %d\n", len(cfg.Redirects))
	fmt.Fprintf(out, "  Secrets:      %s\n", secretList)
	if len(missing) > 0 {
		fmt.Fprintf(out, "  Defaults used for %d required variable(s)\n", len(missing))
	}

	return nil
}
