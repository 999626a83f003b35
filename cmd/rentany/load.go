package main

import (
	"fmt"

	"github.com/rentany/site/config"
	"github.com/spf13/cobra"
)

// loadConfig reads the environment and the optional --config file.
func loadConfig(cmd *cobra.Command) (*config.Config, *config.Env, error) {
	e, err := config.LoadProcessEnv()
	if err != nil {
		return nil, nil, err
	}

	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	return cfg, e, nil
}
