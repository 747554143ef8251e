package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")

	cmd := &cobra.Command{
		Use:   "exam-portal",
		Short: "Online examination service: timed mock tests with scored results",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config (optional; env vars apply otherwise)")
	cmd.AddCommand(newServeCmd(&configPath))
	return cmd
}
