package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Story task tracking API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads .env when present and then the environment.
func loadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return config.Config{}, fmt.Errorf("load .env: %w", err)
	}
	return config.Load()
}
