package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/findstar/internal/model"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// loadConfig resolves the runtime configuration: defaults, optional .env,
// FINDSTAR_* environment, then flags.
func loadConfig(cmd *cobra.Command) (model.Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	cfg, err := model.LoadConfig()
	if err != nil {
		return model.Config{}, err
	}

	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Backend = backend
	}

	return cfg, nil
}

// newLogger builds the per-command slog logger. Verbose mode surfaces fetch
// progress at Info; otherwise only warnings reach the terminal.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func requireUser(cmd *cobra.Command) (string, error) {
	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		return "", fmt.Errorf("--user is required\n\nUsage: %s -u <username> [keywords...]", cmd.Root().Name())
	}

	return user, nil
}
