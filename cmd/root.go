package cmd

import (
	"os"

	"github.com/inovacc/findstar/internal/application"
	"github.com/inovacc/findstar/internal/cli"
	"github.com/inovacc/findstar/internal/core"
	"github.com/inovacc/findstar/internal/gh"
	"github.com/inovacc/findstar/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName + " [keywords...]",
	Short: "Grep over your GitHub starred repositories",
	Long: `Findstar fetches the repositories a GitHub user has starred, caches their
metadata and README text locally, and greps the cached text for keywords.

Each matching repository is printed with the lines that contained a keyword.

Examples:
  findstar -u octocat cache proxy      # repos mentioning either word
  findstar -u octocat -a cache proxy   # repos mentioning both words
  findstar -u octocat -f redis         # refresh the cache, then search`,
	RunE: runRoot,
}

// Execute runs the root command. A fatal error terminates the process with a
// non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("user", "u", "", "GitHub username (required)")
	rootCmd.PersistentFlags().String("backend", "", "cache backend: file, bolt or sqlite")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log fetch progress")

	rootCmd.Flags().BoolP("and", "a", false, "require every keyword to match (default: any)")
	rootCmd.Flags().BoolP("refresh", "f", false, "refresh the cache before searching")
}

func runRoot(cmd *cobra.Command, args []string) error {
	user, err := requireUser(cmd)
	if err != nil {
		return err
	}

	andMode, _ := cmd.Flags().GetBool("and")
	refresh, _ := cmd.Flags().GetBool("refresh")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = st.Close()
	}()

	logger := newLogger(cmd)

	fetcher := gh.NewFetcher(cfg.PerPage, gh.WithLogger(logger))
	syncer := core.NewSyncer(st, fetcher, logger)

	stars, err := syncer.Stars(cmd.Context(), user, refresh)
	if err != nil {
		return err
	}

	mode := core.ModeAny
	if andMode {
		mode = core.ModeAll
	}

	matches := core.Filter(stars, args, mode)
	cli.Render(cmd.OutOrStdout(), matches, args)

	return nil
}
