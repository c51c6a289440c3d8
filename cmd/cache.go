package cmd

import (
	"fmt"

	"github.com/inovacc/findstar/internal/store"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the star cache",
	Long: `Maintenance operations over the per-user star cache.

Examples:
  findstar cache path                  # print the cache location
  findstar cache clear -u octocat      # empty octocat's entry, keep it
  findstar cache delete -u octocat     # remove octocat's entry entirely`,
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache root directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), cfg.CacheDir)

		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty a user's cache entry without deleting it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st store.Store, user string) error {
			if !st.Exists(user) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no cache entry for %s\n", user)

				return nil
			}

			if err := st.Clear(user); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Cleared cache for %s\n", user)

			return nil
		})
	},
}

var cacheDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a user's cache entry entirely",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st store.Store, user string) error {
			if !st.Exists(user) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no cache entry for %s\n", user)

				return nil
			}

			if err := st.Delete(user); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted cache for %s\n", user)

			return nil
		})
	},
}

// withStore opens the configured store, resolves the user flag and hands
// both to fn, closing the store afterwards.
func withStore(cmd *cobra.Command, fn func(st store.Store, user string) error) error {
	user, err := requireUser(cmd)
	if err != nil {
		return err
	}

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

	return fn(st, user)
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cachePathCmd, cacheClearCmd, cacheDeleteCmd)
}
