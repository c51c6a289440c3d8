package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/findstar/internal/cli"
	"github.com/inovacc/findstar/internal/store"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse a user's cached stars",
	Long: `Open an interactive list of the cached starred repositories. Selecting an
entry prints its URL. The cache is read as-is; run the search with -f first
to refresh it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st store.Store, user string) error {
			stars, err := st.Read(user)
			if err != nil {
				return err
			}

			if len(stars) == 0 {
				return fmt.Errorf("no cached stars for %s; run 'findstar -u %s -f' first", user, user)
			}

			m := cli.NewStarList(stars)

			p := tea.NewProgram(m)

			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			listModel := finalModel.(cli.StarListModel)
			if selected := listModel.SelectedStar(); selected != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), selected.HTMLURL)
			}

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
