package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/cli/styles"
)

var aboutShort bool

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long: `Display version, commit, build date and the repository URL.

With --short only the version line is printed, which suits bug reports.`,
	RunE: runAbout,
}

func init() {
	aboutCmd.Flags().BoolVarP(&aboutShort, "short", "s", false, "print only the version")
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if aboutShort {
		fmt.Fprintln(cmd.OutOrStdout(), "tessera "+a.BuildInfo.Short())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(a.Theme).Render(a.BuildInfo))
	return nil
}
