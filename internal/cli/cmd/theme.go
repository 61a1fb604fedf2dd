package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/infrastructure/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Preview, validate and scaffold terminal themes",
	Long:  `Without a subcommand, preview the theme the configuration resolves to.`,
	RunE:  runThemeShow,
}

var themeCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a theme file and preview it",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeCheck,
}

var themeDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in theme as TOML",
	Long: `Print the built-in theme as TOML, a starting point for a custom theme:

  tessera theme default > ~/.config/tessera/theme.toml`,
	RunE: runThemeDefault,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeCheckCmd, themeDefaultCmd)
}

func runThemeShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if app.ThemeErr != nil {
		fmt.Fprintln(out, styles.NewConfigRenderer(app.Theme).RenderError(app.ThemeErr))
	}
	path := app.Config.Settings().ThemeFile
	if path == "" || app.ThemeErr != nil {
		path = "built-in"
	}
	fmt.Fprintln(out, styles.NewThemeRenderer(app.Theme).Render(path, app.TerminalTheme))
	return nil
}

func runThemeCheck(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	t, err := theme.NewFileLoader().Load(app.Ctx(), path)
	if err == nil {
		err = t.Validate()
	}
	if err != nil {
		fmt.Fprintln(out, styles.NewConfigRenderer(app.Theme).RenderError(err))
		return err
	}

	fmt.Fprintln(out, styles.NewConfigRenderer(app.Theme).RenderValid(path))
	fmt.Fprintln(out, styles.NewThemeRenderer(styles.NewTheme(t)).Render(path, t))
	return nil
}

func runThemeDefault(cmd *cobra.Command, _ []string) error {
	data, err := theme.Encode(entity.DefaultTheme())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
