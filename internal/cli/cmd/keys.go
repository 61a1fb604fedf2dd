package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/ui/input"
)

var keysDefaults bool

var keysCmd = &cobra.Command{
	Use:   "keys [command]",
	Short: "List keybindings",
	Long: `List every command with the chord bound to it, as resolved from the
[keybindings] table of the config file. Customized and unbound commands show
their default chord.

Give a command name (e.g. split-vertical) to show only that binding.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().BoolVar(&keysDefaults, "defaults", false, "show the built-in chords instead")
}

func runKeys(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	table := input.NewCommandTable(ctx, app.Config.Settings().Keybindings)
	uc := usecase.NewGetKeybindingsUseCase(table)

	var cfg port.KeybindingsConfig
	if keysDefaults {
		cfg, err = uc.ExecuteDefaults(ctx)
	} else {
		cfg, err = uc.Execute(ctx)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		entry, ok := usecase.FindBinding(cfg, args[0])
		if !ok {
			return fmt.Errorf("unknown command %q", args[0])
		}
		single := port.KeybindingsConfig{Groups: []port.KeybindingGroup{{Bindings: []port.KeybindingEntry{entry}}}}
		fmt.Fprintln(out, styles.NewKeybindingsRenderer(app.Theme).Render(single))
		return nil
	}
	fmt.Fprintln(out, styles.NewKeybindingsRenderer(app.Theme).Render(cfg))
	if custom := usecase.CustomizedBindings(cfg); !keysDefaults && len(custom) > 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render(fmt.Sprintf("%d customized in %s", len(custom), app.Config.ConfigFile())))
	}
	return nil
}
