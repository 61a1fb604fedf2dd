package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/cli"
	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/infrastructure/config"
	"github.com/bnema/tessera/internal/ui/input"
)

var (
	configYes         bool
	configSchemaWrite bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect, validate and migrate the configuration",
	Long:  `Show where the configuration lives, print it, validate it and add settings introduced by newer versions.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration in effect: the file merged over the built-in defaults.`,
	RunE:  runConfigShow,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file and theme",
	RunE:  runConfigCheck,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of the config file. With --write it is stored next to
the config file, where the #:schema directive of config.toml points.`,
	RunE: runConfigSchema,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to the config file",
	Long: `Compare the config file with the current defaults, add any missing settings
and move deprecated keys to their new names.

Values already set are never changed.`,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configCheckCmd, configSchemaCmd, configMigrateCmd)

	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json next to the config file")
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

func requireApp() (*cli.App, error) {
	app := GetApp()
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	path := app.Config.ConfigFile()
	_, statErr := os.Stat(path)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderPath(path, statErr == nil))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	data, err := config.EncodeConfig(app.Config.Snapshot())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)

	if app.LoadErr != nil {
		fmt.Fprintln(out, renderer.RenderError(app.LoadErr))
		return app.LoadErr
	}
	fmt.Fprintln(out, renderer.RenderValid(app.Config.ConfigFile()))

	if app.ThemeErr != nil {
		fmt.Fprintln(out, renderer.RenderError(app.ThemeErr))
		return app.ThemeErr
	}
	if path := app.Config.Settings().ThemeFile; path != "" {
		fmt.Fprintln(out, renderer.RenderValid(path))
	}
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if !configSchemaWrite {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	dir := app.Config.ConfigDir()
	if err := config.WriteSchemaFile(dir); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(filepath.Join(dir, "config.schema.json")))
	return nil
}

func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.Config.ConfigFile()
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		fmt.Fprintln(out, renderer.RenderPath(path, false))
		return nil
	}

	migrator, err := config.NewMigrator(path, input.DefaultBindings())
	if err != nil {
		return err
	}
	uc := usecase.NewMigrateConfigUseCase(migrator)

	check, err := uc.Check(app.Ctx())
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	if !check.NeedsMigration {
		fmt.Fprintln(out, renderer.RenderUpToDate(path))
		return nil
	}
	fmt.Fprintln(out, renderer.RenderChanges(path, check.Changes))

	if configYes {
		return executeMigration(app.Ctx(), out, uc, renderer)
	}
	return runMigrateWithConfirmation(app.Ctx(), uc, renderer, app.Theme)
}

func executeMigration(ctx context.Context, out io.Writer, uc *usecase.MigrateConfigUseCase, renderer *styles.ConfigRenderer) error {
	result, err := uc.Execute(ctx)
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	if len(result.Applied) > 0 {
		fmt.Fprintln(out, renderer.RenderMigrationSuccess(len(result.Applied), result.ConfigFile))
	}
	return nil
}

type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel asks for confirmation, then runs the migration.
type migrateModel struct {
	ctx      context.Context
	spinner  spinner.Model
	renderer *styles.ConfigRenderer
	confirm  styles.ConfirmModel
	state    migrateState
	uc       *usecase.MigrateConfigUseCase

	result   string
	err      error
	quitting bool
}

type migrateResultMsg struct {
	output *usecase.MigrateConfigOutput
	err    error
}

func newMigrateModel(
	ctx context.Context,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	uc *usecase.MigrateConfigUseCase,
) migrateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return migrateModel{
		ctx:      ctx,
		spinner:  s,
		renderer: renderer,
		confirm:  styles.NewConfirm(theme, "Apply these changes?"),
		state:    migrateStateConfirm,
		uc:       uc,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return nil
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state != migrateStateRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		if len(msg.output.Applied) > 0 {
			m.result = m.renderer.RenderMigrationSuccess(len(msg.output.Applied), msg.output.ConfigFile)
		}
		return m, tea.Quit
	}

	if m.state != migrateStateConfirm {
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Result() {
		m.quitting = true
		return m, tea.Quit
	}
	m.state = migrateStateRunning
	return m, tea.Batch(m.spinner.Tick, m.runMigration())
}

func (m migrateModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.err != nil:
		return m.renderer.RenderError(m.err) + "\n"
	case m.state == migrateStateDone:
		return m.result + "\n"
	case m.state == migrateStateRunning:
		return m.spinner.View() + " Migrating...\n"
	default:
		return m.confirm.View() + "\n"
	}
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		result, err := m.uc.Execute(m.ctx)
		return migrateResultMsg{output: result, err: err}
	}
}

func runMigrateWithConfirmation(
	ctx context.Context,
	uc *usecase.MigrateConfigUseCase,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
) error {
	final, err := tea.NewProgram(newMigrateModel(ctx, renderer, theme, uc)).Run()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if m, ok := final.(migrateModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
