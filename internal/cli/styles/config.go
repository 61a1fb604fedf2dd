package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/application/port"
)

// ConfigRenderer renders config status messages.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	state := r.theme.SuccessStyle.Render("present")
	if !exists {
		state = r.theme.WarningStyle.Render("not created yet")
	}
	return fmt.Sprintf("  %s Config %s %s",
		iconStyle.Render(IconConfig),
		r.theme.Normal.Render(path),
		r.theme.Subtle.Render("(")+state+r.theme.Subtle.Render(")"),
	)
}

// RenderValid renders a successful validation.
func (r *ConfigRenderer) RenderValid(path string) string {
	return fmt.Sprintf("  %s %s is valid",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render(path),
	)
}

// RenderSchemaWritten renders where the JSON schema was written.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("  %s Schema written to %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("  %s %s",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}

// RenderUpToDate renders a config with nothing to migrate.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	return fmt.Sprintf("  %s %s is up to date",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render(path),
	)
}

// RenderChanges renders pending migration changes as a diff.
func (r *ConfigRenderer) RenderChanges(path string, changes []port.KeyChange) string {
	added := lipgloss.NewStyle().Foreground(r.theme.Success)
	removed := lipgloss.NewStyle().Foreground(r.theme.Error)

	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s %s\n\n",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Normal.Render(path),
		r.theme.Subtle.Render(fmt.Sprintf("(%d change(s))", len(changes))),
	)
	for _, c := range changes {
		switch c.Type {
		case port.KeyChangeAdded:
			b.WriteString(added.Render(fmt.Sprintf("    + %s = %s", c.NewKey, c.Value)))
		case port.KeyChangeRenamed:
			b.WriteString(removed.Render(fmt.Sprintf("    - %s = %s", c.OldKey, c.Value)))
			b.WriteString("\n")
			b.WriteString(added.Render(fmt.Sprintf("    + %s = %s", c.NewKey, c.Value)))
		case port.KeyChangeRemoved:
			b.WriteString(removed.Render(fmt.Sprintf("    - %s", c.OldKey)))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderMigrationSuccess renders the outcome of a migration.
func (r *ConfigRenderer) RenderMigrationSuccess(applied int, path string) string {
	return fmt.Sprintf("  %s Applied %d change(s) to %s",
		r.theme.SuccessStyle.Render(IconCheck),
		applied,
		r.theme.Highlight.Render(path),
	)
}
