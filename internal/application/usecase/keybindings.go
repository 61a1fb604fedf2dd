package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/tessera/internal/application/port"
)

// ErrNoKeybindingsProvider is returned when no command table was wired.
var ErrNoKeybindingsProvider = errors.New("keybindings provider is nil")

// GetKeybindingsUseCase projects a command table for the keybinding
// overlay and `tessera keys`.
type GetKeybindingsUseCase struct {
	provider port.KeybindingsProvider
}

func NewGetKeybindingsUseCase(provider port.KeybindingsProvider) *GetKeybindingsUseCase {
	return &GetKeybindingsUseCase{provider: provider}
}

// Execute returns the bindings currently in effect.
func (uc *GetKeybindingsUseCase) Execute(ctx context.Context) (port.KeybindingsConfig, error) {
	if uc == nil || uc.provider == nil {
		return port.KeybindingsConfig{}, ErrNoKeybindingsProvider
	}
	return uc.provider.GetKeybindings(ctx)
}

// ExecuteDefaults returns the built-in bindings.
func (uc *GetKeybindingsUseCase) ExecuteDefaults(ctx context.Context) (port.KeybindingsConfig, error) {
	if uc == nil || uc.provider == nil {
		return port.KeybindingsConfig{}, ErrNoKeybindingsProvider
	}
	return uc.provider.GetDefaultKeybindings(ctx)
}

// CustomizedBindings returns the entries that differ from the defaults,
// unresolved ones included.
func CustomizedBindings(cfg port.KeybindingsConfig) []port.KeybindingEntry {
	var out []port.KeybindingEntry
	for _, group := range cfg.Groups {
		for _, entry := range group.Bindings {
			if entry.IsCustom || entry.Unset {
				out = append(out, entry)
			}
		}
	}
	return out
}

// FindBinding looks an entry up by command name. Dashes and case are
// ignored, so "Split-Vertical" finds split_vertical.
func FindBinding(cfg port.KeybindingsConfig, action string) (port.KeybindingEntry, bool) {
	want := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(action)), "-", "_")
	for _, group := range cfg.Groups {
		for _, entry := range group.Bindings {
			if entry.Command == want {
				return entry, true
			}
		}
	}
	return port.KeybindingEntry{}, false
}
