package port

import "context"

// KeybindingEntry is one command of a KeybindingGroup. Keys is empty when
// the command is unbound, and Unset marks a configured chord that did not
// resolve.
type KeybindingEntry struct {
	Command     string   `json:"command"`
	Description string   `json:"description"`
	Keys        []string `json:"keys"`
	DefaultKeys []string `json:"default_keys"`
	IsCustom    bool     `json:"is_custom"`
	Unset       bool     `json:"unset"`
}

// KeybindingGroup gathers commands of one family: tabs, panes, focus or
// application.
type KeybindingGroup struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Bindings    []KeybindingEntry `json:"bindings"`
}

type KeybindingsConfig struct {
	Groups []KeybindingGroup `json:"groups"`
}

// KeybindingsProvider projects a command table for display.
type KeybindingsProvider interface {
	GetKeybindings(ctx context.Context) (KeybindingsConfig, error)
	GetDefaultKeybindings(ctx context.Context) (KeybindingsConfig, error)
}
