package input

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/logging"
)

// Command is a multiplexer command a chord can trigger.
type Command string

const (
	CommandNewTab          Command = "new_tab"
	CommandCloseTab        Command = "close_tab"
	CommandRenameTab       Command = "rename_tab"
	CommandNextTab         Command = "next_tab"
	CommandPreviousTab     Command = "previous_tab"
	CommandClosePanel      Command = "close_panel"
	CommandSplitVertical   Command = "split_vertical"
	CommandSplitHorizontal Command = "split_horizontal"
	CommandFocusLeft       Command = "focus_left"
	CommandFocusRight      Command = "focus_right"
	CommandFocusUp         Command = "focus_up"
	CommandFocusDown       Command = "focus_down"
	CommandReloadConfig    Command = "reload_config"
	CommandShowKeybindings Command = "show_keybindings"
	CommandQuit            Command = "quit"
	CommandTab1            Command = "tab_1"
	CommandTab2            Command = "tab_2"
	CommandTab3            Command = "tab_3"
	CommandTab4            Command = "tab_4"
	CommandTab5            Command = "tab_5"
	CommandTab6            Command = "tab_6"
	CommandTab7            Command = "tab_7"
	CommandTab8            Command = "tab_8"
	CommandTab9            Command = "tab_9"
)

const tabCommandPrefix = "tab_"

// TabCommand returns the tab_N command for a 1-based tab number.
func TabCommand(n int) Command {
	return Command(tabCommandPrefix + strconv.Itoa(n))
}

// TabIndex returns the 0-based tab index of a tab_N command.
func (c Command) TabIndex() (int, bool) {
	rest, ok := strings.CutPrefix(string(c), tabCommandPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n - 1, true
}

// IsSoft reports whether the command lets its event through when it has
// nothing to act on.
func (c Command) IsSoft() bool {
	switch c {
	case CommandClosePanel, CommandFocusLeft, CommandFocusRight, CommandFocusUp, CommandFocusDown:
		return true
	default:
		return false
	}
}

// Commands lists every command in match priority order.
var Commands = []Command{
	CommandNewTab,
	CommandCloseTab,
	CommandRenameTab,
	CommandNextTab,
	CommandPreviousTab,
	CommandClosePanel,
	CommandSplitVertical,
	CommandSplitHorizontal,
	CommandFocusLeft,
	CommandFocusRight,
	CommandFocusUp,
	CommandFocusDown,
	CommandReloadConfig,
	CommandShowKeybindings,
	CommandQuit,
	CommandTab1,
	CommandTab2,
	CommandTab3,
	CommandTab4,
	CommandTab5,
	CommandTab6,
	CommandTab7,
	CommandTab8,
	CommandTab9,
}

// DefaultChords are the built-in bindings. Terminals cannot tell
// Ctrl+Shift+letter from Ctrl+letter, so shifted bindings use Alt.
var DefaultChords = map[Command]string{
	CommandNewTab:          "alt+shift+t",
	CommandCloseTab:        "alt+shift+w",
	CommandRenameTab:       "alt+shift+r",
	CommandNextTab:         "ctrl+page_down",
	CommandPreviousTab:     "ctrl+page_up",
	CommandClosePanel:      "ctrl+d",
	CommandSplitVertical:   "alt+shift+v",
	CommandSplitHorizontal: "alt+shift+h",
	CommandFocusLeft:       "alt+left",
	CommandFocusRight:      "alt+right",
	CommandFocusUp:         "alt+up",
	CommandFocusDown:       "alt+down",
	CommandReloadConfig:    "alt+shift+l",
	CommandShowKeybindings: "alt+shift+k",
	CommandQuit:            "alt+shift+q",
	CommandTab1:            "alt+1",
	CommandTab2:            "alt+2",
	CommandTab3:            "alt+3",
	CommandTab4:            "alt+4",
	CommandTab5:            "alt+5",
	CommandTab6:            "alt+6",
	CommandTab7:            "alt+7",
	CommandTab8:            "alt+8",
	CommandTab9:            "alt+9",
}

type commandGroup struct {
	mode        string
	displayName string
	commands    []Command
}

var commandGroups = []commandGroup{
	{"tabs", "Tabs", []Command{CommandNewTab, CommandCloseTab, CommandRenameTab,
		CommandNextTab, CommandPreviousTab,
		CommandTab1, CommandTab2, CommandTab3, CommandTab4, CommandTab5,
		CommandTab6, CommandTab7, CommandTab8, CommandTab9}},
	{"panes", "Panes", []Command{CommandSplitVertical, CommandSplitHorizontal, CommandClosePanel}},
	{"focus", "Focus", []Command{CommandFocusLeft, CommandFocusRight, CommandFocusUp, CommandFocusDown}},
	{"application", "Application", []Command{CommandReloadConfig, CommandShowKeybindings, CommandQuit}},
}

var commandDescriptions = map[Command]string{
	CommandNewTab:          "Open a new tab",
	CommandCloseTab:        "Close the active tab",
	CommandRenameTab:       "Rename the active tab",
	CommandNextTab:         "Switch to the next tab",
	CommandPreviousTab:     "Switch to the previous tab",
	CommandClosePanel:      "Close the focused pane",
	CommandSplitVertical:   "Split side by side",
	CommandSplitHorizontal: "Split stacked",
	CommandFocusLeft:       "Focus the pane to the left",
	CommandFocusRight:      "Focus the pane to the right",
	CommandFocusUp:         "Focus the pane above",
	CommandFocusDown:       "Focus the pane below",
	CommandReloadConfig:    "Reload config and theme",
	CommandShowKeybindings: "Show keybindings",
	CommandQuit:            "Quit",
}

// Description returns a human-readable summary of the command.
func (c Command) Description() string {
	if d, ok := commandDescriptions[c]; ok {
		return d
	}
	if idx, ok := c.TabIndex(); ok {
		return fmt.Sprintf("Switch to tab %d", idx+1)
	}
	return string(c)
}

// CommandTable maps every command to its chord. Commands whose configured
// chord did not resolve stay unset and never match.
type CommandTable struct {
	chords   map[Command]Chord
	defaults map[Command]Chord
	unset    map[Command]bool
}

// DefaultCommandTable returns the table of built-in bindings.
func DefaultCommandTable() *CommandTable {
	defaults := defaultChordTable()
	chords := make(map[Command]Chord, len(defaults))
	for cmd, chord := range defaults {
		chords[cmd] = chord
	}
	return &CommandTable{chords: chords, defaults: defaults, unset: map[Command]bool{}}
}

func defaultChordTable() map[Command]Chord {
	out := make(map[Command]Chord, len(DefaultChords))
	for cmd, spec := range DefaultChords {
		out[cmd] = ParseChord(spec)
	}
	return out
}

// DefaultBindings returns DefaultChords keyed by command name, the shape
// of the [keybindings] config table.
func DefaultBindings() map[string]string {
	out := make(map[string]string, len(DefaultChords))
	for cmd, spec := range DefaultChords {
		out[string(cmd)] = spec
	}
	return out
}

// NewCommandTable builds a table from configured bindings keyed by command
// name. Commands absent from bindings keep their default. A configured
// chord that does not resolve leaves the command unset.
func NewCommandTable(ctx context.Context, bindings map[string]string) *CommandTable {
	log := logging.FromContext(ctx)
	table := DefaultCommandTable()

	known := make(map[Command]bool, len(Commands))
	for _, cmd := range Commands {
		known[cmd] = true
	}

	for name, spec := range bindings {
		cmd := Command(strings.ToLower(strings.TrimSpace(name)))
		if !known[cmd] {
			log.Warn().Str("command", name).Msg("ignoring binding for unknown command")
			continue
		}
		chord, err := ParseChordStrict(spec)
		if !chord.IsSet() {
			log.Warn().Err(err).Str("command", string(cmd)).Str("chord", spec).Msg("binding unset")
			table.chords[cmd] = Chord{}
			table.unset[cmd] = true
			continue
		}
		if err != nil {
			log.Warn().Err(err).Str("command", string(cmd)).Msg("ignoring unknown chord tokens")
		}
		log.Trace().Str("command", string(cmd)).Str("chord", chord.String()).Msg("binding registered")
		table.chords[cmd] = chord
	}

	return table
}

// Chord returns the chord bound to cmd, unset if none.
func (t *CommandTable) Chord(cmd Command) Chord {
	if t == nil {
		return Chord{}
	}
	return t.chords[cmd]
}

// IsUnset reports whether cmd was configured with a chord that did not resolve.
func (t *CommandTable) IsUnset(cmd Command) bool {
	return t != nil && t.unset[cmd]
}

// Match returns the first command in priority order whose chord matches ev.
func (t *CommandTable) Match(ev KeyEvent) (Command, bool) {
	if t == nil {
		return "", false
	}
	for _, cmd := range Commands {
		if t.chords[cmd].Matches(ev) {
			return cmd, true
		}
	}
	return "", false
}

// GetKeybindings returns the live bindings grouped for display.
func (t *CommandTable) GetKeybindings(_ context.Context) (port.KeybindingsConfig, error) {
	if t == nil {
		return port.KeybindingsConfig{}, fmt.Errorf("command table is nil")
	}
	return t.project(t.chords), nil
}

// GetDefaultKeybindings returns the built-in bindings grouped for display.
func (t *CommandTable) GetDefaultKeybindings(_ context.Context) (port.KeybindingsConfig, error) {
	if t == nil {
		return port.KeybindingsConfig{}, fmt.Errorf("command table is nil")
	}
	return t.project(t.defaults), nil
}

func (t *CommandTable) project(chords map[Command]Chord) port.KeybindingsConfig {
	cfg := port.KeybindingsConfig{Groups: make([]port.KeybindingGroup, 0, len(commandGroups))}
	for _, group := range commandGroups {
		g := port.KeybindingGroup{
			ID:          group.mode,
			DisplayName: group.displayName,
			Bindings:    make([]port.KeybindingEntry, 0, len(group.commands)),
		}
		for _, cmd := range group.commands {
			chord := chords[cmd]
			def := t.defaults[cmd]
			entry := port.KeybindingEntry{
				Command:     string(cmd),
				Description: cmd.Description(),
				Keys:        chordKeys(chord),
				DefaultKeys: chordKeys(def),
				IsCustom:    chord != def,
				Unset:       !chord.IsSet(),
			}
			g.Bindings = append(g.Bindings, entry)
		}
		cfg.Groups = append(cfg.Groups, g)
	}
	return cfg
}

func chordKeys(c Chord) []string {
	if !c.IsSet() {
		return []string{}
	}
	return []string{c.String()}
}

var _ port.KeybindingsProvider = (*CommandTable)(nil)
