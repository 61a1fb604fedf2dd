package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/tessera/internal/application/port"
)

// renamedKeys maps deprecated keys to their replacement.
var renamedKeys = map[string]string{
	"tab_title": "tab_title_template",
}

// Migrator implements port.ConfigMigrator by comparing the user's TOML file
// against the flattened defaults.
type Migrator struct {
	path     string
	defaults map[string]any
}

// NewMigrator creates a migrator for the file at path. keybindings are the
// built-in chords, as given to DefaultConfig.
func NewMigrator(path string, keybindings map[string]string) (*Migrator, error) {
	data, err := toml.Marshal(DefaultConfig(keybindings))
	if err != nil {
		return nil, fmt.Errorf("failed to encode defaults: %w", err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode defaults: %w", err)
	}

	defaults := make(map[string]any)
	flattenMap(raw, "", defaults)
	return &Migrator{path: path, defaults: defaults}, nil
}

// ConfigFile implements port.ConfigMigrator.
func (m *Migrator) ConfigFile() string {
	return m.path
}

// DetectChanges implements port.ConfigMigrator.
func (m *Migrator) DetectChanges() ([]port.KeyChange, error) {
	raw, err := m.readUserConfig()
	if err != nil || raw == nil {
		return nil, err
	}
	user := make(map[string]any)
	flattenMap(raw, "", user)

	var changes []port.KeyChange
	covered := make(map[string]bool)

	for _, oldKey := range sortedKeys(renamedKeys) {
		newKey := renamedKeys[oldKey]
		value, ok := user[oldKey]
		if !ok {
			continue
		}
		if _, exists := user[newKey]; exists {
			changes = append(changes, port.KeyChange{Type: port.KeyChangeRemoved, OldKey: oldKey})
			continue
		}
		changes = append(changes, port.KeyChange{
			Type:   port.KeyChangeRenamed,
			OldKey: oldKey,
			NewKey: newKey,
			Value:  formatValue(value),
		})
		covered[newKey] = true
	}

	for _, key := range sortedKeys(m.defaults) {
		if _, ok := user[key]; ok || covered[key] {
			continue
		}
		changes = append(changes, port.KeyChange{
			Type:   port.KeyChangeAdded,
			NewKey: key,
			Value:  formatValue(m.defaults[key]),
		})
	}
	return changes, nil
}

// Migrate implements port.ConfigMigrator. Values already in the file are
// kept; comments are not.
func (m *Migrator) Migrate() ([]string, error) {
	changes, err := m.DetectChanges()
	if err != nil || len(changes) == 0 {
		return nil, err
	}
	raw, err := m.readUserConfig()
	if err != nil {
		return nil, err
	}
	user := make(map[string]any)
	flattenMap(raw, "", user)

	applied := make([]string, 0, len(changes))
	for _, change := range changes {
		switch change.Type {
		case port.KeyChangeRenamed:
			if err := setPath(raw, change.NewKey, user[change.OldKey]); err != nil {
				return nil, err
			}
			deletePath(raw, change.OldKey)
			applied = append(applied, fmt.Sprintf("%s -> %s", change.OldKey, change.NewKey))
		case port.KeyChangeRemoved:
			deletePath(raw, change.OldKey)
			applied = append(applied, fmt.Sprintf("(deprecated: %s)", change.OldKey))
		case port.KeyChangeAdded:
			if err := setPath(raw, change.NewKey, m.defaults[change.NewKey]); err != nil {
				return nil, err
			}
			applied = append(applied, change.NewKey)
		}
	}

	var buf bytes.Buffer
	buf.WriteString(schemaDirective)
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(m.path, buf.Bytes(), filePerm); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}
	return applied, nil
}

// readUserConfig parses the user's file. A missing file yields nil.
func (m *Migrator) readUserConfig() (map[string]any, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	raw := make(map[string]any)
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, m.path, err)
	}
	return raw, nil
}

// flattenMap recursively flattens nested tables to dot-notation keys.
func flattenMap(data map[string]any, prefix string, result map[string]any) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenMap(nested, key, result)
			continue
		}
		result[key] = v
	}
}

func setPath(data map[string]any, key string, value any) error {
	parts := strings.Split(key, ".")
	current := data
	for i, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			table := make(map[string]any)
			current[part] = table
			current = table
			continue
		}
		table, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %s: %s is not a table", key, strings.Join(parts[:i+1], "."))
		}
		current = table
	}
	current[parts[len(parts)-1]] = value
	return nil
}

func deletePath(data map[string]any, key string) {
	parts := strings.Split(key, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		table, ok := current[part].(map[string]any)
		if !ok {
			return
		}
		current = table
	}
	delete(current, parts[len(parts)-1])
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case nil:
		return `""`
	default:
		return fmt.Sprint(val)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ port.ConfigMigrator = (*Migrator)(nil)
