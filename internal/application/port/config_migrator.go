package port

// KeyChangeType classifies a difference between a user config and the
// current defaults.
type KeyChangeType int

const (
	// KeyChangeAdded is a default key missing from the user file.
	KeyChangeAdded KeyChangeType = iota
	// KeyChangeRenamed is a deprecated key whose value moves to a new key.
	KeyChangeRenamed
	// KeyChangeRemoved is a deprecated key shadowed by its replacement.
	KeyChangeRemoved
)

func (t KeyChangeType) String() string {
	switch t {
	case KeyChangeAdded:
		return "added"
	case KeyChangeRenamed:
		return "renamed"
	case KeyChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// KeyChange is one edit a migration would make, keys in dot notation.
type KeyChange struct {
	Type   KeyChangeType
	OldKey string
	NewKey string
	// Value is the TOML rendering of the value written to NewKey.
	Value string
}

// ConfigMigrator brings a config file up to date with the defaults.
type ConfigMigrator interface {
	// DetectChanges lists what Migrate would do. A missing file has none.
	DetectChanges() ([]KeyChange, error)
	// Migrate rewrites the file and returns a line per applied change.
	Migrate() ([]string, error)
	// ConfigFile is the file being migrated.
	ConfigFile() string
}
