package usecase

import (
	"context"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/logging"
)

// CheckConfigMigrationOutput lists what a migration would change.
type CheckConfigMigrationOutput struct {
	NeedsMigration bool
	Changes        []port.KeyChange
	ConfigFile     string
}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// Applied has one line per change written to the file.
	Applied    []string
	ConfigFile string
}

// MigrateConfigUseCase brings the user's config file up to date with the
// built-in defaults.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// Check reports the changes Execute would apply without touching the file.
func (uc *MigrateConfigUseCase) Check(ctx context.Context) (*CheckConfigMigrationOutput, error) {
	log := logging.FromContext(ctx)

	changes, err := uc.migrator.DetectChanges()
	if err != nil {
		log.Warn().Err(err).Msg("config migration check failed")
		return nil, err
	}

	out := &CheckConfigMigrationOutput{
		NeedsMigration: len(changes) > 0,
		Changes:        changes,
		ConfigFile:     uc.migrator.ConfigFile(),
	}
	log.Debug().
		Int("changes", len(changes)).
		Str("config_file", out.ConfigFile).
		Msg("config migration check completed")
	return out, nil
}

// Execute adds missing default keys and moves deprecated ones.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)
	configFile := uc.migrator.ConfigFile()

	changes, err := uc.migrator.DetectChanges()
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		log.Debug().Msg("no migration needed")
		return &MigrateConfigOutput{ConfigFile: configFile}, nil
	}

	applied, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Msg("config migration failed")
		return nil, err
	}

	log.Info().
		Int("applied", len(applied)).
		Str("config_file", configFile).
		Msg("config migration completed")

	return &MigrateConfigOutput{Applied: applied, ConfigFile: configFile}, nil
}
