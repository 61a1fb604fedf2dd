package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/port/mocks"
)

const migrateConfigFile = "/home/user/.config/tessera/config.toml"

func TestMigrateConfigUseCase_Check_UpToDate(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().DetectChanges().Return(nil, nil)
	migrator.EXPECT().ConfigFile().Return(migrateConfigFile)

	out, err := NewMigrateConfigUseCase(migrator).Check(context.Background())

	require.NoError(t, err)
	assert.False(t, out.NeedsMigration)
	assert.Empty(t, out.Changes)
	assert.Equal(t, migrateConfigFile, out.ConfigFile)
}

func TestMigrateConfigUseCase_Check_ReportsChanges(t *testing.T) {
	changes := []port.KeyChange{
		{Type: port.KeyChangeAdded, NewKey: "layout.tab_bar_position", Value: `"top"`},
		{Type: port.KeyChangeRenamed, OldKey: "tab_title", NewKey: "tab_title_template", Value: `"Shell"`},
	}
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().DetectChanges().Return(changes, nil)
	migrator.EXPECT().ConfigFile().Return(migrateConfigFile)

	out, err := NewMigrateConfigUseCase(migrator).Check(context.Background())

	require.NoError(t, err)
	assert.True(t, out.NeedsMigration)
	assert.Equal(t, changes, out.Changes)
}

func TestMigrateConfigUseCase_Check_Error(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	expected := errors.New("parse failed")
	migrator.EXPECT().DetectChanges().Return(nil, expected)

	out, err := NewMigrateConfigUseCase(migrator).Check(context.Background())

	require.ErrorIs(t, err, expected)
	assert.Nil(t, out)
}

func TestMigrateConfigUseCase_Execute_NothingToDo(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().ConfigFile().Return(migrateConfigFile)
	migrator.EXPECT().DetectChanges().Return(nil, nil)

	out, err := NewMigrateConfigUseCase(migrator).Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, out.Applied)
	assert.Equal(t, migrateConfigFile, out.ConfigFile)
}

func TestMigrateConfigUseCase_Execute_Migrates(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().ConfigFile().Return(migrateConfigFile)
	migrator.EXPECT().DetectChanges().Return([]port.KeyChange{
		{Type: port.KeyChangeAdded, NewKey: "keybindings.quit", Value: `"alt+shift+q"`},
	}, nil)
	migrator.EXPECT().Migrate().Return([]string{"keybindings.quit"}, nil)

	out, err := NewMigrateConfigUseCase(migrator).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"keybindings.quit"}, out.Applied)
}

func TestMigrateConfigUseCase_Execute_MigrateFails(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().ConfigFile().Return(migrateConfigFile)
	migrator.EXPECT().DetectChanges().Return([]port.KeyChange{
		{Type: port.KeyChangeAdded, NewKey: "font"},
	}, nil)
	migrator.EXPECT().Migrate().Return(nil, errors.New("read-only file system"))

	out, err := NewMigrateConfigUseCase(migrator).Execute(context.Background())

	require.Error(t, err)
	assert.Nil(t, out)
}
