// Package ui hosts the multiplexer in a terminal with Bubble Tea.
package ui

import (
	"context"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/usecase"
)

// Dependencies holds all injected dependencies for the UI layer.
type Dependencies struct {
	Ctx      context.Context
	Settings port.SettingsSource
	Themes   port.ThemeLoader
	Spawner  port.SessionSpawner

	// ConfigErr is the error of the first config load, if any. The UI
	// starts on defaults and reports it in the status bar.
	ConfigErr error

	// Optional; built from Spawner and a UUID generator when nil.
	TabsUC   *usecase.ManageTabsUseCase
	PanesUC  *usecase.ManagePanesUseCase
	ReloadUC *usecase.ReloadAppearanceUseCase
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Settings == nil {
		return ErrMissingDependency("Settings")
	}
	if d.Spawner == nil && (d.TabsUC == nil || d.PanesUC == nil) {
		return ErrMissingDependency("Spawner")
	}
	return nil
}

// withDefaults fills the optional use cases.
func (d *Dependencies) withDefaults() {
	ids := usecase.NewUUIDGenerator()
	if d.TabsUC == nil {
		d.TabsUC = usecase.NewManageTabsUseCase(ids, d.Spawner)
	}
	if d.PanesUC == nil {
		d.PanesUC = usecase.NewManagePanesUseCase(ids, d.Spawner)
	}
	if d.ReloadUC == nil {
		d.ReloadUC = usecase.NewReloadAppearanceUseCase(d.Settings, d.Themes)
	}
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
