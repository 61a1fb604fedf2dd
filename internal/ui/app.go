package ui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
	"github.com/bnema/tessera/internal/ui/dispatcher"
	"github.com/bnema/tessera/internal/ui/focus"
	"github.com/bnema/tessera/internal/ui/input"
	"github.com/bnema/tessera/internal/ui/mainloop"
)

const configReloadKey = "config-reload"

// App owns the tab set and runs the Bubble Tea program around it.
type App struct {
	ctx   context.Context
	deps  *Dependencies
	tabs  *entity.TabSet
	model *Model
	loop  *mainloop.Coalescer

	mu      sync.Mutex
	program *tea.Program
}

// New builds the layout with one default tab. A session that fails to
// start leaves a failed pane rather than an error.
func New(deps *Dependencies) (*App, error) {
	if deps == nil {
		return nil, ErrMissingDependency("Dependencies")
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	deps.withDefaults()

	ctx := logging.WithComponent(deps.Ctx, "ui")
	log := logging.FromContext(ctx)

	settings := deps.Settings.Settings()
	theme, themeErr := deps.ReloadUC.ResolveTheme(ctx, settings, nil)
	tabs := entity.NewTabSet(settings.TabTitleTemplate)

	d := dispatcher.NewKeyboardDispatcher(ctx, dispatcher.Deps{
		Tabs:     tabs,
		Panes:    deps.PanesUC,
		TabsUC:   deps.TabsUC,
		Reload:   deps.ReloadUC,
		Settings: deps.Settings,
		Commands: input.NewCommandTable(ctx, settings.Keybindings),
		Theme:    theme,
	})

	a := &App{
		ctx:   ctx,
		deps:  deps,
		tabs:  tabs,
		model: newModel(ctx, d, focus.NewManager(deps.PanesUC), deps.Settings),
	}
	a.loop = mainloop.NewCoalescer(a.post)

	out, err := deps.TabsUC.Create(ctx, tabs, usecase.SpawnRequestFor(settings, theme))
	if err != nil {
		return nil, fmt.Errorf("create initial tab: %w", err)
	}
	switch {
	case out.SpawnErr != nil:
		a.model.setError(fmt.Sprintf("session failed: %v", out.SpawnErr))
	case deps.ConfigErr != nil:
		a.model.setError(fmt.Sprintf("config not loaded, using defaults: %v", deps.ConfigErr))
	case themeErr != nil:
		a.model.setError(fmt.Sprintf("theme rejected: %v", themeErr))
	}

	log.Info().Str("theme", theme.Name).Int("tabs", tabs.Count()).Msg("ui ready")
	return a, nil
}

// Run blocks until the user quits or the context is canceled.
func (a *App) Run(opts ...tea.ProgramOption) error {
	log := logging.FromContext(a.ctx)

	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(a.ctx),
	}, opts...)
	p := tea.NewProgram(a.model, options...)

	a.mu.Lock()
	a.program = p
	a.mu.Unlock()
	defer func() {
		a.loop.Destroy()
		a.mu.Lock()
		a.program = nil
		a.mu.Unlock()
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	log.Debug().Msg("ui stopped")
	return nil
}

// NotifyConfigChanged schedules a reload on the UI loop. Safe to call from
// any goroutine; bursts collapse into one reload.
func (a *App) NotifyConfigChanged() {
	a.mu.Lock()
	running := a.program != nil
	a.mu.Unlock()
	if !running {
		return
	}
	a.loop.Post(configReloadKey, a.model.reloadConfig)
}

// post hands fn to the running program. Work posted while no program
// runs is dropped.
func (a *App) post(fn func()) {
	a.mu.Lock()
	p := a.program
	a.mu.Unlock()
	if p == nil {
		logging.FromContext(a.ctx).Debug().Msg("no ui loop, posted work dropped")
		return
	}
	go p.Send(postedMsg{fn: fn})
}

// Tabs returns the tab set. Only read it from the UI loop or after Run
// returned.
func (a *App) Tabs() *entity.TabSet {
	return a.tabs
}

// Sessions returns every live session of every tab.
func (a *App) Sessions() []port.TerminalSession {
	var out []port.TerminalSession
	for _, tab := range a.tabs.Tabs {
		if tab.Tree == nil {
			continue
		}
		for _, pane := range tab.Tree.Panes() {
			if sess, ok := pane.Session.(port.TerminalSession); ok {
				out = append(out, sess)
			}
		}
	}
	return out
}
