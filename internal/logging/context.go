package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Field names shared by every component.
const (
	componentField = "component"
	paneIDField    = "pane_id"
	tabIDField     = "tab_id"
)

// FromContext returns the logger carried by ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every line logged through the returned context with
// the emitting component. `tessera logs` shows it as a prefix.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, componentField, component)
}

// WithPaneID tags lines with a pane.
func WithPaneID(ctx context.Context, paneID string) context.Context {
	return withField(ctx, paneIDField, paneID)
}

// WithTabID tags lines with a tab.
func WithTabID(ctx context.Context, tabID string) context.Context {
	return withField(ctx, tabIDField, tabID)
}

func withField(ctx context.Context, key, value string) context.Context {
	if value == "" {
		return ctx
	}
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}
