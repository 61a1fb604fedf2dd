package port

import (
	"context"

	"github.com/bnema/tessera/internal/domain/entity"
)

// Appearance is the data applied to a terminal session at spawn time and
// again on every config/theme reload.
type Appearance struct {
	Font            string
	FontSize        int
	ScrollbackLines int
	Theme           *entity.Theme
}

// SpawnRequest describes the session to start for a new pane.
type SpawnRequest struct {
	PaneID     entity.PaneID
	Shell      string
	WorkingDir string
	Appearance Appearance
}

// SessionExit is delivered once when a session's process ends.
type SessionExit struct {
	SessionID string
	Code      int
	Err       error
}

// TerminalSession is an opaque running terminal session.
type TerminalSession interface {
	entity.SessionHandle
	// Apply pushes new appearance data to the running session.
	Apply(appearance Appearance) error
	// Exited is closed after delivering exactly one SessionExit.
	Exited() <-chan SessionExit
}

// SessionSpawner starts terminal sessions. Spawn must not wait for the
// session to end.
type SessionSpawner interface {
	Spawn(ctx context.Context, req SpawnRequest) (TerminalSession, error)
}
