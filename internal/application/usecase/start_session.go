package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
)

// ErrNoSpawner is recorded on panes created without a session spawner.
var ErrNoSpawner = errors.New("no session spawner configured")

// startSession spawns the session for pane and hands it over. A failure
// leaves the pane in the failed state and is returned for reporting; it
// never prevents the pane from being placed in the layout.
func startSession(ctx context.Context, spawner port.SessionSpawner, pane *entity.Pane, req port.SpawnRequest) error {
	log := logging.FromContext(ctx)

	if spawner == nil {
		pane.Fail(ErrNoSpawner)
		return ErrNoSpawner
	}

	session, err := spawner.Spawn(ctx, req)
	if err == nil && session == nil {
		err = fmt.Errorf("spawner returned no session")
	}
	if err != nil {
		pane.Fail(err)
		log.Error().
			Err(err).
			Str("pane_id", string(pane.ID)).
			Str("shell", req.Shell).
			Msg("session spawn failed")
		return err
	}

	pane.Attach(session)
	log.Debug().
		Str("pane_id", string(pane.ID)).
		Str("session_id", session.ID()).
		Msg("session attached")
	return nil
}
