package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/x/xpty"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/logging"
)

// waitDelay bounds how long Wait keeps draining output after the shell
// exited while a background job still holds the pipe.
const waitDelay = 2 * time.Second

const defaultScrollback = 10000

// ErrSpawnFailed wraps every failure to start a session.
var ErrSpawnFailed = errors.New("session spawn failed")

// Spawner starts shells as child processes. It implements
// port.SessionSpawner.
type Spawner struct {
	env []string

	pty        bool
	cols, rows int
}

// NewSpawner creates a Spawner. extraEnv is appended to the inherited
// environment of every session. Shells talk over pipes unless WithPTY is
// set.
func NewSpawner(extraEnv ...string) *Spawner {
	return &Spawner{env: extraEnv}
}

// WithPTY makes the spawner attach shells to a pseudo-terminal of the
// given size, falling back to pipes when none can be opened.
func (sp *Spawner) WithPTY(cols, rows int) *Spawner {
	sp.pty = true
	sp.cols, sp.rows = cols, rows
	return sp
}

// Spawn starts the shell described by req and returns as soon as the
// process is running.
func (sp *Spawner) Spawn(ctx context.Context, req port.SpawnRequest) (port.TerminalSession, error) {
	log := logging.FromContext(ctx)

	argv := strings.Fields(req.Shell)
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: no shell configured", ErrSpawnFailed)
	}
	if req.WorkingDir != "" {
		info, err := os.Stat(req.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("%w: working dir: %v", ErrSpawnFailed, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: working dir %s is not a directory", ErrSpawnFailed, req.WorkingDir)
		}
	}

	limit := req.Appearance.ScrollbackLines
	if limit <= 0 {
		limit = defaultScrollback
	}

	id := uuid.NewString()
	s := &Session{
		id:         id,
		paneID:     req.PaneID,
		out:        NewScrollback(limit),
		exited:     make(chan port.SessionExit, 1),
		done:       make(chan struct{}),
		output:     make(chan struct{}, 1),
		appearance: req.Appearance,
		log: log.With().
			Str("session_id", id).
			Str("pane_id", string(req.PaneID)).
			Logger(),
	}

	// The spawn context only covers startup; the session outlives it.
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = req.WorkingDir
	cmd.Env = append(os.Environ(), "TERM=dumb", "TESSERA_PANE_ID="+string(req.PaneID))
	cmd.Env = append(cmd.Env, sp.env...)
	cmd.WaitDelay = waitDelay
	s.cmd = cmd

	mode := "pipe"
	if sp.pty {
		p, err := xpty.NewPty(sp.cols, sp.rows)
		if err != nil {
			log.Warn().Err(err).Msg("no pty available, using pipes")
		} else {
			mode = "pty"
			if err := startPTY(s, p); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrSpawnFailed, req.Shell, err)
			}
		}
	}
	if mode == "pipe" {
		if err := startPipes(s); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSpawnFailed, req.Shell, err)
		}
	}
	go s.wait()

	log.Info().
		Str("session_id", id).
		Str("pane_id", string(req.PaneID)).
		Str("shell", req.Shell).
		Str("io", mode).
		Int("pid", cmd.Process.Pid).
		Msg("session spawned")
	return s, nil
}

func startPipes(s *Session) error {
	cmd := s.cmd
	cmd.Stdout = notifyWriter{s: s}
	cmd.Stderr = cmd.Stdout
	detach(cmd)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	s.stdin = stdin
	return cmd.Start()
}

// startPTY runs the shell as the session leader of p. Output is pumped
// until the master reports the slave gone.
func startPTY(s *Session, p xpty.Pty) error {
	attachTTY(s.cmd)
	if err := p.Start(s.cmd); err != nil {
		_ = p.Close()
		return err
	}
	if up, ok := p.(*xpty.UnixPty); ok {
		// Only the child keeps the slave open, so reads end at its exit.
		_ = up.Slave().Close()
	}
	s.stdin = p
	s.pumped = make(chan struct{})
	go s.pump(p)
	return nil
}

// Shutdown terminates sessions concurrently and waits until each has
// been reaped or ctx is done.
func Shutdown(ctx context.Context, sessions []port.TerminalSession) error {
	log := logging.FromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)
	for _, sess := range sessions {
		if sess == nil {
			continue
		}
		g.Go(func() error {
			if err := sess.Terminate(); err != nil {
				log.Warn().Err(err).Str("session_id", sess.ID()).Msg("terminate failed")
			}
			waiter, ok := sess.(interface{ Done() <-chan struct{} })
			if !ok {
				return nil
			}
			select {
			case <-waiter.Done():
				return nil
			case <-gctx.Done():
				return fmt.Errorf("session %s still running: %w", sess.ID(), gctx.Err())
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Debug().Int("sessions", len(sessions)).Msg("all sessions stopped")
	return nil
}

var _ port.SessionSpawner = (*Spawner)(nil)
