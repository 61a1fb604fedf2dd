// Package session runs pane shells as child processes.
package session

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
)

// killGrace is how long a terminated process group gets before SIGKILL.
const killGrace = 2 * time.Second

// ErrSessionClosed is returned when writing to a session that has ended.
var ErrSessionClosed = errors.New("session closed")

// Session is a shell process attached to one pane. It implements
// port.TerminalSession.
type Session struct {
	id     string
	paneID entity.PaneID
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	out    *Scrollback
	log    zerolog.Logger

	exited chan port.SessionExit
	done   chan struct{}
	output chan struct{}
	pumped chan struct{} // pty sessions only

	mu         sync.Mutex
	appearance port.Appearance
	closed     bool

	termOnce sync.Once
	termErr  error
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// PaneID returns the pane the session was spawned for.
func (s *Session) PaneID() entity.PaneID {
	return s.paneID
}

// Pid returns the process id of the shell.
func (s *Session) Pid() int {
	if s.cmd.Process == nil {
		return 0
	}
	return s.cmd.Process.Pid
}

// Exited delivers one SessionExit and is then closed.
func (s *Session) Exited() <-chan port.SessionExit {
	return s.exited
}

// Done is closed once the process has been reaped.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Output receives a value whenever new output arrived since the last
// receive. Notifications are coalesced.
func (s *Session) Output() <-chan struct{} {
	return s.output
}

// Tail returns up to n of the most recent output lines.
func (s *Session) Tail(n int) []string {
	return s.out.Tail(n)
}

// Appearance returns the appearance last applied.
func (s *Session) Appearance() port.Appearance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appearance
}

// Apply stores the appearance and resizes the scrollback.
func (s *Session) Apply(appearance port.Appearance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.appearance = appearance
	if appearance.ScrollbackLines > 0 {
		s.out.SetLimit(appearance.ScrollbackLines)
	}
	return nil
}

// Write forwards input to the shell's stdin or pty.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return 0, ErrSessionClosed
	}
	n, err := s.stdin.Write(p)
	if err != nil {
		return n, fmt.Errorf("write to session %s: %w", s.id, err)
	}
	return n, nil
}

// Terminate closes stdin and sends SIGTERM to the process group, then
// SIGKILL if the group is still alive after a grace period. It does not
// wait for the process to exit and is safe to call more than once.
func (s *Session) Terminate() error {
	s.termOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		_ = s.stdin.Close()

		select {
		case <-s.done:
			return
		default:
		}

		s.termErr = terminateGroup(s.cmd)
		s.log.Debug().Err(s.termErr).Msg("session terminated")

		go func() {
			select {
			case <-s.done:
			case <-time.After(killGrace):
				s.log.Warn().Msg("session ignored SIGTERM, killing")
				_ = killGroup(s.cmd)
			}
		}()
	})
	return s.termErr
}

// wait reaps the process and delivers the exit exactly once.
func (s *Session) wait() {
	err := s.cmd.Wait()
	if s.pumped != nil {
		select {
		case <-s.pumped:
		case <-time.After(waitDelay):
			s.log.Warn().Msg("pty output still open after exit")
		}
		_ = s.stdin.Close()
	}

	exit := port.SessionExit{SessionID: s.id}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		exit.Code = exitErr.ExitCode()
	default:
		exit.Code = -1
		exit.Err = err
	}

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.log.Debug().Int("code", exit.Code).Err(exit.Err).Msg("session exited")

	close(s.done)
	s.exited <- exit
	close(s.exited)
}

// pump copies pty output into the scrollback until the pty closes.
func (s *Session) pump(r io.Reader) {
	defer close(s.pumped)
	if _, err := io.Copy(notifyWriter{s: s}, r); err != nil {
		s.log.Trace().Err(err).Msg("pty output closed")
	}
}

// notifyWriter feeds the scrollback and signals new output.
type notifyWriter struct {
	s *Session
}

func (w notifyWriter) Write(p []byte) (int, error) {
	n, err := w.s.out.Write(p)
	select {
	case w.s.output <- struct{}{}:
	default:
	}
	return n, err
}

var (
	_ port.TerminalSession = (*Session)(nil)
	_ io.Writer            = (*Session)(nil)
)
