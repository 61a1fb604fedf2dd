package session

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
)

func requireShell(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return path
}

func spawn(t *testing.T, req port.SpawnRequest) *Session {
	t.Helper()
	ts, err := NewSpawner().Spawn(context.Background(), req)
	require.NoError(t, err)
	s, ok := ts.(*Session)
	require.True(t, ok)
	t.Cleanup(func() { _ = s.Terminate() })
	return s
}

func waitExit(t *testing.T, s *Session) port.SessionExit {
	t.Helper()
	select {
	case exit, ok := <-s.Exited():
		require.True(t, ok, "exit delivered before close")
		return exit
	case <-time.After(5 * time.Second):
		t.Fatal("session did not exit")
		return port.SessionExit{}
	}
}

func TestSpawn_EchoAndExit(t *testing.T) {
	s := spawn(t, port.SpawnRequest{PaneID: "p1", Shell: requireShell(t)})

	_, err := s.Write([]byte("echo hello\nexit 3\n"))
	require.NoError(t, err)

	exit := waitExit(t, s)
	assert.Equal(t, s.ID(), exit.SessionID)
	assert.Equal(t, 3, exit.Code)
	assert.NoError(t, exit.Err)
	assert.Equal(t, []string{"hello"}, s.Tail(10))
	assert.Equal(t, entity.PaneID("p1"), s.PaneID())

	_, open := <-s.Exited()
	assert.False(t, open, "exit channel closed after one delivery")

	_, err = s.Write([]byte("echo again\n"))
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSpawn_ShellWithArguments(t *testing.T) {
	// -e makes the shell exit on the first failing command.
	s := spawn(t, port.SpawnRequest{PaneID: "p1", Shell: requireShell(t) + " -e"})

	_, err := s.Write([]byte("echo before\nfalse\necho after\n"))
	require.NoError(t, err)

	exit := waitExit(t, s)
	assert.Equal(t, 1, exit.Code)
	assert.Equal(t, []string{"before"}, s.Tail(10))
}

func TestSpawn_PTY(t *testing.T) {
	ts, err := NewSpawner().WithPTY(80, 24).Spawn(context.Background(), port.SpawnRequest{
		PaneID: "p1",
		Shell:  requireShell(t),
	})
	require.NoError(t, err)
	s := ts.(*Session)
	t.Cleanup(func() { _ = s.Terminate() })

	_, err = s.Write([]byte("echo $((6*7))\nexit 5\n"))
	require.NoError(t, err)

	exit := waitExit(t, s)
	assert.Equal(t, 5, exit.Code)
	assert.Contains(t, strings.Join(s.Tail(50), "\n"), "42")
	<-s.Done()
}

func TestSpawn_Failures(t *testing.T) {
	_, err := NewSpawner().Spawn(context.Background(), port.SpawnRequest{})
	assert.ErrorIs(t, err, ErrSpawnFailed)

	_, err = NewSpawner().Spawn(context.Background(), port.SpawnRequest{Shell: "   "})
	assert.ErrorIs(t, err, ErrSpawnFailed)

	_, err = NewSpawner().Spawn(context.Background(), port.SpawnRequest{Shell: "/nonexistent/shell"})
	assert.ErrorIs(t, err, ErrSpawnFailed)

	_, err = NewSpawner().Spawn(context.Background(), port.SpawnRequest{
		Shell:      requireShell(t),
		WorkingDir: "/nonexistent/dir",
	})
	assert.ErrorIs(t, err, ErrSpawnFailed)
}

func TestSession_WorkingDir(t *testing.T) {
	dir := t.TempDir()
	s := spawn(t, port.SpawnRequest{PaneID: "p1", Shell: requireShell(t), WorkingDir: dir})

	_, err := s.Write([]byte("pwd -P\nexit\n"))
	require.NoError(t, err)
	waitExit(t, s)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{want}, s.Tail(1))
}

func TestSession_TerminateIsIdempotent(t *testing.T) {
	s := spawn(t, port.SpawnRequest{PaneID: "p1", Shell: requireShell(t)})

	require.NoError(t, s.Terminate())
	require.NoError(t, s.Terminate())

	waitExit(t, s)
	select {
	case <-s.Done():
	default:
		t.Fatal("done not closed after exit")
	}
	assert.NoError(t, s.Terminate(), "terminate after exit")
}

func TestSession_ApplyResizesScrollback(t *testing.T) {
	s := spawn(t, port.SpawnRequest{
		PaneID:     "p1",
		Shell:      requireShell(t),
		Appearance: port.Appearance{ScrollbackLines: 100},
	})

	_, err := s.Write([]byte("for i in 1 2 3 4 5; do echo $i; done\n"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return s.out.Len() == 5 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, s.Apply(port.Appearance{ScrollbackLines: 2, Font: "Mono"}))
	assert.Equal(t, []string{"4", "5"}, s.Tail(0))
	assert.Equal(t, "Mono", s.Appearance().Font)

	require.NoError(t, s.Terminate())
	waitExit(t, s)
	assert.ErrorIs(t, s.Apply(port.Appearance{}), ErrSessionClosed)
}

func TestShutdown_WaitsForAllSessions(t *testing.T) {
	shell := requireShell(t)
	var sessions []port.TerminalSession
	for _, id := range []entity.PaneID{"a", "b", "c"} {
		sessions = append(sessions, spawn(t, port.SpawnRequest{PaneID: id, Shell: shell}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, Shutdown(ctx, sessions))

	for _, sess := range sessions {
		select {
		case <-sess.(*Session).Done():
		default:
			t.Fatalf("session %s still running", sess.ID())
		}
	}
}

func TestScrollback(t *testing.T) {
	sb := NewScrollback(3)

	_, _ = sb.Write([]byte("one\r\ntwo\n\x1b[31mred\x1b[0m\nfour"))
	assert.Equal(t, 3, sb.Len())
	assert.Equal(t, []string{"two", "red", "four"}, sb.Tail(3))
	assert.Equal(t, []string{"one", "two", "red", "four"}, sb.Tail(0))

	_, _ = sb.Write([]byte(" five\n"))
	assert.Equal(t, []string{"two", "red", "four five"}, sb.Tail(0))

	sb.SetLimit(1)
	assert.Equal(t, []string{"four five"}, sb.Tail(5))
}
