//go:build linux || darwin

package session

import (
	"errors"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// detach puts the shell in its own process group so that signals reach
// every job it started.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// attachTTY makes the shell a session leader whose controlling terminal
// is its stdin. The new session is also a new process group.
func attachTTY(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true, Ctty: 0}
}

func terminateGroup(cmd *exec.Cmd) error {
	return signalGroup(cmd, unix.SIGTERM)
}

func killGroup(cmd *exec.Cmd) error {
	return signalGroup(cmd, unix.SIGKILL)
}

func signalGroup(cmd *exec.Cmd, sig unix.Signal) error {
	if cmd.Process == nil {
		return nil
	}
	err := unix.Kill(-cmd.Process.Pid, sig)
	if errors.Is(err, unix.ESRCH) {
		return nil
	}
	return err
}
