//go:build !(linux || darwin)

package session

import (
	"errors"
	"os"
	"os/exec"
)

func detach(*exec.Cmd) {}

func attachTTY(*exec.Cmd) {}

func terminateGroup(cmd *exec.Cmd) error {
	return killGroup(cmd)
}

func killGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	err := cmd.Process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
