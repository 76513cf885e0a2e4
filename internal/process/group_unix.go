//go:build !windows

// Package process runs external tools in their own process group so the
// whole tree can be stopped when a command is canceled.
package process

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// Isolate makes cmd start as the leader of a new process group.
// Must be called before cmd.Start.
func Isolate(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// KillGroup sends SIGKILL to the process group led by pid.
func KillGroup(pid int) error {
	if pid <= 0 {
		return unix.EINVAL
	}
	return unix.Kill(-pid, unix.SIGKILL)
}
