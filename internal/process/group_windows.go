//go:build windows

// Package process runs external tools in their own process group so the
// whole tree can be stopped when a command is canceled.
package process

import (
	"os/exec"
	"strconv"
	"syscall"
)

// Isolate makes cmd start in a new process group.
// Must be called before cmd.Start.
func Isolate(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CreationFlags |= syscall.CREATE_NEW_PROCESS_GROUP
}

// KillGroup terminates pid and its children with taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillGroup(pid int) error {
	if pid <= 0 {
		return syscall.EINVAL
	}
	return exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
