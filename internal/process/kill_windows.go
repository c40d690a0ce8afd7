//go:build windows

// Package process stops the headless browser together with its helper
// processes.
package process

import (
	"os/exec"
	"strconv"
)

// KillGroup terminates pid and its child processes with taskkill. Errors
// are ignored: the tree may already be gone.
func KillGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- numeric pid
}
