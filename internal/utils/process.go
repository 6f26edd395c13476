package utils

import (
	"fmt"
	"os"
	"syscall"
)

// TerminateProcess sends a SIGTERM signal to gracefully terminate a process
func TerminateProcess(pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("process not found: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to terminate process: %w", err)
	}

	return nil
}

// IsProcessRunning checks if a process with the given PID is still running.
// On Unix FindProcess always succeeds, so signal 0 probes for existence.
func IsProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}
