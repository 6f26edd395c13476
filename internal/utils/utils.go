// Package utils contains filesystem and process helpers shared by the
// calctool frontend: server binary discovery, running-server records, and
// client configuration installs.
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// BinaryPrefix is the prefix every calctool MCP server binary carries.
const BinaryPrefix = "calctool-"

// GetBinaryPath returns the path to a calctool server binary, preferring a
// binary next to the current executable over one on the PATH.
func GetBinaryPath(binaryName string) (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}

	binaryPath := filepath.Join(filepath.Dir(execPath), binaryName)
	if _, err := os.Stat(binaryPath); err == nil {
		return binaryPath, nil
	}

	return exec.LookPath(binaryName)
}

// GetAvailableServers returns the names of the MCP server binaries found
// next to the current executable.
func GetAvailableServers() ([]string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	entries, err := os.ReadDir(filepath.Dir(execPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var servers []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), BinaryPrefix) {
			servers = append(servers, strings.TrimPrefix(entry.Name(), BinaryPrefix))
		}
	}

	return servers, nil
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// PrintInfo prints an info message to stdout
func PrintInfo(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
