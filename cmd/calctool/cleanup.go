package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/calctool/internal/logging"
	"github.com/calctool/internal/utils"
)

// cleanupCommand returns the cleanup command
func cleanupCommand() *cli.Command {
	return &cli.Command{
		Name:  "cleanup",
		Usage: "Clean up logs from MCP servers that are no longer running",
		Description: `Clean up logs from MCP servers that are no longer running.
This removes log files whose process has exited, removes server log
directories whose newest log is older than the threshold, and drops stale
entries from the running-servers file.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Usage:   "Remove logs older than this many days",
				Value:   30,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show what would be deleted without actually deleting",
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Skip confirmation prompts",
			},
		},
		Action: cleanupAction,
	}
}

// cleanupAction handles the cleanup command
func cleanupAction(c *cli.Context) error {
	days := c.Int("days")
	dryRun := c.Bool("dry-run")
	force := c.Bool("force")

	if err := cleanupServerRecords(dryRun); err != nil {
		return err
	}

	filesToRemove, dirsToRemove, bytesToFree, err := collectRemovableLogs(days)
	if err != nil {
		return err
	}

	if len(filesToRemove) == 0 && len(dirsToRemove) == 0 {
		utils.PrintInfo("No logs to clean up")
		return nil
	}

	utils.PrintInfo("Cleanup summary:")
	if len(dirsToRemove) > 0 {
		utils.PrintInfo("  Directories to remove: %d", len(dirsToRemove))
	}
	if len(filesToRemove) > 0 {
		utils.PrintInfo("  Log files to remove: %d", len(filesToRemove))
	}
	utils.PrintInfo("  Total space to be freed: %s", formatBytes(bytesToFree))

	if dryRun {
		utils.PrintInfo("Dry run completed. No files were actually removed.")
		return nil
	}

	if !force && !confirmAction("Do you want to proceed with cleanup?") {
		utils.PrintInfo("Cleanup cancelled")
		return nil
	}

	for _, filePath := range filesToRemove {
		if err := os.Remove(filePath); err != nil {
			utils.PrintError("Failed to remove file %s: %v", filePath, err)
		}
	}
	for _, dirPath := range dirsToRemove {
		if err := os.RemoveAll(dirPath); err != nil {
			utils.PrintError("Failed to remove directory %s: %v", dirPath, err)
		}
	}

	utils.PrintInfo("Removed %d directories and %d log files, freeing %s",
		len(dirsToRemove), len(filesToRemove), formatBytes(bytesToFree))
	return nil
}

// cleanupServerRecords drops records of processes that have exited
func cleanupServerRecords(dryRun bool) error {
	records, err := utils.ReadServerRecords()
	if err != nil {
		utils.PrintError("Failed to read server records: %v", err)
		return err
	}

	active := utils.CleanupStaleRecords(records)
	removed := len(records) - len(active)
	if removed == 0 {
		return nil
	}

	if dryRun {
		utils.PrintInfo("Would remove %d stale server records (dry run)", removed)
		return nil
	}

	if err := utils.WriteServerRecords(active); err != nil {
		utils.PrintError("Failed to update server records: %v", err)
		return err
	}
	utils.PrintInfo("Removed %d stale server records", removed)
	return nil
}

// collectRemovableLogs walks the log tree and decides what can go: log
// files of dead processes always, whole server directories when every log
// in them is older than the threshold.
func collectRemovableLogs(days int) (files, dirs []string, bytes int64, err error) {
	logDir, err := logging.GetLogDirectory()
	if err != nil {
		return nil, nil, 0, err
	}

	serverDirs, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, 0, nil
		}
		return nil, nil, 0, err
	}

	threshold := time.Now().AddDate(0, 0, -days)

	for _, serverDir := range serverDirs {
		if !serverDir.IsDir() {
			continue
		}
		serverPath := filepath.Join(logDir, serverDir.Name())

		entries, err := os.ReadDir(serverPath)
		if err != nil {
			utils.PrintError("Failed to read server directory %s: %v", serverDir.Name(), err)
			continue
		}

		var (
			hasActive     bool
			inactiveFiles []string
			newestLog     time.Time
			logCount      int
		)

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()

			var pid int
			if _, err := fmt.Sscanf(name, "server_%d.log", &pid); err != nil {
				continue
			}
			logCount++

			filePath := filepath.Join(serverPath, name)
			if info, err := os.Stat(filePath); err == nil && info.ModTime().After(newestLog) {
				newestLog = info.ModTime()
			}

			if utils.IsProcessRunning(pid) {
				hasActive = true
			} else {
				inactiveFiles = append(inactiveFiles, filePath)
			}
		}

		switch {
		case logCount == 0, !hasActive && newestLog.Before(threshold):
			dirs = append(dirs, serverPath)
			if size, err := dirSize(serverPath); err == nil {
				bytes += size
			}
		default:
			files = append(files, inactiveFiles...)
			for _, filePath := range inactiveFiles {
				if info, err := os.Stat(filePath); err == nil {
					bytes += info.Size()
				}
			}
		}
	}

	return files, dirs, bytes, nil
}

// dirSize returns the total size of all files in a directory
func dirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}

// formatBytes formats bytes into a human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// confirmAction asks the user for confirmation
func confirmAction(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var response string
	fmt.Scanln(&response)
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
