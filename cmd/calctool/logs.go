package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hpcloud/tail"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/calctool/internal/logging"
	"github.com/calctool/internal/utils"
)

// logFile locates one server log file on disk.
type logFile struct {
	Path       string
	ServerName string
	PID        int
}

// logEntry is a parsed log line ready for display.
type logEntry struct {
	Entry *logrus.Entry
	Line  string
}

// logsCommand returns the logs command
func logsCommand() *cli.Command {
	return &cli.Command{
		Name:    "logs",
		Aliases: []string{"log"},
		Usage:   "View MCP server logs",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "follow",
				Aliases: []string{"f"},
				Usage:   "Follow log output",
			},
			&cli.IntFlag{
				Name:    "lines",
				Aliases: []string{"n"},
				Usage:   "Number of lines to show",
				Value:   20,
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "Show logs for all servers, not just active ones",
			},
		},
		ArgsUsage: "[server]",
		Action:    logsAction,
	}
}

// logsAction handles the logs command
func logsAction(c *cli.Context) error {
	var serverName string
	if c.NArg() > 0 {
		serverName = c.Args().First()
	}

	showAll := c.Bool("all")

	activeServers := make(map[string]bool)
	if !showAll {
		records, err := loadActiveRecords()
		if err != nil {
			utils.PrintError("Failed to read server records: %v", err)
			return err
		}
		for _, record := range records {
			activeServers[record.Name] = true
		}
	}

	logFiles, err := findLogFiles(serverName, activeServers, showAll)
	if err != nil {
		return err
	}
	if len(logFiles) == 0 {
		if serverName != "" {
			utils.PrintError("No logs found for server '%s'", serverName)
		} else {
			utils.PrintError("No logs found")
		}
		return nil
	}

	if c.Bool("follow") {
		return followLogs(logFiles)
	}
	return showLogs(logFiles, c.Int("lines"))
}

// showLogs prints the last n lines of each log file, merged by timestamp
func showLogs(logFiles []logFile, n int) error {
	formatter := logging.NewColoredFormatter()

	var entries []logEntry
	for _, lf := range logFiles {
		lines, err := readLastLines(lf.Path, n)
		if err != nil {
			utils.PrintError("Failed to read log file %s: %v", lf.Path, err)
			continue
		}

		for _, line := range lines {
			entry, err := logging.ParseJSONLogEntry(line)
			if err != nil {
				fmt.Println(line)
				continue
			}
			fillIdentity(entry, lf)
			entries = append(entries, logEntry{Entry: entry, Line: line})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Entry.Time.Before(entries[j].Entry.Time)
	})

	for _, entry := range entries {
		printEntry(formatter, entry)
	}

	return nil
}

// followLogs tails the log files and prints entries as they arrive
func followLogs(logFiles []logFile) error {
	formatter := logging.NewColoredFormatter()
	entryChan := make(chan logEntry)

	for _, lf := range logFiles {
		go func(lf logFile) {
			t, err := tail.TailFile(lf.Path, tail.Config{
				Follow:    true,
				ReOpen:    true,
				MustExist: true,
			})
			if err != nil {
				utils.PrintError("Failed to tail log file %s: %v", lf.Path, err)
				return
			}

			for line := range t.Lines {
				entry, err := logging.ParseJSONLogEntry(line.Text)
				if err != nil {
					entry = &logrus.Entry{
						Logger:  logrus.New(),
						Data:    make(logrus.Fields),
						Time:    time.Now(),
						Level:   logrus.InfoLevel,
						Message: line.Text,
					}
				}
				fillIdentity(entry, lf)
				entryChan <- logEntry{Entry: entry, Line: line.Text}
			}
		}(lf)
	}

	fmt.Println("Following logs. Press Ctrl+C to exit.")
	for entry := range entryChan {
		printEntry(formatter, entry)
	}

	return nil
}

// fillIdentity backfills server and pid fields parsed entries may lack
func fillIdentity(entry *logrus.Entry, lf logFile) {
	if _, ok := entry.Data["server"]; !ok {
		entry.Data["server"] = lf.ServerName
	}
	if _, ok := entry.Data["pid"]; !ok {
		entry.Data["pid"] = lf.PID
	}
}

func printEntry(formatter *logging.ColoredFormatter, entry logEntry) {
	formatted, err := formatter.Format(entry.Entry)
	if err != nil {
		fmt.Println(entry.Line)
		return
	}
	fmt.Print(string(formatted))
}

// findLogFiles returns the log files to display, restricted to active
// servers unless showAll is set.
func findLogFiles(serverName string, activeServers map[string]bool, showAll bool) ([]logFile, error) {
	logDir, err := logging.GetLogDirectory()
	if err != nil {
		return nil, err
	}

	serverNames := []string{serverName}
	if serverName == "" {
		dirs, err := os.ReadDir(logDir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, err
		}
		serverNames = serverNames[:0]
		for _, dir := range dirs {
			if dir.IsDir() {
				serverNames = append(serverNames, dir.Name())
			}
		}
	}

	var logFiles []logFile
	for _, name := range serverNames {
		if !showAll && !activeServers[name] {
			continue
		}

		serverDir := filepath.Join(logDir, name)
		files, err := os.ReadDir(serverDir)
		if err != nil {
			if serverName != "" {
				return nil, fmt.Errorf("no logs found for server '%s'", serverName)
			}
			continue
		}

		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".log") {
				continue
			}

			var pid int
			if _, err := fmt.Sscanf(file.Name(), "server_%d.log", &pid); err != nil {
				continue
			}

			if !showAll && !utils.IsProcessRunning(pid) {
				continue
			}

			logFiles = append(logFiles, logFile{
				Path:       filepath.Join(serverDir, file.Name()),
				ServerName: name,
				PID:        pid,
			})
		}
	}

	return logFiles, nil
}

// readLastLines reads the last n lines from a file using a ring buffer
func readLastLines(filePath string, n int) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines := make([]string, n)
	lineCount := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines[lineCount%n] = scanner.Text()
		lineCount++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if lineCount < n {
		return lines[:lineCount], nil
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = lines[(lineCount+i)%n]
	}
	return result, nil
}
