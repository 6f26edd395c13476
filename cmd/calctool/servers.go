package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/urfave/cli/v2"

	"github.com/calctool/internal/logging"
	"github.com/calctool/internal/utils"
)

// runCommand returns the command that launches an MCP server binary
func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run an MCP server",
		Description: `Run an MCP server with the specified name.
The server binary must be in the same directory as calctool or in the PATH.`,
		ArgsUsage: "<server>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				fmt.Println("Available servers:")
				if err := listAvailableServers("  "); err != nil {
					fmt.Println("  No servers found")
				}
				return fmt.Errorf("no server specified")
			}

			serverName := c.Args().First()
			if !serverExists(serverName) {
				utils.PrintError("Server '%s' not found", serverName)
				utils.PrintInfo("Run 'calctool ls' to see available servers")
				return fmt.Errorf("server not found")
			}

			return executeServer(serverName, c.Args().Slice()[1:])
		},
		BashComplete: completeAvailableServers,
	}
}

// lsCommand returns the command that lists installed server binaries
func lsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "List available MCP servers",
		Action: func(c *cli.Context) error {
			if err := listAvailableServers(""); err != nil {
				utils.PrintError("Failed to get available servers: %v", err)
				return err
			}
			return nil
		},
	}
}

// psCommand returns the command that lists running servers
func psCommand() *cli.Command {
	return &cli.Command{
		Name:  "ps",
		Usage: "List running MCP servers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
			&cli.BoolFlag{
				Name:  "no-header",
				Usage: "Don't print header row",
			},
		},
		Action: func(c *cli.Context) error {
			records, err := loadActiveRecords()
			if err != nil {
				utils.PrintError("Failed to read server records: %v", err)
				return err
			}

			return displayServerRecords(records, c.String("format"), !c.Bool("no-header"))
		},
	}
}

// stopCommand returns the command that terminates running servers
func stopCommand() *cli.Command {
	return &cli.Command{
		Name:      "stop",
		Usage:     "Stop a running MCP server",
		ArgsUsage: "<server>",
		Description: `Stop a running MCP server gracefully. If multiple instances of the
server are running, specify which one with --pid or stop them all with --all.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Stop all instances of the specified server",
			},
			&cli.IntFlag{
				Name:  "pid",
				Usage: "Stop a specific instance by PID",
			},
		},
		Action: stopAction,
	}
}

// stopAction handles the stop command
func stopAction(c *cli.Context) error {
	var serverName string
	if c.NArg() > 0 {
		serverName = c.Args().First()
	}

	pid := c.Int("pid")
	all := c.Bool("all")

	records, err := loadActiveRecords()
	if err != nil {
		utils.PrintError("Failed to read server records: %v", err)
		return err
	}

	if serverName == "" && pid == 0 {
		if len(records) == 0 {
			fmt.Println("No running MCP servers found")
		} else {
			fmt.Println("Running servers:")
			for _, record := range records {
				fmt.Printf("  %s (PID: %d, Uptime: %s)\n",
					record.Name, record.PID, utils.FormatUptime(record.StartTime))
			}
		}
		return fmt.Errorf("no server specified")
	}

	var matching, remaining []utils.ServerRecord
	for _, record := range records {
		if (serverName != "" && record.Name == serverName) || (pid > 0 && record.PID == pid) {
			matching = append(matching, record)
		} else {
			remaining = append(remaining, record)
		}
	}

	if len(matching) == 0 {
		if serverName != "" {
			utils.PrintError("Server '%s' not found or not running", serverName)
		} else {
			utils.PrintError("Process with PID %d not found or not an MCP server", pid)
		}
		utils.PrintInfo("Run 'calctool ps' to see running servers")
		return fmt.Errorf("server not found")
	}

	if len(matching) > 1 && !all && pid == 0 {
		utils.PrintInfo("Multiple instances of server '%s' are running:", serverName)
		for i, record := range matching {
			utils.PrintInfo("  %d. PID: %d, Uptime: %s", i+1, record.PID, utils.FormatUptime(record.StartTime))
		}
		utils.PrintInfo("Use --pid to specify which instance to stop, or --all to stop all instances")
		return fmt.Errorf("multiple instances found")
	}

	stopped := 0
	for _, record := range matching {
		if err := utils.TerminateProcess(record.PID); err != nil {
			utils.PrintError("Failed to stop server '%s' (PID: %d): %v", record.Name, record.PID, err)
			remaining = append(remaining, record)
			continue
		}
		stopped++
		utils.PrintInfo("Server '%s' (PID: %d) stopped successfully", record.Name, record.PID)
	}

	if err := utils.WriteServerRecords(remaining); err != nil {
		utils.PrintError("Failed to update server records: %v", err)
		// Not fatal, the stale record is dropped on the next read
	}

	if stopped > 1 {
		utils.PrintInfo("All %d instances stopped successfully", stopped)
	}

	return nil
}

// executeServer runs a server binary with stdio wired through for MCP and
// its output teed into the server log file.
func executeServer(serverName string, args []string) error {
	binaryName := utils.BinaryPrefix + serverName

	binaryPath, err := utils.GetBinaryPath(binaryName)
	if err != nil {
		utils.PrintError("Server '%s' not found: %v", serverName, err)
		return err
	}

	cmd := exec.Command(binaryPath, args...)
	cmd.Stdin = os.Stdin

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", binaryName, err)
	}

	logger, err := logging.NewLogger(serverName, cmd.Process.Pid)
	if err != nil {
		utils.PrintError("Failed to set up logging: %v", err)
		go io.Copy(os.Stdout, stdoutPipe)
		go io.Copy(os.Stderr, stderrPipe)
	} else {
		logger.WithField("args", args).Info("Starting MCP server")

		logWriter := logger.GetLogWriter()
		go io.Copy(io.MultiWriter(os.Stdout, logWriter), stdoutPipe)
		go io.Copy(io.MultiWriter(os.Stderr, logWriter), stderrPipe)
	}

	if err := utils.AddServerRecord(serverName, cmd.Process.Pid); err != nil {
		utils.PrintError("Failed to record server process: %v", err)
		// Not fatal, ps just won't see this instance
	}

	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("failed to execute %s: %w", binaryName, err)
	}

	return nil
}

// loadActiveRecords reads the server records, drops stale entries, and
// persists the cleanup when anything was dropped.
func loadActiveRecords() ([]utils.ServerRecord, error) {
	records, err := utils.ReadServerRecords()
	if err != nil {
		return nil, err
	}

	active := utils.CleanupStaleRecords(records)
	if len(active) != len(records) {
		if err := utils.WriteServerRecords(active); err != nil {
			utils.PrintError("Failed to update server records: %v", err)
		}
	}

	return active, nil
}

// serverExists reports whether a server binary with this name is installed.
func serverExists(serverName string) bool {
	servers, err := utils.GetAvailableServers()
	if err != nil {
		return false
	}
	for _, server := range servers {
		if server == serverName {
			return true
		}
	}
	return false
}

// listAvailableServers prints the installed server names with optional indentation
func listAvailableServers(indent string) error {
	servers, err := utils.GetAvailableServers()
	if err != nil {
		return err
	}

	if len(servers) == 0 {
		fmt.Println(indent + "No MCP servers available")
		return nil
	}

	for _, server := range servers {
		fmt.Println(indent + server)
	}

	return nil
}

// completeAvailableServers prints server names for shell completion
func completeAvailableServers(c *cli.Context) {
	if c.NArg() > 0 {
		return
	}

	servers, err := utils.GetAvailableServers()
	if err != nil {
		return
	}
	for _, server := range servers {
		fmt.Println(server)
	}
}
