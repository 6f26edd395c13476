// Package mcpserver contains the plumbing shared by calctool's MCP server
// binaries: the handler interface, the stdio serve loop, and helpers for
// extracting tool parameters.
package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/calctool/internal/logging"
	"github.com/calctool/internal/version"
)

// Handler defines the interface for MCP server implementations
type Handler interface {
	// Initialize sets up the server and registers all tools/resources
	Initialize(s *server.MCPServer) error

	// Name returns the display name of the server
	Name() string

	// Capabilities returns server capability options
	Capabilities() []server.ServerOption
}

// SetupLogger creates and configures a logger for an MCP server
func SetupLogger(name string, pid int) (*logrus.Logger, error) {
	log, err := logging.NewLogger(name, pid)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log.Logger, nil
}

// CreateAndRunServer creates an MCP server from the handler and serves it
// over stdio until the client disconnects.
func CreateAndRunServer(handler Handler) error {
	s := server.NewMCPServer(
		handler.Name(),
		version.Version,
		handler.Capabilities()...,
	)

	if err := handler.Initialize(s); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// NewCliApp creates the CLI app wrapping an MCP server binary
func NewCliApp(handler Handler, flags []cli.Flag, action cli.ActionFunc) *cli.App {
	if action == nil {
		action = func(c *cli.Context) error {
			return CreateAndRunServer(handler)
		}
	}

	return &cli.App{
		Name:    fmt.Sprintf("calctool-%s", handler.Name()),
		Usage:   fmt.Sprintf("calctool %s MCP server", handler.Name()),
		Version: version.Version,
		Flags:   flags,
		Action:  action,
	}
}
