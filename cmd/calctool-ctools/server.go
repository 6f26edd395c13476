package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/calctool/internal/config"
	"github.com/calctool/internal/ctools"
	"github.com/calctool/internal/mcpserver"
)

// CToolsServer implements the mcpserver.Handler interface for the C
// toolchain server
type CToolsServer struct {
	logger    *logrus.Logger
	toolchain *ctools.Toolchain
}

// NewCToolsServer creates a new ctools server
func NewCToolsServer() *CToolsServer {
	return &CToolsServer{}
}

// Name returns the name of the server
func (s *CToolsServer) Name() string {
	return "ctools"
}

// Capabilities returns the server capabilities
func (s *CToolsServer) Capabilities() []server.ServerOption {
	return []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	}
}

// Initialize sets up the server
func (s *CToolsServer) Initialize(srv *server.MCPServer) error {
	pid := os.Getpid()
	logger, err := mcpserver.SetupLogger(s.Name(), pid)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	s.logger = logger

	cfg, err := config.Load(s.Name())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	s.toolchain = ctools.New(cfg)

	s.logger.WithFields(logrus.Fields{
		"pid":     pid,
		"gcc":     s.toolchain.GCC,
		"objdump": s.toolchain.Objdump,
	}).Info("Starting ctools MCP server")

	s.registerCompileTool(srv)
	s.registerDisassembleTool(srv)
	s.registerSamplesResource(srv)
	s.registerReviewPrompt(srv)

	s.logger.Info("CTools server initialized")
	return nil
}

// registerCompileTool registers the compile_c tool
func (s *CToolsServer) registerCompileTool(srv *server.MCPServer) {
	compileTool := mcp.NewTool("compile_c",
		mcp.WithDescription("Compile C source code with gcc and report the result"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("The C source code to compile"),
		),
		mcp.WithString("output_file",
			mcp.Description("Name of the output object file"),
		),
		mcp.WithString("options",
			mcp.Description("Compiler options"),
		),
		mcp.WithBoolean("verbose",
			mcp.Description("Log the full compiler invocation"),
		),
	)

	srv.AddTool(compileTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcpserver.HandleToolRequest(ctx, request, s.compile, s.logger)
	})
}

// registerDisassembleTool registers the disassemble_c tool
func (s *CToolsServer) registerDisassembleTool(srv *server.MCPServer) {
	disassembleTool := mcp.NewTool("disassemble_c",
		mcp.WithDescription("Disassemble C source code or an object file with objdump and return the assembly listing"),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("C source code, or the path to an object file"),
		),
		mcp.WithBoolean("is_source_code",
			mcp.Description("Whether input is C source code rather than a file path"),
		),
		mcp.WithString("options",
			mcp.Description("Disassembler options"),
		),
	)

	srv.AddTool(disassembleTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcpserver.HandleToolRequest(ctx, request, s.disassemble, s.logger)
	})
}

// compile handles the compile_c tool
func (s *CToolsServer) compile(ctx context.Context, args map[string]interface{}) (string, error) {
	code, ok := mcpserver.ExtractStringParam(args, "code", s.logger)
	if !ok {
		return "", fmt.Errorf("code must be a string")
	}

	outputFile := mcpserver.OptionalStringParam(args, "output_file", ctools.DefaultOutputFile)
	options := mcpserver.OptionalStringParam(args, "options", ctools.DefaultCompileOptions)
	verbose := mcpserver.OptionalBoolParam(args, "verbose", false)

	if verbose {
		s.logger.WithFields(logrus.Fields{
			"gcc":         s.toolchain.GCC,
			"options":     options,
			"output_file": outputFile,
		}).Info("Compiling C source")
	}

	if err := s.toolchain.Compile(ctx, code, outputFile, options); err != nil {
		s.logger.WithError(err).Error("Compilation failed")
		return "", err
	}

	s.logger.WithField("output_file", outputFile).Info("Compilation succeeded")
	return fmt.Sprintf("Successfully compiled to %s", outputFile), nil
}

// disassemble handles the disassemble_c tool
func (s *CToolsServer) disassemble(ctx context.Context, args map[string]interface{}) (string, error) {
	input, ok := mcpserver.ExtractStringParam(args, "input", s.logger)
	if !ok {
		return "", fmt.Errorf("input must be a string")
	}

	isSource := mcpserver.OptionalBoolParam(args, "is_source_code", true)
	options := mcpserver.OptionalStringParam(args, "options", ctools.DefaultDisassembleOptions)

	var (
		assembly string
		err      error
	)
	if isSource {
		s.logger.Info("Compiling C source before disassembly")
		assembly, err = s.toolchain.DisassembleSource(ctx, input, options)
	} else {
		s.logger.WithField("object_file", input).Info("Disassembling object file")
		assembly, err = s.toolchain.Disassemble(ctx, input, options)
	}
	if err != nil {
		s.logger.WithError(err).Error("Disassembly failed")
		return "", err
	}

	return assembly, nil
}
