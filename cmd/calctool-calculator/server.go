package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/calctool/internal/calc"
	"github.com/calctool/internal/mcpserver"
)

// CalculatorServer implements the mcpserver.Handler interface for the
// calculator server
type CalculatorServer struct {
	logger *logrus.Logger
}

// NewCalculatorServer creates a new calculator server
func NewCalculatorServer() *CalculatorServer {
	return &CalculatorServer{}
}

// Name returns the name of the server
func (s *CalculatorServer) Name() string {
	return "calculator"
}

// Capabilities returns the server capabilities
func (s *CalculatorServer) Capabilities() []server.ServerOption {
	return []server.ServerOption{
		server.WithToolCapabilities(true),
	}
}

// Initialize sets up the server
func (s *CalculatorServer) Initialize(srv *server.MCPServer) error {
	pid := os.Getpid()
	logger, err := mcpserver.SetupLogger(s.Name(), pid)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	s.logger = logger

	s.logger.WithFields(logrus.Fields{
		"pid": pid,
	}).Info("Starting calculator MCP server")

	s.registerCalculateTool(srv)
	s.registerReportTool(srv)

	s.logger.Info("Calculator server initialized")
	return nil
}

// registerCalculateTool registers the single-operation calculate tool
func (s *CalculatorServer) registerCalculateTool(srv *server.MCPServer) {
	calculateTool := mcp.NewTool("calculate",
		mcp.WithDescription("Perform basic arithmetic calculations"),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("The arithmetic operation to perform"),
			mcp.Enum("add", "subtract", "multiply", "divide"),
		),
		mcp.WithNumber("x",
			mcp.Required(),
			mcp.Description("First number"),
		),
		mcp.WithNumber("y",
			mcp.Required(),
			mcp.Description("Second number"),
		),
	)

	srv.AddTool(calculateTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcpserver.HandleToolRequest(ctx, request, s.performCalculation, s.logger)
	})
}

// registerReportTool registers the full-report tool
func (s *CalculatorServer) registerReportTool(srv *server.MCPServer) {
	reportTool := mcp.NewTool("report",
		mcp.WithDescription("Compute sum, difference, product and quotient of two integers and return a labeled report"),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand (integer)"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand (integer)"),
		),
	)

	srv.AddTool(reportTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcpserver.HandleToolRequest(ctx, request, s.buildReport, s.logger)
	})
}

// performCalculation performs a single arithmetic operation
func (s *CalculatorServer) performCalculation(ctx context.Context, args map[string]interface{}) (string, error) {
	op, ok := mcpserver.ExtractStringParam(args, "operation", s.logger)
	if !ok {
		return "", fmt.Errorf("operation must be a string")
	}

	x, ok := mcpserver.ExtractNumberParam(args, "x", s.logger)
	if !ok {
		return "", fmt.Errorf("x must be a number")
	}

	y, ok := mcpserver.ExtractNumberParam(args, "y", s.logger)
	if !ok {
		return "", fmt.Errorf("y must be a number")
	}

	var result float64
	switch op {
	case "add":
		result = x + y
	case "subtract":
		result = x - y
	case "multiply":
		result = x * y
	case "divide":
		if y == 0 {
			s.logger.WithFields(logrus.Fields{
				"operation": op,
				"x":         x,
				"y":         y,
				"error":     "division by zero",
			}).Error("Calculation error")
			return "", fmt.Errorf("division by zero is not allowed")
		}
		result = x / y
	default:
		s.logger.WithFields(logrus.Fields{
			"operation": op,
			"error":     "unknown operation",
		}).Error("Calculation error")
		return "", fmt.Errorf("unknown operation: %s", op)
	}

	s.logger.WithFields(logrus.Fields{
		"operation": op,
		"x":         x,
		"y":         y,
		"result":    result,
	}).Info("Calculation performed")

	return fmt.Sprintf("Result: %.2f", result), nil
}

// buildReport computes all four results for a pair of integer operands
func (s *CalculatorServer) buildReport(ctx context.Context, args map[string]interface{}) (string, error) {
	a, ok := mcpserver.ExtractNumberParam(args, "a", s.logger)
	if !ok {
		return "", fmt.Errorf("a must be a number")
	}

	b, ok := mcpserver.ExtractNumberParam(args, "b", s.logger)
	if !ok {
		return "", fmt.Errorf("b must be a number")
	}

	if a != float64(int64(a)) || b != float64(int64(b)) {
		return "", fmt.Errorf("operands must be integers")
	}

	report := calc.Compute(int64(a), int64(b))

	s.logger.WithFields(logrus.Fields{
		"a":              report.A,
		"b":              report.B,
		"sum":            report.Sum,
		"difference":     report.Difference,
		"product":        report.Product,
		"divide_by_zero": report.DivideByZero,
	}).Info("Report computed")

	return report.String(), nil
}
