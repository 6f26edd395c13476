package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

// ExtractStringParam extracts a string parameter from the arguments
func ExtractStringParam(args map[string]interface{}, name string, logger *logrus.Logger) (string, bool) {
	val, ok := args[name]
	if !ok {
		logMissing(logger, name)
		return "", false
	}

	strVal, ok := val.(string)
	if !ok {
		logWrongType(logger, name, val, "string")
		return "", false
	}

	return strVal, true
}

// ExtractNumberParam extracts a number parameter from the arguments
func ExtractNumberParam(args map[string]interface{}, name string, logger *logrus.Logger) (float64, bool) {
	val, ok := args[name]
	if !ok {
		logMissing(logger, name)
		return 0, false
	}

	numVal, ok := val.(float64)
	if !ok {
		logWrongType(logger, name, val, "number")
		return 0, false
	}

	return numVal, true
}

// ExtractBoolParam extracts a boolean parameter from the arguments
func ExtractBoolParam(args map[string]interface{}, name string, logger *logrus.Logger) (bool, bool) {
	val, ok := args[name]
	if !ok {
		logMissing(logger, name)
		return false, false
	}

	boolVal, ok := val.(bool)
	if !ok {
		logWrongType(logger, name, val, "boolean")
		return false, false
	}

	return boolVal, true
}

// OptionalStringParam returns the string value of a parameter, or the
// fallback when the parameter is absent.
func OptionalStringParam(args map[string]interface{}, name, fallback string) string {
	if val, ok := args[name].(string); ok && val != "" {
		return val
	}
	return fallback
}

// OptionalBoolParam returns the boolean value of a parameter, or the
// fallback when the parameter is absent.
func OptionalBoolParam(args map[string]interface{}, name string, fallback bool) bool {
	if val, ok := args[name].(bool); ok {
		return val
	}
	return fallback
}

func logMissing(logger *logrus.Logger, name string) {
	if logger != nil {
		logger.WithField("parameter", name).Error("Missing required parameter")
	}
}

func logWrongType(logger *logrus.Logger, name string, val interface{}, want string) {
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"parameter": name,
			"value":     val,
			"expected":  want,
		}).Error("Parameter has wrong type")
	}
}

// NewErrorResult creates a new error result
func NewErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: message,
			},
		},
		IsError: true,
	}
}

// HandleToolRequest logs a tool request, runs the handler over its
// arguments, and converts the outcome into a tool result. Handler errors
// become MCP error results rather than protocol errors.
func HandleToolRequest(ctx context.Context, request mcp.CallToolRequest, handler func(ctx context.Context, args map[string]interface{}) (string, error), logger *logrus.Logger) (*mcp.CallToolResult, error) {
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"tool":      request.Params.Name,
			"arguments": request.Params.Arguments,
		}).Info("Tool request received")
	}

	result, err := handler(ctx, request.Params.Arguments)
	if err != nil {
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"tool":  request.Params.Name,
				"error": err.Error(),
			}).Error("Tool request failed")
		}
		return NewErrorResult(fmt.Sprintf("Failed to process request: %v", err)), nil
	}

	return mcp.NewToolResultText(result), nil
}
