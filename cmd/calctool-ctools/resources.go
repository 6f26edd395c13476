package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/calctool/internal/ctools"
)

// samplesResourceURI identifies the disassembly samples resource.
const samplesResourceURI = "samples://disassembly"

// registerSamplesResource registers the pre-loaded code/assembly sample
// pairs as a readable resource.
func (s *CToolsServer) registerSamplesResource(srv *server.MCPServer) {
	resource := mcp.NewResource(samplesResourceURI, "disassembly_samples",
		mcp.WithResourceDescription("Pre-loaded C examples with their disassembled outputs, for priming a model to disassemble C"),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		path, err := ctools.SamplesPath()
		if err != nil {
			return nil, err
		}

		samples, err := ctools.LoadSamples(path)
		if err != nil {
			s.logger.WithError(err).Error("Failed to load samples")
			return nil, err
		}

		data, err := json.Marshal(samples)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal samples: %w", err)
		}

		s.logger.WithField("count", len(samples)).Info("Serving disassembly samples")

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      samplesResourceURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

// registerReviewPrompt registers the security review prompt.
func (s *CToolsServer) registerReviewPrompt(srv *server.MCPServer) {
	prompt := mcp.NewPrompt("review_code",
		mcp.WithPromptDescription("Review C code and its disassembly for security vulnerabilities"),
		mcp.WithArgument("code",
			mcp.ArgumentDescription("The C source code to review"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("disassembly",
			mcp.ArgumentDescription("The disassembled output of the code"),
		),
	)

	srv.AddPrompt(prompt, func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		code := request.Params.Arguments["code"]
		if code == "" {
			return nil, fmt.Errorf("code argument is required")
		}
		disassembly := request.Params.Arguments["disassembly"]

		messages := []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(
				"You are a security expert. Review the following C code and suggest fixes for "+
					"vulnerabilities: memory leaks, overflows, underflows and injection issues. "+
					"Return a list of vulnerabilities and fixes.")),
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(code)),
		}
		if disassembly != "" {
			messages = append(messages, mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(disassembly)))
		}

		return mcp.NewGetPromptResult("Security review of C code", messages), nil
	})
}
