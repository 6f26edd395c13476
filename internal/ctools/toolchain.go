// Package ctools wraps the C toolchain used by the ctools MCP server:
// compiling source with gcc and disassembling objects with objdump.
package ctools

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/calctool/internal/config"
)

const (
	// DefaultCompileOptions are the gcc flags used when a request does not
	// override them
	DefaultCompileOptions = "-O0 -std=c17"

	// DefaultDisassembleOptions are the objdump flags used when a request
	// does not override them
	DefaultDisassembleOptions = "-d -M intel -S"

	// DefaultOutputFile is the object file name used when a compile request
	// does not name one
	DefaultOutputFile = "output.o"
)

// Toolchain invokes the configured compiler and disassembler.
type Toolchain struct {
	GCC     string
	Objdump string
}

// New creates a toolchain from a server configuration.
func New(cfg *config.Config) *Toolchain {
	return &Toolchain{
		GCC:     cfg.GCCPath,
		Objdump: cfg.ObjdumpPath,
	}
}

// compileArgs builds the gcc argument list for compiling source read from
// stdin into outputFile.
func compileArgs(options, outputFile string) []string {
	args := strings.Fields(options)
	return append(args, "-xc", "-c", "-", "-o", outputFile)
}

// disassembleArgs builds the objdump argument list for objectFile.
func disassembleArgs(options, objectFile string) []string {
	return append(strings.Fields(options), objectFile)
}

// Compile pipes source through gcc and writes the object file. On a
// compiler failure the error carries gcc's stderr output.
func (tc *Toolchain) Compile(ctx context.Context, source, outputFile, options string) error {
	cmd := exec.CommandContext(ctx, tc.GCC, compileArgs(options, outputFile)...)
	cmd.Stdin = strings.NewReader(source)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("gcc: %s", msg)
		}
		return fmt.Errorf("gcc: %w", err)
	}

	return nil
}

// Disassemble runs objdump on an object file and returns the assembly
// listing.
func (tc *Toolchain) Disassemble(ctx context.Context, objectFile, options string) (string, error) {
	cmd := exec.CommandContext(ctx, tc.Objdump, disassembleArgs(options, objectFile)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("objdump: %s", msg)
		}
		return "", fmt.Errorf("objdump: %w", err)
	}

	return stdout.String(), nil
}

// DisassembleSource compiles source into a temporary object file,
// disassembles it, and cleans the object file up afterwards.
func (tc *Toolchain) DisassembleSource(ctx context.Context, source, options string) (string, error) {
	tmp, err := os.CreateTemp("", "calctool-*.o")
	if err != nil {
		return "", fmt.Errorf("failed to create temp object file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := tc.Compile(ctx, source, tmpPath, DefaultCompileOptions); err != nil {
		return "", err
	}

	return tc.Disassemble(ctx, tmpPath, options)
}
