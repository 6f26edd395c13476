package calc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Session runs a single interactive calculation: prompt for two integers,
// compute the report, print it. Input and output are injected so tests can
// drive a session with buffers.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewSession creates a session reading operands from in and writing prompts
// and results to out.
func NewSession(in io.Reader, out io.Writer) *Session {
	scanner := bufio.NewScanner(in)
	// Operands may be separated by newlines or any other whitespace.
	scanner.Split(bufio.ScanWords)

	return &Session{
		in:  scanner,
		out: out,
	}
}

// Run performs one read-compute-print pass and returns the computed report.
// A malformed or missing operand is a fatal input error.
func (s *Session) Run() (Report, error) {
	fmt.Fprintln(s.out, "=== Simple Calculator ===")

	a, err := s.readOperand("Enter the first number: ")
	if err != nil {
		return Report{}, err
	}

	b, err := s.readOperand("Enter the second number: ")
	if err != nil {
		return Report{}, err
	}

	report := Compute(a, b)
	if err := report.Write(s.out); err != nil {
		return Report{}, fmt.Errorf("failed to write results: %w", err)
	}

	return report, nil
}

// readOperand prints a prompt and reads one signed integer from the input.
func (s *Session) readOperand(prompt string) (int64, error) {
	fmt.Fprint(s.out, prompt)

	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, fmt.Errorf("no input provided")
	}

	text := strings.TrimSpace(s.in.Text())
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", text)
	}

	return value, nil
}
