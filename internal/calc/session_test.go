package calc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, input string) (Report, string, error) {
	t.Helper()

	var out bytes.Buffer
	report, err := NewSession(strings.NewReader(input), &out).Run()
	return report, out.String(), err
}

func TestSessionRun(t *testing.T) {
	report, out, err := runSession(t, "10\n5\n")
	require.NoError(t, err)

	assert.Equal(t, int64(15), report.Sum)
	assert.Equal(t, int64(5), report.Difference)
	assert.Equal(t, int64(50), report.Product)
	assert.Equal(t, 2.0, report.Quotient)

	assert.Contains(t, out, "Enter the first number: ")
	assert.Contains(t, out, "Enter the second number: ")
	assert.Contains(t, out, "Division: 10 / 5 = 2.00")
}

func TestSessionRunWhitespaceSeparated(t *testing.T) {
	// Operands on a single line, like scanf-style input.
	report, _, err := runSession(t, "10 5")
	require.NoError(t, err)
	assert.Equal(t, int64(15), report.Sum)
}

func TestSessionRunZeroDivisor(t *testing.T) {
	_, out, err := runSession(t, "7\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Addition: 7 + 0 = 7")
	assert.Contains(t, out, "Cannot divide by zero")
	assert.NotContains(t, out, "7 / 0 =")
}

func TestSessionRunNegativeOperands(t *testing.T) {
	report, out, err := runSession(t, "-4\n2\n")
	require.NoError(t, err)

	assert.Equal(t, int64(-2), report.Sum)
	assert.Equal(t, int64(-6), report.Difference)
	assert.Equal(t, int64(-8), report.Product)
	assert.Contains(t, out, "Division: -4 / 2 = -2.00")
}

func TestSessionRunInvalidInput(t *testing.T) {
	_, _, err := runSession(t, "ten\n5\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid integer")
}

func TestSessionRunMissingInput(t *testing.T) {
	_, _, err := runSession(t, "10\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input")
}
