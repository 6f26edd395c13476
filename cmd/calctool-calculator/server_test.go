package main

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *CalculatorServer {
	s := NewCalculatorServer()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s.logger = logger
	return s
}

func TestPerformCalculation(t *testing.T) {
	s := testServer()

	tests := []struct {
		op   string
		x, y float64
		want string
	}{
		{"add", 10, 5, "Result: 15.00"},
		{"subtract", 10, 5, "Result: 5.00"},
		{"multiply", 10, 5, "Result: 50.00"},
		{"divide", 10, 5, "Result: 2.00"},
		{"divide", 7, 2, "Result: 3.50"},
	}

	for _, tt := range tests {
		got, err := s.performCalculation(context.Background(), map[string]interface{}{
			"operation": tt.op,
			"x":         tt.x,
			"y":         tt.y,
		})
		require.NoError(t, err, "operation %s", tt.op)
		assert.Equal(t, tt.want, got)
	}
}

func TestPerformCalculationDivideByZero(t *testing.T) {
	s := testServer()

	_, err := s.performCalculation(context.Background(), map[string]interface{}{
		"operation": "divide",
		"x":         7.0,
		"y":         0.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestPerformCalculationUnknownOperation(t *testing.T) {
	s := testServer()

	_, err := s.performCalculation(context.Background(), map[string]interface{}{
		"operation": "modulo",
		"x":         7.0,
		"y":         3.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestPerformCalculationBadParams(t *testing.T) {
	s := testServer()

	_, err := s.performCalculation(context.Background(), map[string]interface{}{
		"operation": "add",
		"x":         "ten",
		"y":         5.0,
	})
	require.Error(t, err)
}

func TestBuildReport(t *testing.T) {
	s := testServer()

	got, err := s.buildReport(context.Background(), map[string]interface{}{
		"a": 10.0,
		"b": 5.0,
	})
	require.NoError(t, err)

	assert.Contains(t, got, "Addition: 10 + 5 = 15")
	assert.Contains(t, got, "Subtraction: 10 - 5 = 5")
	assert.Contains(t, got, "Multiplication: 10 * 5 = 50")
	assert.Contains(t, got, "Division: 10 / 5 = 2.00")
}

func TestBuildReportZeroDivisor(t *testing.T) {
	s := testServer()

	got, err := s.buildReport(context.Background(), map[string]interface{}{
		"a": 7.0,
		"b": 0.0,
	})
	require.NoError(t, err)
	assert.Contains(t, got, "Cannot divide by zero")
}

func TestBuildReportRejectsFractions(t *testing.T) {
	s := testServer()

	_, err := s.buildReport(context.Background(), map[string]interface{}{
		"a": 1.5,
		"b": 2.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integers")
}
