package calc

import (
	"strings"
	"testing"
)

func TestSumDifferenceProduct(t *testing.T) {
	tests := []struct {
		a, b       int64
		sum        int64
		difference int64
		product    int64
	}{
		{10, 5, 15, 5, 50},
		{7, 0, 7, 7, 0},
		{-4, 2, -2, -6, -8},
		{0, 0, 0, 0, 0},
		{-3, -9, -12, 6, 27},
	}

	for _, tt := range tests {
		if got := Sum(tt.a, tt.b); got != tt.sum {
			t.Errorf("Sum(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.sum)
		}
		if got := Difference(tt.a, tt.b); got != tt.difference {
			t.Errorf("Difference(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.difference)
		}
		if got := Product(tt.a, tt.b); got != tt.product {
			t.Errorf("Product(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.product)
		}
	}
}

func TestQuotient(t *testing.T) {
	q, err := Quotient(10, 5)
	if err != nil {
		t.Fatalf("Quotient(10, 5) returned error: %v", err)
	}
	if q != 2.0 {
		t.Errorf("Quotient(10, 5) = %v, want 2", q)
	}

	q, err = Quotient(7, 2)
	if err != nil {
		t.Fatalf("Quotient(7, 2) returned error: %v", err)
	}
	if q != 3.5 {
		t.Errorf("Quotient(7, 2) = %v, want 3.5", q)
	}

	q, err = Quotient(-4, 2)
	if err != nil {
		t.Fatalf("Quotient(-4, 2) returned error: %v", err)
	}
	if q != -2.0 {
		t.Errorf("Quotient(-4, 2) = %v, want -2", q)
	}
}

func TestQuotientDivideByZero(t *testing.T) {
	_, err := Quotient(7, 0)
	if err != ErrDivideByZero {
		t.Errorf("Quotient(7, 0) error = %v, want ErrDivideByZero", err)
	}
}

func TestCompute(t *testing.T) {
	r := Compute(10, 5)
	if r.Sum != 15 || r.Difference != 5 || r.Product != 50 {
		t.Errorf("Compute(10, 5) = %+v, want sum 15, difference 5, product 50", r)
	}
	if r.DivideByZero {
		t.Error("Compute(10, 5) flagged divide-by-zero")
	}
	if r.Quotient != 2.0 {
		t.Errorf("Compute(10, 5).Quotient = %v, want 2", r.Quotient)
	}
}

func TestComputeDivideByZero(t *testing.T) {
	r := Compute(7, 0)
	if !r.DivideByZero {
		t.Error("Compute(7, 0) did not flag divide-by-zero")
	}
	if r.Sum != 7 || r.Difference != 7 || r.Product != 0 {
		t.Errorf("Compute(7, 0) = %+v, want sum 7, difference 7, product 0", r)
	}
}

func TestReportString(t *testing.T) {
	out := Compute(10, 5).String()

	for _, line := range []string{
		"Addition: 10 + 5 = 15",
		"Subtraction: 10 - 5 = 5",
		"Multiplication: 10 * 5 = 50",
		"Division: 10 / 5 = 2.00",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("Report output missing line %q, got:\n%s", line, out)
		}
	}
}

func TestReportStringDivideByZero(t *testing.T) {
	out := Compute(7, 0).String()

	if !strings.Contains(out, "Cannot divide by zero") {
		t.Errorf("Report output missing divide-by-zero message, got:\n%s", out)
	}
	if strings.Contains(out, "7 / 0") {
		t.Errorf("Report output contains a quotient line for zero divisor:\n%s", out)
	}
}

func TestReportNegativeOperands(t *testing.T) {
	out := Compute(-4, 2).String()

	for _, line := range []string{
		"Addition: -4 + 2 = -2",
		"Subtraction: -4 - 2 = -6",
		"Multiplication: -4 * 2 = -8",
		"Division: -4 / 2 = -2.00",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("Report output missing line %q, got:\n%s", line, out)
		}
	}
}
