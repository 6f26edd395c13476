// Package calc implements the arithmetic core of calctool: the four basic
// operations over a pair of signed integer operands, and the labeled results
// report built from them.
package calc

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrDivideByZero is returned by Quotient when the divisor is zero.
var ErrDivideByZero = errors.New("cannot divide by zero")

// Sum returns a + b.
func Sum(a, b int64) int64 {
	return a + b
}

// Difference returns a - b.
func Difference(a, b int64) int64 {
	return a - b
}

// Product returns a * b.
func Product(a, b int64) int64 {
	return a * b
}

// Quotient returns a / b as a floating-point value. The quotient is
// undefined when b is zero, in which case ErrDivideByZero is returned.
func Quotient(a, b int64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return float64(a) / float64(b), nil
}

// Report holds the operands of a single calculation and the values derived
// from them. All fields are set once by Compute and never mutated.
type Report struct {
	A          int64
	B          int64
	Sum        int64
	Difference int64
	Product    int64

	// Quotient is only meaningful when DivideByZero is false.
	Quotient     float64
	DivideByZero bool
}

// Compute derives all four results from the operands. Sum, difference and
// product are always computed; the quotient is skipped when b is zero and
// the report is flagged instead.
func Compute(a, b int64) Report {
	r := Report{
		A:          a,
		B:          b,
		Sum:        Sum(a, b),
		Difference: Difference(a, b),
		Product:    Product(a, b),
	}

	q, err := Quotient(a, b)
	if err != nil {
		r.DivideByZero = true
		return r
	}
	r.Quotient = q

	return r
}

// String returns the labeled results block. The quotient line is replaced
// by a divide-by-zero message when the divisor was zero.
func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== Results ===\n")
	fmt.Fprintf(&b, "Addition: %d + %d = %d\n", r.A, r.B, r.Sum)
	fmt.Fprintf(&b, "Subtraction: %d - %d = %d\n", r.A, r.B, r.Difference)
	fmt.Fprintf(&b, "Multiplication: %d * %d = %d\n", r.A, r.B, r.Product)

	if r.DivideByZero {
		fmt.Fprintf(&b, "Division: Cannot divide by zero!\n")
	} else {
		fmt.Fprintf(&b, "Division: %d / %d = %.2f\n", r.A, r.B, r.Quotient)
	}

	return b.String()
}

// Write renders the results block to w.
func (r Report) Write(w io.Writer) error {
	_, err := io.WriteString(w, r.String())
	return err
}
