package lending

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name               string
		loanAmount         float64
		annualInterestRate float64
		numberOfMonths     int
		expected           float64
	}{
		{"Thirty month term", 2502, 6.5, 30, 90.58},
		{"Rate outside tier table", 26890, 8.3, 60, 549.10},
		{"Excellent credit", 5000, 5.5, 60, 95.51},
		{"High income with express fee", 1040, 6.0, 60, 20.11},
		{"Poor credit with express fee", 2025, 7.5, 60, 40.58},
		{"Minimum interest rate", 1000, 0.5, 12, 83.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := policy.MonthlyPayment(tt.loanAmount, tt.annualInterestRate, tt.numberOfMonths)
			if err != nil {
				t.Fatalf("MonthlyPayment() unexpected error: %v", err)
			}
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("MonthlyPayment(%v, %v, %d) = %.4f, expected %.2f",
					tt.loanAmount, tt.annualInterestRate, tt.numberOfMonths, result, tt.expected)
			}
		})
	}
}

func TestMonthlyPaymentInvalidArguments(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name               string
		loanAmount         float64
		annualInterestRate float64
		numberOfMonths     int
		kind               string
		message            string
	}{
		{"Negative loan amount", -5, 5.5, 20, KindLoanAmount, "Invalid loan amount"},
		{"Zero loan amount", 0, 5.5, 20, KindLoanAmount, "Invalid loan amount"},
		{"Rate below minimum", 3000, 0.49, 20, KindInterestRate, "Invalid interest rate"},
		{"Zero months", 4500, 5.5, 0, KindNumberOfMonths, "Invalid number of months"},
		{"Negative months", 4500, 5.5, -3, KindNumberOfMonths, "Invalid number of months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := policy.MonthlyPayment(tt.loanAmount, tt.annualInterestRate, tt.numberOfMonths)
			if err == nil {
				t.Fatalf("MonthlyPayment() expected error but got none")
			}
			if kind := KindOf(err); kind != tt.kind {
				t.Errorf("KindOf() = %q, expected %q", kind, tt.kind)
			}
			if err.Error() != tt.message {
				t.Errorf("error message = %q, expected %q", err.Error(), tt.message)
			}
		})
	}
}
