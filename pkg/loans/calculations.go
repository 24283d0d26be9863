// Package loans provides common loan processing utilities.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/wolfpack-lending/pkg/mathutil"
	"go.uber.org/zap"
)

// Payment holds the values for a given payment.
type Payment struct {
	Number             int     `yaml:"number"`
	Payment            float64 `yaml:"payment"`
	Principal          float64 `yaml:"principal"`
	Interest           float64 `yaml:"interest"`
	RemainingPrincipal float64 `yaml:"remainingPrincipal"`
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := mathutil.MonthlyRate(annualInterestRate)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	return principal * (periodicInterestRate * power) / (power - 1.00)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * mathutil.MonthlyRate(annualInterestRate)
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule creates a complete amortization schedule for a loan, one
// Payment per month of the term.
func (g *AmortizationScheduleGenerator) GenerateSchedule(principal, annualInterestRate float64, termMonths int) ([]Payment, error) {
	if principal <= 0 {
		return nil, fmt.Errorf("principal must be positive, got %.2f", principal)
	}
	if annualInterestRate < 0 {
		return nil, fmt.Errorf("interest rate must not be negative, got %.2f", annualInterestRate)
	}
	if termMonths <= 0 {
		return nil, fmt.Errorf("term must be positive, got %d", termMonths)
	}

	monthlyPayment := CalculateMonthlyPayment(principal, annualInterestRate, termMonths)
	schedule := make([]Payment, 0, termMonths)
	remaining := principal

	for month := 1; month <= termMonths; month++ {
		var current Payment
		current.Number = month
		current.Payment = monthlyPayment
		current.Interest = CalculateInterestPayment(remaining, annualInterestRate)
		current.Principal = monthlyPayment - current.Interest

		if month == termMonths || mathutil.Round(remaining-current.Principal) == 0 {
			// We will get machine error otherwise so just settle the
			// remainder in the final payment.
			current.Principal = remaining
			current.Payment = remaining + current.Interest
			current.RemainingPrincipal = 0.00
			schedule = append(schedule, current)
			g.logger.Debug(fmt.Sprintf("loan paid off after %d payments", month),
				zap.String("op", "loans.GenerateSchedule"),
				zap.Float64("final_payment", current.Payment),
			)
			break
		}

		current.RemainingPrincipal = remaining - current.Principal
		remaining = current.RemainingPrincipal
		schedule = append(schedule, current)
	}

	return schedule, nil
}

// TotalInterest sums the interest portion of every payment in the schedule.
func TotalInterest(schedule []Payment) float64 {
	total := 0.0
	for _, payment := range schedule {
		total += payment.Interest
	}
	return total
}
