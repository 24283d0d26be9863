package lending

import "github.com/iwvelando/wolfpack-lending/pkg/loans"

// MonthlyPayment returns the fixed monthly payment that amortizes loanAmount
// over numberOfMonths at annualInterestRate percent. The result is not
// rounded.
func (p Policy) MonthlyPayment(loanAmount, annualInterestRate float64, numberOfMonths int) (float64, error) {
	if loanAmount <= 0 {
		return 0, invalid(KindLoanAmount)
	}
	if annualInterestRate < p.MinInterestRate {
		return 0, invalid(KindInterestRate)
	}
	if numberOfMonths <= 0 {
		return 0, invalid(KindNumberOfMonths)
	}
	return loans.CalculateMonthlyPayment(loanAmount, annualInterestRate, numberOfMonths), nil
}
