package lending

import "github.com/iwvelando/wolfpack-lending/pkg/calendar"

// CheckDate rejects dates outside the application year.
func (p Policy) CheckDate(month, day int) error {
	if !calendar.IsValidDate(month, day) {
		return invalid(KindDate)
	}
	return nil
}

// CheckCreditScore rejects scores outside [MinCreditScore, MaxCreditScore].
func (p Policy) CheckCreditScore(creditScore int) error {
	if creditScore < p.MinCreditScore || creditScore > p.MaxCreditScore {
		return invalid(KindCreditScore)
	}
	return nil
}

// CheckIncome rejects negative incomes.
func (p Policy) CheckIncome(income int) error {
	if income < 0 {
		return invalid(KindIncome)
	}
	return nil
}

// CheckLoanAmount rejects requested amounts outside [MinLoanAmount,
// MaxLoanAmount]. The express fee is not part of the requested amount.
func (p Policy) CheckLoanAmount(loanAmount int) error {
	if loanAmount < p.MinLoanAmount || loanAmount > p.MaxLoanAmount {
		return invalid(KindLoanAmount)
	}
	return nil
}
