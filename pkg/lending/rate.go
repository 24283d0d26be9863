package lending

// Decision is the outcome of rate determination: either approved at a tier's
// rate or denied.
type Decision struct {
	Approved bool    `yaml:"approved"`
	Rate     float64 `yaml:"rate"`
	Tier     string  `yaml:"tier,omitempty"`
}

// Approved returns an approval at the given tier.
func Approved(tier RateTier) Decision {
	return Decision{Approved: true, Rate: tier.Rate, Tier: tier.Name}
}

// Denied returns a denial.
func Denied() Decision {
	return Decision{Rate: DeniedRate}
}

func (t RateTier) matches(loanAmount, creditScore, income int) bool {
	return creditScore >= t.MinCreditScore && income >= t.IncomeRatio*loanAmount
}

// Decide runs the rate tiers in order and returns the first match. Tiers
// overlap, so the order is significant.
func (p Policy) Decide(loanAmount, creditScore, income int) (Decision, error) {
	if loanAmount <= 0 {
		return Decision{}, invalid(KindLoanAmount)
	}
	if err := p.CheckCreditScore(creditScore); err != nil {
		return Decision{}, err
	}
	if err := p.CheckIncome(income); err != nil {
		return Decision{}, err
	}

	for _, tier := range p.Tiers {
		if tier.matches(loanAmount, creditScore, income) {
			return Approved(tier), nil
		}
	}
	return Denied(), nil
}

// InterestRate returns the annual interest rate in percent for an
// application, or DeniedRate when it is denied. loanAmount must already
// include any express processing fee.
func (p Policy) InterestRate(loanAmount, creditScore, income int) (float64, error) {
	decision, err := p.Decide(loanAmount, creditScore, income)
	if err != nil {
		return 0, err
	}
	return decision.Rate, nil
}
