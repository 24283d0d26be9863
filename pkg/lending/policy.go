// Package lending decides loan applications: rate tiers, amortized monthly
// payments and disbursement dates. Every computation is a pure function of
// a Policy value and its inputs, so a Policy may be shared freely between
// goroutines.
package lending

import (
	"fmt"

	"github.com/iwvelando/wolfpack-lending/pkg/validation"
)

// DeniedRate is the interest rate reported for a denied application.
const DeniedRate = -1.0

// RateTier is one rule of the ordered rate table. An application matches
// when its credit score is at least MinCreditScore and its income is at
// least IncomeRatio times the loan amount. A zero field imposes no
// requirement.
type RateTier struct {
	Name           string  `mapstructure:"name" yaml:"name" validate:"required"`
	MinCreditScore int     `mapstructure:"minCreditScore" yaml:"minCreditScore" validate:"gte=0"`
	IncomeRatio    int     `mapstructure:"incomeRatio" yaml:"incomeRatio" validate:"gte=0"`
	Rate           float64 `mapstructure:"rate" yaml:"rate" validate:"gt=0"`
}

// Policy holds every lending constant. Treat it as immutable; methods take
// it by value.
type Policy struct {
	MinLoanAmount   int        `mapstructure:"minLoanAmount" yaml:"minLoanAmount" validate:"gt=0"`
	MaxLoanAmount   int        `mapstructure:"maxLoanAmount" yaml:"maxLoanAmount" validate:"gtefield=MinLoanAmount"`
	MinCreditScore  int        `mapstructure:"minCreditScore" yaml:"minCreditScore" validate:"gte=0"`
	MaxCreditScore  int        `mapstructure:"maxCreditScore" yaml:"maxCreditScore" validate:"gtefield=MinCreditScore"`
	MinInterestRate float64    `mapstructure:"minInterestRate" yaml:"minInterestRate" validate:"gte=0"`
	ExpressFee      int        `mapstructure:"expressFee" yaml:"expressFee" validate:"gte=0"`
	// Offsets above 28 days could cross two month boundaries, which the
	// single-step rollover does not handle.
	ExpressDays     int        `mapstructure:"expressDays" yaml:"expressDays" validate:"gte=0,lte=28"`
	NormalDays      int        `mapstructure:"normalDays" yaml:"normalDays" validate:"gte=0,lte=28"`
	TermMonths      int        `mapstructure:"termMonths" yaml:"termMonths" validate:"gt=0"`
	Tiers           []RateTier `mapstructure:"tiers" yaml:"tiers" validate:"required,min=1,dive"`
}

// DefaultPolicy returns the standard Wolfpack Lending policy.
func DefaultPolicy() Policy {
	return Policy{
		MinLoanAmount:   1000,
		MaxLoanAmount:   10000,
		MinCreditScore:  300,
		MaxCreditScore:  850,
		MinInterestRate: 0.5,
		ExpressFee:      25,
		ExpressDays:     3,
		NormalDays:      20,
		TermMonths:      60,
		Tiers: []RateTier{
			{Name: "excellent-credit", MinCreditScore: 720, Rate: 5.5},
			{Name: "high-income", IncomeRatio: 5, Rate: 6.0},
			{Name: "fair-credit", MinCreditScore: 500, IncomeRatio: 3, Rate: 6.5},
			{Name: "poor-credit", MinCreditScore: 350, IncomeRatio: 2, Rate: 7.5},
		},
	}
}

// Validate checks the policy for internal consistency.
func (p Policy) Validate() error {
	if err := validation.ValidateStruct(p); err != nil {
		return fmt.Errorf("invalid lending policy: %w", err)
	}
	for _, tier := range p.Tiers {
		if tier.Rate < p.MinInterestRate {
			return fmt.Errorf("invalid lending policy: tier %s rate %.2f is below the minimum interest rate %.2f",
				tier.Name, tier.Rate, p.MinInterestRate)
		}
	}
	return nil
}

// ProcessingDays returns the disbursement offset for the processing speed.
func (p Policy) ProcessingDays(express bool) int {
	if express {
		return p.ExpressDays
	}
	return p.NormalDays
}
