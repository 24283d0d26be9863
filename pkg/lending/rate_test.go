package lending

import (
	"errors"
	"testing"
)

func TestInterestRate(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name        string
		loanAmount  int
		creditScore int
		income      int
		expected    float64
	}{
		{"Good credit with low income", 2254, 755, 2000, 5.5},
		{"Minimum credit and no income is denied", 8967, 300, 0, DeniedRate},
		{"Poor credit at twice the loan amount", 1000, 350, 2000, 7.5},
		{"Fair credit at three times the loan amount", 10000, 500, 30000, 6.5},
		{"Low credit at five times the loan amount", 5000, 300, 25000, 6.0},
		{"Credit score exactly 720", 9000, 720, 0, 5.5},
		{"Credit score 719 with no income is denied", 9000, 719, 0, DeniedRate},
		{"High income wins over fair credit tier", 1000, 600, 5000, 6.0},
		{"Fair credit just below three times", 1000, 500, 2999, 7.5},
		{"Poor credit below two times is denied", 1000, 349, 1999, DeniedRate},
		{"Credit 349 at three times is denied", 1000, 349, 3000, DeniedRate},
		{"Maximum credit score", 10025, 850, 0, 5.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := policy.InterestRate(tt.loanAmount, tt.creditScore, tt.income)
			if err != nil {
				t.Fatalf("InterestRate() unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("InterestRate(%d, %d, %d) = %v, expected %v",
					tt.loanAmount, tt.creditScore, tt.income, result, tt.expected)
			}
		})
	}
}

func TestInterestRateInvalidArguments(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name        string
		loanAmount  int
		creditScore int
		income      int
		kind        string
		message     string
	}{
		{"Zero loan amount", 0, 500, 5000, KindLoanAmount, "Invalid loan amount"},
		{"Negative loan amount", -1, 500, 5000, KindLoanAmount, "Invalid loan amount"},
		{"Credit score too low", 1000, 200, 5000, KindCreditScore, "Invalid credit score"},
		{"Credit score too high", 1000, 851, 5000, KindCreditScore, "Invalid credit score"},
		{"Negative income", 1000, 500, -20, KindIncome, "Invalid income"},
		{"Loan amount is checked first", 0, 200, -20, KindLoanAmount, "Invalid loan amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := policy.InterestRate(tt.loanAmount, tt.creditScore, tt.income)
			if err == nil {
				t.Fatalf("InterestRate() expected error but got none")
			}
			if kind := KindOf(err); kind != tt.kind {
				t.Errorf("KindOf() = %q, expected %q", kind, tt.kind)
			}
			if err.Error() != tt.message {
				t.Errorf("error message = %q, expected %q", err.Error(), tt.message)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected error to wrap ErrInvalidArgument")
			}
		})
	}
}

func TestDecideReportsTier(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name        string
		loanAmount  int
		creditScore int
		income      int
		approved    bool
		tier        string
	}{
		{"Excellent credit", 2254, 755, 2000, true, "excellent-credit"},
		{"High income", 5000, 300, 25000, true, "high-income"},
		{"Fair credit", 10000, 500, 30000, true, "fair-credit"},
		{"Poor credit", 1000, 350, 2000, true, "poor-credit"},
		{"Denied", 8967, 300, 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := policy.Decide(tt.loanAmount, tt.creditScore, tt.income)
			if err != nil {
				t.Fatalf("Decide() unexpected error: %v", err)
			}
			if decision.Approved != tt.approved {
				t.Errorf("Decide() approved = %v, expected %v", decision.Approved, tt.approved)
			}
			if decision.Tier != tt.tier {
				t.Errorf("Decide() tier = %q, expected %q", decision.Tier, tt.tier)
			}
		})
	}
}

func TestDecideHonorsTierOrder(t *testing.T) {
	policy := DefaultPolicy()
	// Both tiers match; the first listed must win.
	policy.Tiers = []RateTier{
		{Name: "first", MinCreditScore: 300, Rate: 9.0},
		{Name: "second", MinCreditScore: 300, Rate: 1.0},
	}

	decision, err := policy.Decide(1000, 400, 0)
	if err != nil {
		t.Fatalf("Decide() unexpected error: %v", err)
	}
	if decision.Tier != "first" || decision.Rate != 9.0 {
		t.Errorf("Decide() = %+v, expected the first tier", decision)
	}
}

func TestInterestRateIsIdempotent(t *testing.T) {
	policy := DefaultPolicy()
	first, err := policy.InterestRate(1000, 350, 2000)
	if err != nil {
		t.Fatalf("InterestRate() unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := policy.InterestRate(1000, 350, 2000)
		if again != first {
			t.Fatalf("InterestRate() call %d = %v, expected %v", i, again, first)
		}
	}
}
