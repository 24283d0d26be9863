package lending

import "github.com/iwvelando/wolfpack-lending/pkg/loans"

// Application is one applicant's validated input.
type Application struct {
	Month       int  `yaml:"month"`
	Day         int  `yaml:"day"`
	CreditScore int  `yaml:"creditScore"`
	Income      int  `yaml:"income"`
	LoanAmount  int  `yaml:"loanAmount"`
	Express     bool `yaml:"express"`
}

// Report is the outcome of an approved application.
type Report struct {
	Application    Application     `yaml:"application"`
	LoanAmount     float64         `yaml:"loanAmount"`
	Decision       Decision        `yaml:"decision"`
	MonthlyPayment float64         `yaml:"monthlyPayment"`
	TermMonths     int             `yaml:"termMonths"`
	Disbursement   Disbursement    `yaml:"disbursement"`
	Schedule       []loans.Payment `yaml:"schedule,omitempty"`
}

// Check validates every applicant-supplied field in prompt order and
// returns the first failure.
func (p Policy) Check(app Application) error {
	if err := p.CheckDate(app.Month, app.Day); err != nil {
		return err
	}
	if err := p.CheckCreditScore(app.CreditScore); err != nil {
		return err
	}
	if err := p.CheckIncome(app.Income); err != nil {
		return err
	}
	return p.CheckLoanAmount(app.LoanAmount)
}

// FinancedAmount is the loan amount including the express processing fee.
func (p Policy) FinancedAmount(app Application) int {
	if app.Express {
		return app.LoanAmount + p.ExpressFee
	}
	return app.LoanAmount
}

// Evaluate runs one full decision cycle. The express fee is added before
// the rate is determined. A denied application yields ErrLoanDenied.
// Schedule is left empty; callers attach one with
// loans.AmortizationScheduleGenerator.
func (p Policy) Evaluate(app Application) (Report, error) {
	if err := p.Check(app); err != nil {
		return Report{}, err
	}

	amount := p.FinancedAmount(app)
	decision, err := p.Decide(amount, app.CreditScore, app.Income)
	if err != nil {
		return Report{}, err
	}
	if !decision.Approved {
		return Report{}, ErrLoanDenied
	}

	payment, err := p.MonthlyPayment(float64(amount), decision.Rate, p.TermMonths)
	if err != nil {
		return Report{}, err
	}

	disbursement, err := p.DisbursementDate(app.Month, app.Day, app.Express)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Application:    app,
		LoanAmount:     float64(amount),
		Decision:       decision,
		MonthlyPayment: payment,
		TermMonths:     p.TermMonths,
		Disbursement:   disbursement,
	}, nil
}
