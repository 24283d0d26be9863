// Package application runs the interactive loan application: it prompts for
// each answer, stops at the first invalid one, and evaluates the rest with a
// lending policy.
package application

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/wolfpack-lending/pkg/calendar"
	"github.com/iwvelando/wolfpack-lending/pkg/lending"
	"github.com/iwvelando/wolfpack-lending/pkg/loans"
	"go.uber.org/zap"
)

// Session holds the collaborators for one applicant interaction.
type Session struct {
	logger    *zap.Logger
	policy    lending.Policy
	prompts   *prompter
	schedules *loans.AmortizationScheduleGenerator
}

// NewSession creates a session reading answers from in and writing prompts to out.
func NewSession(logger *zap.Logger, policy lending.Policy, in io.Reader, out io.Writer) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		logger:    logger,
		policy:    policy,
		prompts:   newPrompter(in, out),
		schedules: loans.NewAmortizationScheduleGenerator(logger),
	}
}

// Banner returns the welcome text shown before the first prompt.
func Banner(policy lending.Policy) string {
	return fmt.Sprintf(`
                  Welcome to Wolfpack Lending!
Applications for loans from $%d to $%d will be accepted from
January 1 to December 31, %d. All loans will be paid back over a
%s period. When prompted, please enter today's date, your credit
score, your %d income, and the loan amount. Loans are normally paid
out %d days after the application date, but for a fee of $%d, which
will be added to the loan amount, you may request Express Processing
in which case the loan will be paid out %d days after the application
date. If your loan is approved, the loan amount, interest rate,
disbursement date, and monthly payment amount will be output.

`, policy.MinLoanAmount, policy.MaxLoanAmount, calendar.ApplicationYear, term(policy.TermMonths),
		calendar.ApplicationYear-1, policy.NormalDays, policy.ExpressFee, policy.ExpressDays)
}

func term(months int) string {
	if months%calendar.MonthsPerYear == 0 {
		return fmt.Sprintf("%d year", months/calendar.MonthsPerYear)
	}
	return fmt.Sprintf("%d month", months)
}

// Read prompts for every answer in order, validating each one as soon as it
// is entered. It returns the first validation failure as a
// *lending.InvalidArgumentError.
func (s *Session) Read() (lending.Application, error) {
	var app lending.Application
	var err error

	s.prompts.ask("Today's Date - Month Day (e.g., 3 15): ")
	if app.Month, err = s.prompts.integer("month"); err != nil {
		return app, err
	}
	if app.Day, err = s.prompts.integer("day"); err != nil {
		return app, err
	}
	if err = s.policy.CheckDate(app.Month, app.Day); err != nil {
		return app, err
	}

	s.prompts.ask(fmt.Sprintf("Credit Score (%d-%d): ", s.policy.MinCreditScore, s.policy.MaxCreditScore))
	if app.CreditScore, err = s.prompts.integer("credit score"); err != nil {
		return app, err
	}
	if err = s.policy.CheckCreditScore(app.CreditScore); err != nil {
		return app, err
	}

	s.prompts.ask(fmt.Sprintf("%d Income: ", calendar.ApplicationYear-1))
	if app.Income, err = s.prompts.integer("income"); err != nil {
		return app, err
	}
	if err = s.policy.CheckIncome(app.Income); err != nil {
		return app, err
	}

	s.prompts.ask(fmt.Sprintf("Loan Amount (%d-%d): ", s.policy.MinLoanAmount, s.policy.MaxLoanAmount))
	if app.LoanAmount, err = s.prompts.integer("loan amount"); err != nil {
		return app, err
	}
	if err = s.policy.CheckLoanAmount(app.LoanAmount); err != nil {
		return app, err
	}

	s.prompts.ask("Express Processing (y, n)): ")
	choice, err := s.prompts.token()
	if err != nil {
		return app, err
	}
	app.Express = IsYes(choice)

	return app, nil
}

// Run reads one application and evaluates it. Input failures are returned
// as *lending.InvalidArgumentError and denials as lending.ErrLoanDenied.
func (s *Session) Run() (lending.Report, error) {
	app, err := s.Read()
	if err != nil {
		s.logger.Debug("application input rejected",
			zap.String("op", "application.Run"),
			zap.Error(err),
		)
		return lending.Report{}, err
	}

	report, err := s.policy.Evaluate(app)
	if err != nil {
		s.logger.Info("application not approved",
			zap.String("op", "application.Run"),
			zap.Int("credit_score", app.CreditScore),
			zap.Int("loan_amount", app.LoanAmount),
			zap.Bool("express", app.Express),
			zap.Error(err),
		)
		return lending.Report{}, err
	}

	report.Schedule, err = s.schedules.GenerateSchedule(report.LoanAmount, report.Decision.Rate, report.TermMonths)
	if err != nil {
		return lending.Report{}, fmt.Errorf("failed to generate repayment schedule: %w", err)
	}

	s.logger.Info("application approved",
		zap.String("op", "application.Run"),
		zap.String("tier", report.Decision.Tier),
		zap.Float64("rate", report.Decision.Rate),
		zap.Float64("loan_amount", report.LoanAmount),
		zap.Float64("monthly_payment", report.MonthlyPayment),
		zap.String("disbursement", report.Disbursement.String()),
	)
	return report, nil
}

// IsYes reports whether an answer selects express processing.
func IsYes(answer string) bool {
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y")
}
