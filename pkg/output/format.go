// Package output provides utilities for formatting and displaying loan decisions.
package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/wolfpack-lending/pkg/constants"
	"github.com/iwvelando/wolfpack-lending/pkg/lending"
	"gopkg.in/yaml.v3"
)

// Write renders report in the requested format.
func Write(w io.Writer, format string, report lending.Report, schedule bool) error {
	switch format {
	case constants.OutputFormatPretty:
		PrettyFormat(w, report, schedule)
		return nil
	case constants.OutputFormatCSV:
		CsvFormat(w, report)
		return nil
	case constants.OutputFormatYAML:
		return YamlFormat(w, report)
	}
	return fmt.Errorf("unsupported output format %s", format)
}

// PrettyFormat outputs the decision in the human-readable layout, optionally
// followed by the amortization table.
func PrettyFormat(w io.Writer, report lending.Report, schedule bool) {
	_, _ = fmt.Fprintf(w, "\nLoan Amount: $%.2f\n", report.LoanAmount)
	_, _ = fmt.Fprintf(w, "Interest Rate: %s%%\n", Rate(report.Decision.Rate))
	_, _ = fmt.Fprintf(w, "Monthly Payment: $%.2f\n", report.MonthlyPayment)
	_, _ = fmt.Fprintf(w, "Disbursement Date: %s\n", report.Disbursement)

	if !schedule || len(report.Schedule) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "\n--- Repayment schedule (%d months) ---\n", report.TermMonths)
	_, _ = fmt.Fprintf(w, "Month | Payment | Principal | Interest | Remaining\n")
	_, _ = fmt.Fprintf(w, "_____ | _______ | _________ | ________ | _________\n")
	for _, payment := range report.Schedule {
		_, _ = fmt.Fprintf(w, "%5d | $%.2f | $%.2f | $%.2f | $%.2f\n",
			payment.Number, payment.Payment, payment.Principal, payment.Interest, payment.RemainingPrincipal)
	}
}

// CsvFormat outputs the amortization schedule in comma-separated value format.
func CsvFormat(w io.Writer, report lending.Report) {
	_, _ = fmt.Fprintf(w, `"month","payment","principal","interest","remaining principal"`)
	_, _ = fmt.Fprintf(w, "\n")
	for _, payment := range report.Schedule {
		_, _ = fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f","%.2f"`,
			payment.Number, payment.Payment, payment.Principal, payment.Interest, payment.RemainingPrincipal)
		_, _ = fmt.Fprintf(w, "\n")
	}
}

// YamlFormat outputs the full report as a YAML document.
func YamlFormat(w io.Writer, report lending.Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return encoder.Close()
}

// Message prints the one-line outcome for an application that ended without
// a report: an input failure or a denial.
func Message(w io.Writer, err error) {
	if errors.Is(err, lending.ErrLoanDenied) {
		_, _ = fmt.Fprintf(w, "\n%s\n", err)
		return
	}
	_, _ = fmt.Fprintf(w, "%s\n", err)
}

// Rate formats an interest rate as given, always with at least one decimal
// digit (6 prints as "6.0", 5.5 as "5.5").
func Rate(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
