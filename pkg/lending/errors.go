package lending

import (
	"errors"
	"fmt"
)

// Argument kinds reported by InvalidArgumentError. The resulting messages
// ("Invalid loan amount", ...) are shown to applicants verbatim.
const (
	KindLoanAmount     = "loan amount"
	KindCreditScore    = "credit score"
	KindIncome         = "income"
	KindInterestRate   = "interest rate"
	KindNumberOfMonths = "number of months"
	KindDate           = "date"
)

var (
	// ErrInvalidArgument is the sentinel wrapped by every InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLoanDenied is returned by Evaluate when no rate tier matches.
	ErrLoanDenied = errors.New("Loan denied")
)

// InvalidArgumentError reports an out-of-range input to one of the lending
// computations.
type InvalidArgumentError struct {
	Kind string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid %s", e.Kind)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(kind string) error {
	return &InvalidArgumentError{Kind: kind}
}

// KindOf returns the argument kind carried by err, or "" if err is not an
// InvalidArgumentError.
func KindOf(err error) string {
	var argErr *InvalidArgumentError
	if errors.As(err, &argErr) {
		return argErr.Kind
	}
	return ""
}
