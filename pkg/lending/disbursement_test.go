package lending

import (
	"testing"

	"github.com/iwvelando/wolfpack-lending/pkg/calendar"
)

func TestDisbursementDate(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		month    int
		day      int
		express  bool
		expected string
	}{
		{"Express within the month", 3, 16, true, "Thu, 3 19 2020"},
		{"Normal out of a thirty day month", 4, 30, false, "Wed, 5 20 2020"},
		{"Express into the next year", 12, 30, true, "Sat, 1 2 2021"},
		{"Normal into the next year", 12, 12, false, "Fri, 1 1 2021"},
		{"Express out of leap February", 2, 27, true, "Sun, 3 1 2020"},
		{"Normal out of a thirty one day month", 10, 27, false, "Mon, 11 16 2020"},
		{"Express in January", 1, 4, true, "Tue, 1 7 2020"},
		{"Express from July 31", 7, 31, true, "Mon, 8 3 2020"},
		{"Normal into March from February 29", 2, 29, false, "Fri, 3 20 2020"},
		{"Normal from January 31", 1, 31, false, "Thu, 2 20 2020"},
		{"Express on the last day of a short month", 6, 30, true, "Fri, 7 3 2020"},
		{"Express ending on month end", 8, 28, true, "Mon, 8 31 2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := policy.DisbursementDate(tt.month, tt.day, tt.express)
			if err != nil {
				t.Fatalf("DisbursementDate() unexpected error: %v", err)
			}
			if result.String() != tt.expected {
				t.Errorf("DisbursementDate(%d, %d, %v) = %q, expected %q",
					tt.month, tt.day, tt.express, result.String(), tt.expected)
			}
		})
	}
}

func TestDisbursementDateInvalidDate(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name    string
		month   int
		day     int
		express bool
	}{
		{"Month thirteen", 13, 4, true},
		{"April 31", 4, 31, false},
		{"February 30", 2, 30, true},
		{"Day zero", 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := policy.DisbursementDate(tt.month, tt.day, tt.express)
			if err == nil {
				t.Fatalf("DisbursementDate() expected error but got none")
			}
			if kind := KindOf(err); kind != KindDate {
				t.Errorf("KindOf() = %q, expected %q", kind, KindDate)
			}
			if err.Error() != "Invalid date" {
				t.Errorf("error message = %q, expected %q", err.Error(), "Invalid date")
			}
		})
	}
}

func TestRolloverIsSingleStep(t *testing.T) {
	// Forty days past January 31 only carries once.
	result := rollover(calendar.Date{Year: 2020, Month: 1, Day: 71})
	expected := calendar.Date{Year: 2020, Month: 2, Day: 40}
	if result != expected {
		t.Errorf("rollover() = %v, expected %v", result, expected)
	}
}

func TestDisbursementFields(t *testing.T) {
	result, err := DefaultPolicy().DisbursementDate(12, 30, true)
	if err != nil {
		t.Fatalf("DisbursementDate() unexpected error: %v", err)
	}
	expected := calendar.Date{Year: 2021, Month: 1, Day: 2}
	if result.Date != expected {
		t.Errorf("Date = %v, expected %v", result.Date, expected)
	}
	if result.Weekday != calendar.Saturday {
		t.Errorf("Weekday = %v, expected %v", result.Weekday, calendar.Saturday)
	}
}
