// Package calendar provides the fixed application-year calendar: date
// validation and day-of-week derivation.
package calendar

import "fmt"

// ApplicationYear is the only year in which applications are accepted.
// It is a leap year; February's length is fixed rather than computed.
const ApplicationYear = 2020

// Month lengths of the application calendar.
const (
	MonthsPerYear  = 12
	ShortMonthDays = 30
	LongMonthDays  = 31
	FebruaryDays   = 29
)

// Month numbers referenced by the rollover and validation rules.
const (
	January  = 1
	February = 2
	December = 12
)

// Date is a calendar date with a 1-based month and day.
type Date struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month"`
	Day   int `yaml:"day"`
}

// String formats the date as "<month> <day> <year>" without leading zeros.
func (d Date) String() string {
	return fmt.Sprintf("%d %d %d", d.Month, d.Day, d.Year)
}

// IsShortMonth reports whether month has 30 days (April, June, September, November).
func IsShortMonth(month int) bool {
	switch month {
	case 4, 6, 9, 11:
		return true
	}
	return false
}

// DaysInMonth returns the length of month in the application calendar, or 0
// if month is out of range.
func DaysInMonth(month int) int {
	switch {
	case month < January || month > December:
		return 0
	case month == February:
		return FebruaryDays
	case IsShortMonth(month):
		return ShortMonthDays
	default:
		return LongMonthDays
	}
}

// IsValidDate reports whether month/day is a date of the application year.
func IsValidDate(month, day int) bool {
	if month < January || month > MonthsPerYear || day < 1 || day > LongMonthDays {
		return false
	}
	if IsShortMonth(month) && day > ShortMonthDays {
		return false
	}
	if month == February && day > FebruaryDays {
		return false
	}
	return true
}
