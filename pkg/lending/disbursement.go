package lending

import (
	"fmt"

	"github.com/iwvelando/wolfpack-lending/pkg/calendar"
)

// Disbursement is the date on which an approved loan is paid out.
type Disbursement struct {
	Weekday calendar.Weekday `yaml:"-"`
	Date    calendar.Date    `yaml:"date"`
}

// String formats the disbursement as "Tue, 4 21 2020".
func (d Disbursement) String() string {
	return fmt.Sprintf("%s, %s", d.Weekday, d.Date)
}

// MarshalYAML renders the disbursement in its display form.
func (d Disbursement) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// DisbursementDate returns the payout date for an application made on
// month/day of the application year.
//
// Only the application date is validated. The offset is carried into the
// next month at most once, using the length of the application month.
func (p Policy) DisbursementDate(applicationMonth, applicationDay int, expressProcessing bool) (Disbursement, error) {
	if err := p.CheckDate(applicationMonth, applicationDay); err != nil {
		return Disbursement{}, err
	}

	date := rollover(calendar.Date{
		Year:  calendar.ApplicationYear,
		Month: applicationMonth,
		Day:   applicationDay + p.ProcessingDays(expressProcessing),
	})
	return Disbursement{Weekday: calendar.DayOfWeek(date), Date: date}, nil
}

func rollover(d calendar.Date) calendar.Date {
	switch {
	case calendar.IsShortMonth(d.Month) && d.Day > calendar.ShortMonthDays:
		d.Month++
		d.Day -= calendar.ShortMonthDays
	case d.Month == calendar.February && d.Day > calendar.FebruaryDays:
		d.Month++
		d.Day -= calendar.FebruaryDays
	case d.Month == calendar.December && d.Day > calendar.LongMonthDays:
		d.Month = calendar.January
		d.Day -= calendar.LongMonthDays
		d.Year++
	case d.Day > calendar.LongMonthDays:
		d.Month++
		d.Day -= calendar.LongMonthDays
	}
	return d
}
