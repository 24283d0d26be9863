package calendar

// DaysPerWeek is the modulus of the congruence.
const DaysPerWeek = 7

// Weekday is a day-of-week index, 0 being Sunday.
type Weekday int

// Weekday indices produced by DayOfWeek.
const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// String returns the three-letter abbreviation, e.g. "Tue".
func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return "???"
	}
	return weekdayNames[w]
}

// congruenceMonth moves January and February to months 13 and 14 of the
// preceding year. The congruence below only holds for March-based years.
func congruenceMonth(month, year int) (int, int) {
	if month <= February {
		return month + MonthsPerYear, year - 1
	}
	return month, year
}

// DayOfWeek computes the weekday of d with Zeller's congruence in the
// Gregorian form (leap days counted via y/4 - y/100 + y/400).
func DayOfWeek(d Date) Weekday {
	m, y := congruenceMonth(d.Month, d.Year)
	x := y + y/4 - y/100 + y/400
	z := m - 2
	return Weekday((d.Day + x + (LongMonthDays*z)/MonthsPerYear) % DaysPerWeek)
}
