package progress

import "time"

// Days in a year
const (
	DaysRegularYear = 365
	DaysLeapYear    = 366
)

// Info describes the elapsed portion of a calendar year at a point in time
type Info struct {
	Year      int
	DayOfYear int     // 1-based ordinal day
	TotalDays int     // 365 or 366
	Fraction  float64 // 0.0 to 1.0, day-based
}

// Compute returns the year progress at the given instant. The fraction is
// day-granular: the whole current day counts as elapsed, so January 1st is
// already slightly above zero and December 31st reaches 1.0.
func Compute(now time.Time) Info {
	year := now.Year()
	total := DaysRegularYear
	if IsLeapYear(year) {
		total = DaysLeapYear
	}

	day := now.YearDay()

	return Info{
		Year:      year,
		DayOfYear: day,
		TotalDays: total,
		Fraction:  float64(day) / float64(total),
	}
}

// IsLeapYear reports whether the given year has 366 days
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// PercentElapsed returns the elapsed fraction as a 0-100 percentage
func (i Info) PercentElapsed() float64 {
	return i.Fraction * 100
}

// PercentRemaining returns the remaining fraction as a 0-100 percentage.
// This is the headline number the widget displays.
func (i Info) PercentRemaining() float64 {
	return 100 - i.PercentElapsed()
}
