package calendar

import "fmt"

// CalendarDate is a proleptic Gregorian calendar date. Year may be
// negative; Month is 1..12; Day is valid for (Year, Month) under the
// Gregorian leap rule. Values are constructed by the conversion
// functions, which enforce the invariant.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// daysInMonth gives the month lengths for a non-leap year.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year under the Gregorian
// rule: divisible by 4, except century years, which must be divisible
// by 400. Works for negative (proleptic) years; year 0 is a leap year.
func IsLeapYear(year int) bool {
	if year%100 == 0 {
		return year%400 == 0
	}
	return year%4 == 0
}

// yearLength returns 365 or 366.
func yearLength(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYear computes the 1-based day of the year for a calendar date
// (Jan 1 is 1). Returns a RangeError if month or day is outside the
// valid bounds for the year.
func DayOfYear(year, month, day int) (int, error) {
	if month < 1 || month > 12 {
		return 0, NewRangeError("month", month, 1, 12)
	}
	max := daysInMonth[month-1]
	if month == 2 && IsLeapYear(year) {
		max++
	}
	if day < 1 || day > max {
		return 0, NewRangeError("day", day, 1, max)
	}

	doy := day + (month-1)*30 + int(float64(month+1)*0.61) - 2
	if month <= 2 {
		doy += month
	} else if !IsLeapYear(year) {
		doy--
	}
	return doy, nil
}

// Date is the inverse of DayOfYear: it maps (year, doy) back to the
// calendar date. January and February are explicit branches; the
// remaining months come from the closed form, with a one-day shift in
// non-leap years so the formula can assume a leap-year layout.
// Returns a RangeError if doy is outside 1..365+leap(year).
func Date(year, doy int) (CalendarDate, error) {
	if doy < 1 || doy > yearLength(year) {
		return CalendarDate{}, NewRangeError("doy", doy, 1, yearLength(year))
	}

	leap := 0
	if IsLeapYear(year) {
		leap = 1
	}

	var month, day int
	switch {
	case doy < 32:
		month = 1
		day = doy
	case doy < 60+leap:
		month = 2
		day = doy - 31
	default:
		if leap == 0 {
			doy++
		}
		month = int((float64(doy) + 31.39) / 30.61)
		day = doy + 2 - (month-1)*30 - int(float64(month+1)*0.61)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// JulianDate computes the Julian Day number for a (year, doy) pair:
// days since -4713-11-24T12:00:00 UT on the proleptic calendar. The
// day of year may carry a fraction of a day; negative years are valid.
// Returns a RangeError if doy is outside the year's length.
func JulianDate(year int, doy float64) (float64, error) {
	if doy < 1 || doy >= float64(yearLength(year))+1 {
		return 0, NewRangeError("doy", int(doy), 1, yearLength(year))
	}

	prev := year - 1
	leaps := floorDiv(prev, 4) - floorDiv(prev, 100) + floorDiv(prev, 400)
	return 1721425.0 + 365.0*float64(prev) + float64(leaps) - 0.5 + doy, nil
}

// DayOfWeek returns the day of week for (year, doy), 1..7 with
// 1 = Sunday. The argument order matches every other function in this
// package: year first, then day of year. Returns a RangeError if doy is
// outside the year's length.
func DayOfWeek(year, doy int) (int, error) {
	jd, err := JulianDate(year, float64(doy)+0.5)
	if err != nil {
		return 0, err
	}
	// jd is integer-valued here: the -0.5 in the Julian Day formula
	// cancels against the half-day shift.
	n := int(jd) + 2
	return n - 7*floorDiv(n-1, 7), nil
}

// WeekNumber computes the week number for (year, doy), with weeks
// beginning on Sunday. Days that fall before the year's first full week
// belong to week 52 of the previous year.
func WeekNumber(year, doy int) (int, error) {
	if doy < 1 || doy > yearLength(year) {
		return 0, NewRangeError("doy", doy, 1, yearLength(year))
	}
	weekday1, err := DayOfWeek(year, 1)
	if err != nil {
		return 0, err
	}
	if doy <= weekday1 {
		return 52, nil
	}
	firstDoyOfWeek2 := 8 - (weekday1-1)%7
	return 1 + (doy-firstDoyOfWeek2)/7, nil
}

// floorDiv is integer division rounding toward negative infinity, which
// the Julian Day formula needs for years before the epoch.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
