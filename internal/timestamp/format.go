package timestamp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/obstime/internal/calendar"
)

// FormatDOY renders a year, day of year and HHMM clock string in the
// extended layout YYYY-DDDTHH:MM used by the schedule files.
func FormatDOY(year, doy int, hhmm string) (string, error) {
	if _, err := calendar.Date(year, doy); err != nil {
		return "", err
	}
	hour, minute, err := ParseHHMM(hhmm)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d-%03dT%02d:%02d", year, doy, hour, minute), nil
}

// DateCode formats the year-midfix-doy pattern used in log file names,
// e.g. DateCode(2015, "_", 7) == "2015_007".
func DateCode(year int, midfix string, doy int) string {
	return fmt.Sprintf("%d%s%03d", year, midfix, doy)
}

// ParseDate parses a session date string YYYY-MM-DD and returns the
// calendar date plus its day of year. A trailing session-letter suffix
// on the day ("2015-12-19b") is ignored.
func ParseDate(s string) (calendar.CalendarDate, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return calendar.CalendarDate{}, 0, NewParseError(s, "expected YYYY-MM-DD")
	}
	year, err := parseField(s, parts[0])
	if err != nil {
		return calendar.CalendarDate{}, 0, err
	}
	month, err := parseField(s, parts[1])
	if err != nil {
		return calendar.CalendarDate{}, 0, err
	}
	dayStr := parts[2]
	for len(dayStr) > 0 && !allDigits(dayStr) {
		dayStr = dayStr[:len(dayStr)-1]
	}
	day, err := parseField(s, dayStr)
	if err != nil {
		return calendar.CalendarDate{}, 0, err
	}
	doy, err := calendar.DayOfYear(year, month, day)
	if err != nil {
		return calendar.CalendarDate{}, 0, err
	}
	return calendar.CalendarDate{Year: year, Month: month, Day: day}, doy, nil
}

// ParseClock parses a colon-separated HH:MM:SS clock string.
func ParseClock(s string) (hour, minute, second int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, NewParseError(s, "expected HH:MM:SS")
	}
	if hour, err = parseField(s, parts[0]); err != nil {
		return 0, 0, 0, err
	}
	if minute, err = parseField(s, parts[1]); err != nil {
		return 0, 0, 0, err
	}
	if second, err = parseField(s, parts[2]); err != nil {
		return 0, 0, 0, err
	}
	if hour > 23 {
		return 0, 0, 0, calendar.NewRangeError("hour", hour, 0, 23)
	}
	if minute > 59 {
		return 0, 0, 0, calendar.NewRangeError("minute", minute, 0, 59)
	}
	if second > 59 {
		return 0, 0, 0, calendar.NewRangeError("second", second, 0, 59)
	}
	return hour, minute, second, nil
}

// SecondsOfDay converts an HH:MM:SS clock string to seconds since
// midnight.
func SecondsOfDay(s string) (int, error) {
	hour, minute, second, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return (hour*60+minute)*60 + second, nil
}

// ParseHHMM parses a compact HHMM clock string as used in the schedule
// tables.
func ParseHHMM(s string) (hour, minute int, err error) {
	if len(s) != 4 || !allDigits(s) {
		return 0, 0, NewParseError(s, "expected HHMM")
	}
	hour, _ = strconv.Atoi(s[0:2])
	minute, _ = strconv.Atoi(s[2:4])
	if hour > 23 {
		return 0, 0, calendar.NewRangeError("hour", hour, 0, 23)
	}
	if minute > 59 {
		return 0, 0, calendar.NewRangeError("minute", minute, 0, 59)
	}
	return hour, minute, nil
}

// HoursMinutesToDegrees converts an HHMM right-ascension string to
// decimal degrees (15 degrees per hour).
func HoursMinutesToDegrees(s string) (float64, error) {
	hour, minute, err := ParseHHMM(s)
	if err != nil {
		return 0, err
	}
	return 15 * (float64(hour) + float64(minute)/60), nil
}

// ClockAngle converts a sexagesimal string of the form HHMMSS[.f] or
// +/-DDMMSS[.f] to a decimal value in the leading unit. The three
// two-digit groups are read from the back of the string.
func ClockAngle(s string) (float64, error) {
	sign := 1.0
	body := s
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		body = s[1:]
	case strings.HasPrefix(s, "+"):
		body = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(body, ".")
	if hasFrac && (frac == "" || !allDigits(frac)) {
		return 0, NewParseError(s, "malformed fraction")
	}
	if len(whole) < 6 || !allDigits(whole) {
		return 0, NewParseError(s, "expected at least six sexagesimal digits")
	}

	hh, _ := strconv.Atoi(whole[len(whole)-6 : len(whole)-4])
	mm, _ := strconv.Atoi(whole[len(whole)-4 : len(whole)-2])
	ss, err := strconv.ParseFloat(whole[len(whole)-2:]+"."+orZero(frac), 64)
	if err != nil {
		return 0, NewParseError(s, "malformed seconds")
	}
	return sign * (float64(hh) + float64(mm)/60 + ss/3600), nil
}

func orZero(frac string) string {
	if frac == "" {
		return "0"
	}
	return frac
}
