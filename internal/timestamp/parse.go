package timestamp

import (
	"strconv"
	"strings"

	"github.com/roach88/obstime/internal/calendar"
)

// Parse recognizes an input string by delimiter pattern, separator
// position and length, and parses it into a Timestamp. A string
// matching no accepted layout returns a ParseError; field values
// outside their bounds return a RangeError.
func Parse(s string) (Timestamp, error) {
	ti := strings.IndexByte(s, 'T')
	hasColon := strings.Contains(s, ":")
	hasDash := strings.Contains(s, "-")

	switch {
	case ti >= 0 && hasColon && hasDash:
		switch {
		case ti == 10 && len(s) == 19:
			// YYYY-MM-DDTHH:MM:SS
			return parseCalendarParts(s, s[0:4], s[5:7], s[8:10], s[11:13], s[14:16], s[17:19])
		case ti == 10 && len(s) == 16:
			// YYYY-MM-DDTHH:MM
			return parseCalendarParts(s, s[0:4], s[5:7], s[8:10], s[11:13], s[14:16], "")
		case ti == 8 && len(s) == 14:
			// YYYY-DDDTHH:MM
			return parseDoyParts(s, s[0:4], s[5:8], s[9:11], s[12:14], "")
		case ti == 8 && len(s) == 17:
			// YYYY-DDDTHH:MM:SS
			return parseDoyParts(s, s[0:4], s[5:8], s[9:11], s[12:14], s[15:17])
		}
	case ti == 8 && len(s) == 15:
		// YYYYMMDDTHHMMSS
		return parseCalendarParts(s, s[0:4], s[4:6], s[6:8], s[9:11], s[11:13], s[13:15])
	case ti == 7 && len(s) == 12:
		// YYYYDDDTHHMM
		return parseDoyParts(s, s[0:4], s[4:7], s[8:10], s[10:12], "")
	case ti == 7 && len(s) >= 14:
		// YYYYDDDTHHMMSS[.fff]
		return parseDoyParts(s, s[0:4], s[4:7], s[8:10], s[10:12], s[12:])
	case ti < 0 && hasColon && hasDash && len(s) >= 19 && s[10] == ' ':
		// YYYY-MM-DD HH:MM:SS[.fff], space-separated
		return parseCalendarParts(s, s[0:4], s[5:7], s[8:10], s[11:13], s[14:16], s[17:])
	}
	return Timestamp{}, NewParseError(s, "unrecognized timestamp layout")
}

// parseCalendarParts assembles a Timestamp from calendar-date field
// strings. secs may be empty (layouts without seconds) and may carry a
// fractional part.
func parseCalendarParts(input, ys, mos, ds, hs, mins, secs string) (Timestamp, error) {
	year, err := parseField(input, ys)
	if err != nil {
		return Timestamp{}, err
	}
	month, err := parseField(input, mos)
	if err != nil {
		return Timestamp{}, err
	}
	day, err := parseField(input, ds)
	if err != nil {
		return Timestamp{}, err
	}
	if _, err := calendar.DayOfYear(year, month, day); err != nil {
		return Timestamp{}, err
	}

	clock, err := parseClockParts(input, hs, mins, secs)
	if err != nil {
		return Timestamp{}, err
	}
	clock.Date = calendar.CalendarDate{Year: year, Month: month, Day: day}
	return clock, nil
}

// parseDoyParts assembles a Timestamp from year+day-of-year field
// strings.
func parseDoyParts(input, ys, doys, hs, mins, secs string) (Timestamp, error) {
	year, err := parseField(input, ys)
	if err != nil {
		return Timestamp{}, err
	}
	doy, err := parseField(input, doys)
	if err != nil {
		return Timestamp{}, err
	}
	date, err := calendar.Date(year, doy)
	if err != nil {
		return Timestamp{}, err
	}

	clock, err := parseClockParts(input, hs, mins, secs)
	if err != nil {
		return Timestamp{}, err
	}
	clock.Date = date
	return clock, nil
}

// parseClockParts parses and bounds-checks the time-of-day fields.
func parseClockParts(input, hs, mins, secs string) (Timestamp, error) {
	hour, err := parseField(input, hs)
	if err != nil {
		return Timestamp{}, err
	}
	minute, err := parseField(input, mins)
	if err != nil {
		return Timestamp{}, err
	}
	var second float64
	if secs != "" {
		second, err = parseSecondsField(input, secs)
		if err != nil {
			return Timestamp{}, err
		}
	}

	if hour > 23 {
		return Timestamp{}, calendar.NewRangeError("hour", hour, 0, 23)
	}
	if minute > 59 {
		return Timestamp{}, calendar.NewRangeError("minute", minute, 0, 59)
	}
	if int(second) > 59 {
		return Timestamp{}, calendar.NewRangeError("second", int(second), 0, 59)
	}
	return Timestamp{Hour: hour, Minute: minute, Second: second}, nil
}

// parseField converts an all-digit field to an int. Signs, spaces and
// any other byte are rejected so misplaced delimiters show up as parse
// errors rather than skewed values.
func parseField(input, field string) (int, error) {
	if !allDigits(field) {
		return 0, NewParseError(input, "non-numeric field "+strconv.Quote(field))
	}
	return strconv.Atoi(field)
}

// parseSecondsField accepts SS or SS.fff.
func parseSecondsField(input, field string) (float64, error) {
	whole, frac, hasFrac := strings.Cut(field, ".")
	if len(whole) != 2 || !allDigits(whole) || (hasFrac && (frac == "" || !allDigits(frac))) {
		return 0, NewParseError(input, "malformed seconds field "+strconv.Quote(field))
	}
	return strconv.ParseFloat(field, 64)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
