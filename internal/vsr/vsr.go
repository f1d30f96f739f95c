package vsr

import (
	"fmt"
	"strings"
	"time"

	"github.com/roach88/obstime/internal/calendar"
	"github.com/roach88/obstime/internal/julian"
	"github.com/roach88/obstime/internal/timestamp"
)

// Tuple is the proprietary acquisition-system time value: a year, a
// 1-based day of year and seconds since midnight UT. Seconds may carry
// a sub-second fraction.
type Tuple struct {
	Year    int
	Doy     int
	Seconds float64
}

// validate checks the tuple's invariants: doy valid for the year and
// seconds within the day.
func (t Tuple) validate() (calendar.CalendarDate, error) {
	date, err := calendar.Date(t.Year, t.Doy)
	if err != nil {
		return calendar.CalendarDate{}, err
	}
	if t.Seconds < 0 || t.Seconds >= julian.SecondsPerDay {
		return calendar.CalendarDate{}, calendar.NewRangeError("seconds", int(t.Seconds), 0, 86399)
	}
	return date, nil
}

// Timestamp converts the tuple to a structured calendar date-time.
func (t Tuple) Timestamp() (timestamp.Timestamp, error) {
	date, err := t.validate()
	if err != nil {
		return timestamp.Timestamp{}, err
	}
	hour := int(t.Seconds) / 3600
	minute := (int(t.Seconds) - 3600*hour) / 60
	second := t.Seconds - float64(3600*hour) - float64(60*minute)
	return timestamp.Timestamp{Date: date, Hour: hour, Minute: minute, Second: second}, nil
}

// Epoch converts the tuple to UNIX epoch seconds: midnight UT of the
// tuple's date plus its seconds-of-day.
func (t Tuple) Epoch() (float64, error) {
	if _, err := t.validate(); err != nil {
		return 0, err
	}
	mjd, err := julian.FromDayOfYear(t.Year, float64(t.Doy))
	if err != nil {
		return 0, err
	}
	return mjd.Epoch() + t.Seconds, nil
}

// ISO formats the tuple in the compact layout YYYYMMDDTHHMMSS used for
// output file names.
func (t Tuple) ISO() (string, error) {
	ts, err := t.Timestamp()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d%02d%02dT%02d%02d%02d",
		ts.Date.Year, ts.Date.Month, ts.Date.Day, ts.Hour, ts.Minute, int(ts.Second)), nil
}

// PlotNum converts the tuple to the plotting library's date number.
func (t Tuple) PlotNum() (float64, error) {
	sec, err := t.Epoch()
	if err != nil {
		return 0, err
	}
	return julian.EpochToPlotNum(sec), nil
}

// Marker formats the heartbeat marker string "YYYY DDD SSSSS" for the
// given instant: the instant's UT date and its seconds-of-day minus
// one, zero-padded to five digits. The engine is not a clock; callers
// pass the instant in (typically time.Now().UTC()).
func Marker(now time.Time) string {
	u := now.UTC()
	secs := u.Hour()*3600 + u.Minute()*60 + u.Second() - 1
	return fmt.Sprintf("%04d %03d %05d", u.Year(), u.YearDay(), secs)
}

// IncrementMarker parses a marker string and increments its seconds
// field by one. The seconds field does NOT roll over at the day
// boundary: "2016 237 86399" increments to "2016 237 86400". The
// acquisition scripts compare marker strings textually and depend on
// this, so the limitation is kept.
func IncrementMarker(s string) (string, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return "", timestamp.NewParseError(s, "expected marker YYYY DDD SSSSS")
	}
	year, err := parseMarkerField(s, fields[0])
	if err != nil {
		return "", err
	}
	doy, err := parseMarkerField(s, fields[1])
	if err != nil {
		return "", err
	}
	secs, err := parseMarkerField(s, fields[2])
	if err != nil {
		return "", err
	}
	if _, err := calendar.Date(year, doy); err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d %03d %05d", year, doy, secs+1), nil
}

// ScriptTime formats a script-file timestamp "DDD/HH:MM:SS".
func ScriptTime(doy, hour, minute, second int) string {
	return fmt.Sprintf("%03d/%02d:%02d:%02d", doy, hour, minute, second)
}

// ScriptTimeToEpoch converts a script timestamp "DDD/HH:MM:SS" within
// the given year to UNIX epoch seconds. The result is UTC by
// construction; no local-zone conversion is involved.
func ScriptTimeToEpoch(year int, s string) (float64, error) {
	doyStr, clock, found := strings.Cut(s, "/")
	if !found {
		return 0, timestamp.NewParseError(s, "expected DDD/HH:MM:SS")
	}
	doy, err := parseMarkerField(s, doyStr)
	if err != nil {
		return 0, err
	}
	hour, minute, second, err := timestamp.ParseClock(clock)
	if err != nil {
		return 0, err
	}
	mjd, err := julian.FromDayOfYear(year, float64(doy))
	if err != nil {
		return 0, err
	}
	return mjd.Epoch() + float64((hour*60+minute)*60+second), nil
}

// WScriptTimeToEpoch converts the wideband recorder's split time
// stamp, "YY/DDD" plus "HH:MM:SS", to UNIX epoch seconds. The
// two-digit year is relative to 2000.
func WScriptTimeToEpoch(yrdoy, clock string) (float64, error) {
	yy, doy, found := strings.Cut(yrdoy, "/")
	if !found {
		return 0, timestamp.NewParseError(yrdoy, "expected YY/DDD")
	}
	year, err := parseMarkerField(yrdoy, yy)
	if err != nil {
		return 0, err
	}
	return ScriptTimeToEpoch(2000+year, doy+"/"+clock)
}

// MacroLogTimeToEpoch converts the macro log form "DDD_HH:MM:SS" to
// UNIX epoch seconds.
func MacroLogTimeToEpoch(year int, s string) (float64, error) {
	return ScriptTimeToEpoch(year, strings.Replace(s, "_", "/", 1))
}

// parseMarkerField parses an unsigned decimal field of a marker or
// script string.
func parseMarkerField(input, field string) (int, error) {
	n := 0
	if field == "" {
		return 0, timestamp.NewParseError(input, "empty field")
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, timestamp.NewParseError(input, "non-numeric field "+field)
		}
		n = n*10 + int(field[i]-'0')
	}
	return n, nil
}
