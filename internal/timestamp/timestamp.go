package timestamp

import (
	"fmt"

	"github.com/roach88/obstime/internal/calendar"
	"github.com/roach88/obstime/internal/julian"
)

// Timestamp is a parsed calendar date plus time of day, always UTC.
// Second may carry a sub-second fraction.
type Timestamp struct {
	Date   calendar.CalendarDate
	Hour   int
	Minute int
	Second float64
}

// String formats the timestamp in the canonical layout
// YYYY-MM-DDTHH:MM:SS, truncating any sub-second fraction.
func (t Timestamp) String() string {
	return fmt.Sprintf("%sT%02d:%02d:%02d", t.Date, t.Hour, t.Minute, int(t.Second))
}

// DayOfYear returns the timestamp's 1-based day of year.
func (t Timestamp) DayOfYear() (int, error) {
	return calendar.DayOfYear(t.Date.Year, t.Date.Month, t.Date.Day)
}

// Epoch converts the timestamp to UNIX epoch seconds, preserving any
// sub-second fraction.
func (t Timestamp) Epoch() (float64, error) {
	mjd, err := julian.FromCalendar(t.Date.Year, t.Date.Month, t.Date.Day)
	if err != nil {
		return 0, err
	}
	return mjd.Epoch() + float64(t.Hour*3600+t.Minute*60) + t.Second, nil
}

// MJD converts the timestamp to a Modified Julian Date with fractional
// day.
func (t Timestamp) MJD() (julian.MJD, error) {
	sec, err := t.Epoch()
	if err != nil {
		return 0, err
	}
	return julian.FromEpoch(sec), nil
}
