// Package julian converts between Modified Julian Dates, UNIX epoch
// seconds and calendar values, plus the thin adapters for the plotting
// library's day-number representation.
package julian

import (
	"time"

	"github.com/roach88/obstime/internal/calendar"
)

// MJD is a Modified Julian Date: Julian Date - 2400000.5, i.e. days
// (with fraction) since 1858-11-17T00:00:00 UT.
type MJD float64

const (
	// SecondsPerDay is the length of a UTC day in this engine: no leap
	// seconds, no DST.
	SecondsPerDay = 86400.0

	// UnixEpochMJD is the MJD of 1970-01-01T00:00:00 UT.
	UnixEpochMJD = 40587.0

	// JDOffset converts between MJD and full Julian Date.
	JDOffset = 2400000.5

	// unixEpochPlotNum is the plotting library's day number at the UNIX
	// epoch (days since 0001-01-01, plus one). The library's newer
	// configurable epoch is not tracked; callers on a shifted epoch
	// subtract the difference themselves.
	unixEpochPlotNum = 719163.0
)

// FromDayOfYear computes the MJD for a (year, doy) pair. The day of
// year may carry a fraction of a day.
func FromDayOfYear(year int, doy float64) (MJD, error) {
	jd, err := calendar.JulianDate(year, doy)
	if err != nil {
		return 0, err
	}
	return MJD(jd - JDOffset), nil
}

// FromCalendar computes the MJD for a calendar date at midnight UT.
func FromCalendar(year, month, day int) (MJD, error) {
	doy, err := calendar.DayOfYear(year, month, day)
	if err != nil {
		return 0, err
	}
	return FromDayOfYear(year, float64(doy))
}

// FromEpoch computes the MJD for a UNIX epoch-seconds value.
func FromEpoch(sec float64) MJD {
	return MJD(UnixEpochMJD + sec/SecondsPerDay)
}

// Epoch converts the MJD to UNIX epoch seconds. FromEpoch and Epoch are
// exact inverses to within floating-point rounding.
func (m MJD) Epoch() float64 {
	return (float64(m) - UnixEpochMJD) * SecondsPerDay
}

// JD converts the MJD to a full Julian Date.
func (m MJD) JD() float64 {
	return float64(m) + JDOffset
}

// EpochToPlotNum converts UNIX epoch seconds to the plotting library's
// date number. The numeric format itself belongs to the plotting
// library; this is only the affine map between the two epochs.
func EpochToPlotNum(sec float64) float64 {
	return unixEpochPlotNum + sec/SecondsPerDay
}

// PlotNumToEpoch is the inverse of EpochToPlotNum.
func PlotNumToEpoch(num float64) float64 {
	return (num - unixEpochPlotNum) * SecondsPerDay
}

// PlotNumDayOfYear extracts the (year, doy) a plot date number falls
// on, in UT.
func PlotNumDayOfYear(num float64) (year, doy int, err error) {
	sec := PlotNumToEpoch(num)
	t := time.Unix(int64(sec), 0).UTC()
	y, m, d := t.Date()
	doy, err = calendar.DayOfYear(y, int(m), d)
	if err != nil {
		return 0, 0, err
	}
	return y, doy, nil
}
