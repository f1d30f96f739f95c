// Package calendar implements the closed-form calendar arithmetic the
// acquisition pipeline is built on: the Gregorian leap rule, the
// day-of-year <-> calendar-date mapping, Julian Day numbers and the
// day-of-week and week-number derivations.
//
// The day-of-year and calendar-date formulas are exact inverses of each
// other for every valid date, leap years included. Julian Day numbers use
// the proleptic Gregorian calendar extended through year zero and into
// negative years, so the historical Julian/Gregorian switchover is ignored.
// Everything here is pure arithmetic over value inputs; the package never
// touches the system clock.
//
// All operations are UTC-only by construction: a date is a date, with no
// zone attached.
package calendar
