package timestamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/obstime/internal/calendar"
)

func TestParseAcceptedLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Timestamp
	}{
		{
			"calendar with seconds",
			"2015-12-19T10:29:29",
			Timestamp{calendar.CalendarDate{Year: 2015, Month: 12, Day: 19}, 10, 29, 29},
		},
		{
			"calendar without seconds",
			"2015-12-19T10:29",
			Timestamp{calendar.CalendarDate{Year: 2015, Month: 12, Day: 19}, 10, 29, 0},
		},
		{
			"doy without seconds",
			"2015-353T10:29",
			Timestamp{calendar.CalendarDate{Year: 2015, Month: 12, Day: 19}, 10, 29, 0},
		},
		{
			"doy with seconds",
			"2015-353T10:29:29",
			Timestamp{calendar.CalendarDate{Year: 2015, Month: 12, Day: 19}, 10, 29, 29},
		},
		{
			"compact calendar",
			"20151219T102929",
			Timestamp{calendar.CalendarDate{Year: 2015, Month: 12, Day: 19}, 10, 29, 29},
		},
		{
			"compact doy without seconds",
			"2015353T1029",
			Timestamp{calendar.CalendarDate{Year: 2015, Month: 12, Day: 19}, 10, 29, 0},
		},
		{
			"compact doy with seconds",
			"2015353T102929",
			Timestamp{calendar.CalendarDate{Year: 2015, Month: 12, Day: 19}, 10, 29, 29},
		},
		{
			"compact doy with fraction",
			"2015353T102929.198",
			Timestamp{calendar.CalendarDate{Year: 2015, Month: 12, Day: 19}, 10, 29, 29.198},
		},
		{
			"space separated",
			"2015-12-19 10:29:29",
			Timestamp{calendar.CalendarDate{Year: 2015, Month: 12, Day: 19}, 10, 29, 29},
		},
		{
			"space separated with fraction",
			"2015-12-19 10:29:29.198776",
			Timestamp{calendar.CalendarDate{Year: 2015, Month: 12, Day: 19}, 10, 29, 29.198776},
		},
		{
			"leap day",
			"2020-060T00:00",
			Timestamp{calendar.CalendarDate{Year: 2020, Month: 2, Day: 29}, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Date, got.Date)
			assert.Equal(t, tt.want.Hour, got.Hour)
			assert.Equal(t, tt.want.Minute, got.Minute)
			assert.InDelta(t, tt.want.Second, got.Second, 1e-9)
		})
	}
}

func TestParseRejectsUnrecognizedLayouts(t *testing.T) {
	inputs := []string{
		"",
		"2015-12-19X10:29:29", // bad separator
		"2015-12-19",          // date only
		"10:29:29",            // time only
		"2015-12-19T10",       // truncated clock
		"20151219T10:29:29",   // compact date, delimited clock
		"2015-12-19T10:29:29Z", // zone suffixes not part of the family
		"garbage",
		"2015353T102929198",   // fraction without the dot
		"2015-12-1910:29:29",  // missing separator
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, IsParseError(err), "want ParseError, got %v", err)
		})
	}
}

func TestParseRejectsOutOfRangeFields(t *testing.T) {
	inputs := []string{
		"2015-13-19T10:29:29", // month 13
		"2015-02-29T10:29:29", // Feb 29 in a non-leap year
		"2015-366T10:29",      // doy past the non-leap year
		"2015-000T10:29",      // doy zero
		"2015-12-19T24:29:29", // hour 24
		"2015-12-19T10:60:29", // minute 60
		"2015-12-19T10:29:60", // second 60
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, calendar.IsRangeError(err), "want RangeError, got %v", err)
		})
	}
}

func TestTimestampString(t *testing.T) {
	ts, err := Parse("2015353T102929.198")
	require.NoError(t, err)
	assert.Equal(t, "2015-12-19T10:29:29", ts.String())

	ts, err = Parse("2015-353T10:29")
	require.NoError(t, err)
	assert.Equal(t, "2015-12-19T10:29:00", ts.String())
}

// Parsing any layout and re-serializing must land on the canonical
// form of the same instant.
func TestParseCanonicalRoundTrip(t *testing.T) {
	canonical := "2015-12-19T10:29:29"
	variants := []string{
		"2015-12-19T10:29:29",
		"2015-353T10:29:29",
		"20151219T102929",
		"2015353T102929",
		"2015-12-19 10:29:29",
	}

	for _, v := range variants {
		ts, err := Parse(v)
		require.NoError(t, err)
		assert.Equal(t, canonical, ts.String(), "input %q", v)

		again, err := Parse(ts.String())
		require.NoError(t, err)
		assert.Equal(t, ts, again)
	}
}

func TestTimestampEpoch(t *testing.T) {
	ts, err := Parse("2015-12-19T10:29:29")
	require.NoError(t, err)
	sec, err := ts.Epoch()
	require.NoError(t, err)
	assert.InDelta(t, 1450520969, sec, 1e-6)

	ts, err = Parse("2015-12-19 10:29:29.198776")
	require.NoError(t, err)
	sec, err = ts.Epoch()
	require.NoError(t, err)
	assert.InDelta(t, 1450520969.198776, sec, 1e-5)
}

func TestTimestampMJD(t *testing.T) {
	ts, err := Parse("2015-353T00:00")
	require.NoError(t, err)
	mjd, err := ts.MJD()
	require.NoError(t, err)
	assert.InDelta(t, 57375, float64(mjd), 1e-9)
}

func TestTimestampDayOfYear(t *testing.T) {
	ts, err := Parse("2015-12-19T10:29")
	require.NoError(t, err)
	doy, err := ts.DayOfYear()
	require.NoError(t, err)
	assert.Equal(t, 353, doy)
}
