package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/obstime/internal/calendar"
	"github.com/roach88/obstime/internal/timestamp"
)

// epochTolerance absorbs the float rounding of the day-count
// arithmetic; it is far below the sub-second precision any layout
// carries.
const epochTolerance = 1e-4

// Run executes every case of a scenario against the timestamp parser
// and asserts the expectations.
func Run(t *testing.T, scenario *Scenario) {
	t.Helper()

	for _, c := range scenario.Cases {
		c := c
		t.Run(c.Parse, func(t *testing.T) {
			ts, err := timestamp.Parse(c.Parse)

			if c.Err != "" {
				require.Error(t, err)
				switch c.Err {
				case ErrKindParse:
					assert.True(t, timestamp.IsParseError(err), "want ParseError, got %v", err)
				case ErrKindRange:
					assert.True(t, calendar.IsRangeError(err), "want RangeError, got %v", err)
				}
				return
			}

			require.NoError(t, err)
			if c.Canonical != "" {
				assert.Equal(t, c.Canonical, ts.String())
			}
			if c.Epoch != nil {
				sec, err := ts.Epoch()
				require.NoError(t, err)
				assert.InDelta(t, *c.Epoch, sec, epochTolerance)
			}
			if c.MJD != nil {
				mjd, err := ts.MJD()
				require.NoError(t, err)
				assert.InDelta(t, *c.MJD, float64(mjd), epochTolerance/86400)
			}
		})
	}
}

// RunFile loads a scenario file and executes it.
func RunFile(t *testing.T, path string) {
	t.Helper()

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	Run(t, scenario)
}
