package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOptions builds RootOptions the way PersistentPreRunE would,
// so subcommands can be exercised without the root command.
func testOptions(format string) *RootOptions {
	return &RootOptions{
		Format: format,
		Logger: newLogger(io.Discard, false),
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestConvertText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewConvertCommand(testOptions("text"))
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"2015-353T10:29"})

	require.NoError(t, cmd.Execute())

	g := newGoldie(t)
	g.Assert(t, "convert_text", buf.Bytes())
}

func TestConvertJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewConvertCommand(testOptions("json"))
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"2015-12-19T10:29:29"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string        `json:"status"`
		Data   ConvertResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2015-12-19T10:29:29", resp.Data.Canonical)
	assert.InDelta(t, 1450520969.0, resp.Data.Epoch, 1e-4)
	assert.InDelta(t, 57375.0+37769.0/86400.0, resp.Data.MJD, 1e-9)
	assert.Equal(t, 2015, resp.Data.Year)
	assert.Equal(t, 353, resp.Data.Doy)
	assert.Equal(t, 7, resp.Data.DayOfWeek)
	assert.Equal(t, 50, resp.Data.Week)
}

func TestConvertLayoutEquivalence(t *testing.T) {
	// The compact and extended spellings of one instant must agree.
	inputs := []string{
		"2015-12-19T10:29:29",
		"2015-353T10:29:29",
		"20151219T102929",
		"2015-12-19 10:29:29",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := NewConvertCommand(testOptions("json"))
			cmd.SetOut(buf)
			cmd.SetErr(io.Discard)
			cmd.SetArgs([]string{input})

			require.NoError(t, cmd.Execute())

			var resp struct {
				Data ConvertResult `json:"data"`
			}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
			assert.Equal(t, "2015-12-19T10:29:29", resp.Data.Canonical)
			assert.InDelta(t, 1450520969.0, resp.Data.Epoch, 1e-4)
		})
	}
}

func TestConvertParseError(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewConvertCommand(testOptions("text"))
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"not-a-timestamp"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "PARSE_ERROR")
}

func TestConvertRangeError(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewConvertCommand(testOptions("json"))
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"2015-12-19T25:00:00"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeRange, resp.Error.Code)
}

func TestConvertHelpText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewConvertCommand(testOptions("text"))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Accepted layouts")
}
