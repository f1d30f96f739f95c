package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewWeekCommand(testOptions("text"))
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"2015-12-19"})

	require.NoError(t, cmd.Execute())

	g := newGoldie(t)
	g.Assert(t, "week_text", buf.Bytes())
}

func TestWeekJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewWeekCommand(testOptions("json"))
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"2020-06-19"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string     `json:"status"`
		Data   WeekResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2020-06-19", resp.Data.Date)
	assert.Equal(t, 171, resp.Data.Doy)
	assert.Equal(t, 24, resp.Data.Week)
	assert.Equal(t, 6, resp.Data.DayOfWeek)
}

func TestWeekSessionLetterSuffix(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewWeekCommand(testOptions("json"))
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"2015-12-19b"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Data WeekResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "2015-12-19", resp.Data.Date)
	assert.Equal(t, 353, resp.Data.Doy)
}

func TestWeekBadDate(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewWeekCommand(testOptions("text"))
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"December 19"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "PARSE_ERROR")
}

func TestWeekImpossibleDate(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewWeekCommand(testOptions("text"))
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"2019-02-29"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "RANGE_ERROR")
}
