package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/obstime/internal/calendar"
	"github.com/roach88/obstime/internal/timestamp"
)

// WeekResult holds the schedule coordinates of a session date.
type WeekResult struct {
	Date      string `json:"date"`
	Year      int    `json:"year"`
	Doy       int    `json:"doy"`
	Week      int    `json:"week"`
	DayOfWeek int    `json:"day_of_week"` // 1 = Sunday
}

// NewWeekCommand creates the week command.
func NewWeekCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "week <YYYY-MM-DD>",
		Short:         "Show day-of-year, week number and weekday for a session date",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeek(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runWeek(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	opts.Logger.Debug("parsing session date", "input", input)

	date, doy, err := timestamp.ParseDate(input)
	if err != nil {
		code := errorCode(err)
		_ = formatter.Error(code, err.Error())
		return WrapExitError(ExitFailure, code, err)
	}

	week, err := calendar.WeekNumber(date.Year, doy)
	if err != nil {
		code := errorCode(err)
		_ = formatter.Error(code, err.Error())
		return WrapExitError(ExitFailure, code, err)
	}
	weekday, err := calendar.DayOfWeek(date.Year, doy)
	if err != nil {
		code := errorCode(err)
		_ = formatter.Error(code, err.Error())
		return WrapExitError(ExitFailure, code, err)
	}

	result := WeekResult{
		Date:      date.String(),
		Year:      date.Year,
		Doy:       doy,
		Week:      week,
		DayOfWeek: weekday,
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "date:     %s\n", result.Date)
	fmt.Fprintf(w, "year/doy: %d/%03d\n", result.Year, result.Doy)
	fmt.Fprintf(w, "week:     %d\n", result.Week)
	fmt.Fprintf(w, "weekday:  %d\n", result.DayOfWeek)
	return nil
}
