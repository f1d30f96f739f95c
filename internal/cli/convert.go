package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/obstime/internal/calendar"
	"github.com/roach88/obstime/internal/timestamp"
)

// ConvertResult holds every representation of the parsed instant.
type ConvertResult struct {
	Input     string  `json:"input"`
	Canonical string  `json:"canonical"`
	Epoch     float64 `json:"epoch"`
	MJD       float64 `json:"mjd"`
	JD        float64 `json:"jd"`
	Year      int     `json:"year"`
	Doy       int     `json:"doy"`
	DayOfWeek int     `json:"day_of_week"` // 1 = Sunday
	Week      int     `json:"week"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <timestamp>",
		Short: "Convert a timestamp string to all supported representations",
		Long: `Convert a timestamp in any accepted layout to the canonical form,
epoch seconds, MJD, JD, day of year, day of week and week number.

Accepted layouts include YYYY-MM-DDTHH:MM[:SS], YYYY-DDDTHH:MM[:SS],
YYYYMMDDTHHMMSS, YYYYDDDTHHMM[SS[.fff]] and "YYYY-MM-DD HH:MM:SS[.fff]".`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runConvert(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	opts.Logger.Debug("parsing timestamp", "input", input)

	ts, err := timestamp.Parse(input)
	if err != nil {
		return outputConvertError(formatter, err)
	}

	epoch, err := ts.Epoch()
	if err != nil {
		return outputConvertError(formatter, err)
	}
	mjd, err := ts.MJD()
	if err != nil {
		return outputConvertError(formatter, err)
	}
	doy, err := ts.DayOfYear()
	if err != nil {
		return outputConvertError(formatter, err)
	}
	weekday, err := calendar.DayOfWeek(ts.Date.Year, doy)
	if err != nil {
		return outputConvertError(formatter, err)
	}
	week, err := calendar.WeekNumber(ts.Date.Year, doy)
	if err != nil {
		return outputConvertError(formatter, err)
	}

	result := ConvertResult{
		Input:     input,
		Canonical: ts.String(),
		Epoch:     epoch,
		MJD:       float64(mjd),
		JD:        mjd.JD(),
		Year:      ts.Date.Year,
		Doy:       doy,
		DayOfWeek: weekday,
		Week:      week,
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "input:      %s\n", result.Input)
	fmt.Fprintf(w, "canonical:  %s\n", result.Canonical)
	fmt.Fprintf(w, "epoch:      %.6f\n", result.Epoch)
	fmt.Fprintf(w, "mjd:        %.6f\n", result.MJD)
	fmt.Fprintf(w, "jd:         %.6f\n", result.JD)
	fmt.Fprintf(w, "year/doy:   %d/%03d\n", result.Year, result.Doy)
	fmt.Fprintf(w, "weekday:    %d\n", result.DayOfWeek)
	fmt.Fprintf(w, "week:       %d\n", result.Week)
	return nil
}

// outputConvertError reports a conversion failure and maps it to exit
// code 1.
func outputConvertError(formatter *OutputFormatter, err error) error {
	code := errorCode(err)
	_ = formatter.Error(code, err.Error())
	return WrapExitError(ExitFailure, code, err)
}
