package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/obstime/internal/iau"
)

// DesignateResult holds an IAU position designation.
type DesignateResult struct {
	Designation string `json:"designation"`
	Mode        string `json:"mode"`
}

// NewDesignateCommand creates the designate command.
func NewDesignateCommand(rootOpts *RootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "designate <longitude> <latitude>",
		Short: "Format a sky position as an IAU designation string",
		Long: `Format a (longitude-like, latitude-like) coordinate pair as a
fixed-width IAU designation. Modes: hours (hhmm+ddmm), degrees
(dddmm+ddmm) and decimal (ddd.d+dd.d). Coordinates are truncated,
never rounded, per the IAU convention.

Negative latitudes must follow a "--" separator so they are not read
as flags:

  obstime designate --mode hours -- 10.5 -2.5`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesignate(rootOpts, mode, args, cmd)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "hours", "designation mode (hours|degrees|decimal)")

	return cmd
}

func runDesignate(opts *RootOptions, modeStr string, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	longitude, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		_ = formatter.Error(ErrCodeCommand, fmt.Sprintf("invalid longitude: %v", err))
		return WrapExitError(ExitCommandError, "invalid longitude", err)
	}
	latitude, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		_ = formatter.Error(ErrCodeCommand, fmt.Sprintf("invalid latitude: %v", err))
		return WrapExitError(ExitCommandError, "invalid latitude", err)
	}
	mode, err := iau.ParseMode(modeStr)
	if err != nil {
		_ = formatter.Error(ErrCodeCommand, err.Error())
		return WrapExitError(ExitCommandError, "invalid mode", err)
	}

	opts.Logger.Debug("formatting designation", "longitude", longitude, "latitude", latitude, "mode", modeStr)

	designation, err := iau.Designation(longitude, latitude, mode)
	if err != nil {
		code := errorCode(err)
		_ = formatter.Error(code, err.Error())
		return WrapExitError(ExitFailure, code, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(DesignateResult{Designation: designation, Mode: modeStr})
	}
	fmt.Fprintln(formatter.Writer, designation)
	return nil
}
