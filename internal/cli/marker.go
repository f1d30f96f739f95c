package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/obstime/internal/vsr"
)

// MarkerResult holds a VSR marker string.
type MarkerResult struct {
	Marker string `json:"marker"`
}

// NewMarkerCommand creates the marker command.
func NewMarkerCommand(rootOpts *RootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "marker [marker-to-increment]",
		Short: "Produce or increment a VSR marker string (YYYY DDD SSSSS)",
		Long: `Without arguments, prints the marker string for the current instant
(or the instant given with --at). With a marker string argument,
prints that marker with its seconds field incremented by one. The
increment does not roll over at the day boundary.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMarker(rootOpts, at, args, cmd)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "RFC3339 instant to mark instead of the current time")

	return cmd
}

func runMarker(opts *RootOptions, at string, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var marker string
	if len(args) == 1 {
		opts.Logger.Debug("incrementing marker", "marker", args[0])
		incremented, err := vsr.IncrementMarker(args[0])
		if err != nil {
			code := errorCode(err)
			_ = formatter.Error(code, err.Error())
			return WrapExitError(ExitFailure, code, err)
		}
		marker = incremented
	} else {
		now := time.Now().UTC()
		if at != "" {
			parsed, err := time.Parse(time.RFC3339, at)
			if err != nil {
				_ = formatter.Error(ErrCodeCommand, fmt.Sprintf("invalid --at instant: %v", err))
				return WrapExitError(ExitCommandError, "invalid --at instant", err)
			}
			now = parsed
		}
		opts.Logger.Debug("formatting marker", "instant", now)
		marker = vsr.Marker(now)
	}

	if formatter.Format == "json" {
		return formatter.Success(MarkerResult{Marker: marker})
	}
	fmt.Fprintln(formatter.Writer, marker)
	return nil
}
