package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/propapp-install/internal/doctor"
	"github.com/conn-castle/propapp-install/internal/logging"
	"github.com/conn-castle/propapp-install/internal/messages"
)

func newDoctorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root, cfg, err := loadSettings(flags)
			if err != nil {
				return err
			}
			logger := logging.Component(logging.New(cmd.ErrOrStderr(), flags.verbose), "doctor")

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, root)
			results := doctor.Run(cmd.Context(), root, cfg, newProbe(cfg.Runtime.Binary))
			for _, r := range results {
				printResult(out, r)
			}
			logger.Debug().Int("checks", len(results)).Msg("doctor finished")

			if doctor.HasFailure(results) {
				_, _ = fmt.Fprintln(out, color.RedString("%s", messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString("%s", messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString("%s", messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString("%s", messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString("%s", messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, r.Recommendation)
	}
}
