package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleepystudio/terminai/internal/app"
	"github.com/sleepystudio/terminai/internal/domain"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that suggestions can run on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			for _, check := range report.Checks {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-12s %s\n", statusTag(check.Status), check.Name, check.Details)
			}
			return err
		},
	}
}

func statusTag(status domain.HealthStatus) string {
	switch status {
	case domain.HealthOK:
		return "ok"
	case domain.HealthWarn:
		return "warn"
	default:
		return "fail"
	}
}
