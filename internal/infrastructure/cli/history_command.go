package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sleepystudio/terminai/internal/app"
	"github.com/sleepystudio/terminai/internal/domain"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		limit int
		clear bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent suggestion cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear {
				if err := container.HistoryStore.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
				return nil
			}

			records, err := container.HistoryStore.Records(limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
				return nil
			}
			for _, rec := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %q", humanize.Time(rec.Timestamp), rec.Invocation)
				switch {
				case rec.Command == "":
					fmt.Fprint(cmd.OutOrStdout(), "  (no command suggested)")
				case rec.Verdict == string(domain.VerdictUnsafe):
					fmt.Fprintf(cmd.OutOrStdout(), "  -> %q refused (%s)", rec.Command, rec.Reason)
				case rec.Executed && rec.ExitCode != 0:
					fmt.Fprintf(cmd.OutOrStdout(), "  -> %q exited %d", rec.Command, rec.ExitCode)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "  -> %q", rec.Command)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", domain.DefaultHistoryLimit, "Maximum records to show")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete all history records")

	return cmd
}
