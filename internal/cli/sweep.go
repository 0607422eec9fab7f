package cli

import (
	"fmt"

	"construct-erp/internal/attendance"
	"construct-erp/internal/bootstrap"
	"construct-erp/internal/retention"

	"github.com/spf13/cobra"
)

type sweepResult struct {
	Cutoff  string `json:"cutoff"`
	Deleted int64  `json:"deleted"`
}

// NewSweepCommand runs one retention sweep regardless of RETENTION_ENABLED.
func NewSweepCommand(opts *RootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete attendance records older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.OpenDB(opts.Config.DB)
			if err != nil {
				return err
			}
			defer closeDB(db)

			sweeper := retention.NewSweeper(db, attendance.NewRepository(db), days, bootstrap.NewStdoutAuditLogger())
			res, err := sweeper.Sweep(cmd.Context())
			if err != nil {
				return err
			}

			cutoff := res.Cutoff.Format("2006-01-02")
			return output(cmd.OutOrStdout(), opts.Format,
				sweepResult{Cutoff: cutoff, Deleted: res.Deleted},
				fmt.Sprintf("deleted %d records dated before %s", res.Deleted, cutoff),
			)
		},
	}

	cmd.Flags().IntVar(&days, "days", opts.Config.Retention.Days, "retention period in days")
	return cmd
}
