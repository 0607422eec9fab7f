package cli

import (
	"fmt"
	"time"

	"construct-erp/internal/app"

	"github.com/spf13/cobra"
)

type windowResult struct {
	Now          string `json:"now"`
	WorkDate     string `json:"workDate"`
	WindowStart  string `json:"windowStart"`
	WindowEnd    string `json:"windowEnd"`
	HistoryFrom  string `json:"historyFrom"`
	HistoryUntil string `json:"historyUntil"`
}

// NewWindowCommand prints the attendance window containing --at (default
// now) under the configured timezone and anchor.
func NewWindowCommand(opts *RootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the current attendance window and history range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := app.NewResolver(opts.Config.Window)
			if err != nil {
				return err
			}

			now := opts.Now()
			if at != "" {
				now, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q, expected RFC3339: %w", at, err)
				}
			}

			snap := resolver.SnapshotAt(now)
			res := windowResult{
				Now:          snap.Now.Format(time.RFC3339),
				WorkDate:     snap.Current.WorkDate().Format("2006-01-02"),
				WindowStart:  snap.Current.Start.Format(time.RFC3339),
				WindowEnd:    snap.Current.End.Format(time.RFC3339),
				HistoryFrom:  snap.History.From.Format(time.RFC3339),
				HistoryUntil: snap.History.To.Format(time.RFC3339),
			}
			text := fmt.Sprintf("work date %s\nwindow    %s .. %s\nhistory   %s .. %s",
				res.WorkDate, res.WindowStart, res.WindowEnd, res.HistoryFrom, res.HistoryUntil)
			return output(cmd.OutOrStdout(), opts.Format, res, text)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "instant to resolve, RFC3339")
	return cmd
}
