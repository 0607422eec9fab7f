package cli

import (
	"construct-erp/internal/app"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.OpenDB(opts.Config.DB)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := app.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts.Format, map[string]bool{"migrated": true}, "schema up to date")
		},
	}
}
