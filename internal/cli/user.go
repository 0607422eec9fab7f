package cli

import (
	"fmt"

	"construct-erp/internal/auth"

	"github.com/spf13/cobra"
)

func NewUserCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUserCreateCommand(opts))
	return cmd
}

func newUserCreateCommand(opts *RootOptions) *cobra.Command {
	var req auth.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin, site_incharge or foreman account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.OpenDB(opts.Config.DB)
			if err != nil {
				return err
			}
			defer closeDB(db)

			svc := auth.NewService(auth.NewRepository(db), auth.TokenConfig{Secret: opts.Config.JWTSecret})
			user, err := svc.CreateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), opts.Format, user,
				fmt.Sprintf("created %s %s (%s)", user.Role, user.Username, user.ID))
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "login name")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name, defaults to username")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&req.Role, "role", "", "admin, site_incharge or foreman")
	cmd.Flags().StringVar(&req.SiteID, "site", "", "site id, required unless role is admin")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
