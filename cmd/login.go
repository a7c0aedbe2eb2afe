package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wvwvw5/neuro-store/internal/application"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.service.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			if result.RoleCheckFailed {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: role check failed, continuing as a regular user")
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)

			switch result.Destination {
			case application.DestinationAdmin:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "You have admin access: see `neuro admin`")
			default:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "See your subscriptions with `neuro dashboard`")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
