package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wvwvw5/neuro-store/internal/adapters/render/storefront"
	"github.com/wvwvw5/neuro-store/internal/application"
	"github.com/wvwvw5/neuro-store/internal/domain"
)

func newAdminCmd(app *app) *cobra.Command {
	var statsOnly bool
	var usersOnly bool

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Show the admin panel (statistics and users)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if statsOnly && usersOnly {
				return errors.New("--stats and --users are mutually exclusive")
			}

			var view application.AdminView

			fetch := func(ctx context.Context) error {
				var err error
				view, err = app.service.Admin(ctx)
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading admin panel...", fetch); err != nil {
				if errors.Is(err, domain.ErrAccessDenied) {
					return errors.New("access denied: the admin panel requires an admin account")
				}
				return loginHint(err)
			}

			tab := storefront.AdminTabAll
			if statsOnly {
				tab = storefront.AdminTabStatistics
			}
			if usersOnly {
				tab = storefront.AdminTabUsers
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderAdmin(view, tab, storefront.RenderOptions{Now: app.now()}))
			return err
		},
	}

	cmd.Flags().BoolVar(&statsOnly, "stats", false, "Show only the statistics tab")
	cmd.Flags().BoolVar(&usersOnly, "users", false, "Show only the user list tab")

	return cmd
}
