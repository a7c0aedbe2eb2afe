package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wvwvw5/neuro-store/internal/adapters/render/storefront"
	"github.com/wvwvw5/neuro-store/internal/application"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your profile and subscriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var view application.DashboardView

			fetch := func(ctx context.Context) error {
				var err error
				view, err = app.service.Dashboard(ctx)
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading dashboard...", fetch); err != nil {
				return loginHint(err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderDashboard(view, storefront.RenderOptions{Now: app.now()}))
			return err
		},
	}
}
