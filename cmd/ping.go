package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the API health and catalog endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := app.service.Health(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), raw)

			products, err := app.gateway.Products(cmd.Context())
			if err != nil {
				return fmt.Errorf("probe products endpoint: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "products endpoint ok: %d products\n", len(products))
			return err
		},
	}
}
