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

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the product catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checkout := application.NewCheckout(app.gateway, app.sessions)

			fetch := func(ctx context.Context) error {
				return checkout.LoadProducts(ctx)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading catalog...", fetch); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderProducts(checkout.Products()))
			return err
		},
	}

	cmd.AddCommand(newCatalogPlansCmd(app), newCatalogSubscribeCmd(app))

	return cmd
}

func newCatalogPlansCmd(app *app) *cobra.Command {
	var productID int64

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List the plans of a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checkout := application.NewCheckout(app.gateway, app.sessions)

			fetch := func(ctx context.Context) error {
				if err := checkout.LoadProducts(ctx); err != nil {
					return err
				}
				return checkout.SelectProduct(ctx, domain.ProductID(productID))
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading plans...", fetch); err != nil {
				return err
			}

			product := checkout.SelectedProduct()
			if product == nil {
				return fmt.Errorf("product %d not found in the catalog", productID)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderPlans(*product, checkout.Plans(), nil))
			return err
		},
	}

	cmd.Flags().Int64Var(&productID, "product", 0, "Product ID")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newCatalogSubscribeCmd(app *app) *cobra.Command {
	var productID int64
	var planID int64

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe to a product plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checkout := application.NewCheckout(app.gateway, app.sessions)

			var subscription domain.Subscription

			fetch := func(ctx context.Context) error {
				if err := checkout.LoadProducts(ctx); err != nil {
					return err
				}
				if err := checkout.SelectProduct(ctx, domain.ProductID(productID)); err != nil {
					return err
				}
				if checkout.SelectedProduct() == nil {
					return fmt.Errorf("product %d not found in the catalog", productID)
				}

				checkout.SelectPlan(domain.PlanID(planID))
				if checkout.SelectedPlan() == nil {
					return fmt.Errorf("plan %d not found for product %d", planID, productID)
				}

				var err error
				subscription, err = checkout.Subscribe(ctx)
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Creating subscription...", fetch); err != nil {
				if errors.Is(err, domain.ErrNoSession) || errors.Is(err, domain.ErrSessionExpired) {
					return loginHint(err)
				}
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderSubscriptionCreated(subscription))
			return err
		},
	}

	cmd.Flags().Int64Var(&productID, "product", 0, "Product ID")
	cmd.Flags().Int64Var(&planID, "plan", 0, "Plan ID")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}
