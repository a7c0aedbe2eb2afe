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

func newBalanceCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show your account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var balance float64

			fetch := func(ctx context.Context) error {
				var err error
				balance, err = app.service.Balance(ctx)
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading balance...", fetch); err != nil {
				return loginHint(err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderBalance(balance))
			return err
		},
	}

	cmd.AddCommand(newTopUpCmd(app))

	return cmd
}

func newTopUpCmd(app *app) *cobra.Command {
	var request domain.PaymentRequest
	var code string

	cmd := &cobra.Command{
		Use:   "topup",
		Short: "Top up your balance with a card payment",
		Long:  "topup submits a card payment and then asks for the SMS verification code. Pass --code to skip the interactive prompt.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flow := application.NewTopUpFlow(app.gateway, app.sessions)

			if err := flow.SubmitPayment(cmd.Context(), request); err != nil {
				return loginHint(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderPaymentSubmitted(request, flow.PaymentID()))

			var receipt domain.Receipt
			var err error

			if code != "" {
				receipt, err = flow.VerifyCode(cmd.Context(), code)
			} else {
				receipt, err = runTopUpWizard(cmd.Context(), cmd.OutOrStdout(), flow)
			}
			if err != nil {
				if errors.Is(err, errTopUpCancelled) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Top-up cancelled, nothing was charged.")
					return nil
				}
				return loginHint(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), storefront.RenderReceipt(receipt))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Back to your subscriptions: `neuro dashboard`")
			return err
		},
	}

	cmd.Flags().Float64Var(&request.Amount, "amount", 0, "Amount to add, in rubles")
	cmd.Flags().StringVar(&request.CardNumber, "card", "", "Card number (spaces allowed)")
	cmd.Flags().StringVar(&request.CardHolder, "holder", "", "Cardholder name")
	cmd.Flags().IntVar(&request.ExpiryMonth, "month", 0, "Card expiry month (1-12)")
	cmd.Flags().IntVar(&request.ExpiryYear, "year", 0, "Card expiry year")
	cmd.Flags().StringVar(&request.CVV, "cvv", "", "Card CVV")
	cmd.Flags().StringVar(&request.Phone, "phone", "", "Phone for the SMS code (optional)")
	cmd.Flags().StringVar(&code, "code", "", "SMS verification code (skips the interactive prompt)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("card")
	_ = cmd.MarkFlagRequired("holder")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("cvv")

	return cmd
}
