package storefront

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/wvwvw5/neuro-store/internal/domain"
)

func RenderBalance(balance float64) string {
	s := newStyles()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render("Current balance"),
		s.balance.Render(formatPrice(balance)),
	)
}

func RenderPaymentSubmitted(request domain.PaymentRequest, paymentID domain.PaymentID) string {
	s := newStyles()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render("Payment submitted"),
		s.detail.Render(fmt.Sprintf("amount: %s", formatPrice(request.Amount))),
		s.detail.Render(fmt.Sprintf("card:   %s", FormatCardNumber(request.CardNumber))),
		s.faint.Render(fmt.Sprintf("payment id %d, awaiting the SMS verification code", paymentID)),
	)
}

func RenderReceipt(receipt domain.Receipt) string {
	s := newStyles()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.badgeOK.Render(receipt.Message),
		s.title.Render("New balance"),
		s.balance.Render(formatPrice(receipt.NewBalance)),
	)
}
