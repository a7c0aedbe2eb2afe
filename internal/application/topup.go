package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	"github.com/wvwvw5/neuro-store/internal/domain"
	"github.com/wvwvw5/neuro-store/internal/ports"
)

type TopUpState string

const (
	StateCollectingPayment    TopUpState = "collecting_payment"
	StateAwaitingVerification TopUpState = "awaiting_verification"
	StateCompleted            TopUpState = "completed"
)

// TopUpFlow is the two-step balance top-up wizard: submit the card
// form, then confirm with the SMS verification code. A failed
// verification keeps the payment id so the code can be retried; going
// back and re-submitting always mints a new payment, discarding the
// previous id.
type TopUpFlow struct {
	gateway  ports.StoreGateway
	sessions ports.SessionStore
	validate *validator.Validate

	state     TopUpState
	paymentID domain.PaymentID
	receipt   domain.Receipt
}

func NewTopUpFlow(gateway ports.StoreGateway, sessions ports.SessionStore) *TopUpFlow {
	return &TopUpFlow{
		gateway:  gateway,
		sessions: sessions,
		validate: validator.New(),
		state:    StateCollectingPayment,
	}
}

func (f *TopUpFlow) State() TopUpState {
	return f.state
}

func (f *TopUpFlow) PaymentID() domain.PaymentID {
	return f.paymentID
}

func (f *TopUpFlow) Receipt() domain.Receipt {
	return f.receipt
}

// SubmitPayment validates the card form, reduces the card number to
// digits and posts the top-up. Success records the returned payment id
// and moves to verification; failure stays in the collecting step.
func (f *TopUpFlow) SubmitPayment(ctx context.Context, request domain.PaymentRequest) error {
	if f.state != StateCollectingPayment {
		return fmt.Errorf("submit payment: flow is in state %q", f.state)
	}

	request.CardNumber = cardDigits(request.CardNumber)

	if err := f.validate.Struct(request); err != nil {
		return fmt.Errorf("validate payment: %w", err)
	}

	session, err := f.sessions.Load(ctx)
	if err != nil {
		return err
	}

	paymentID, err := f.gateway.TopUpBalance(ctx, session, request)
	if err != nil {
		clearExpiredSession(ctx, f.sessions, err)
		return fmt.Errorf("top up balance: %w", err)
	}

	f.paymentID = paymentID
	f.state = StateAwaitingVerification

	return nil
}

// VerifyCode confirms the pending payment. A wrong code leaves the
// flow awaiting verification with the payment id unchanged.
func (f *TopUpFlow) VerifyCode(ctx context.Context, code string) (domain.Receipt, error) {
	if f.state != StateAwaitingVerification {
		return domain.Receipt{}, fmt.Errorf("verify payment: flow is in state %q", f.state)
	}

	session, err := f.sessions.Load(ctx)
	if err != nil {
		return domain.Receipt{}, err
	}

	receipt, err := f.gateway.VerifyPayment(ctx, session, f.paymentID, code)
	if err != nil {
		clearExpiredSession(ctx, f.sessions, err)
		return domain.Receipt{}, fmt.Errorf("verify payment: %w", err)
	}

	f.receipt = receipt
	f.state = StateCompleted

	return receipt, nil
}

// Back returns from the verification step to the card form. The pending
// payment id is kept only until the next SubmitPayment, which replaces
// it.
func (f *TopUpFlow) Back() {
	if f.state == StateAwaitingVerification {
		f.state = StateCollectingPayment
	}
}

func cardDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
