package ports

import (
	"context"

	"github.com/wvwvw5/neuro-store/internal/domain"
)

// StoreGateway is the remote Neuro Store API, consumed over HTTP and
// never implemented here. Calls taking a session attach its bearer
// header; the rest are public endpoints.
type StoreGateway interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, registration domain.Registration) (domain.User, error)
	Roles(ctx context.Context, session domain.Session) (domain.Roles, error)
	Me(ctx context.Context, session domain.Session) (domain.User, error)

	Products(ctx context.Context) ([]domain.Product, error)
	ProductPlans(ctx context.Context, productID domain.ProductID) ([]domain.Plan, error)

	Subscribe(ctx context.Context, session domain.Session, productID domain.ProductID, planID domain.PlanID) (domain.Subscription, error)
	Subscriptions(ctx context.Context, session domain.Session) ([]domain.Subscription, error)

	AdminProbe(ctx context.Context, session domain.Session) error
	AdminStatistics(ctx context.Context, session domain.Session) (domain.Statistics, error)
	AdminUsers(ctx context.Context, session domain.Session) ([]domain.User, error)

	Balance(ctx context.Context, session domain.Session) (float64, error)
	TopUpBalance(ctx context.Context, session domain.Session, request domain.PaymentRequest) (domain.PaymentID, error)
	VerifyPayment(ctx context.Context, session domain.Session, paymentID domain.PaymentID, code string) (domain.Receipt, error)

	Health(ctx context.Context) (string, error)
}
