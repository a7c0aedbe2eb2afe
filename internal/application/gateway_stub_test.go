package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	sessionfile "github.com/wvwvw5/neuro-store/internal/adapters/session/file"
	"github.com/wvwvw5/neuro-store/internal/domain"
)

// stubGateway records every call and delegates to per-method funcs; a
// call without a configured func fails the flow visibly.
type stubGateway struct {
	calls []string

	loginFn         func(email, password string) (domain.Session, error)
	registerFn      func(registration domain.Registration) (domain.User, error)
	rolesFn         func(session domain.Session) (domain.Roles, error)
	meFn            func(session domain.Session) (domain.User, error)
	productsFn      func() ([]domain.Product, error)
	productPlansFn  func(productID domain.ProductID) ([]domain.Plan, error)
	subscribeFn     func(session domain.Session, productID domain.ProductID, planID domain.PlanID) (domain.Subscription, error)
	subscriptionsFn func(session domain.Session) ([]domain.Subscription, error)
	adminProbeFn    func(session domain.Session) error
	adminStatsFn    func(session domain.Session) (domain.Statistics, error)
	adminUsersFn    func(session domain.Session) ([]domain.User, error)
	balanceFn       func(session domain.Session) (float64, error)
	topUpFn         func(session domain.Session, request domain.PaymentRequest) (domain.PaymentID, error)
	verifyFn        func(session domain.Session, paymentID domain.PaymentID, code string) (domain.Receipt, error)
	healthFn        func() (string, error)
}

func (g *stubGateway) record(name string) {
	g.calls = append(g.calls, name)
}

func (g *stubGateway) Login(_ context.Context, email, password string) (domain.Session, error) {
	g.record("login")
	if g.loginFn == nil {
		return domain.Session{}, fmt.Errorf("unexpected login call")
	}
	return g.loginFn(email, password)
}

func (g *stubGateway) Register(_ context.Context, registration domain.Registration) (domain.User, error) {
	g.record("register")
	if g.registerFn == nil {
		return domain.User{}, fmt.Errorf("unexpected register call")
	}
	return g.registerFn(registration)
}

func (g *stubGateway) Roles(_ context.Context, session domain.Session) (domain.Roles, error) {
	g.record("roles")
	if g.rolesFn == nil {
		return domain.Roles{}, fmt.Errorf("unexpected roles call")
	}
	return g.rolesFn(session)
}

func (g *stubGateway) Me(_ context.Context, session domain.Session) (domain.User, error) {
	g.record("me")
	if g.meFn == nil {
		return domain.User{}, fmt.Errorf("unexpected me call")
	}
	return g.meFn(session)
}

func (g *stubGateway) Products(_ context.Context) ([]domain.Product, error) {
	g.record("products")
	if g.productsFn == nil {
		return nil, fmt.Errorf("unexpected products call")
	}
	return g.productsFn()
}

func (g *stubGateway) ProductPlans(_ context.Context, productID domain.ProductID) ([]domain.Plan, error) {
	g.record("product_plans")
	if g.productPlansFn == nil {
		return nil, fmt.Errorf("unexpected product plans call")
	}
	return g.productPlansFn(productID)
}

func (g *stubGateway) Subscribe(_ context.Context, session domain.Session, productID domain.ProductID, planID domain.PlanID) (domain.Subscription, error) {
	g.record("subscribe")
	if g.subscribeFn == nil {
		return domain.Subscription{}, fmt.Errorf("unexpected subscribe call")
	}
	return g.subscribeFn(session, productID, planID)
}

func (g *stubGateway) Subscriptions(_ context.Context, session domain.Session) ([]domain.Subscription, error) {
	g.record("subscriptions")
	if g.subscriptionsFn == nil {
		return nil, fmt.Errorf("unexpected subscriptions call")
	}
	return g.subscriptionsFn(session)
}

func (g *stubGateway) AdminProbe(_ context.Context, session domain.Session) error {
	g.record("admin_probe")
	if g.adminProbeFn == nil {
		return fmt.Errorf("unexpected admin probe call")
	}
	return g.adminProbeFn(session)
}

func (g *stubGateway) AdminStatistics(_ context.Context, session domain.Session) (domain.Statistics, error) {
	g.record("admin_statistics")
	if g.adminStatsFn == nil {
		return domain.Statistics{}, fmt.Errorf("unexpected admin statistics call")
	}
	return g.adminStatsFn(session)
}

func (g *stubGateway) AdminUsers(_ context.Context, session domain.Session) ([]domain.User, error) {
	g.record("admin_users")
	if g.adminUsersFn == nil {
		return nil, fmt.Errorf("unexpected admin users call")
	}
	return g.adminUsersFn(session)
}

func (g *stubGateway) Balance(_ context.Context, session domain.Session) (float64, error) {
	g.record("balance")
	if g.balanceFn == nil {
		return 0, fmt.Errorf("unexpected balance call")
	}
	return g.balanceFn(session)
}

func (g *stubGateway) TopUpBalance(_ context.Context, session domain.Session, request domain.PaymentRequest) (domain.PaymentID, error) {
	g.record("topup_balance")
	if g.topUpFn == nil {
		return 0, fmt.Errorf("unexpected top up call")
	}
	return g.topUpFn(session, request)
}

func (g *stubGateway) VerifyPayment(_ context.Context, session domain.Session, paymentID domain.PaymentID, code string) (domain.Receipt, error) {
	g.record("verify_payment")
	if g.verifyFn == nil {
		return domain.Receipt{}, fmt.Errorf("unexpected verify payment call")
	}
	return g.verifyFn(session, paymentID, code)
}

func (g *stubGateway) Health(_ context.Context) (string, error) {
	g.record("health")
	if g.healthFn == nil {
		return "", fmt.Errorf("unexpected health call")
	}
	return g.healthFn()
}

func newTestSessionStore(t *testing.T) *sessionfile.Store {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store, err := sessionfile.NewStore(viper.New())
	require.NoError(t, err)
	return store
}

func testSession() domain.Session {
	return domain.Session{AccessToken: "tok-123", TokenType: "bearer"}
}
