package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wvwvw5/neuro-store/internal/domain"
)

func catalogGateway() *stubGateway {
	return &stubGateway{
		productsFn: func() ([]domain.Product, error) {
			return []domain.Product{
				{ID: 1, Name: "ChatGPT", Category: "text", Active: true},
				{ID: 2, Name: "DALL-E", Category: "image", Active: true},
			}, nil
		},
		productPlansFn: func(productID domain.ProductID) ([]domain.Plan, error) {
			switch productID {
			case 1:
				return []domain.Plan{{ID: 10, Name: "Basic", Price: 990, DurationDays: 30}}, nil
			case 2:
				return []domain.Plan{{ID: 20, Name: "Pro", Price: 2990, DurationDays: 90}}, nil
			default:
				return nil, nil
			}
		},
	}
}

func TestCheckoutSelectingSecondProductDiscardsFirstPlans(t *testing.T) {
	sessions := newTestSessionStore(t)
	checkout := NewCheckout(catalogGateway(), sessions)

	ctx := context.Background()
	require.NoError(t, checkout.LoadProducts(ctx))
	require.NoError(t, checkout.SelectProduct(ctx, 1))
	checkout.SelectPlan(10)
	require.NotNil(t, checkout.SelectedPlan())

	require.NoError(t, checkout.SelectProduct(ctx, 2))
	assert.Nil(t, checkout.SelectedPlan())
	require.Len(t, checkout.Plans(), 1)
	assert.Equal(t, domain.PlanID(20), checkout.Plans()[0].ID)
}

func TestCheckoutUnknownPlanIDYieldsNilSelection(t *testing.T) {
	sessions := newTestSessionStore(t)
	checkout := NewCheckout(catalogGateway(), sessions)

	ctx := context.Background()
	require.NoError(t, checkout.LoadProducts(ctx))
	require.NoError(t, checkout.SelectProduct(ctx, 1))
	checkout.SelectPlan(10)
	require.NotNil(t, checkout.SelectedPlan())

	checkout.SelectPlan(999)
	assert.Nil(t, checkout.SelectedPlan())
}

func TestCheckoutPlanSelectionRequiresProduct(t *testing.T) {
	sessions := newTestSessionStore(t)
	checkout := NewCheckout(catalogGateway(), sessions)

	require.NoError(t, checkout.LoadProducts(context.Background()))
	checkout.SelectPlan(10)
	assert.Nil(t, checkout.SelectedPlan())
}

func TestCheckoutUnknownProductIDFetchesNothing(t *testing.T) {
	sessions := newTestSessionStore(t)
	gateway := catalogGateway()
	checkout := NewCheckout(gateway, sessions)

	ctx := context.Background()
	require.NoError(t, checkout.LoadProducts(ctx))
	require.NoError(t, checkout.SelectProduct(ctx, 999))
	assert.Nil(t, checkout.SelectedProduct())
	assert.Empty(t, checkout.Plans())
	assert.Equal(t, []string{"products"}, gateway.calls)
}

func TestCheckoutSubscribeWithoutSessionIssuesNoCall(t *testing.T) {
	sessions := newTestSessionStore(t)
	gateway := catalogGateway()
	checkout := NewCheckout(gateway, sessions)

	ctx := context.Background()
	require.NoError(t, checkout.LoadProducts(ctx))
	require.NoError(t, checkout.SelectProduct(ctx, 1))
	checkout.SelectPlan(10)

	_, err := checkout.Subscribe(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.NotContains(t, gateway.calls, "subscribe")
}

func TestCheckoutSubscribeWithoutSelectionFailsLocally(t *testing.T) {
	sessions := newTestSessionStore(t)
	require.NoError(t, sessions.Save(context.Background(), testSession()))
	gateway := catalogGateway()
	checkout := NewCheckout(gateway, sessions)

	ctx := context.Background()
	require.NoError(t, checkout.LoadProducts(ctx))

	_, err := checkout.Subscribe(ctx)
	assert.ErrorIs(t, err, domain.ErrNoProductSelected)

	require.NoError(t, checkout.SelectProduct(ctx, 1))
	_, err = checkout.Subscribe(ctx)
	assert.ErrorIs(t, err, domain.ErrNoPlanSelected)

	assert.NotContains(t, gateway.calls, "subscribe")
}

func TestCheckoutSubscribePostsCurrentSelectionOnce(t *testing.T) {
	sessions := newTestSessionStore(t)
	require.NoError(t, sessions.Save(context.Background(), testSession()))

	gateway := catalogGateway()
	gateway.subscribeFn = func(session domain.Session, productID domain.ProductID, planID domain.PlanID) (domain.Subscription, error) {
		assert.Equal(t, testSession(), session)
		assert.Equal(t, domain.ProductID(1), productID)
		assert.Equal(t, domain.PlanID(10), planID)
		return domain.Subscription{ID: 5, ProductID: productID, PlanID: planID, Status: domain.SubscriptionActive}, nil
	}
	checkout := NewCheckout(gateway, sessions)

	ctx := context.Background()
	require.NoError(t, checkout.LoadProducts(ctx))
	require.NoError(t, checkout.SelectProduct(ctx, 1))
	checkout.SelectPlan(10)

	subscription, err := checkout.Subscribe(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionID(5), subscription.ID)

	subscribeCalls := 0
	for _, call := range gateway.calls {
		if call == "subscribe" {
			subscribeCalls++
		}
	}
	assert.Equal(t, 1, subscribeCalls)

	// success resets the selection for a new browse cycle
	assert.Nil(t, checkout.SelectedProduct())
	assert.Nil(t, checkout.SelectedPlan())
	assert.Empty(t, checkout.Plans())
}

func TestCheckoutSubscribeExpiredSessionIsCleared(t *testing.T) {
	sessions := newTestSessionStore(t)
	require.NoError(t, sessions.Save(context.Background(), testSession()))

	gateway := catalogGateway()
	gateway.subscribeFn = func(domain.Session, domain.ProductID, domain.PlanID) (domain.Subscription, error) {
		return domain.Subscription{}, domain.ErrSessionExpired
	}
	checkout := NewCheckout(gateway, sessions)

	ctx := context.Background()
	require.NoError(t, checkout.LoadProducts(ctx))
	require.NoError(t, checkout.SelectProduct(ctx, 1))
	checkout.SelectPlan(10)

	_, err := checkout.Subscribe(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	_, err = sessions.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
