package application

import (
	"context"
	"fmt"

	"github.com/wvwvw5/neuro-store/internal/domain"
	"github.com/wvwvw5/neuro-store/internal/ports"
)

// Checkout is the catalog browse-and-subscribe state machine. A product
// selection loads that product's plans and resets any prior plan choice;
// selecting an id absent from the loaded list yields a nil selection
// rather than an error.
type Checkout struct {
	gateway  ports.StoreGateway
	sessions ports.SessionStore

	products        []domain.Product
	plans           []domain.Plan
	selectedProduct *domain.Product
	selectedPlan    *domain.Plan
}

func NewCheckout(gateway ports.StoreGateway, sessions ports.SessionStore) *Checkout {
	return &Checkout{
		gateway:  gateway,
		sessions: sessions,
	}
}

func (c *Checkout) LoadProducts(ctx context.Context) error {
	products, err := c.gateway.Products(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}

	c.products = products
	c.plans = nil
	c.selectedProduct = nil
	c.selectedPlan = nil

	return nil
}

func (c *Checkout) Products() []domain.Product {
	return c.products
}

func (c *Checkout) Plans() []domain.Plan {
	return c.plans
}

func (c *Checkout) SelectedProduct() *domain.Product {
	return c.selectedProduct
}

func (c *Checkout) SelectedPlan() *domain.Plan {
	return c.selectedPlan
}

// SelectProduct switches the browse context: plans loaded for a
// previous product and any plan selection are discarded first. An id
// not present in the loaded product list leaves the selection nil and
// fetches nothing.
func (c *Checkout) SelectProduct(ctx context.Context, id domain.ProductID) error {
	c.plans = nil
	c.selectedPlan = nil
	c.selectedProduct = nil

	for i := range c.products {
		if c.products[i].ID == id {
			c.selectedProduct = &c.products[i]
			break
		}
	}

	if c.selectedProduct == nil {
		return nil
	}

	plans, err := c.gateway.ProductPlans(ctx, id)
	if err != nil {
		c.selectedProduct = nil
		return fmt.Errorf("load plans: %w", err)
	}

	c.plans = plans

	return nil
}

// SelectPlan requires a selected product; an unknown plan id resets the
// selection to nil.
func (c *Checkout) SelectPlan(id domain.PlanID) {
	c.selectedPlan = nil

	if c.selectedProduct == nil {
		return
	}

	for i := range c.plans {
		if c.plans[i].ID == id {
			c.selectedPlan = &c.plans[i]
			return
		}
	}
}

// Subscribe issues exactly one POST with the current selection. Without
// a stored session no API call is made. A 401 clears the stored session,
// distinguishing an expired session from never having logged in. Success
// resets the selection for a new browse cycle.
func (c *Checkout) Subscribe(ctx context.Context) (domain.Subscription, error) {
	session, err := c.sessions.Load(ctx)
	if err != nil {
		return domain.Subscription{}, err
	}

	if c.selectedProduct == nil {
		return domain.Subscription{}, domain.ErrNoProductSelected
	}
	if c.selectedPlan == nil {
		return domain.Subscription{}, domain.ErrNoPlanSelected
	}

	subscription, err := c.gateway.Subscribe(ctx, session, c.selectedProduct.ID, c.selectedPlan.ID)
	if err != nil {
		clearExpiredSession(ctx, c.sessions, err)
		return domain.Subscription{}, fmt.Errorf("subscribe: %w", err)
	}

	c.plans = nil
	c.selectedProduct = nil
	c.selectedPlan = nil

	return subscription, nil
}
