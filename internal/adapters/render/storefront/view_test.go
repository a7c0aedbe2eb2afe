package storefront

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wvwvw5/neuro-store/internal/application"
	"github.com/wvwvw5/neuro-store/internal/domain"
)

func TestFormatCardNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bare digits", "4111111111111111", "4111 1111 1111 1111"},
		{"already spaced", "4111 1111 1111 1111", "4111 1111 1111 1111"},
		{"mixed garbage stripped", "4111-1111 11x11 1111", "4111 1111 1111 1111"},
		{"partial entry", "41111", "4111 1"},
		{"empty", "", ""},
		{"no digits", "abcd", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatCardNumber(tc.input))
		})
	}
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "1 month", durationLabel(30))
	assert.Equal(t, "3 months", durationLabel(90))
	assert.Equal(t, "6 months", durationLabel(180))
	assert.Equal(t, "1 year", durationLabel(365))
	assert.Equal(t, "45 days", durationLabel(45))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "499 ₽", formatPrice(499))
	assert.Equal(t, "1500.5 ₽", formatPrice(1500.5))
}

func TestRenderProducts(t *testing.T) {
	output := RenderProducts([]domain.Product{
		{
			ID:          1,
			Name:        "ChatGPT Plus",
			Description: "Conversational assistant",
			Category:    "text",
			Active:      true,
		},
		{
			ID:     2,
			Name:   "DALL-E",
			Active: false,
		},
	})

	assert.Contains(t, output, "Neuro Store")
	assert.Contains(t, output, "products: 2")
	assert.Contains(t, output, "ChatGPT Plus")
	assert.Contains(t, output, "Conversational assistant")
	assert.Contains(t, output, "DALL-E")
	assert.Contains(t, output, "No description available.")
}

func TestRenderProductsEmpty(t *testing.T) {
	output := RenderProducts(nil)

	assert.Contains(t, output, "products: 0")
	assert.Contains(t, output, "No products available.")
}

func TestRenderPlansMarksSelection(t *testing.T) {
	product := domain.Product{ID: 1, Name: "ChatGPT Plus"}
	plans := []domain.Plan{
		{ID: 10, Name: "Monthly", Price: 499, DurationDays: 30, MaxRequestsPerMonth: 1000, Active: true},
		{ID: 20, Name: "Yearly", Price: 4990, DurationDays: 365, Features: []string{"priority queue"}, Active: true},
	}

	output := RenderPlans(product, plans, &plans[1])

	assert.Contains(t, output, "Plans for ChatGPT Plus")
	assert.Contains(t, output, "plans: 2")
	assert.Contains(t, output, "499 ₽ / 1 month")
	assert.Contains(t, output, "4990 ₽ / 1 year")
	assert.Contains(t, output, "up to 1000 requests/month")
	assert.Contains(t, output, "- priority queue")
	assert.Contains(t, output, "> Yearly  #20")
	assert.NotContains(t, output, "> Monthly")
}

func TestRenderSubscriptionCreated(t *testing.T) {
	output := RenderSubscriptionCreated(domain.Subscription{
		ID:        7,
		ProductID: 1,
		PlanID:    10,
		Status:    domain.SubscriptionActive,
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, output, "Subscription #7 created")
	assert.Contains(t, output, "product #1, plan #10")
	assert.Contains(t, output, "valid 01 Feb 2026 to 03 Mar 2026")
}

func TestRenderDashboard(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	output := RenderDashboard(application.DashboardView{
		User: domain.User{
			Email:     "ivan@example.com",
			FirstName: "Ivan",
			LastName:  "Petrov",
			Phone:     "+79990001122",
			CreatedAt: time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC),
		},
		Subscriptions: []domain.Subscription{
			{
				ID:           7,
				ProductID:    1,
				PlanID:       10,
				Status:       domain.SubscriptionActive,
				StartDate:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
				EndDate:      time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
				AutoRenew:    true,
				RequestsUsed: 42,
			},
		},
	}, RenderOptions{Now: now})

	assert.Contains(t, output, "Hello, Ivan!")
	assert.Contains(t, output, "ivan@example.com")
	assert.Contains(t, output, "Ivan Petrov")
	assert.Contains(t, output, "registered 05 Nov 2025")
	assert.Contains(t, output, "Subscription #7")
	assert.Contains(t, output, "active")
	assert.Contains(t, output, "01 Feb 2026 to 03 Mar 2026")
	assert.Contains(t, output, "42 used")
	assert.Contains(t, output, "auto-renew: yes")
	assert.Contains(t, output, "as of 10:30 on 01 Mar")
}

func TestRenderDashboardNoSubscriptions(t *testing.T) {
	output := RenderDashboard(application.DashboardView{
		User: domain.User{FirstName: "Ivan", Email: "ivan@example.com"},
	}, RenderOptions{})

	assert.Contains(t, output, "No subscriptions yet.")
	assert.Contains(t, output, "neuro catalog")
	assert.NotContains(t, output, "as of")
}

func TestRenderAdminTabs(t *testing.T) {
	view := application.AdminView{
		Statistics: domain.Statistics{
			Users:         domain.StatisticsGroup{Total: 12, Active: 10, Inactive: 2},
			Subscriptions: domain.StatisticsGroup{Total: 8, Active: 6, Inactive: 2},
			Orders:        domain.OrderStatistics{Total: 20, Completed: 18, Pending: 2},
		},
		Users: []domain.User{
			{ID: 1, Email: "admin@example.com", FirstName: "Olga", LastName: "Ivanova", Active: true},
		},
	}

	stats := RenderAdmin(view, AdminTabStatistics, RenderOptions{})
	assert.Contains(t, stats, "Statistics")
	assert.Contains(t, stats, "total:    12")
	assert.Contains(t, stats, "completed: 18")
	assert.NotContains(t, stats, "admin@example.com")

	users := RenderAdmin(view, AdminTabUsers, RenderOptions{})
	assert.Contains(t, users, "Users: 1")
	assert.Contains(t, users, "admin@example.com")
	assert.Contains(t, users, "Olga Ivanova")
	assert.NotContains(t, users, "Statistics")

	all := RenderAdmin(view, AdminTabAll, RenderOptions{})
	assert.Contains(t, all, "Statistics")
	assert.Contains(t, all, "admin@example.com")
}

func TestRenderPaymentSubmitted(t *testing.T) {
	output := RenderPaymentSubmitted(domain.PaymentRequest{
		Amount:     500,
		CardNumber: "4111111111111111",
	}, 42)

	assert.Contains(t, output, "Payment submitted")
	assert.Contains(t, output, "500 ₽")
	assert.Contains(t, output, "4111 1111 1111 1111")
	assert.Contains(t, output, "payment id 42")
}

func TestRenderReceipt(t *testing.T) {
	output := RenderReceipt(domain.Receipt{
		Message:    "Баланс успешно пополнен",
		NewBalance: 1500.5,
		PaymentID:  42,
	})

	assert.Contains(t, output, "Баланс успешно пополнен")
	assert.Contains(t, output, "1500.5 ₽")
}
