package api

import (
	"time"

	"github.com/wvwvw5/neuro-store/internal/domain"
)

type tokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type rolesDTO struct {
	IsAdmin bool `json:"is_admin"`
}

type registerDTO struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone,omitempty"`
}

type userDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

func (d userDTO) toDomain() domain.User {
	return domain.User{
		ID:        domain.UserID(d.ID),
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
		Active:    d.IsActive,
		CreatedAt: parseTimestamp(d.CreatedAt),
	}
}

type productDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	APIEndpoint string `json:"api_endpoint,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (d productDTO) toDomain() domain.Product {
	return domain.Product{
		ID:          domain.ProductID(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		APIEndpoint: d.APIEndpoint,
		Active:      d.IsActive,
		CreatedAt:   parseTimestamp(d.CreatedAt),
		UpdatedAt:   parseTimestamp(d.UpdatedAt),
	}
}

type planDTO struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	Price               float64  `json:"price"`
	DurationDays        int      `json:"duration_days"`
	MaxRequestsPerMonth int      `json:"max_requests_per_month,omitempty"`
	Features            []string `json:"features,omitempty"`
	IsActive            bool     `json:"is_active"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

func (d planDTO) toDomain() domain.Plan {
	return domain.Plan{
		ID:                  domain.PlanID(d.ID),
		Name:                d.Name,
		Description:         d.Description,
		Price:               d.Price,
		DurationDays:        d.DurationDays,
		MaxRequestsPerMonth: d.MaxRequestsPerMonth,
		Features:            d.Features,
		Active:              d.IsActive,
		CreatedAt:           parseTimestamp(d.CreatedAt),
		UpdatedAt:           parseTimestamp(d.UpdatedAt),
	}
}

type subscribeDTO struct {
	ProductID int64 `json:"product_id"`
	PlanID    int64 `json:"plan_id"`
}

type subscriptionDTO struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	ProductID    int64  `json:"product_id"`
	PlanID       int64  `json:"plan_id"`
	Status       string `json:"status"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	AutoRenew    bool   `json:"auto_renew"`
	RequestsUsed int    `json:"requests_used"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (d subscriptionDTO) toDomain() domain.Subscription {
	return domain.Subscription{
		ID:           domain.SubscriptionID(d.ID),
		UserID:       domain.UserID(d.UserID),
		ProductID:    domain.ProductID(d.ProductID),
		PlanID:       domain.PlanID(d.PlanID),
		Status:       domain.SubscriptionStatus(d.Status),
		StartDate:    parseTimestamp(d.StartDate),
		EndDate:      parseTimestamp(d.EndDate),
		AutoRenew:    d.AutoRenew,
		RequestsUsed: d.RequestsUsed,
		CreatedAt:    parseTimestamp(d.CreatedAt),
		UpdatedAt:    parseTimestamp(d.UpdatedAt),
	}
}

type statisticsGroupDTO struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type orderStatisticsDTO struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type statisticsDTO struct {
	Users         statisticsGroupDTO `json:"users"`
	Subscriptions statisticsGroupDTO `json:"subscriptions"`
	Orders        orderStatisticsDTO `json:"orders"`
}

func (d statisticsDTO) toDomain() domain.Statistics {
	return domain.Statistics{
		Users: domain.StatisticsGroup{
			Total:    d.Users.Total,
			Active:   d.Users.Active,
			Inactive: d.Users.Inactive,
		},
		Subscriptions: domain.StatisticsGroup{
			Total:    d.Subscriptions.Total,
			Active:   d.Subscriptions.Active,
			Inactive: d.Subscriptions.Inactive,
		},
		Orders: domain.OrderStatistics{
			Total:     d.Orders.Total,
			Completed: d.Orders.Completed,
			Pending:   d.Orders.Pending,
		},
	}
}

type balanceDTO struct {
	Balance float64 `json:"balance"`
}

type topUpDTO struct {
	Amount      float64 `json:"amount"`
	CardNumber  string  `json:"card_number"`
	CardHolder  string  `json:"card_holder"`
	ExpiryMonth int     `json:"expiry_month"`
	ExpiryYear  int     `json:"expiry_year"`
	CVV         string  `json:"cvv"`
	Phone       *string `json:"phone,omitempty"`
}

type topUpResponseDTO struct {
	Success              bool    `json:"success"`
	Message              string  `json:"message"`
	VerificationRequired bool    `json:"verification_required"`
	PaymentID            int64   `json:"payment_id"`
	Amount               float64 `json:"amount"`
}

type verifyPaymentDTO struct {
	PaymentID        int64  `json:"payment_id"`
	VerificationCode string `json:"verification_code"`
}

type paymentStatusDTO struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	NewBalance float64 `json:"new_balance"`
	PaymentID  int64   `json:"payment_id"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// parseTimestamp tolerates the zone-less ISO strings the API emits;
// an unparseable value renders as the zero time rather than failing
// the whole payload.
func parseTimestamp(value string) time.Time {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}

	return time.Time{}
}
