package domain

import "time"

type SubscriptionID int64

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionActive, SubscriptionExpired, SubscriptionCancelled, SubscriptionSuspended:
		return true
	default:
		return false
	}
}

// Subscription links a user to a product plan. All transitions happen
// server-side; the client only re-fetches.
type Subscription struct {
	ID           SubscriptionID
	UserID       UserID
	ProductID    ProductID
	PlanID       PlanID
	Status       SubscriptionStatus
	StartDate    time.Time
	EndDate      time.Time
	AutoRenew    bool
	RequestsUsed int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
