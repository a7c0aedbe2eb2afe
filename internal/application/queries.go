package application

import (
	"time"

	"github.com/wvwvw5/neuro-store/internal/domain"
)

type Destination string

const (
	DestinationDashboard Destination = "dashboard"
	DestinationAdmin     Destination = "admin"
)

// LoginResult reports where a fresh session should land. RoleCheckFailed
// marks the documented fail-open path: the role lookup failed, so the
// user is routed to the dashboard regardless of any admin role.
type LoginResult struct {
	Session         domain.Session
	Destination     Destination
	RoleCheckFailed bool
}

type DashboardView struct {
	User          domain.User
	Subscriptions []domain.Subscription
	FetchedAt     time.Time
}

type AdminView struct {
	Statistics domain.Statistics
	Users      []domain.User
	FetchedAt  time.Time
}
