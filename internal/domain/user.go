package domain

import "time"

type UserID int64

type User struct {
	ID        UserID
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Active    bool
	CreatedAt time.Time
}

// Roles is the role-check payload returned after login.
type Roles struct {
	IsAdmin bool
}

// Registration is the sign-up request. Confirm never leaves the client:
// it is checked locally before any network call.
type Registration struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
	Confirm   string `validate:"required"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Phone     string
}

// Statistics is the aggregate admin view: totals by entity kind.
type Statistics struct {
	Users         StatisticsGroup
	Subscriptions StatisticsGroup
	Orders        OrderStatistics
}

type StatisticsGroup struct {
	Total    int
	Active   int
	Inactive int
}

type OrderStatistics struct {
	Total     int
	Completed int
	Pending   int
}
