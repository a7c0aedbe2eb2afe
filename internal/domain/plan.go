package domain

import "time"

type PlanID int64

// Plan is a pricing option attached to a single product.
type Plan struct {
	ID                  PlanID
	Name                string
	Description         string
	Price               float64
	DurationDays        int
	MaxRequestsPerMonth int
	Features            []string
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
