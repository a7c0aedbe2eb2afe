package domain

import "time"

type ProductID int64

// Product is a neural-network service sold through the store,
// mirrored as-is from the remote API.
type Product struct {
	ID          ProductID
	Name        string
	Description string
	Category    string
	APIEndpoint string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
