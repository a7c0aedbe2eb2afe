package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoSession         = errors.New("no stored session")
	ErrSessionExpired    = errors.New("session expired")
	ErrAccessDenied      = errors.New("access denied")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrNoProductSelected = errors.New("no product selected")
	ErrNoPlanSelected    = errors.New("no plan selected")
)

// APIError carries a human-readable detail message returned by the
// remote API alongside its HTTP status.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}

	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Detail)
}
