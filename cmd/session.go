package cmd

import (
	"errors"
	"fmt"

	"github.com/wvwvw5/neuro-store/internal/domain"
)

// loginHint swaps the session sentinels for actionable messages; every
// protected command routes its error through here.
func loginHint(err error) error {
	switch {
	case errors.Is(err, domain.ErrNoSession):
		return errors.New("not logged in: run `neuro login` first")
	case errors.Is(err, domain.ErrSessionExpired):
		return fmt.Errorf("session expired, run `neuro login` again: %w", err)
	default:
		return err
	}
}
