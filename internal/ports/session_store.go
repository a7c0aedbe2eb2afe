package ports

import (
	"context"

	"github.com/wvwvw5/neuro-store/internal/domain"
)

// SessionStore is the single authoritative surface for the persisted
// bearer token pair. Load returns domain.ErrNoSession when nothing is
// stored; Clear is a no-op when nothing is stored.
type SessionStore interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
