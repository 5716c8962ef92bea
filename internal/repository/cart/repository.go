package cart

import (
	"context"

	"storefront-client/internal/domain"
)

// Repository is the persisted cart slot: a single durable document that
// mirrors the in-memory cart after every mutation.
type Repository interface {
	// Load reads the stored cart. An absent slot yields an empty cart and
	// nil error. An unreadable slot yields an empty cart and
	// domain.ErrCartCorrupt so the caller can log and carry on.
	Load(ctx context.Context) (domain.Cart, error)

	// Save replaces the stored cart with the given snapshot.
	Save(ctx context.Context, c domain.Cart) error

	// Clear removes the stored cart entirely.
	Clear(ctx context.Context) error
}
