package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"storefront-client/internal/domain"
	cartrepo "storefront-client/internal/repository/cart"
)

// Service owns the session's cart. Views receive an explicit *Service and
// every mutation hands back the resulting snapshot; nothing is shared
// through ambient state. Each mutation writes through to the repository
// before returning.
type Service struct {
	mu     sync.Mutex
	cart   domain.Cart
	repo   cartrepo.Repository
	logger *slog.Logger
}

// New hydrates the cart from the repository. A corrupt or unreadable slot
// degrades to an empty cart; construction never fails because of storage.
func New(ctx context.Context, repo cartrepo.Repository, logger *slog.Logger) *Service {
	s := &Service{repo: repo, logger: logger}

	loaded, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("hydrating empty cart, persisted cart unreadable", "error", err)
		loaded = domain.Cart{}
	}
	s.cart = loaded
	return s
}

// Add puts one unit of product in the cart: a new line at quantity 1, or
// an increment of the existing line for the same product ID.
func (s *Service) Add(ctx context.Context, product domain.Product) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.cart.Lines {
		if s.cart.Lines[i].Product.ID == product.ID {
			s.cart.Lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart.Lines = append(s.cart.Lines, domain.CartLine{Product: product, Quantity: 1})
	}

	s.persist(ctx)
	return s.cart.Clone()
}

// UpdateQuantity adjusts an existing line by delta, flooring at 1. It never
// creates or removes lines: an unknown product ID is a no-op, and removal
// is Remove's job.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, delta int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		if s.cart.Lines[i].Product.ID != productID {
			continue
		}
		q := s.cart.Lines[i].Quantity + delta
		if q < 1 {
			q = 1
		}
		s.cart.Lines[i].Quantity = q
		s.persist(ctx)
		break
	}
	return s.cart.Clone()
}

// Remove deletes the line for productID, if present.
func (s *Service) Remove(ctx context.Context, productID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		if s.cart.Lines[i].Product.ID == productID {
			s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
			s.persist(ctx)
			break
		}
	}
	return s.cart.Clone()
}

// Clear empties the cart and its persisted slot.
func (s *Service) Clear(ctx context.Context) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = domain.Cart{}
	if err := s.repo.Clear(ctx); err != nil {
		s.logger.Warn("clearing persisted cart failed", "error", err)
	}
	return domain.Cart{}
}

// Snapshot returns a copy of the current cart.
func (s *Service) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// Total recomputes the cart total from current lines.
func (s *Service) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// persist writes the full cart through to the repository. The in-memory
// cart stays authoritative for the session when the write fails; retrying
// is not actionable from the UI, so the failure only goes to diagnostics.
func (s *Service) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.cart); err != nil {
		s.logger.Warn("persisting cart failed, in-memory cart remains authoritative", "error", err)
	}
}
