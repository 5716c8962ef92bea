package checkout

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"storefront-client/internal/domain"
)

type cartHolder interface {
	Snapshot() domain.Cart
	Clear(ctx context.Context) domain.Cart
}

type ordersClient interface {
	CreateOrder(ctx context.Context, draft domain.OrderDraft, idempotencyKey string) (*domain.Order, error)
}

// Service turns the current cart into an order submission. Submitting is
// not idempotent on its own, so each attempt carries a client-minted
// idempotency key and a second submission is refused while one is pending.
type Service struct {
	cart   cartHolder
	orders ordersClient
	logger *slog.Logger

	mu       sync.Mutex
	inFlight bool
}

func New(cart cartHolder, orders ordersClient, logger *slog.Logger) *Service {
	return &Service{cart: cart, orders: orders, logger: logger}
}

// Checkout submits the cart as a single order. On success the cart is
// cleared, in memory and in the persisted slot, and the backend's order is
// returned. On any failure the cart is left untouched so the shopper can
// retry.
func (s *Service) Checkout(ctx context.Context) (*domain.Order, error) {
	snapshot := s.cart.Snapshot()
	if snapshot.Empty() {
		return nil, domain.ErrEmptyCart
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, domain.ErrCheckoutInFlight
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	key := uuid.NewString()
	order, err := s.orders.CreateOrder(ctx, Draft(snapshot), key)
	if err != nil {
		s.logger.Warn("checkout failed, cart left untouched", "error", err, "idempotency_key", key)
		return nil, err
	}

	s.cart.Clear(ctx)
	s.logger.Info("order placed", "order_id", order.ID, "total", order.TotalAmount)
	return order, nil
}

// Draft builds the submission payload from a cart snapshot: unit prices are
// captured as they are in the cart now, and the total is computed the same
// way the cart service computes it.
func Draft(c domain.Cart) domain.OrderDraft {
	items := make([]domain.OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, domain.OrderItem{
			ProductID:    line.Product.ID,
			Quantity:     line.Quantity,
			PricePerUnit: line.Product.Price,
		})
	}
	return domain.OrderDraft{Items: items, TotalAmount: c.Total()}
}
