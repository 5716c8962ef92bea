package apiclient

import (
	"context"
	"net/http"

	"storefront-client/internal/domain"
)

// ListOrders fetches the shopper's order history.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders, nil); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits an order draft. idempotencyKey lets the backend
// recognize a retried submission of the same attempt.
func (c *Client) CreateOrder(ctx context.Context, draft domain.OrderDraft, idempotencyKey string) (*domain.Order, error) {
	header := http.Header{}
	if idempotencyKey != "" {
		header.Set("Idempotency-Key", idempotencyKey)
	}
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", draft, &order, header); err != nil {
		return nil, err
	}
	return &order, nil
}
