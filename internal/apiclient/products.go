package apiclient

import (
	"context"
	"net/http"

	"storefront-client/internal/domain"
)

// ListProducts fetches the catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products, nil); err != nil {
		return nil, err
	}
	return products, nil
}
