package apiclient

import (
	"context"
	"net/http"

	"storefront-client/internal/domain"
)

// GetProfile fetches the signed-in shopper's profile. First-time shoppers
// get a skeleton record back; the backend creates it on read.
func (c *Client) GetProfile(ctx context.Context) (*domain.Profile, error) {
	var p domain.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &p, nil); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile submits edited fields and returns the updated record.
// Only fields set in the update are touched server-side.
func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	var p domain.Profile
	if err := c.do(ctx, http.MethodPut, "/profile", update, &p, nil); err != nil {
		return nil, err
	}
	return &p, nil
}
