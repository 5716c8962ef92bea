package stubapi

import (
	"github.com/shopspring/decimal"

	"storefront-client/internal/domain"
)

// seedProducts is the canned catalog served by the stub backend.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "PROD-1",
			Name:        "Fancy Widget",
			Description: "A finely machined widget for everyday fancy needs",
			Price:       decimal.RequireFromString("10.50"),
			ImageURL:    "https://via.placeholder.com/300x200?text=Widget",
		},
		{
			ID:          "PROD-2",
			Name:        "Super Gadget",
			Description: "Does more than a regular gadget",
			Price:       decimal.RequireFromString("25.00"),
			ImageURL:    "https://via.placeholder.com/300x200?text=Gadget",
		},
		{
			ID:          "PROD-3",
			Name:        "Demo Mug",
			Description: "Ceramic mug with demo logo",
			Price:       decimal.RequireFromString("12.99"),
			ImageURL:    "https://via.placeholder.com/300x200?text=Mug",
		},
	}
}
