package domain

import "github.com/shopspring/decimal"

// Product is catalog data as the backend serves it. The client never
// mutates products; field names mirror the wire format.
type Product struct {
	ID          string          `json:"ProductID"`
	Name        string          `json:"Name"`
	Description string          `json:"Description,omitempty"`
	Price       decimal.Decimal `json:"Price"`
	ImageURL    string          `json:"ImageURL,omitempty"`
}
