package domain

import "github.com/shopspring/decimal"

// Order statuses as the backend reports them.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusFulfilled = "FULFILLED"
)

// OrderItem is a price-and-quantity snapshot captured at checkout time.
// Historical orders keep the price paid, not the current catalog price.
type OrderItem struct {
	ProductID    string          `json:"ProductID"`
	Quantity     int             `json:"Quantity"`
	PricePerUnit decimal.Decimal `json:"PricePerUnit"`
}

// OrderDraft is what the client submits to create an order.
type OrderDraft struct {
	Items       []OrderItem     `json:"Items"`
	TotalAmount decimal.Decimal `json:"TotalAmount"`
}

// Order is created by the backend; the client never mints order IDs.
type Order struct {
	UserID      string          `json:"UserID"`
	ID          string          `json:"OrderID"`
	Status      string          `json:"Status"`
	CreatedAt   string          `json:"CreatedAt"`
	Items       []OrderItem     `json:"Items"`
	TotalAmount decimal.Decimal `json:"TotalAmount"`
}
