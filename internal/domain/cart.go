package domain

import "github.com/shopspring/decimal"

// CartLine pairs a product snapshot with a quantity. Quantity is always >= 1;
// a line that would drop to zero is removed instead of retained.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart holds the session's lines. At most one line exists per product ID.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Total is the sum of unit price times quantity across all lines,
// recomputed on every call.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Clone returns a deep copy so callers can hold a snapshot without
// aliasing the service's line slice.
func (c Cart) Clone() Cart {
	if c.Lines == nil {
		return Cart{}
	}
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
