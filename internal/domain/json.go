package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices and totals travel as bare JSON numbers, matching the
	// backend's wire format.
	decimal.MarshalJSONWithoutQuotes = true
}
