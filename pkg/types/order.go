package types

import "github.com/shopspring/decimal"

// CustomerDetails is the contact block captured at checkout.
type CustomerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderSummary is the cart roll-up frozen into an order at submission time.
type OrderSummary struct {
	TotalItems  int             `json:"totalItems"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    string          `json:"currency"`
}
