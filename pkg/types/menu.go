package types

import "github.com/shopspring/decimal"

// MenuItem is a catalog entry after dataset normalization. Read-only; the
// storefront never mutates catalog data.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Category    string          `json:"category"`
	IsVeg       bool            `json:"isVeg"`
	IsNonVeg    bool            `json:"isNonVeg"`
	IsJain      bool            `json:"isJain"`
	PortionSize string          `json:"portionSize,omitempty"`
}
