package menu

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/biteaffair/storefront-backend/pkg/types"
)

func decimalFromInt(t *testing.T, value int64) decimal.Decimal {
	t.Helper()
	return decimal.NewFromInt(value)
}

func item(id, name, category string, price int64, veg, nonVeg bool) types.MenuItem {
	return types.MenuItem{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    decimal.NewFromInt(price),
		IsVeg:    veg,
		IsNonVeg: nonVeg,
	}
}
