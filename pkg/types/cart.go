package types

import (
	"github.com/shopspring/decimal"

	"github.com/biteaffair/storefront-backend/pkg/enums"
)

// Customizations holds the option picks made on the customization form. The
// slices are the selected option names, not ids; empty slices are kept empty,
// never nil, so JSON round-trips stay stable.
type Customizations struct {
	Starters    []string           `json:"starters"`
	MainCourse  []string           `json:"mainCourse"`
	Breads      []string           `json:"breads"`
	Desserts    []string           `json:"desserts"`
	Serves      int                `json:"serves,omitempty"`
	PackageType *enums.PackageType `json:"packageType,omitempty"`
}

// LineItem is one customized, quantity-tracked cart entry. Its ID is generated
// per customization and is distinct from the catalog item it was built from.
type LineItem struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Price          decimal.Decimal   `json:"price"`
	Quantity       int               `json:"quantity"`
	PortionSize    enums.PortionSize `json:"portionSize"`
	Customizations Customizations    `json:"customizations"`
}

// Subtotal is price times quantity.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Clone returns a deep copy so snapshots cannot alias live cart state.
func (l LineItem) Clone() LineItem {
	out := l
	out.Customizations = l.Customizations.Clone()
	return out
}

// Clone deep-copies the option slices.
func (c Customizations) Clone() Customizations {
	out := Customizations{
		Starters:   append([]string{}, c.Starters...),
		MainCourse: append([]string{}, c.MainCourse...),
		Breads:     append([]string{}, c.Breads...),
		Desserts:   append([]string{}, c.Desserts...),
		Serves:     c.Serves,
	}
	if c.PackageType != nil {
		pt := *c.PackageType
		out.PackageType = &pt
	}
	return out
}

// CloneLineItems deep-copies a slice of line items.
func CloneLineItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
