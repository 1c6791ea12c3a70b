package cart

import (
	"github.com/shopspring/decimal"

	"github.com/biteaffair/storefront-backend/pkg/types"
)

// State is the reducer-owned cart for one session. TotalItems is recomputed
// after every mutation, never tracked independently; the money total is
// derived on demand and never stored.
type State struct {
	Items      []types.LineItem `json:"items"`
	TotalItems int              `json:"totalItems"`
}

// NewState returns an empty cart.
func NewState() *State {
	return &State{Items: []types.LineItem{}}
}

// AddItem merges by generated line-item id: the same id increments quantity,
// a different id appends a new line even when name and price are identical.
func (s *State) AddItem(item types.LineItem) {
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	merged := false
	for i := range s.Items {
		if s.Items[i].ID == item.ID {
			s.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.Items = append(s.Items, item.Clone())
	}
	s.recompute()
}

// UpdateQuantity sets the line's quantity. A result of zero or below removes
// the line entirely, it is never kept at quantity zero.
func (s *State) UpdateQuantity(id string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i].Quantity = quantity
			break
		}
	}
	s.recompute()
}

// RemoveItem drops the line with the given id. Unknown ids are a no-op.
func (s *State) RemoveItem(id string) {
	kept := s.Items[:0]
	for _, item := range s.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.Items = kept
	s.recompute()
}

// Clear resets to the empty cart.
func (s *State) Clear() {
	s.Items = []types.LineItem{}
	s.TotalItems = 0
}

// TotalPrice derives the money total from the current lines on every call.
func (s *State) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemQuantity returns the line's quantity, zero when absent.
func (s *State) ItemQuantity(id string) int {
	for _, item := range s.Items {
		if item.ID == id {
			return item.Quantity
		}
	}
	return 0
}

// Snapshot deep-copies the lines so a submitted order can never observe later
// cart mutations.
func (s *State) Snapshot() []types.LineItem {
	return types.CloneLineItems(s.Items)
}

func (s *State) recompute() {
	kept := s.Items[:0]
	total := 0
	for _, item := range s.Items {
		if item.Quantity <= 0 {
			continue
		}
		total += item.Quantity
		kept = append(kept, item)
	}
	s.Items = kept
	s.TotalItems = total
}
