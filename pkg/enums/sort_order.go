package enums

import "fmt"

// SortOrder names the menu grid sort options. Name sort doubles as the
// popularity proxy.
type SortOrder string

const (
	SortOrderNone      SortOrder = ""
	SortOrderPriceAsc  SortOrder = "price_asc"
	SortOrderPriceDesc SortOrder = "price_desc"
	SortOrderName      SortOrder = "name"
)

var validSortOrders = []SortOrder{
	SortOrderNone,
	SortOrderPriceAsc,
	SortOrderPriceDesc,
	SortOrderName,
}

func (s SortOrder) IsValid() bool {
	for _, candidate := range validSortOrders {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOrder converts the raw string to SortOrder.
func ParseSortOrder(value string) (SortOrder, error) {
	for _, candidate := range validSortOrders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort order %q", value)
}
