package enums

import "fmt"

// DietFilter scopes cross-menu search results by dietary preference.
type DietFilter string

const (
	DietFilterAll    DietFilter = "all"
	DietFilterJain   DietFilter = "jain"
	DietFilterVeg    DietFilter = "veg"
	DietFilterNonVeg DietFilter = "non-veg"
)

var validDietFilters = []DietFilter{
	DietFilterAll,
	DietFilterJain,
	DietFilterVeg,
	DietFilterNonVeg,
}

func (d DietFilter) IsValid() bool {
	for _, candidate := range validDietFilters {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDietFilter converts the raw string to DietFilter; empty means all.
func ParseDietFilter(value string) (DietFilter, error) {
	if value == "" {
		return DietFilterAll, nil
	}
	for _, candidate := range validDietFilters {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid diet filter %q", value)
}
