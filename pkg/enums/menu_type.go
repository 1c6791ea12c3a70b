package enums

import "fmt"

// MenuType names the static catalogs the storefront serves.
type MenuType string

const (
	MenuTypeJain       MenuType = "jain"
	MenuTypeVeg        MenuType = "veg"
	MenuTypeCustomized MenuType = "customized"
	MenuTypeCocktail   MenuType = "cocktail"
	MenuTypePackages   MenuType = "packages"
)

var validMenuTypes = []MenuType{
	MenuTypeJain,
	MenuTypeVeg,
	MenuTypeCustomized,
	MenuTypeCocktail,
	MenuTypePackages,
}

// AllMenuTypes returns the catalogs in display order.
func AllMenuTypes() []MenuType {
	out := make([]MenuType, len(validMenuTypes))
	copy(out, validMenuTypes)
	return out
}

// IsValid reports whether the value matches a known catalog.
func (m MenuType) IsValid() bool {
	for _, candidate := range validMenuTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMenuType converts the raw string to MenuType.
func ParseMenuType(value string) (MenuType, error) {
	for _, candidate := range validMenuTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid menu type %q", value)
}
