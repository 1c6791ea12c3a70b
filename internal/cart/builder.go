package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/biteaffair/storefront-backend/pkg/enums"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

// BuildInput is one pass through the customization form: the base catalog
// item plus the user's picks.
type BuildInput struct {
	Name        string
	Price       decimal.Decimal
	MenuType    enums.MenuType
	PortionSize enums.PortionSize
	Servings    int
	Quantity    int
	Starters    []string
	MainCourse  []string
	Breads      []string
	Desserts    []string
	PackageType *enums.PackageType
}

// Build turns the form input into a uniquely-identified line item. The price
// is always the base item price: selection breadth does not change it, the
// catalogs are priced as fixed packages. Option counts are soft guidance and
// never validated here.
func Build(input BuildInput) (types.LineItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return types.LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "item name required")
	}
	if input.Price.IsNegative() {
		return types.LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "item price cannot be negative")
	}

	portion := input.PortionSize
	if portion == "" {
		portion = enums.PortionSizeTwo
	}
	if !portion.IsValid() {
		return types.LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "portion size must be 2 or 4")
	}

	// decrement-below-one on the form is a no-op, so the floor is 1
	servings := input.Servings
	if servings < 1 {
		servings = 1
	}
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	customizations := types.Customizations{
		Starters:   normalizeSelections(input.Starters),
		MainCourse: normalizeSelections(input.MainCourse),
		Breads:     normalizeSelections(input.Breads),
		Desserts:   normalizeSelections(input.Desserts),
		Serves:     servings,
	}

	if input.MenuType == enums.MenuTypePackages {
		packageType := enums.PackageTypeStandard
		if input.PackageType != nil {
			if !input.PackageType.IsValid() {
				return types.LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "package type must be standard or premium")
			}
			packageType = *input.PackageType
		}
		customizations.PackageType = &packageType
	} else if input.PackageType != nil {
		return types.LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "package type only applies to the packages menu")
	}

	return types.LineItem{
		ID:             NewLineItemID(name),
		Name:           name,
		Price:          input.Price,
		Quantity:       quantity,
		PortionSize:    portion,
		Customizations: customizations,
	}, nil
}

func normalizeSelections(values []string) []string {
	out := []string{}
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
