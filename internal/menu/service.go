package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/biteaffair/storefront-backend/pkg/enums"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

// SearchResult is a catalog item tagged with the menu it came from.
type SearchResult struct {
	types.MenuItem
	MenuType enums.MenuType `json:"menuType"`
}

// Service exposes the catalog read operations.
type Service interface {
	GetMenu(ctx context.Context, menuType enums.MenuType, filters Filters) ([]types.MenuItem, error)
	SearchAll(ctx context.Context, query string, diet enums.DietFilter) ([]SearchResult, error)
	Options(menuType enums.MenuType, packageType enums.PackageType) OptionLists
}

type service struct {
	loader *Loader
	source Source
}

// NewService builds the menu service over a dataset source.
func NewService(source Source) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("dataset source required")
	}
	loader, err := NewLoader(source)
	if err != nil {
		return nil, err
	}
	return &service{loader: loader, source: source}, nil
}

func (s *service) GetMenu(ctx context.Context, menuType enums.MenuType, filters Filters) ([]types.MenuItem, error) {
	if !menuType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown menu type")
	}
	items, err := s.loader.Load(ctx, menuType)
	if err != nil {
		return nil, err
	}
	return Apply(items, filters), nil
}

// searchable lists each distinct catalog once; the veg alias shares the
// customized dataset and would only duplicate results.
var searchable = []enums.MenuType{
	enums.MenuTypeJain,
	enums.MenuTypePackages,
	enums.MenuTypeCustomized,
	enums.MenuTypeCocktail,
}

func (s *service) SearchAll(ctx context.Context, query string, diet enums.DietFilter) ([]SearchResult, error) {
	if !diet.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown diet filter")
	}
	results := []SearchResult{}
	for _, menuType := range searchable {
		items, err := s.source(ctx, menuType)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu dataset")
		}
		for _, item := range items {
			if !matchesDietary(item, diet) {
				continue
			}
			if !matchesSearchWithCategory(item, query) {
				continue
			}
			results = append(results, SearchResult{MenuItem: item, MenuType: menuType})
		}
	}
	return results, nil
}

func (s *service) Options(menuType enums.MenuType, packageType enums.PackageType) OptionLists {
	return OptionsFor(menuType, packageType)
}

func matchesDietary(item types.MenuItem, diet enums.DietFilter) bool {
	switch diet {
	case enums.DietFilterJain:
		return item.IsJain
	case enums.DietFilterVeg:
		return item.IsVeg && !item.IsNonVeg
	case enums.DietFilterNonVeg:
		return item.IsNonVeg
	default:
		return true
	}
}

// Cross-menu search also matches the category name, so "desserts" lists every
// dessert across catalogs.
func matchesSearchWithCategory(item types.MenuItem, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), query) ||
		strings.Contains(strings.ToLower(item.Description), query) ||
		strings.Contains(strings.ToLower(item.Category), query)
}
