package menu

import (
	"sort"
	"strings"

	"github.com/biteaffair/storefront-backend/pkg/enums"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

// Filters describe one grid query. Zero value passes everything with both
// diet toggles off, which the predicate treats as "no diet restriction".
type Filters struct {
	Query         string
	VegEnabled    bool
	NonVegEnabled bool
	Category      enums.ItemCategory
	Sort          enums.SortOrder
}

// Apply recomputes the filtered, sorted view from scratch. The input slice is
// never mutated.
func Apply(items []types.MenuItem, filters Filters) []types.MenuItem {
	out := []types.MenuItem{}
	for _, item := range items {
		if !matchesSearch(item, filters.Query) {
			continue
		}
		if !matchesDiet(item, filters.VegEnabled, filters.NonVegEnabled) {
			continue
		}
		if !matchesCategory(item, filters.Category) {
			continue
		}
		out = append(out, item)
	}
	sortItems(out, filters.Sort)
	return out
}

func matchesSearch(item types.MenuItem, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), query) ||
		strings.Contains(strings.ToLower(item.Description), query)
}

// matchesDiet keeps ambiguous items visible: an item flagged neither veg nor
// non-veg passes whenever either toggle is on. Both toggles off means no
// restriction at all.
func matchesDiet(item types.MenuItem, veg, nonVeg bool) bool {
	if !veg && !nonVeg {
		return true
	}
	if veg && item.IsVeg {
		return true
	}
	if nonVeg && item.IsNonVeg {
		return true
	}
	if veg && !item.IsNonVeg {
		return true
	}
	if nonVeg && !item.IsVeg {
		return true
	}
	return false
}

// matchesCategory classifies by the dataset category name first, then by
// dish-name keywords for items whose category is ambiguous.
func matchesCategory(item types.MenuItem, category enums.ItemCategory) bool {
	switch category {
	case enums.ItemCategoryAll, "":
		return true
	case enums.ItemCategoryStarters:
		return item.Category == "starters" ||
			nameContainsAny(item, "tikka", "kabab", "starter")
	case enums.ItemCategoryBreads:
		return item.Category == "breads" ||
			nameContainsAny(item, "naan", "roti", "bread")
	case enums.ItemCategoryDesserts:
		return item.Category == "desserts" ||
			nameContainsAny(item, "jamun", "phirni", "dessert")
	case enums.ItemCategoryMainCourse:
		return item.Category == "main course" || item.Category == "maincourse"
	default:
		return false
	}
}

func nameContainsAny(item types.MenuItem, keywords ...string) bool {
	name := strings.ToLower(item.Name)
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

func sortItems(items []types.MenuItem, order enums.SortOrder) {
	switch order {
	case enums.SortOrderPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.LessThan(items[j].Price)
		})
	case enums.SortOrderPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.GreaterThan(items[j].Price)
		})
	case enums.SortOrderName:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	}
}
