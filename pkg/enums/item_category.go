package enums

import "fmt"

// ItemCategory buckets menu items for the category filter. Classification is
// keyword based, not precise curation, so "all" passes everything.
type ItemCategory string

const (
	ItemCategoryAll        ItemCategory = "all"
	ItemCategoryStarters   ItemCategory = "starters"
	ItemCategoryMainCourse ItemCategory = "main-course"
	ItemCategoryBreads     ItemCategory = "breads"
	ItemCategoryDesserts   ItemCategory = "desserts"
)

var validItemCategories = []ItemCategory{
	ItemCategoryAll,
	ItemCategoryStarters,
	ItemCategoryMainCourse,
	ItemCategoryBreads,
	ItemCategoryDesserts,
}

func (c ItemCategory) IsValid() bool {
	for _, candidate := range validItemCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseItemCategory converts the raw string to ItemCategory; empty means all.
func ParseItemCategory(value string) (ItemCategory, error) {
	if value == "" {
		return ItemCategoryAll, nil
	}
	for _, candidate := range validItemCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item category %q", value)
}
