package menu

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/biteaffair/storefront-backend/pkg/types"
)

type rawCategory struct {
	Name  string           `json:"name"`
	Items []types.MenuItem `json:"items"`
}

// Normalize flattens a catalog document into one ordered item list. Three
// document shapes exist in the source data and all must be handled:
//
//   - flat:            { "title": ..., "categories": [...] }
//   - nested by name:  { "<MENU_NAME>": { "categories": [...] } }
//   - starter lists:   { "<MENU_NAME>": { "veg_starters": [...], "non_veg_starters": [...] } }
func Normalize(raw []byte) ([]types.MenuItem, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	if cats, ok := top["categories"]; ok {
		return flattenCategories(cats)
	}

	for key, value := range top {
		if key == "title" {
			continue
		}
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(value, &nested); err != nil {
			continue
		}
		if cats, ok := nested["categories"]; ok {
			return flattenCategories(cats)
		}
		if _, veg := nested["veg_starters"]; veg {
			return flattenStarterLists(nested)
		}
		if _, nonVeg := nested["non_veg_starters"]; nonVeg {
			return flattenStarterLists(nested)
		}
	}

	return nil, fmt.Errorf("unrecognized dataset shape")
}

func flattenCategories(raw json.RawMessage) ([]types.MenuItem, error) {
	var categories []rawCategory
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	items := []types.MenuItem{}
	for _, category := range categories {
		name := strings.ToLower(strings.TrimSpace(category.Name))
		for _, item := range category.Items {
			if item.Category == "" {
				item.Category = name
			}
			items = append(items, item)
		}
	}
	return items, nil
}

// flattenStarterLists handles the cocktail shape: veg starters first, then
// non-veg, matching the source document order.
func flattenStarterLists(nested map[string]json.RawMessage) ([]types.MenuItem, error) {
	items := []types.MenuItem{}
	for _, key := range []string{"veg_starters", "non_veg_starters"} {
		raw, ok := nested[key]
		if !ok {
			continue
		}
		var list []types.MenuItem
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("parse %s: %w", key, err)
		}
		for _, item := range list {
			if item.Category == "" {
				item.Category = "starters"
			}
			if !item.IsVeg && !item.IsNonVeg {
				if key == "veg_starters" {
					item.IsVeg = true
				} else {
					item.IsNonVeg = true
				}
			}
			items = append(items, item)
		}
	}
	return items, nil
}
