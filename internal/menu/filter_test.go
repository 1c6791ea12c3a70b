package menu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biteaffair/storefront-backend/pkg/enums"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

func TestApplyDietFilterKeepsVegExcludesNonVeg(t *testing.T) {
	items := []types.MenuItem{
		item("1", "Paneer Tikka", "starters", 280, true, false),
		item("2", "Chicken Curry", "main course", 450, false, true),
	}

	out := Apply(items, Filters{VegEnabled: true, NonVegEnabled: false})
	require.Len(t, out, 1)
	require.Equal(t, "Paneer Tikka", out[0].Name)
}

func TestApplyDietFilterKeepsUnflaggedItems(t *testing.T) {
	items := []types.MenuItem{
		item("1", "Steamed Rice", "main course", 120, false, false),
	}

	// An item flagged neither way stays visible whichever toggle is on.
	require.Len(t, Apply(items, Filters{VegEnabled: true}), 1)
	require.Len(t, Apply(items, Filters{NonVegEnabled: true}), 1)
	require.Len(t, Apply(items, Filters{}), 1)
}

func TestApplySearchMatchesNameAndDescription(t *testing.T) {
	paneer := item("1", "Paneer Tikka", "starters", 280, true, false)
	paneer.Description = "char-grilled cottage cheese"
	curry := item("2", "Chicken Curry", "main course", 450, false, true)

	out := Apply([]types.MenuItem{paneer, curry}, Filters{Query: "PANEER"})
	require.Len(t, out, 1)
	require.Equal(t, "1", out[0].ID)

	out = Apply([]types.MenuItem{paneer, curry}, Filters{Query: "cottage"})
	require.Len(t, out, 1)
	require.Equal(t, "1", out[0].ID)
}

func TestApplyCategoryClassifierUsesKeywords(t *testing.T) {
	items := []types.MenuItem{
		item("1", "Malai Soya Tikka", "", 300, true, false),
		item("2", "Hariyali Kabab Platter", "", 320, true, false),
		item("3", "Garlic Naan", "", 80, true, false),
		item("4", "Tawa Roti", "", 40, true, false),
		item("5", "Gulab Jamun", "", 120, true, false),
		item("6", "Mango Phirni", "", 160, true, false),
		item("7", "Veg Biryani", "main course", 300, true, false),
	}

	starters := Apply(items, Filters{Category: enums.ItemCategoryStarters})
	require.Len(t, starters, 2)

	breads := Apply(items, Filters{Category: enums.ItemCategoryBreads})
	require.Len(t, breads, 2)

	desserts := Apply(items, Filters{Category: enums.ItemCategoryDesserts})
	require.Len(t, desserts, 2)

	mains := Apply(items, Filters{Category: enums.ItemCategoryMainCourse})
	require.Len(t, mains, 1)
	require.Equal(t, "7", mains[0].ID)

	all := Apply(items, Filters{Category: enums.ItemCategoryAll})
	require.Len(t, all, 7)
}

func TestApplyCategoryFallsBackToDatasetCategory(t *testing.T) {
	items := []types.MenuItem{
		item("1", "Cajun Potato", "starters", 220, true, false),
	}
	out := Apply(items, Filters{Category: enums.ItemCategoryStarters})
	require.Len(t, out, 1)
}

func TestApplySorts(t *testing.T) {
	items := []types.MenuItem{
		item("1", "Brownies", "desserts", 180, true, false),
		item("2", "Aloo Tikka", "starters", 220, true, false),
		item("3", "Kheer", "desserts", 150, true, false),
	}

	asc := Apply(items, Filters{Sort: enums.SortOrderPriceAsc})
	require.Equal(t, []string{"3", "1", "2"}, ids(asc))

	desc := Apply(items, Filters{Sort: enums.SortOrderPriceDesc})
	require.Equal(t, []string{"2", "1", "3"}, ids(desc))

	byName := Apply(items, Filters{Sort: enums.SortOrderName})
	require.Equal(t, []string{"2", "1", "3"}, ids(byName))

	unsorted := Apply(items, Filters{})
	require.Equal(t, []string{"1", "2", "3"}, ids(unsorted))
}

func TestApplySortIsStableForEqualPrices(t *testing.T) {
	items := []types.MenuItem{
		item("1", "Rasgulla", "desserts", 120, true, false),
		item("2", "Gulab Jamun", "desserts", 120, true, false),
	}
	out := Apply(items, Filters{Sort: enums.SortOrderPriceAsc})
	require.Equal(t, []string{"1", "2"}, ids(out))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := []types.MenuItem{
		item("1", "Brownies", "desserts", 180, true, false),
		item("2", "Kheer", "desserts", 150, true, false),
	}
	_ = Apply(items, Filters{Sort: enums.SortOrderPriceAsc})
	require.Equal(t, []string{"1", "2"}, ids(items))
}

func ids(items []types.MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
