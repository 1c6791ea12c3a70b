package menu

import "github.com/biteaffair/storefront-backend/pkg/enums"

// OptionLists are the choices offered on the customization form for one
// catalog. Counts are soft guidance ("select 3"), never enforced.
type OptionLists struct {
	Starters   []string `json:"starters"`
	MainCourse []string `json:"mainCourse"`
	Breads     []string `json:"breads"`
	Desserts   []string `json:"desserts"`
}

var jainOptions = OptionLists{
	Starters: []string{
		"Paneer Tikka", "Malai Paneer Tikka", "Haryali Paneer Tikka",
		"Soya Chaap Tikka", "Malai Soya Tikka", "Tandoori Aloo",
		"Honey Chilli Potato", "Cajun Potato", "Kesariya Paneer Tikka",
		"Chilli Paneer Tikka", "Malai Brocolli", "Stuffed Aloo Tikka",
		"Chilli Basil Tofu", "Chilli Mushroom", "Dahi Kabab",
		"Cottage Cheese Satay",
	},
	MainCourse: []string{
		"Paneer Butter Masala", "Paneer Tikka Masala", "Paneer Lababdar",
		"Kadhai Paneer", "Shahi Paneer", "Matar Paneer", "Palak Paneer",
		"Tawa Veg", "Mix Veg", "Kadhai Veg", "Aloo Gobhi Adaraki",
		"Soya Chaap Masala", "Daal Makhani", "Daal Tadka", "Malai Kofta",
		"Dum Aloo Kashmiri", "Veg Thai Curry", "Amritsari Chole",
		"Hakka Noodles", "Pasta (Red/White/Pink)", "Pav Bhaji",
		"Veg Biryani", "Steamed Rice", "Jeera Rice", "Peas Pulao",
	},
	Breads: []string{
		"Tandoori Roti", "Tawa Roti", "Lachha Paratha", "Plain Naan",
		"Butter Naan", "Garlic Naan", "Misi Roti", "Raita", "Salad",
	},
	Desserts: []string{
		"Gulab Jamun", "Moongdal Halwa", "Kheer", "Rasgulla",
	},
}

var customizedOptions = OptionLists{
	Starters: append(append([]string{}, jainOptions.Starters...),
		"Chicken Tikka", "Haryali Chicken Tikka", "Chicken Malai Tikka",
		"Mutton Seekh Kabab", "Chicken Seekh Kabab", "Amritsari Fish Tikka",
	),
	MainCourse: append(append([]string{}, jainOptions.MainCourse...),
		"Chicken Curry", "Butter Chicken", "Chicken Biryani", "Mutton Rogan Josh",
	),
	Breads:   jainOptions.Breads,
	Desserts: append(append([]string{}, jainOptions.Desserts...), "Brownies", "Mango Phirni"),
}

var cocktailOptions = OptionLists{
	Starters: []string{
		"Paneer Tikka", "Haryali Paneer Tikka", "Paneer Malai Tikka",
		"Kesariya Paneer Tikka", "Chilli Paneer Tikka", "Malai Brocolli Tikka",
		"Tandoori Aloo", "Stuffed Aloo Tikka", "Soya Chaap Tikka",
		"Dry Manchurian", "Chilli Basil Tofu", "Veg Shami Kabab",
		"Hara Bhara Kabab", "Dahi Ke Shole", "Dahi Ke Kabab", "Spring Rolls",
		"Veg Momo", "Paneer Momo", "Cocktail Samosa", "Cottage Cheese Satay",
		"Chicken Tikka", "Haryali Chicken Tikka", "Chicken Malai Tikka",
		"Mutton Seekh Kabab", "Chicken Seekh Kabab", "BBQ Chicken Wings",
		"Thai Chicken Satay", "Amritsari Fish Tikka", "Tandoori Prawns",
		"Chicken Momos", "Chicken Nuggets",
	},
	MainCourse: []string{
		"Dal Makhani", "Dal Tadka", "Hakka Noodles", "Veggies In Hot Garlic",
		"Peas Pulao", "Veg Pulao", "Veg Biryani", "Chicken Noodles",
		"Chicken Biryani", "Chicken Fried Rice",
	},
	Breads: []string{
		"Tandoori Roti", "Naan / Butter Naan", "Lachha Paratha",
		"Garlic Naan", "Misi Roti", "Tawa Roti",
	},
	Desserts: []string{
		"Gulab Jamun", "Brownies", "Mango Phirni", "Rasgulla", "Kheer",
		"Moongdal Halwa",
	},
}

var packageOptions = map[enums.PackageType]OptionLists{
	enums.PackageTypeStandard: {
		Starters: []string{
			"Paneer Tikka", "Malai Paneer Tikka", "Haryali Paneer Tikka",
			"Soya Chaap Tikka", "Malai Soya Tikka", "Tandoori Aloo",
			"Honey Chilli Potato", "Dry Manchurian", "Chilli Paneer",
			"Hara Bhara Kabab", "Shami Kabab", "Spring Rolls", "Veg Dumpling",
			"Paneer Dimsum", "Cajun Potato",
		},
		MainCourse: []string{
			"Paneer Lababdar", "Paneer Butter Masala", "Shahi Paneer",
			"Matar Paneer", "Palak Paneer", "Tawa Veg", "Mix Veg",
			"Kadhai Vegetables", "Aloo Gobhi Adaraki", "Soya Chaap Masala",
			"Dal Makhani", "Dal Tadka", "Amritsari Chole", "Hakka Noodles",
			"Veg Manchurian", "Pasta (Red/White/Pink)", "Pav Bhaji",
			"Steamed Rice", "Veg Fried Rice", "Jeera Rice", "Peas Pulao",
		},
		Breads: []string{
			"Tandoori Roti", "Naan / Butter Naan", "Lachha Paratha",
			"Garlic Naan", "Misi Roti",
		},
		Desserts: []string{
			"Gulab Jamun", "Brownies", "Mango Phirni", "Rasgulla", "Kheer",
			"Moongdal Halwa",
		},
	},
	enums.PackageTypePremium: {
		Starters: []string{
			"Paneer Tikka", "Paneer Malai Tikka", "Kesariya Paneer Tikka",
			"Haryali Paneer Tikka", "Malai Brocolli Tikka", "Stuffed Aloo Tikka",
			"Malai Soya Tikka", "Dry Manchurian", "Chilli Basil Tofu",
			"Chilli Paneer", "Chilli Mushroom", "Hara Bhara Kabab",
			"Dahi Ka Kabab", "Spring Rolls", "Crystal Dimsum",
			"Cocktail Samosa", "Cottage Cheese Satay",
		},
		MainCourse: []string{
			"Paneer Lababdar", "Paneer Butter Masala", "Paneer Tikka Masala",
			"Shahi Paneer", "Matar Paneer", "Palak Paneer", "Malai Kofta",
			"Navratni Kofta", "Dum Aloo Kashmiri", "Mix Veg",
			"Methi Matar Malai", "Aloo Gobhi Adaraki", "Soya Chaap Masala",
			"Dal Makhani", "Amritsari Chole", "Hakka Noodles",
			"Veg Manchurian", "Pasta (Red/White/Pink)", "Veg Thai Curry",
			"Pav Bhaji", "Steamed Rice", "Veg Fried Rice", "Jeera Rice",
			"Shahi Pulao", "Veg Biryani",
		},
		Breads: []string{
			"Tandoori Roti", "Naan / Butter Naan", "Lachha Paratha",
			"Garlic Naan", "Misi Roti",
		},
		Desserts: []string{
			"Gulab Jamun", "Brownies", "Mango Phirni", "Rasgulla", "Kheer",
			"Moongdal Halwa",
		},
	},
}

// OptionsFor returns the option lists for a catalog. packageType only matters
// for the packages catalog and defaults to standard.
func OptionsFor(menuType enums.MenuType, packageType enums.PackageType) OptionLists {
	switch menuType {
	case enums.MenuTypePackages:
		if lists, ok := packageOptions[packageType]; ok {
			return lists
		}
		return packageOptions[enums.PackageTypeStandard]
	case enums.MenuTypeJain:
		return jainOptions
	case enums.MenuTypeCocktail:
		return cocktailOptions
	case enums.MenuTypeCustomized, enums.MenuTypeVeg:
		return customizedOptions
	default:
		return jainOptions
	}
}

// PackageTypes lists the tiers offered on the packages catalog.
func PackageTypes() []enums.PackageType {
	return []enums.PackageType{enums.PackageTypeStandard, enums.PackageTypePremium}
}
