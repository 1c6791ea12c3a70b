package locations

import "github.com/shopspring/decimal"

// Location is a serviced delivery area.
type Location struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Available    bool            `json:"available"`
	DeliveryTime string          `json:"deliveryTime"`
	DeliveryFee  decimal.Decimal `json:"deliveryFee"`
	MinimumOrder decimal.Decimal `json:"minimumOrder"`
}

const defaultLocationID = "gurugram"

// Fees for areas outside the serviced catalog.
var (
	fallbackDeliveryFee  = decimal.NewFromInt(100)
	fallbackMinimumOrder = decimal.NewFromInt(1000)
)

var catalog = []Location{
	{ID: "delhi", Name: "Delhi", Available: true, DeliveryTime: "45-60 mins", DeliveryFee: decimal.NewFromInt(50), MinimumOrder: decimal.NewFromInt(800)},
	{ID: "gurugram", Name: "Gurugram", Available: true, DeliveryTime: "30-45 mins", DeliveryFee: decimal.Zero, MinimumOrder: decimal.NewFromInt(500)},
	{ID: "noida", Name: "Noida", Available: true, DeliveryTime: "50-65 mins", DeliveryFee: decimal.NewFromInt(75), MinimumOrder: decimal.NewFromInt(1000)},
	{ID: "faridabad", Name: "Faridabad", Available: true, DeliveryTime: "40-55 mins", DeliveryFee: decimal.NewFromInt(60), MinimumOrder: decimal.NewFromInt(700)},
	{ID: "ghaziabad", Name: "Ghaziabad", Available: true, DeliveryTime: "55-70 mins", DeliveryFee: decimal.NewFromInt(80), MinimumOrder: decimal.NewFromInt(900)},
}

// All returns the full catalog.
func All() []Location {
	out := make([]Location, len(catalog))
	copy(out, catalog)
	return out
}

// Available returns only locations currently accepting orders.
func Available() []Location {
	out := make([]Location, 0, len(catalog))
	for _, loc := range catalog {
		if loc.Available {
			out = append(out, loc)
		}
	}
	return out
}

// ByID looks up a catalog location.
func ByID(id string) (Location, bool) {
	for _, loc := range catalog {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}

// Default returns the home service area.
func Default() Location {
	loc, _ := ByID(defaultLocationID)
	return loc
}

// DeliveryFee returns the fee for a location id, falling back to the
// out-of-area rate for unknown ids.
func DeliveryFee(id string) decimal.Decimal {
	if loc, ok := ByID(id); ok {
		return loc.DeliveryFee
	}
	return fallbackDeliveryFee
}

// MinimumOrder returns the minimum order amount for a location id.
func MinimumOrder(id string) decimal.Decimal {
	if loc, ok := ByID(id); ok {
		return loc.MinimumOrder
	}
	return fallbackMinimumOrder
}
