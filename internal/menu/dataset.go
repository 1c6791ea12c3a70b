package menu

import (
	"context"
	"embed"
	"fmt"

	"github.com/biteaffair/storefront-backend/pkg/enums"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

//go:embed datasets/*.json
var datasetFS embed.FS

// The veg catalog serves the customized dataset, same lineup without the
// jain restrictions.
var datasetFiles = map[enums.MenuType]string{
	enums.MenuTypeJain:       "datasets/jain-menu.json",
	enums.MenuTypeVeg:        "datasets/customized-menu.json",
	enums.MenuTypeCustomized: "datasets/customized-menu.json",
	enums.MenuTypeCocktail:   "datasets/cocktail-party-menu.json",
	enums.MenuTypePackages:   "datasets/packages-menu.json",
}

// Source loads the normalized flat item list for a menu type.
type Source func(ctx context.Context, menuType enums.MenuType) ([]types.MenuItem, error)

// EmbeddedSource serves the catalogs shipped with the binary. Unknown menu
// types fall back to the jain catalog.
func EmbeddedSource() Source {
	return func(_ context.Context, menuType enums.MenuType) ([]types.MenuItem, error) {
		file, ok := datasetFiles[menuType]
		if !ok {
			file = datasetFiles[enums.MenuTypeJain]
		}
		raw, err := datasetFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", file, err)
		}
		items, err := Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("normalize dataset %s: %w", file, err)
		}
		return items, nil
	}
}
