package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/biteaffair/storefront-backend/api/responses"
	"github.com/biteaffair/storefront-backend/api/validators"
	menusvc "github.com/biteaffair/storefront-backend/internal/menu"
	"github.com/biteaffair/storefront-backend/pkg/enums"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

// MenuGet serves one catalog with the filter pipeline applied.
// GET /api/v1/menus/{menuType}?q=&veg=&non_veg=&category=&sort=
func MenuGet(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menuType, err := enums.ParseMenuType(chi.URLParam(r, "menuType"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid menu type"))
			return
		}

		filters, err := filtersFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.GetMenu(r.Context(), menuType, filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"menuType": menuType,
			"items":    items,
			"count":    len(items),
		})
	}
}

// MenuSearch searches every catalog at once.
// GET /api/v1/menus/search?q=&diet=
func MenuSearch(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := validators.QueryString(r, "q")
		diet, err := enums.ParseDietFilter(validators.QueryString(r, "diet"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid diet filter"))
			return
		}

		results, err := svc.SearchAll(r.Context(), query, diet)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"query":   query,
			"diet":    diet,
			"results": results,
			"count":   len(results),
		})
	}
}

// MenuOptions serves the customization option lists for a catalog.
// GET /api/v1/menus/{menuType}/options?packageType=
func MenuOptions(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menuType, err := enums.ParseMenuType(chi.URLParam(r, "menuType"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid menu type"))
			return
		}

		packageType := enums.PackageTypeStandard
		if raw := validators.QueryString(r, "packageType"); raw != "" {
			packageType, err = enums.ParsePackageType(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid package type"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]any{
			"menuType":    menuType,
			"packageType": packageType,
			"options":     svc.Options(menuType, packageType),
		})
	}
}

func filtersFromQuery(r *http.Request) (menusvc.Filters, error) {
	filters := menusvc.Filters{Query: validators.QueryString(r, "q")}

	var err error
	if filters.VegEnabled, err = parseQueryBool(r, "veg"); err != nil {
		return menusvc.Filters{}, err
	}
	if filters.NonVegEnabled, err = parseQueryBool(r, "non_veg"); err != nil {
		return menusvc.Filters{}, err
	}

	category, err := enums.ParseItemCategory(validators.QueryString(r, "category"))
	if err != nil {
		return menusvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	filters.Category = category

	if raw := validators.QueryString(r, "sort"); raw != "" {
		sort, err := enums.ParseSortOrder(raw)
		if err != nil {
			return menusvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort order")
		}
		filters.Sort = sort
	}
	return filters, nil
}

func parseQueryBool(r *http.Request, key string) (bool, error) {
	raw := validators.QueryString(r, key)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a boolean").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
