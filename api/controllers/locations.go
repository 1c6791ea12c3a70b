package controllers

import (
	"net/http"

	"github.com/biteaffair/storefront-backend/api/middleware"
	"github.com/biteaffair/storefront-backend/api/responses"
	"github.com/biteaffair/storefront-backend/api/validators"
	locationsvc "github.com/biteaffair/storefront-backend/internal/locations"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

// LocationsList returns the serviced delivery areas.
func LocationsList(svc locationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locations := svc.List(r.Context())
		responses.WriteSuccess(w, map[string]any{
			"locations": locations,
			"count":     len(locations),
		})
	}
}

// LocationPreferenceGet returns the session's saved (or default) location.
func LocationPreferenceGet(svc locationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		location, err := svc.GetPreference(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, location)
	}
}

type setLocationRequest struct {
	LocationID string `json:"locationId" validate:"required"`
}

// LocationPreferenceSet saves the session's delivery area.
// PUT /api/v1/locations/preference
func LocationPreferenceSet(svc locationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setLocationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		location, err := svc.SetPreference(r.Context(), middleware.SessionIDFromContext(r.Context()), payload.LocationID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, location)
	}
}

// LocationPreferenceClear drops the saved preference, reverting to default.
// DELETE /api/v1/locations/preference
func LocationPreferenceClear(svc locationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearPreference(r.Context(), middleware.SessionIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
