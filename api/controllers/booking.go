package controllers

import (
	"net/http"

	"github.com/biteaffair/storefront-backend/api/middleware"
	"github.com/biteaffair/storefront-backend/api/responses"
	"github.com/biteaffair/storefront-backend/api/validators"
	bookingsvc "github.com/biteaffair/storefront-backend/internal/booking"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

type bookingWizardResponse struct {
	Phase      bookingsvc.Phase `json:"phase"`
	Step       int              `json:"step"`
	StepName   string           `json:"stepName"`
	IsComplete bool             `json:"isComplete"`
	Data       bookingsvc.Data  `json:"data"`
}

func newBookingResponse(w *bookingsvc.Wizard) bookingWizardResponse {
	return bookingWizardResponse{
		Phase:      w.Phase,
		Step:       w.Step,
		StepName:   w.StepName(),
		IsComplete: w.IsComplete(),
		Data:       w.Data,
	}
}

// BookingGet returns the session's wizard state.
func BookingGet(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wizard, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newBookingResponse(wizard))
	}
}

// BookingSelect merges the submitted fields and advances the wizard.
// POST /api/v1/booking/select
func BookingSelect(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch bookingsvc.Patch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		wizard, err := svc.Select(r.Context(), middleware.SessionIDFromContext(r.Context()), patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newBookingResponse(wizard))
	}
}

// BookingBack steps the wizard backwards, keeping every entered value.
// POST /api/v1/booking/back
func BookingBack(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wizard, err := svc.Back(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newBookingResponse(wizard))
	}
}

// BookingReset discards the wizard and starts over.
// DELETE /api/v1/booking
func BookingReset(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wizard, err := svc.Reset(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newBookingResponse(wizard))
	}
}
