package booking

import (
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
)

// Phase names the two chained wizards plus the finished state.
type Phase string

const (
	PhaseBooking      Phase = "booking"
	PhaseEventDetails Phase = "event_details"
	PhaseComplete     Phase = "complete"
)

// Booking wizard steps. The payment step exists on the stepper but is never
// reached: completion fires when the meal-type step is answered.
const (
	StepLocation = 0
	StepOccasion = 1
	StepMealType = 2
	stepComplete = 2
)

var stepNames = []string{"Choose Location", "Choose Occasion", "Meal Type", "Payment"}

// Data accumulates the answers across both wizards. Steps merge partial
// patches into it; back-navigation never clears what was already answered.
type Data struct {
	Location     string `json:"location,omitempty"`
	Occasion     string `json:"occasion,omitempty"`
	MealType     string `json:"mealType,omitempty"`
	GuestCount   int    `json:"guestCount"`
	VegCount     int    `json:"vegCount"`
	NonVegCount  int    `json:"nonVegCount"`
	JainCount    int    `json:"jainCount"`
	City         string `json:"city,omitempty"`
	EventDate    string `json:"eventDate,omitempty"`
	DeliveryTime string `json:"deliveryTime,omitempty"`
	Menu         string `json:"menu,omitempty"`
}

// Patch is a partial answer from one step. Nil fields leave the accumulated
// value untouched.
type Patch struct {
	Location     *string `json:"location,omitempty"`
	Occasion     *string `json:"occasion,omitempty"`
	MealType     *string `json:"mealType,omitempty"`
	GuestCount   *int    `json:"guestCount,omitempty"`
	VegCount     *int    `json:"vegCount,omitempty"`
	NonVegCount  *int    `json:"nonVegCount,omitempty"`
	JainCount    *int    `json:"jainCount,omitempty"`
	City         *string `json:"city,omitempty"`
	EventDate    *string `json:"eventDate,omitempty"`
	DeliveryTime *string `json:"deliveryTime,omitempty"`
	Menu         *string `json:"menu,omitempty"`
}

// Wizard threads BookingData through the two-wizard flow.
type Wizard struct {
	Phase Phase `json:"phase"`
	Step  int   `json:"step"`
	Data  Data  `json:"data"`
}

// New starts a wizard at the location step with the form defaults.
func New() *Wizard {
	return &Wizard{
		Phase: PhaseBooking,
		Step:  StepLocation,
		Data: Data{
			GuestCount:  25,
			VegCount:    5,
			NonVegCount: 5,
			JainCount:   5,
		},
	}
}

// StepName returns the label of the current booking step.
func (w *Wizard) StepName() string {
	if w.Phase == PhaseEventDetails {
		return "Event Details"
	}
	if w.Phase == PhaseComplete {
		return "Complete"
	}
	if w.Step >= 0 && w.Step < len(stepNames) {
		return stepNames[w.Step]
	}
	return ""
}

// Select merges the step's answer and advances. Completing the meal-type step
// hands over to the event-details wizard; completing event details finishes
// the flow once all five of its fields are present.
func (w *Wizard) Select(patch Patch) error {
	switch w.Phase {
	case PhaseBooking:
		w.Data.merge(patch)
		if w.Step >= stepComplete {
			w.Phase = PhaseEventDetails
			w.Step = 0
			return nil
		}
		w.Step++
		return nil

	case PhaseEventDetails:
		w.Data.merge(patch)
		if w.eventDetailsComplete() {
			w.Phase = PhaseComplete
			w.Step = 0
		}
		return nil

	default:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "booking flow already complete")
	}
}

// Back moves one step toward the start without clearing any answers. Backing
// out of step zero is a guarded no-op; backing out of event details returns
// to the meal-type step.
func (w *Wizard) Back() {
	switch w.Phase {
	case PhaseBooking:
		if w.Step > StepLocation {
			w.Step--
		}
	case PhaseEventDetails:
		w.Phase = PhaseBooking
		w.Step = StepMealType
	}
}

// IsComplete reports whether both wizards have finished.
func (w *Wizard) IsComplete() bool {
	return w.Phase == PhaseComplete
}

func (w *Wizard) eventDetailsComplete() bool {
	return w.Data.City != "" &&
		w.Data.Occasion != "" &&
		w.Data.EventDate != "" &&
		w.Data.DeliveryTime != "" &&
		w.Data.Menu != ""
}

func (d *Data) merge(patch Patch) {
	if patch.Location != nil {
		d.Location = *patch.Location
	}
	if patch.Occasion != nil {
		d.Occasion = *patch.Occasion
	}
	if patch.MealType != nil {
		d.MealType = *patch.MealType
	}
	if patch.GuestCount != nil {
		d.GuestCount = max(0, *patch.GuestCount)
	}
	if patch.VegCount != nil {
		d.VegCount = max(0, *patch.VegCount)
	}
	if patch.NonVegCount != nil {
		d.NonVegCount = max(0, *patch.NonVegCount)
	}
	if patch.JainCount != nil {
		d.JainCount = max(0, *patch.JainCount)
	}
	if patch.City != nil {
		d.City = *patch.City
	}
	if patch.EventDate != nil {
		d.EventDate = *patch.EventDate
	}
	if patch.DeliveryTime != nil {
		d.DeliveryTime = *patch.DeliveryTime
	}
	if patch.Menu != nil {
		d.Menu = *patch.Menu
	}
}
