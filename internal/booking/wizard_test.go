package booking

import (
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
)

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func TestWizardHappyPath(t *testing.T) {
	w := New()
	require.Equal(t, PhaseBooking, w.Phase)
	require.Equal(t, StepLocation, w.Step)
	require.Equal(t, 25, w.Data.GuestCount)

	require.NoError(t, w.Select(Patch{Location: str("Delhi")}))
	require.Equal(t, StepOccasion, w.Step)

	require.NoError(t, w.Select(Patch{Occasion: str("Birthday")}))
	require.Equal(t, StepMealType, w.Step)

	require.NoError(t, w.Select(Patch{MealType: str("Veg & Non-Veg"), VegCount: num(10), NonVegCount: num(15)}))
	require.Equal(t, PhaseEventDetails, w.Phase)
	require.Equal(t, 0, w.Step)

	require.NoError(t, w.Select(Patch{
		City:         str("gurugram"),
		EventDate:    str("2026-10-02"),
		DeliveryTime: str("19:00"),
		Menu:         str("cocktail"),
	}))
	require.True(t, w.IsComplete())

	require.Equal(t, "Delhi", w.Data.Location)
	require.Equal(t, "Birthday", w.Data.Occasion)
	require.Equal(t, "Veg & Non-Veg", w.Data.MealType)
	require.Equal(t, 10, w.Data.VegCount)
	require.Equal(t, 15, w.Data.NonVegCount)
	require.Equal(t, "cocktail", w.Data.Menu)
}

func TestWizardBackPreservesData(t *testing.T) {
	w := New()
	require.NoError(t, w.Select(Patch{Location: str("Noida")}))
	require.NoError(t, w.Select(Patch{Occasion: str("Birthday")}))
	require.Equal(t, StepMealType, w.Step)

	w.Back()
	require.Equal(t, StepOccasion, w.Step)
	require.Equal(t, "Birthday", w.Data.Occasion)

	// forward again without changing anything
	require.NoError(t, w.Select(Patch{}))
	require.Equal(t, StepMealType, w.Step)
	require.Equal(t, "Birthday", w.Data.Occasion)
	require.Equal(t, "Noida", w.Data.Location)
}

func TestWizardBackFromStepZeroIsGuarded(t *testing.T) {
	w := New()
	w.Back()
	require.Equal(t, PhaseBooking, w.Phase)
	require.Equal(t, StepLocation, w.Step)
}

func TestWizardBackFromEventDetailsReturnsToMealType(t *testing.T) {
	w := New()
	require.NoError(t, w.Select(Patch{Location: str("Delhi")}))
	require.NoError(t, w.Select(Patch{Occasion: str("Anniversary")}))
	require.NoError(t, w.Select(Patch{MealType: str("Veg")}))
	require.Equal(t, PhaseEventDetails, w.Phase)

	w.Back()
	require.Equal(t, PhaseBooking, w.Phase)
	require.Equal(t, StepMealType, w.Step)
	require.Equal(t, "Anniversary", w.Data.Occasion)
}

func TestWizardEventDetailsNeedsAllFields(t *testing.T) {
	w := New()
	require.NoError(t, w.Select(Patch{Location: str("Delhi")}))
	require.NoError(t, w.Select(Patch{Occasion: str("Birthday")}))
	require.NoError(t, w.Select(Patch{MealType: str("Veg")}))

	// partial patches keep the wizard on the event-details step
	require.NoError(t, w.Select(Patch{City: str("delhi"), EventDate: str("2026-10-02")}))
	require.False(t, w.IsComplete())

	require.NoError(t, w.Select(Patch{DeliveryTime: str("20:00"), Menu: str("jain")}))
	require.True(t, w.IsComplete())
}

func TestWizardSelectAfterCompleteIsStateConflict(t *testing.T) {
	w := New()
	require.NoError(t, w.Select(Patch{Location: str("Delhi")}))
	require.NoError(t, w.Select(Patch{Occasion: str("Birthday")}))
	require.NoError(t, w.Select(Patch{MealType: str("Veg")}))
	require.NoError(t, w.Select(Patch{
		City: str("delhi"), EventDate: str("2026-10-02"),
		DeliveryTime: str("19:00"), Menu: str("veg"),
	}))
	require.True(t, w.IsComplete())

	err := w.Select(Patch{Location: str("Noida")})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
}

func TestWizardCountsClampAtZero(t *testing.T) {
	w := New()
	require.NoError(t, w.Select(Patch{Location: str("Delhi"), VegCount: num(-4), GuestCount: num(-1)}))
	require.Equal(t, 0, w.Data.VegCount)
	require.Equal(t, 0, w.Data.GuestCount)
}

func TestWizardStepNames(t *testing.T) {
	w := New()
	require.Equal(t, "Choose Location", w.StepName())
	require.NoError(t, w.Select(Patch{Location: str("Delhi")}))
	require.Equal(t, "Choose Occasion", w.StepName())
	require.NoError(t, w.Select(Patch{Occasion: str("Birthday")}))
	require.Equal(t, "Meal Type", w.StepName())
	require.NoError(t, w.Select(Patch{MealType: str("Veg")}))
	require.Equal(t, "Event Details", w.StepName())
}
