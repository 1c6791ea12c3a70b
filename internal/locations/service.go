package locations

import (
	"context"
	"fmt"

	"github.com/biteaffair/storefront-backend/internal/session"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

const sessionField = "selectedLocation"

// Service exposes the catalog and the per-session location preference.
type Service interface {
	List(ctx context.Context) []Location
	GetPreference(ctx context.Context, sessionID string) (Location, error)
	SetPreference(ctx context.Context, sessionID, locationID string) (Location, error)
	ClearPreference(ctx context.Context, sessionID string) error
}

type service struct {
	store session.Store
	logg  *logger.Logger
}

// NewService builds a location service backed by the session store.
func NewService(store session.Store, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("session store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, logg: logg}, nil
}

func (s *service) List(ctx context.Context) []Location {
	return Available()
}

// GetPreference returns the saved location, or the default area when the
// session has not picked one (or the saved id has left the catalog).
func (s *service) GetPreference(ctx context.Context, sessionID string) (Location, error) {
	if sessionID == "" {
		return Location{}, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	id, found, err := s.store.Get(ctx, sessionID, sessionField)
	if err != nil {
		return Location{}, err
	}
	if !found {
		return Default(), nil
	}
	loc, ok := ByID(id)
	if !ok {
		lctx := s.logg.WithField(s.logg.WithSessionID(ctx, sessionID), "location_id", id)
		s.logg.Warn(lctx, "saved location no longer serviced, falling back to default")
		return Default(), nil
	}
	return loc, nil
}

func (s *service) SetPreference(ctx context.Context, sessionID, locationID string) (Location, error) {
	if sessionID == "" {
		return Location{}, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	loc, ok := ByID(locationID)
	if !ok {
		return Location{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown location %q", locationID))
	}
	if !loc.Available {
		return Location{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("location %q is not accepting orders", locationID))
	}
	if err := s.store.Set(ctx, sessionID, sessionField, loc.ID); err != nil {
		return Location{}, err
	}
	return loc, nil
}

func (s *service) ClearPreference(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	return s.store.Delete(ctx, sessionID, sessionField)
}
