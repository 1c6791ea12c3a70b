package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/biteaffair/storefront-backend/internal/session"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

const sessionField = "booking"

// Service persists one wizard per session.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Wizard, error)
	Select(ctx context.Context, sessionID string, patch Patch) (*Wizard, error)
	Back(ctx context.Context, sessionID string) (*Wizard, error)
	Reset(ctx context.Context, sessionID string) (*Wizard, error)
}

type service struct {
	store session.Store
	logg  *logger.Logger
}

// NewService builds a session booking service.
func NewService(store session.Store, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("session store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, logg: logg}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Wizard, error) {
	return s.load(ctx, sessionID)
}

func (s *service) Select(ctx context.Context, sessionID string, patch Patch) (*Wizard, error) {
	wizard, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := wizard.Select(patch); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sessionID, wizard); err != nil {
		return nil, err
	}
	if wizard.IsComplete() {
		s.logg.Info(s.logg.WithSessionID(ctx, sessionID), "booking wizard completed")
	}
	return wizard, nil
}

func (s *service) Back(ctx context.Context, sessionID string) (*Wizard, error) {
	wizard, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	wizard.Back()
	if err := s.save(ctx, sessionID, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

func (s *service) Reset(ctx context.Context, sessionID string) (*Wizard, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	wizard := New()
	if err := s.save(ctx, sessionID, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

func (s *service) load(ctx context.Context, sessionID string) (*Wizard, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	raw, found, err := s.store.Get(ctx, sessionID, sessionField)
	if err != nil {
		return nil, err
	}
	if !found {
		return New(), nil
	}
	wizard := New()
	if err := json.Unmarshal([]byte(raw), wizard); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "discarding unreadable wizard state")
		return New(), nil
	}
	return wizard, nil
}

func (s *service) save(ctx context.Context, sessionID string, wizard *Wizard) error {
	raw, err := json.Marshal(wizard)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode wizard state")
	}
	return s.store.Set(ctx, sessionID, sessionField, string(raw))
}
