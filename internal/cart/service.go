package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/biteaffair/storefront-backend/internal/session"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

const sessionField = "cart"

// Service owns one cart per session, loading and saving reducer state through
// the session store. Mutations follow the reducer transition table exactly;
// unknown item ids are no-ops, not errors.
type Service interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	AddItem(ctx context.Context, sessionID string, input BuildInput) (*State, types.LineItem, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*State, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*State, error)
	Clear(ctx context.Context, sessionID string) (*State, error)
}

type service struct {
	store session.Store
	logg  *logger.Logger
}

// NewService builds a session cart service.
func NewService(store session.Store, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("session store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, logg: logg}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*State, error) {
	return s.load(ctx, sessionID)
}

func (s *service) AddItem(ctx context.Context, sessionID string, input BuildInput) (*State, types.LineItem, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, types.LineItem{}, err
	}
	item, err := Build(input)
	if err != nil {
		return nil, types.LineItem{}, err
	}
	state.AddItem(item)
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, types.LineItem{}, err
	}
	ctx = s.logg.WithSessionID(ctx, sessionID)
	s.logg.Info(s.logg.WithField(ctx, "lineItemId", item.ID), "line item added to cart")
	return state, item, nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*State, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.UpdateQuantity(itemID, quantity)
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID, itemID string) (*State, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.RemoveItem(itemID)
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) (*State, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	state := NewState()
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) load(ctx context.Context, sessionID string) (*State, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	raw, found, err := s.store.Get(ctx, sessionID, sessionField)
	if err != nil {
		return nil, err
	}
	if !found {
		return NewState(), nil
	}
	state := NewState()
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		// a corrupt document resets the cart rather than wedging the session
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "discarding unreadable cart state")
		return NewState(), nil
	}
	return state, nil
}

func (s *service) save(ctx context.Context, sessionID string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart state")
	}
	return s.store.Set(ctx, sessionID, sessionField, string(raw))
}

func requireSession(sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	return nil
}
