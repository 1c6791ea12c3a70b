package menu

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/biteaffair/storefront-backend/pkg/enums"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

// ErrSuperseded marks a load whose result arrived after a newer request was
// issued. The caller discards the stale result, the newer load wins.
var ErrSuperseded = errors.New("menu load superseded by a newer request")

// Loader serializes catalog loads with last-request-wins semantics: when the
// selected menu type changes while an earlier load is still in flight, the
// earlier result must never overwrite the later one. Each load takes a
// sequence ticket and only the holder of the newest ticket may return items.
type Loader struct {
	source Source

	mu  sync.Mutex
	seq uint64
}

// NewLoader builds a loader over the given dataset source.
func NewLoader(source Source) (*Loader, error) {
	if source == nil {
		return nil, fmt.Errorf("dataset source required")
	}
	return &Loader{source: source}, nil
}

// Load fetches and normalizes the catalog for the menu type. Returns
// ErrSuperseded when a newer Load was issued while this one was in flight.
func (l *Loader) Load(ctx context.Context, menuType enums.MenuType) ([]types.MenuItem, error) {
	l.mu.Lock()
	l.seq++
	ticket := l.seq
	l.mu.Unlock()

	items, err := l.source(ctx, menuType)

	l.mu.Lock()
	latest := l.seq
	l.mu.Unlock()
	if ticket != latest {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu dataset")
	}
	return items, nil
}
