package locations

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biteaffair/storefront-backend/internal/session"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(session.NewMemoryStore(), logger.New(logger.Options{ServiceName: "test", Output: io.Discard}))
	require.NoError(t, err)
	return svc
}

func TestPreferenceRoundtrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	loc, err := svc.GetPreference(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "gurugram", loc.ID)

	set, err := svc.SetPreference(ctx, "s1", "noida")
	require.NoError(t, err)
	require.Equal(t, "Noida", set.Name)

	loc, err = svc.GetPreference(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "noida", loc.ID)

	require.NoError(t, svc.ClearPreference(ctx, "s1"))

	loc, err = svc.GetPreference(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "gurugram", loc.ID)
}

func TestPreferenceIsSessionScoped(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.SetPreference(ctx, "s1", "delhi")
	require.NoError(t, err)

	loc, err := svc.GetPreference(ctx, "s2")
	require.NoError(t, err)
	require.Equal(t, "gurugram", loc.ID)
}

func TestSetPreferenceRejectsUnknownLocation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.SetPreference(ctx, "s1", "manesar")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestPreferenceRequiresSessionID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.GetPreference(ctx, "")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	_, err = svc.SetPreference(ctx, "", "delhi")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	require.True(t, pkgerrors.IsCode(svc.ClearPreference(ctx, ""), pkgerrors.CodeValidation))
}
