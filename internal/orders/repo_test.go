package orders

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/biteaffair/storefront-backend/pkg/db/models"
	"github.com/biteaffair/storefront-backend/pkg/enums"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ordersTable := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  session_id TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  event_date TEXT NOT NULL DEFAULT '',
  event_location TEXT NOT NULL DEFAULT '',
  guest_count INTEGER NOT NULL DEFAULT 0,
  notes TEXT NOT NULL DEFAULT '',
  items TEXT NOT NULL DEFAULT '[]',
  total_items INTEGER NOT NULL DEFAULT 0,
  total_price NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME,
  status_changed_at DATETIME
);`
	require.NoError(t, db.Exec(ordersTable).Error)
	require.NoError(t, db.Exec("DELETE FROM orders").Error)
	return db
}

func testOrder(id, sessionID string) *models.Order {
	return &models.Order{
		ID:            id,
		SessionID:     sessionID,
		Status:        enums.OrderStatusPending,
		CustomerName:  "Asha Verma",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9876543210",
		Items: []types.LineItem{
			{ID: "paneer-tikka-1", Name: "Paneer Tikka", Price: decimal.NewFromInt(280), Quantity: 2},
		},
		TotalItems: 2,
		TotalPrice: decimal.NewFromInt(560),
	}
}

func TestRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupOrdersTestDB(t))

	require.NoError(t, repo.Create(ctx, testOrder("ORD-1", "s1")))

	found, err := repo.FindByID(ctx, "ORD-1")
	require.NoError(t, err)
	require.Equal(t, "Asha Verma", found.CustomerName)
	require.Equal(t, enums.OrderStatusPending, found.Status)
	require.Len(t, found.Items, 1)
	require.Equal(t, "Paneer Tikka", found.Items[0].Name)
	require.True(t, found.TotalPrice.Equal(decimal.NewFromInt(560)))
}

func TestRepositoryFindByIDNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupOrdersTestDB(t))

	_, err := repo.FindByID(ctx, "ORD-missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryFindAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	older := testOrder("ORD-old", "s1")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := testOrder("ORD-new", "s2")
	newer.CreatedAt = time.Now()

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "ORD-new", all[0].ID)
	require.Equal(t, "ORD-old", all[1].ID)
}

func TestRepositoryFindBySession(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupOrdersTestDB(t))

	require.NoError(t, repo.Create(ctx, testOrder("ORD-1", "s1")))
	require.NoError(t, repo.Create(ctx, testOrder("ORD-2", "s2")))

	mine, err := repo.FindBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "ORD-1", mine[0].ID)
}

func TestRepositoryUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupOrdersTestDB(t))

	require.NoError(t, repo.Create(ctx, testOrder("ORD-1", "s1")))

	changedAt := time.Now().UTC()
	require.NoError(t, repo.UpdateStatus(ctx, "ORD-1", enums.OrderStatusApproved, "confirmed by phone", changedAt))

	found, err := repo.FindByID(ctx, "ORD-1")
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusApproved, found.Status)
	require.Equal(t, "confirmed by phone", found.Notes)
	require.NotNil(t, found.StatusChangedAt)
}

func TestRepositoryUpdateStatusUnknownOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupOrdersTestDB(t))

	err := repo.UpdateStatus(ctx, "ORD-missing", enums.OrderStatusApproved, "", time.Now())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
