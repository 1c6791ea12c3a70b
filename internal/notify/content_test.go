package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/biteaffair/storefront-backend/pkg/db/models"
	"github.com/biteaffair/storefront-backend/pkg/enums"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

func sampleOrder() *models.Order {
	return &models.Order{
		ID:            "ORD-1756700000000",
		SessionID:     "s1",
		Status:        enums.OrderStatusPending,
		CustomerName:  "Asha Verma",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9876543210",
		Items: []types.LineItem{
			{ID: "paneer-tikka-1", Name: "Paneer Tikka", Price: decimal.NewFromInt(280), Quantity: 2},
			{ID: "chicken-curry-1", Name: "Chicken Curry Special Deluxe", Price: decimal.NewFromInt(450), Quantity: 1},
		},
		TotalItems: 3,
		TotalPrice: decimal.NewFromInt(1010),
		CreatedAt:  time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestAdminOrderContentLayout(t *testing.T) {
	content := AdminOrderContent(sampleOrder())

	require.True(t, strings.HasPrefix(content, "NEW RESTAURANT ORDER - ORD-1756700000000\n"))
	require.Contains(t, content, "CUSTOMER DETAILS:")
	require.Contains(t, content, "│ Name        │ Asha Verma                  │")
	require.Contains(t, content, "│ Phone       │ 9876543210                  │")
	require.Contains(t, content, "ORDER ITEMS:")
	require.Contains(t, content, "│ 1 │ Paneer Tikka        │   2 │ ₹    280 │ ₹     560 │")
	require.Contains(t, content, "ACTION REQUIRED: Please approve this order")
	require.Contains(t, content, "Total Amount: ₹1010")
}

func TestAdminOrderContentTruncatesLongItemNames(t *testing.T) {
	content := AdminOrderContent(sampleOrder())

	require.Contains(t, content, "Chicken Curry Sp...")
	require.NotContains(t, content, "Chicken Curry Special Deluxe")
}

func TestAdminOrderContentTotalRow(t *testing.T) {
	content := AdminOrderContent(sampleOrder())

	require.Contains(t, content, "│   │ TOTAL               │   3 │          │ ₹    1010 │")
}

func TestCustomerConfirmationContent(t *testing.T) {
	content := CustomerConfirmationContent(sampleOrder())

	require.Contains(t, content, "Thank you for your order, Asha Verma!")
	require.Contains(t, content, "Order ID: ORD-1756700000000")
	require.Contains(t, content, "awaiting approval")
}

func TestCustomerDecisionContent(t *testing.T) {
	order := sampleOrder()

	order.Status = enums.OrderStatusApproved
	approved := CustomerDecisionContent(order)
	require.Contains(t, approved, "has been approved")
	require.Contains(t, approved, "payment and delivery")

	order.Status = enums.OrderStatusRejected
	order.Notes = "Out of service area"
	rejected := CustomerDecisionContent(order)
	require.Contains(t, rejected, "could not be accepted")
	require.Contains(t, rejected, "Note from our team: Out of service area")
}
