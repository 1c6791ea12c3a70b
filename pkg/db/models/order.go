package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/biteaffair/storefront-backend/pkg/enums"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

// Order persists a submitted catering order. Items and the money totals are an
// immutable snapshot of the cart at submission time; only Status, Notes and
// StatusChangedAt move afterwards.
type Order struct {
	ID              string            `gorm:"column:id;primaryKey"`
	SessionID       string            `gorm:"column:session_id;not null;index"`
	Status          enums.OrderStatus `gorm:"column:status;not null;default:'pending';index"`
	CustomerName    string            `gorm:"column:customer_name;not null"`
	CustomerEmail   string            `gorm:"column:customer_email;not null"`
	CustomerPhone   string            `gorm:"column:customer_phone;not null"`
	EventDate       string            `gorm:"column:event_date;not null;default:''"`
	EventLocation   string            `gorm:"column:event_location;not null;default:''"`
	GuestCount      int               `gorm:"column:guest_count;not null;default:0"`
	Notes           string            `gorm:"column:notes;not null;default:''"`
	Items           []types.LineItem  `gorm:"column:items;type:jsonb;serializer:json"`
	TotalItems      int               `gorm:"column:total_items;not null;default:0"`
	TotalPrice      decimal.Decimal   `gorm:"column:total_price;type:numeric(12,2);not null;default:0"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
	StatusChangedAt *time.Time        `gorm:"column:status_changed_at"`
}

// Summary rebuilds the frozen order roll-up from the persisted columns.
func (o *Order) Summary() types.OrderSummary {
	return types.OrderSummary{
		TotalItems:  o.TotalItems,
		TotalAmount: o.TotalPrice,
		Currency:    "INR",
	}
}

// Customer rebuilds the contact block from the persisted columns.
func (o *Order) Customer() types.CustomerDetails {
	return types.CustomerDetails{
		Name:  o.CustomerName,
		Email: o.CustomerEmail,
		Phone: o.CustomerPhone,
	}
}
