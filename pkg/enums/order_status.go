package enums

import "fmt"

// OrderStatus describes the lifecycle of a submitted order. Transitions are
// one-way: pending moves to approved or rejected and never back.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusApproved,
	OrderStatusRejected,
}

// IsValid reports whether the value matches the canonical order status enum.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further status transition is possible.
func (o OrderStatus) IsTerminal() bool {
	return o == OrderStatusApproved || o == OrderStatusRejected
}

// CanTransitionTo reports whether the status may move to the target.
func (o OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return o == OrderStatusPending && target.IsTerminal()
}

// ParseOrderStatus converts the raw string to OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
