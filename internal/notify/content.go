package notify

import (
	"fmt"
	"strings"

	"github.com/biteaffair/storefront-backend/pkg/db/models"
	"github.com/biteaffair/storefront-backend/pkg/enums"
)

const orderDateLayout = "02/01/2006, 3:04:05 pm"

// AdminOrderContent renders the plain-text approval request sent to the
// kitchen admin: a boxed customer block, a boxed line-item table with a
// total row, and the action footer.
func AdminOrderContent(order *models.Order) string {
	customer := order.Customer()
	summary := order.Summary()

	var b strings.Builder
	fmt.Fprintf(&b, "NEW RESTAURANT ORDER - %s\n", order.ID)
	b.WriteString("========================================\n\n")

	b.WriteString("CUSTOMER DETAILS:\n")
	b.WriteString("┌─────────────┬─────────────────────────────┐\n")
	fmt.Fprintf(&b, "│ Name        │ %-27s │\n", customer.Name)
	fmt.Fprintf(&b, "│ Email       │ %-27s │\n", customer.Email)
	fmt.Fprintf(&b, "│ Phone       │ %-27s │\n", customer.Phone)
	b.WriteString("└─────────────┴─────────────────────────────┘\n\n")

	b.WriteString("ORDER ITEMS:\n")
	b.WriteString("┌───┬─────────────────────┬─────┬──────────┬───────────┐\n")
	b.WriteString("│ # │ Item Name           │ Qty │ Price    │ Subtotal  │\n")
	b.WriteString("├───┼─────────────────────┼─────┼──────────┼───────────┤\n")
	for i, item := range order.Items {
		name := item.Name
		if len(name) > 19 {
			name = name[:16] + "..."
		}
		fmt.Fprintf(&b, "│%2d │ %-19s │ %3d │ ₹%7s │ ₹%8s │\n",
			i+1, name, item.Quantity, item.Price.String(), item.Subtotal().String())
	}
	b.WriteString("├───┼─────────────────────┼─────┼──────────┼───────────┤\n")
	fmt.Fprintf(&b, "│   │ TOTAL               │ %3d │          │ ₹%8s │\n",
		summary.TotalItems, summary.TotalAmount.String())
	b.WriteString("└───┴─────────────────────┴─────┴──────────┴───────────┘\n\n")

	b.WriteString("ACTION REQUIRED: Please approve this order\n")
	fmt.Fprintf(&b, "Total Amount: ₹%s\n", summary.TotalAmount.String())
	fmt.Fprintf(&b, "Order Date: %s", order.CreatedAt.Format(orderDateLayout))

	return b.String()
}

// CustomerConfirmationContent is the receipt sent right after submission.
func CustomerConfirmationContent(order *models.Order) string {
	summary := order.Summary()

	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order, %s!\n\n", order.CustomerName)
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "Items: %d\n", summary.TotalItems)
	fmt.Fprintf(&b, "Total Amount: ₹%s\n\n", summary.TotalAmount.String())
	b.WriteString("Your order is awaiting approval. We will confirm it shortly.")
	return b.String()
}

// CustomerDecisionContent is the follow-up sent when an admin approves or
// rejects the order. Admin notes, when present, are passed through verbatim.
func CustomerDecisionContent(order *models.Order) string {
	var b strings.Builder
	if order.Status == enums.OrderStatusApproved {
		fmt.Fprintf(&b, "Good news, %s! Your order %s has been approved.\n", order.CustomerName, order.ID)
		b.WriteString("Our team will reach out with payment and delivery details.")
	} else {
		fmt.Fprintf(&b, "We are sorry, %s. Your order %s could not be accepted.\n", order.CustomerName, order.ID)
	}
	if order.Notes != "" {
		fmt.Fprintf(&b, "\n\nNote from our team: %s", order.Notes)
	}
	return b.String()
}
