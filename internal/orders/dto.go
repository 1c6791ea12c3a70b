package orders

import (
	"regexp"
	"strings"

	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

// SubmitInput carries everything needed to place an order: the session, the
// customer contact block, the cart snapshot and optional event details from
// the booking wizard.
type SubmitInput struct {
	SessionID     string
	Customer      types.CustomerDetails
	Items         []types.LineItem
	EventDate     string
	EventLocation string
	GuestCount    int
}

// SubmitResult is the submission outcome. Success is false only for failures
// the customer can act on; the order stays pending either way until an admin
// decides.
type SubmitResult struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

// Validate checks the submission the way the storefront checkout form does,
// collecting one message per offending field.
func (in SubmitInput) Validate() error {
	details := map[string]string{}
	if strings.TrimSpace(in.SessionID) == "" {
		details["sessionId"] = "session id is required"
	}
	if strings.TrimSpace(in.Customer.Name) == "" {
		details["name"] = "name is required"
	}
	if !emailRe.MatchString(in.Customer.Email) {
		details["email"] = "valid email is required"
	}
	if !phoneRe.MatchString(in.Customer.Phone) {
		details["phone"] = "valid 10-digit phone number is required"
	}
	if len(in.Items) == 0 {
		details["items"] = "cart is empty"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid order submission").WithDetails(details)
	}
	return nil
}
