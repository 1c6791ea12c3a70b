package notify

import "time"

// Audience routes a message to its recipient class.
type Audience string

const (
	AudienceAdmin    Audience = "admin"
	AudienceCustomer Audience = "customer"
)

// Message is one outbound notification. The body is ready-to-send plain text.
type Message struct {
	Audience  Audience  `json:"audience"`
	OrderID   string    `json:"orderId"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sentAt"`
}
