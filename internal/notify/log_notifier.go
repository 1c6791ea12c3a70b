package notify

import (
	"context"
	"fmt"

	"github.com/biteaffair/storefront-backend/pkg/logger"
)

// LogNotifier writes notifications to the service log. It is the default
// transport for dev environments without a message broker.
type LogNotifier struct {
	logg *logger.Logger
}

func NewLogNotifier(logg *logger.Logger) (*LogNotifier, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &LogNotifier{logg: logg}, nil
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	lctx := n.logg.WithFields(n.logg.WithOrderID(ctx, msg.OrderID), map[string]any{
		"audience":  string(msg.Audience),
		"recipient": msg.Recipient,
		"subject":   msg.Subject,
	})
	n.logg.Info(lctx, "notification:\n"+msg.Body)
	return nil
}
