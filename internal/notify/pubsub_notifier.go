package notify

import (
	"context"
	"encoding/json"
	"fmt"

	gcppubsub "cloud.google.com/go/pubsub/v2"

	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
	"github.com/biteaffair/storefront-backend/pkg/pubsub"
)

type publisher interface {
	Publish(context.Context, *gcppubsub.Message) publishResult
}

type publishResult interface {
	Get(context.Context) (string, error)
}

type gcpPublisher struct {
	inner *gcppubsub.Publisher
}

func (p gcpPublisher) Publish(ctx context.Context, msg *gcppubsub.Message) publishResult {
	return p.inner.Publish(ctx, msg)
}

// PubSubNotifier publishes notifications to the order-events topic, where a
// downstream mailer worker turns them into admin and customer email.
type PubSubNotifier struct {
	pub  publisher
	logg *logger.Logger
}

func NewPubSubNotifier(client *pubsub.Client, logg *logger.Logger) (*PubSubNotifier, error) {
	if client == nil {
		return nil, fmt.Errorf("pubsub client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	pub := client.OrderEventsPublisher()
	if pub == nil {
		return nil, fmt.Errorf("order events publisher unavailable")
	}
	return &PubSubNotifier{pub: gcpPublisher{inner: pub}, logg: logg}, nil
}

func (n *PubSubNotifier) Send(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding notification")
	}
	result := n.pub.Publish(ctx, &gcppubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"audience": string(msg.Audience),
			"orderId":  msg.OrderID,
		},
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNotification, err, "publishing notification")
	}
	lctx := n.logg.WithField(n.logg.WithOrderID(ctx, msg.OrderID), "message_id", serverID)
	n.logg.Info(lctx, "notification published")
	return nil
}
