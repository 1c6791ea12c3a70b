package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/biteaffair/storefront-backend/pkg/db/models"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
	"github.com/biteaffair/storefront-backend/pkg/metrics"
)

// Dispatcher builds notification content for order events and fans it out.
// Every send is best-effort: failures are logged and counted, and the
// combined error is returned for the caller to log, never to fail on.
type Dispatcher struct {
	notifier   Notifier
	metrics    *metrics.NotifyMetrics
	logg       *logger.Logger
	adminEmail string
	now        func() time.Time
}

func NewDispatcher(notifier Notifier, m *metrics.NotifyMetrics, logg *logger.Logger, adminEmail string) (*Dispatcher, error) {
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Dispatcher{
		notifier:   notifier,
		metrics:    m,
		logg:       logg,
		adminEmail: adminEmail,
		now:        time.Now,
	}, nil
}

// OrderSubmitted notifies the admin (approval request) and the customer
// (confirmation receipt). Both are attempted even when the first fails.
func (d *Dispatcher) OrderSubmitted(ctx context.Context, order *models.Order) error {
	admin := Message{
		Audience:  AudienceAdmin,
		OrderID:   order.ID,
		Recipient: d.adminEmail,
		Subject:   fmt.Sprintf("New Restaurant Order - %s", order.ID),
		Body:      AdminOrderContent(order),
		SentAt:    d.now().UTC(),
	}
	customer := Message{
		Audience:  AudienceCustomer,
		OrderID:   order.ID,
		Recipient: order.CustomerEmail,
		Subject:   fmt.Sprintf("Order Received - %s", order.ID),
		Body:      CustomerConfirmationContent(order),
		SentAt:    d.now().UTC(),
	}
	return multierr.Combine(d.send(ctx, admin), d.send(ctx, customer))
}

// OrderDecided notifies the customer after an admin approves or rejects.
func (d *Dispatcher) OrderDecided(ctx context.Context, order *models.Order) error {
	msg := Message{
		Audience:  AudienceCustomer,
		OrderID:   order.ID,
		Recipient: order.CustomerEmail,
		Subject:   fmt.Sprintf("Order %s - %s", order.Status, order.ID),
		Body:      CustomerDecisionContent(order),
		SentAt:    d.now().UTC(),
	}
	return d.send(ctx, msg)
}

func (d *Dispatcher) send(ctx context.Context, msg Message) error {
	err := d.notifier.Send(ctx, msg)
	if err != nil {
		d.metrics.IncFailed(string(msg.Audience))
		lctx := d.logg.WithField(d.logg.WithOrderID(ctx, msg.OrderID), "audience", string(msg.Audience))
		d.logg.Error(lctx, "notification delivery failed", err)
		return pkgerrors.Wrap(pkgerrors.CodeNotification, err, fmt.Sprintf("notifying %s", msg.Audience))
	}
	d.metrics.IncDelivered(string(msg.Audience))
	return nil
}
