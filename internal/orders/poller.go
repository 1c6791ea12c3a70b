package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/biteaffair/storefront-backend/pkg/db/models"
	"github.com/biteaffair/storefront-backend/pkg/enums"
	"github.com/biteaffair/storefront-backend/pkg/logger"
	"github.com/biteaffair/storefront-backend/pkg/metrics"
)

type statusReader interface {
	CheckStatus(ctx context.Context, orderID string) (*models.Order, error)
}

// StatusUpdate is one poll outcome pushed to a watcher.
type StatusUpdate struct {
	Status enums.OrderStatus
	Err    error
}

// Poller re-reads an order's status on a fixed interval until the order
// reaches a terminal state or the watcher's context is cancelled.
type Poller struct {
	reader   statusReader
	interval time.Duration
	metrics  *metrics.PollerMetrics
	logg     *logger.Logger
}

const defaultPollInterval = 30 * time.Second

func NewPoller(reader statusReader, interval time.Duration, m *metrics.PollerMetrics, logg *logger.Logger) (*Poller, error) {
	if reader == nil {
		return nil, fmt.Errorf("status reader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{reader: reader, interval: interval, metrics: m, logg: logg}, nil
}

// Watch polls immediately, then on every tick. The returned channel is closed
// once the order is terminal or ctx is cancelled; the ticker never outlives
// the watch.
func (p *Poller) Watch(ctx context.Context, orderID string) <-chan StatusUpdate {
	updates := make(chan StatusUpdate, 1)
	go func() {
		defer close(updates)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		if done := p.poll(ctx, orderID, updates); done {
			return
		}
		for {
			select {
			case <-ctx.Done():
				p.logg.Info(p.logg.WithOrderID(ctx, orderID), "status watch cancelled")
				return
			case <-ticker.C:
				if done := p.poll(ctx, orderID, updates); done {
					return
				}
			}
		}
	}()
	return updates
}

// poll performs one status read. It reports true when the watch should end.
func (p *Poller) poll(ctx context.Context, orderID string, updates chan<- StatusUpdate) bool {
	start := time.Now()
	order, err := p.reader.CheckStatus(ctx, orderID)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		p.metrics.IncFailure("")
		p.logg.Error(p.logg.WithOrderID(ctx, orderID), "status poll failed", err)
		p.deliver(ctx, updates, StatusUpdate{Err: err})
		return false
	}

	status := order.Status
	p.metrics.ObserveDuration(string(status), time.Since(start))
	p.metrics.IncSuccess(string(status))
	p.deliver(ctx, updates, StatusUpdate{Status: status})
	return status.IsTerminal()
}

func (p *Poller) deliver(ctx context.Context, updates chan<- StatusUpdate, update StatusUpdate) {
	select {
	case updates <- update:
	case <-ctx.Done():
	}
}
