package notify

import "context"

// Notifier delivers one message over a transport. Implementations are
// best-effort; callers decide whether failures matter.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
