package session

import "context"

// Store persists small per-session documents keyed by session id and field
// name. Values are serialized JSON; callers own the encoding.
type Store interface {
	Get(ctx context.Context, sessionID, field string) (string, bool, error)
	Set(ctx context.Context, sessionID, field, value string) error
	Delete(ctx context.Context, sessionID, field string) error
}
