package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/redis"
)

type redisClient interface {
	SessionKey(sessionID, field string) string
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type redisStore struct {
	client redisClient
	ttl    time.Duration
}

// NewRedisStore builds a session store on the shared Redis client. Every write
// refreshes the session TTL so active sessions never expire mid-checkout.
func NewRedisStore(client redisClient, ttl time.Duration) (Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &redisStore{client: client, ttl: ttl}, nil
}

func (s *redisStore) Get(ctx context.Context, sessionID, field string) (string, bool, error) {
	key := s.client.SessionKey(sessionID, field)
	value, err := s.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read session field")
	}
	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, sessionID, field, value string) error {
	key := s.client.SessionKey(sessionID, field)
	if err := s.client.Set(ctx, key, value, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write session field")
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID, field string) error {
	key := s.client.SessionKey(sessionID, field)
	if err := s.client.Del(ctx, key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete session field")
	}
	return nil
}
