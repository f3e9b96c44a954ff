package lock

import (
	"context"
	"fmt"
	"time"

	"event-planner/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix            = "event-planner:venue-lock:"
	defaultRetryInterval = 50 * time.Millisecond
)

// releaseScript deletes the key only while it still holds our token.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// RedisLocker locks venues across instances with SET NX PX. A lock
// expires after its TTL if the holder dies.
type RedisLocker struct {
	client        redis.Cmdable
	ttl           time.Duration
	retryInterval time.Duration
	token         func() string
}

type RedisOption func(*RedisLocker)

func WithRetryInterval(d time.Duration) RedisOption {
	return func(l *RedisLocker) {
		l.retryInterval = d
	}
}

// WithTokenFunc replaces the generator of lock owner tokens.
func WithTokenFunc(fn func() string) RedisOption {
	return func(l *RedisLocker) {
		l.token = fn
	}
}

func NewRedisLocker(client redis.Cmdable, ttl time.Duration, opts ...RedisOption) *RedisLocker {
	l := &RedisLocker{
		client:        client,
		ttl:           ttl,
		retryInterval: defaultRetryInterval,
		token:         utils.GenerateUUIDString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opt), nil
}

func (l *RedisLocker) Lock(ctx context.Context, venueID string) (Unlock, error) {
	key := keyPrefix + venueID
	token := l.token()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("lock venue %s: %w", venueID, err)
		}
		if ok {
			break
		}

		select {
		case <-time.After(l.retryInterval):
		case <-ctx.Done():
			return nil, fmt.Errorf("venue %s: %w: %w", venueID, ErrLockTimeout, ctx.Err())
		}
	}

	return func() error {
		// the caller's context may already be cancelled
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := l.client.Eval(releaseCtx, releaseScript, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("unlock venue %s: %w", venueID, err)
		}
		return nil
	}, nil
}
