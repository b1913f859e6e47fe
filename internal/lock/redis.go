// Package lock serializes critical sections per key, across processes
// through Redis or within one process through a keyed mutex.
package lock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const keyPrefix = "blockbooker:lock:"

type Options struct {
	Expiry     time.Duration
	Tries      int
	RetryDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Expiry <= 0 {
		o.Expiry = 10 * time.Second
	}
	if o.Tries <= 0 {
		o.Tries = 32
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = 100 * time.Millisecond
	}
	return o
}

// RedisLocker is a redsync mutex per key. Failing to acquire within the
// configured tries surfaces as ErrConcurrencyConflict.
type RedisLocker struct {
	rs     *redsync.Redsync
	opts   Options
	logger logger.Logger
}

func NewRedisLocker(client redis.UniversalClient, opts Options, logger logger.Logger) *RedisLocker {
	return &RedisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	mutex := l.rs.NewMutex(
		keyPrefix+key,
		redsync.WithExpiry(l.opts.Expiry),
		redsync.WithTries(l.opts.Tries),
		redsync.WithRetryDelay(l.opts.RetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		if errors.Is(err, redsync.ErrFailed) || strings.Contains(err.Error(), "lock already taken") {
			return fmt.Errorf("%w: lock %s is held elsewhere", domain.ErrConcurrencyConflict, key)
		}
		return fmt.Errorf("acquire lock %s: %w", key, err)
	}

	defer func() {
		if ok, err := mutex.UnlockContext(context.WithoutCancel(ctx)); !ok || err != nil {
			l.logger.Warn("failed to release lock",
				logger.String("key", key),
				logger.Any("error", err),
			)
		}
	}()

	return fn(ctx)
}
