package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"checkout_hub/internal/usecase/interfaces"
	"checkout_hub/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix     = "checkout:lock:"
	defaultLockTTL    = 30 * time.Second
	defaultLockWait   = 10 * time.Second
	lockRetryInterval = 50 * time.Millisecond
	releaseTimeout    = 2 * time.Second
)

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// lockStore defines the operations used by RedisLocker.
type lockStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key, owner string) error
}

type redisLockStore struct {
	raw *redis.Client
}

func (s redisLockStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	return s.raw.SetNX(ctx, key, value, ttl).Result()
}

func (s redisLockStore) Release(ctx context.Context, key, owner string) error {
	err := releaseScript.Run(ctx, s.raw, []string{key}, owner).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// RedisLocker serializes reconciliation of a payment across replicas with
// SET NX + TTL. The TTL bounds how long a crashed holder blocks others.
type RedisLocker struct {
	store lockStore
	ttl   time.Duration
	wait  time.Duration
	log   *logger.Logger
}

var _ interfaces.IPaymentLocker = (*RedisLocker)(nil)

func NewRedisLocker(raw *redis.Client, ttl, wait time.Duration, log *logger.Logger) *RedisLocker {
	return newRedisLocker(redisLockStore{raw: raw}, ttl, wait, log)
}

func newRedisLocker(store lockStore, ttl, wait time.Duration, log *logger.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	if wait <= 0 {
		wait = defaultLockWait
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RedisLocker{store: store, ttl: ttl, wait: wait, log: log}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := lockKeyPrefix + key
	owner := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.store.SetNX(ctx, redisKey, owner, l.ttl)
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return l.releaser(redisKey, owner), nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, interfaces.ErrLockTimeout
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) releaser(key, owner string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
			defer cancel()
			if err := l.store.Release(ctx, key, owner); err != nil {
				l.log.Error(l.log.WithField(ctx, "lock_key", key), "[cache][lock] release failed", err)
			}
		})
	}
}

// LocalLocker is the single-process fallback used when Redis is not
// configured. Waits are bounded the same way as RedisLocker.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*localLock
	wait  time.Duration
}

type localLock struct {
	ch   chan struct{}
	refs int
}

var _ interfaces.IPaymentLocker = (*LocalLocker)(nil)

func NewLocalLocker(wait time.Duration) *LocalLocker {
	if wait <= 0 {
		wait = defaultLockWait
	}
	return &LocalLocker{locks: make(map[string]*localLock), wait: wait}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &localLock{ch: make(chan struct{}, 1)}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	select {
	case entry.ch <- struct{}{}:
	case <-waitCtx.Done():
		l.drop(key, entry)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, interfaces.ErrLockTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.ch
			l.drop(key, entry)
		})
	}, nil
}

func (l *LocalLocker) drop(key string, entry *localLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, key)
	}
}
