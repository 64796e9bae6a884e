package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geofence_alert_service/internal/service"
	"github.com/sirupsen/logrus"
)

const entityLockPrefix = "lock:entity:"

// снимает блокировку, только если она все еще принадлежит владельцу токена
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// EntityLock - распределенная блокировка сущности на SET NX PX.
// TTL ограничивает время удержания, если процесс упал, не сняв блокировку.
type EntityLock struct {
	redisClient *redis.Client
	ttl         time.Duration
	retry       time.Duration
	logger      *logrus.Logger
}

func NewEntityLock(redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) service.EntityLocker {
	return &EntityLock{
		redisClient: redisClient,
		ttl:         ttl,
		retry:       25 * time.Millisecond,
		logger:      logger,
	}
}

// Lock ждет освобождения блокировки не дольше TTL или до отмены ctx
func (l *EntityLock) Lock(ctx context.Context, entityID string) (func(), error) {
	key := entityLockPrefix + entityID
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	for {
		ok, err := l.redisClient.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock for entity %s: %w", entityID, err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("timed out waiting for lock on entity %s: %w", entityID, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *EntityLock) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := releaseLockScript.Run(ctx, l.redisClient, []string{key}, token).Err(); err != nil {
		l.logger.WithError(err).WithField("key", key).Warn("Failed to release entity lock")
	}
}
