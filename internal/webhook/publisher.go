package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geofence_alert_service/internal/models"
)

const (
	webhookQueueKey = "webhook_events"

	eventAlertCreated = "alert.created"
)

// WebhookEvent - тело вебхука о новой тревоге
type WebhookEvent struct {
	Event       string            `json:"event"`
	Alert       models.AlertEvent `json:"alert"`
	PublishedAt time.Time         `json:"published_at"`
}

// RedisWebhookPublisher ставит события в очередь Redis, доставку выполняет WebhookWorker
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

func (p *RedisWebhookPublisher) Name() string {
	return "webhook"
}

// Notify публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Notify(ctx context.Context, alert models.AlertEvent) error {
	payload, err := json.Marshal(WebhookEvent{
		Event:       eventAlertCreated,
		Alert:       alert,
		PublishedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
