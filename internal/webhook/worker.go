package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geofence_alert_service/internal/config"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Webhook-Signature"

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	requeue     func(ctx context.Context, payload []byte) error
	done        chan struct{}
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	w := &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		done: make(chan struct{}),
	}
	// RPUSH кладет событие в правую часть списка, откуда его первым заберет следующий BRPOP
	w.requeue = func(ctx context.Context, payload []byte) error {
		return w.redisClient.RPush(ctx, webhookQueueKey, payload).Err()
	}
	return w
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		defer close(w.done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker.")
				return
			}

			// BRPOP - блокирующее извлечение из правой части списка (очереди)
			result, err := w.redisClient.BRPop(ctx, 5*time.Second, webhookQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
				w.sleep(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.process(ctx, []byte(result[1]))
		}
	}()
}

// Done закрывается, когда воркер остановлен
func (w *WebhookWorker) Done() <-chan struct{} {
	return w.done
}

func (w *WebhookWorker) process(ctx context.Context, payload []byte) {
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
		return
	}

	log := w.logger.WithFields(logrus.Fields{
		"alert_id":  event.Alert.AlertID,
		"entity_id": event.Alert.EntityID,
		"severity":  event.Alert.Severity,
	})

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	if err := w.deliver(ctx, payload, log); err != nil {
		if ctx.Err() != nil {
			w.returnToQueue(ctx, payload, log)
			return
		}
		log.WithError(err).Error("Failed to deliver webhook")
		return
	}
	log.Info("Webhook delivered successfully.")
}

// returnToQueue возвращает в очередь событие, доставку которого прервала остановка воркера
func (w *WebhookWorker) returnToQueue(ctx context.Context, payload []byte, log *logrus.Entry) {
	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.cfg.WebhookTimeout)
	defer cancel()

	if err := w.requeue(pushCtx, payload); err != nil {
		log.WithError(err).Error("Failed to return webhook event to queue, event is lost")
		return
	}
	log.Info("Webhook delivery interrupted by shutdown, event returned to queue")
}

// deliver отправляет payload с экспоненциальной задержкой между попытками
func (w *WebhookWorker) deliver(ctx context.Context, payload []byte, log *logrus.Entry) error {
	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			log.WithError(lastErr).Warnf("Retrying webhook in %v. Retries left: %d", delay, maxRetries-i)
			if !w.sleep(ctx, delay) {
				return ctx.Err()
			}
			delay *= 2 // Экспоненциальная задержка
		}

		lastErr = w.send(ctx, payload)
		if lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", maxRetries, lastErr)
}

func (w *WebhookWorker) send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

func (w *WebhookWorker) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
