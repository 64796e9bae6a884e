package service

import (
	"context"
	"time"

	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/sirupsen/logrus"
)

// Fanout рассылает событие всем получателям. Ошибки получателей логируются и не возвращаются.
type Fanout struct {
	notifiers []Notifier
	logger    *logrus.Logger
}

func NewFanout(logger *logrus.Logger, notifiers ...Notifier) *Fanout {
	return &Fanout{
		notifiers: notifiers,
		logger:    logger,
	}
}

// Add добавляет получателя; вызывается только при сборке приложения
func (f *Fanout) Add(n Notifier) {
	f.notifiers = append(f.notifiers, n)
}

func (f *Fanout) Notify(ctx context.Context, event models.AlertEvent) error {
	for _, n := range f.notifiers {
		if err := n.Notify(ctx, event); err != nil {
			f.logger.WithError(err).WithFields(logrus.Fields{
				"alert_id":  event.AlertID,
				"entity_id": event.EntityID,
				"notifier":  notifierName(n),
			}).Warn("Failed to deliver alert notification")
		}
	}
	return nil
}

// dispatchAsync отправляет события в фоне с собственным таймаутом,
// чтобы отмена HTTP-запроса не обрывала доставку
func dispatchAsync(notifier Notifier, timeout time.Duration, log *logrus.Entry, events []models.AlertEvent) {
	if notifier == nil || len(events) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		for _, event := range events {
			if err := notifier.Notify(ctx, event); err != nil {
				log.WithError(err).WithField("alert_id", event.AlertID).Warn("Failed to dispatch alert notification")
			}
		}
	}()
}

func notifierName(n Notifier) string {
	if named, ok := n.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "unknown"
}
