package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/shenikar/geofence_alert_service/internal/models"
)

// publisher - часть *nats.Conn, которая нужна нотификатору
type publisher interface {
	Publish(subject string, data []byte) error
}

// NATSNotifier публикует тревоги в subject <prefix>.<type>, например alerts.geofence_entry
type NATSNotifier struct {
	conn   publisher
	prefix string
}

func NewNATSNotifier(conn *nats.Conn, prefix string) *NATSNotifier {
	return &NATSNotifier{conn: conn, prefix: prefix}
}

func (n *NATSNotifier) Name() string {
	return "nats"
}

// Subject возвращает subject для типа тревоги
func (n *NATSNotifier) Subject(t models.AlertType) string {
	return n.prefix + "." + string(t)
}

func (n *NATSNotifier) Notify(ctx context.Context, event models.AlertEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert for NATS: %w", err)
	}
	if err := n.conn.Publish(n.Subject(event.Type), data); err != nil {
		return fmt.Errorf("failed to publish alert to NATS: %w", err)
	}
	return nil
}
