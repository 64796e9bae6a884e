package broadcast

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	hub := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r, r.URL.Query().Get("entity_id"))
	}))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(conn *websocket.Conn, wait time.Duration) (*Message, error) {
	_ = conn.SetReadDeadline(time.Now().Add(wait))
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func TestHub_FiltersByEntity(t *testing.T) {
	hub, srv := startHub(t)

	all := dial(t, srv, "")
	onlyT1 := dial(t, srv, "?entity_id=T1")

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	ctx := context.Background()
	require.NoError(t, hub.Notify(ctx, models.AlertEvent{AlertID: "emergency_1_T2", EntityID: "T2"}))
	require.NoError(t, hub.Notify(ctx, models.AlertEvent{AlertID: "emergency_2_T1", EntityID: "T1"}))

	msg, err := readMessage(all, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "alert", msg.Type)
	assert.Equal(t, "emergency_1_T2", msg.Data.AlertID)

	msg, err = readMessage(all, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "emergency_2_T1", msg.Data.AlertID)

	// фильтрованный клиент видит только тревоги своей сущности
	msg, err = readMessage(onlyT1, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "emergency_2_T1", msg.Data.AlertID)
}

func TestHub_ClientDisconnect(t *testing.T) {
	hub, srv := startHub(t)

	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_NotifyWhenQueueFull(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	hub := NewHub(logger) // Run не запущен, очередь никто не читает

	var err error
	for i := 0; i < cap(hub.broadcast)+1; i++ {
		err = hub.Notify(context.Background(), models.AlertEvent{})
	}
	assert.ErrorIs(t, err, ErrHubBusy)
}
