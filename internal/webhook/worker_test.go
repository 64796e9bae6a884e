package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/geofence_alert_service/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, url string) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(nil, logger, cfg)
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := []byte(`{"event":"alert.created"}`)
	var gotSignature string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get(signatureHeader)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	err := worker.deliver(context.Background(), payload, logrus.NewEntry(worker.logger))

	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliver_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	err := worker.deliver(context.Background(), []byte(`{}`), logrus.NewEntry(worker.logger))

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	err := worker.deliver(context.Background(), []byte(`{}`), logrus.NewEntry(worker.logger))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcess_ShutdownReturnsEventToQueue(t *testing.T) {
	payload := []byte(`{"event":"alert.created","alert":{"alert_id":"emergency_1_T1","entity_id":"T1"}}`)
	firstCall := make(chan struct{})
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(firstCall)
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	worker.cfg.WebhookBaseDelay = time.Minute

	var requeued []byte
	worker.requeue = func(ctx context.Context, p []byte) error {
		assert.NoError(t, ctx.Err())
		requeued = p
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-firstCall
		cancel()
	}()

	done := make(chan struct{})
	go func() {
		worker.process(ctx, payload)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("process did not stop after cancellation")
	}
	assert.Equal(t, payload, requeued)
	assert.Equal(t, int32(1), calls.Load())
}

func TestProcess_FailedDeliveryIsNotRequeued(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	var requeued bool
	worker.requeue = func(context.Context, []byte) error {
		requeued = true
		return nil
	}

	worker.process(context.Background(), []byte(`{"event":"alert.created"}`))

	assert.False(t, requeued)
}

func TestGenerateHMACSHA256(t *testing.T) {
	// echo -n 'hello' | openssl dgst -sha256 -hmac 'key'
	assert.Equal(t,
		"9307b3b915efb5171ff14d8cb55fbcc798c6c0ef1456d66ded1a6aa723a58b7b",
		generateHMACSHA256([]byte("hello"), "key"))
}
