package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/config"
	"github.com/shenikar/geofence_alert_service/internal/geofence"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type trackingMocks struct {
	regions  *mocks.MockRegionService
	alerts   *mocks.MockAlertRepository
	entities *mocks.MockEntityRepository
	locker   *mocks.MockEntityLocker
	notifier *mocks.MockNotifier
}

func newTestTrackingService(t *testing.T) (*trackingService, trackingMocks) {
	ctrl := gomock.NewController(t)
	m := trackingMocks{
		regions:  mocks.NewMockRegionService(ctrl),
		alerts:   mocks.NewMockAlertRepository(ctrl),
		entities: mocks.NewMockEntityRepository(ctrl),
		locker:   mocks.NewMockEntityLocker(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		NotifyTimeout:          time.Second,
		MaxSampleSkew:          2 * time.Minute,
		StatsTimeWindowMinutes: 60,
	}
	engine := geofence.NewEngine(logger, models.NewAlertIDGenerator(nil), 4, time.Second)

	service := NewTrackingService(engine, m.regions, m.alerts, m.entities, m.locker, m.notifier, logger, cfg).(*trackingService)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func dangerZone() *models.Region {
	return &models.Region{
		ID:           uuid.New(),
		Name:         "Flood bank",
		Shape:        models.ShapeCircle,
		Center:       &models.Coordinate{Longitude: 77.2090, Latitude: 28.6139},
		RadiusMeters: 1000,
		Category:     models.CategoryDanger,
		RiskLevel:    9,
		IsActive:     true,
	}
}

func TestProcessSample_EntryCreatesAlertAndNotifies(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	region := dangerZone()
	sample := models.LocationSample{EntityID: "T1", Longitude: 77.2090, Latitude: 28.6139, Timestamp: fixedNow}

	released := false
	delivered := make(chan models.AlertEvent, 1)

	m.locker.EXPECT().Lock(ctx, "T1").Return(func() { released = true }, nil).Times(1)
	m.entities.EXPECT().SaveLocation(ctx, gomock.Any()).Return(nil).Times(1)
	m.regions.EXPECT().ActiveRegions(ctx).Return([]*models.Region{region}, nil).Times(1)
	m.alerts.EXPECT().GetContainmentState(gomock.Any(), "T1", region.ID).Return(nil, nil).Times(1)
	m.alerts.EXPECT().LatestTransitionFor(gomock.Any(), "T1", region.ID).Return(nil, nil).Times(1)
	m.alerts.EXPECT().
		AppendTransition(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert, s *models.ContainmentState) error {
			assert.Equal(t, models.AlertGeofenceEntry, a.Type)
			assert.True(t, s.IsInside)
			assert.Equal(t, a.AlertID, s.LastAlertID)
			return nil
		}).
		Times(1)
	m.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.AlertEvent) error {
			delivered <- e
			return nil
		}).
		Times(1)

	outcome, err := service.ProcessSample(ctx, sample)

	require.NoError(t, err)
	require.Len(t, outcome.Alerts, 1)
	assert.Equal(t, models.SeverityCritical, outcome.Alerts[0].Severity)
	assert.True(t, released)

	select {
	case e := <-delivered:
		assert.Equal(t, outcome.Alerts[0].AlertID, e.AlertID)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not dispatched")
	}
}

func TestProcessSample_FallsBackToLatestTransition(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	region := dangerZone()
	// точка внутри, последняя тревога - вход, перехода нет
	sample := models.LocationSample{EntityID: "T1", Longitude: 77.2090, Latitude: 28.6139, Timestamp: fixedNow}

	m.locker.EXPECT().Lock(ctx, "T1").Return(func() {}, nil).Times(1)
	m.entities.EXPECT().SaveLocation(ctx, gomock.Any()).Return(nil).Times(1)
	m.regions.EXPECT().ActiveRegions(ctx).Return([]*models.Region{region}, nil).Times(1)
	m.alerts.EXPECT().GetContainmentState(gomock.Any(), "T1", region.ID).Return(nil, nil).Times(1)
	m.alerts.EXPECT().
		LatestTransitionFor(gomock.Any(), "T1", region.ID).
		Return(&models.Alert{AlertID: "geofence_entry_1_T1", Type: models.AlertGeofenceEntry, CreatedAt: fixedNow.Add(-time.Hour)}, nil).
		Times(1)

	outcome, err := service.ProcessSample(ctx, sample)

	require.NoError(t, err)
	assert.Empty(t, outcome.Alerts)
	assert.Empty(t, outcome.Failures)
}

func TestProcessSample_ExitFromStoredState(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	region := dangerZone()
	sample := models.LocationSample{EntityID: "T1", Longitude: 77.3000, Latitude: 28.7000, Timestamp: fixedNow}

	m.locker.EXPECT().Lock(ctx, "T1").Return(func() {}, nil).Times(1)
	m.entities.EXPECT().SaveLocation(ctx, gomock.Any()).Return(nil).Times(1)
	m.regions.EXPECT().ActiveRegions(ctx).Return([]*models.Region{region}, nil).Times(1)
	m.alerts.EXPECT().
		GetContainmentState(gomock.Any(), "T1", region.ID).
		Return(&models.ContainmentState{EntityID: "T1", RegionID: region.ID, IsInside: true, LastSampleAt: fixedNow.Add(-time.Minute)}, nil).
		Times(1)
	m.alerts.EXPECT().AppendTransition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	done := make(chan struct{})
	m.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.AlertEvent) error {
			close(done)
			return nil
		}).
		Times(1)

	outcome, err := service.ProcessSample(ctx, sample)

	require.NoError(t, err)
	require.Len(t, outcome.Alerts, 1)
	assert.Equal(t, models.AlertGeofenceExit, outcome.Alerts[0].Type)
	assert.Equal(t, models.SeverityInfo, outcome.Alerts[0].Severity)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not dispatched")
	}
}

func TestProcessSample_InvalidSample(t *testing.T) {
	service, _ := newTestTrackingService(t)

	tests := []struct {
		name   string
		sample models.LocationSample
	}{
		{"missing entity", models.LocationSample{Longitude: 10, Latitude: 10}},
		{"latitude out of range", models.LocationSample{EntityID: "T1", Longitude: 10, Latitude: 95}},
		{"negative accuracy", models.LocationSample{EntityID: "T1", Longitude: 10, Latitude: 10, Accuracy: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ProcessSample(context.Background(), tt.sample)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestProcessSample_FutureTimestampRejected(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()

	// до захвата блокировки и записи в хранилище дело не доходит
	m.locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Times(0)
	m.entities.EXPECT().SaveLocation(gomock.Any(), gomock.Any()).Times(0)

	sample := models.LocationSample{EntityID: "T1", Longitude: 77.2090, Latitude: 28.6139, Timestamp: fixedNow.AddDate(1, 0, 0)}
	_, err := service.ProcessSample(ctx, sample)

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestProcessSample_SmallClockSkewAccepted(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	ts := fixedNow.Add(time.Minute)

	m.locker.EXPECT().Lock(ctx, "T1").Return(func() {}, nil).Times(1)
	m.entities.EXPECT().
		SaveLocation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.LocationSample) error {
			assert.Equal(t, ts, s.Timestamp)
			return nil
		}).
		Times(1)
	m.regions.EXPECT().ActiveRegions(ctx).Return(nil, nil).Times(1)

	_, err := service.ProcessSample(ctx, models.LocationSample{EntityID: "T1", Longitude: 1, Latitude: 1, Timestamp: ts})

	require.NoError(t, err)
}

func TestProcessSample_LockFailure(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	lockErr := errors.New("lock timeout")

	m.locker.EXPECT().Lock(ctx, "T1").Return(nil, lockErr).Times(1)

	_, err := service.ProcessSample(ctx, models.LocationSample{EntityID: "T1", Longitude: 1, Latitude: 1})

	assert.ErrorIs(t, err, lockErr)
}

func TestProcessSample_ZeroTimestampUsesNow(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()

	m.locker.EXPECT().Lock(ctx, "T1").Return(func() {}, nil).Times(1)
	m.entities.EXPECT().
		SaveLocation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.LocationSample) error {
			assert.Equal(t, fixedNow, s.Timestamp)
			return nil
		}).
		Times(1)
	m.regions.EXPECT().ActiveRegions(ctx).Return(nil, nil).Times(1)

	outcome, err := service.ProcessSample(ctx, models.LocationSample{EntityID: "T1", Longitude: 1, Latitude: 1})

	require.NoError(t, err)
	assert.Empty(t, outcome.Alerts)
}

func TestLastLocation_NotFound(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()

	m.entities.EXPECT().GetLastLocation(ctx, "ghost").Return(nil, ErrNotFound).Times(1)

	_, err := service.LastLocation(ctx, "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetStats(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()

	m.entities.EXPECT().CountActiveSince(ctx, fixedNow.Add(-time.Hour)).Return(7, nil).Times(1)
	m.alerts.EXPECT().
		CountUnacknowledgedBySeverity(ctx).
		Return(map[models.Severity]int64{models.SeverityCritical: 2}, nil).
		Times(1)

	stats, err := service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 7, stats.ActiveEntities)
	assert.Equal(t, 60, stats.WindowMinutes)
	assert.Equal(t, int64(2), stats.UnacknowledgedAlerts[models.SeverityCritical])
	assert.Equal(t, int64(0), stats.UnacknowledgedAlerts[models.SeverityInfo])
	assert.Len(t, stats.UnacknowledgedAlerts, 4)
}
