package geofence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrMissingEntity = errors.New("entity id is required")

// StateLookup возвращает последнее известное состояние пары (сущность, геозона).
// nil без ошибки означает, что переходов для пары еще не было.
type StateLookup func(ctx context.Context, entityID string, regionID uuid.UUID) (*models.ContainmentState, error)

// Recorder сохраняет тревогу о переходе вместе с новым состоянием
type Recorder interface {
	AppendTransition(ctx context.Context, alert *models.Alert, state *models.ContainmentState) error
}

// RegionFailure - ошибка проверки одной геозоны, остальные геозоны при этом проверяются
type RegionFailure struct {
	RegionID uuid.UUID
	Err      error
}

// Outcome - результат проверки одного замера.
// Events - исходящие уведомления, доставку которых выбирает вызывающий код.
type Outcome struct {
	Alerts   []*models.Alert
	Events   []models.AlertEvent
	Failures []RegionFailure
	Skipped  int
}

type Engine struct {
	logger        *logrus.Logger
	ids           *models.AlertIDGenerator
	concurrency   int
	regionTimeout time.Duration
}

func NewEngine(logger *logrus.Logger, ids *models.AlertIDGenerator, concurrency int, regionTimeout time.Duration) *Engine {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Engine{
		logger:        logger,
		ids:           ids,
		concurrency:   concurrency,
		regionTimeout: regionTimeout,
	}
}

// Transition сравнивает прошлое и текущее положение относительно геозоны
func Transition(wasInside, isInside bool) (models.AlertType, bool) {
	switch {
	case isInside && !wasInside:
		return models.AlertGeofenceEntry, true
	case !isInside && wasInside:
		return models.AlertGeofenceExit, true
	}
	return "", false
}

// TransitionSeverity: вход в опасную зону - critical, в остальные - warning, выход - info
func TransitionSeverity(kind models.AlertType, region *models.Region) models.Severity {
	if kind == models.AlertGeofenceExit {
		return models.SeverityInfo
	}
	if region.IsDangerous() {
		return models.SeverityCritical
	}
	return models.SeverityWarning
}

// Evaluate проверяет замер против всех активных геозон и записывает тревоги о переходах.
// Ошибка одной геозоны не прерывает проверку остальных.
func (e *Engine) Evaluate(ctx context.Context, sample models.LocationSample, regions []*models.Region, lookup StateLookup, recorder Recorder) (*Outcome, error) {
	if sample.EntityID == "" {
		return nil, ErrMissingEntity
	}
	if err := ValidateCoordinate(sample.Longitude, sample.Latitude); err != nil {
		return nil, err
	}

	log := e.logger.WithFields(logrus.Fields{
		"component": "geofence_engine",
		"entity_id": sample.EntityID,
	})

	point := sample.Coordinate()
	out := &Outcome{}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for _, region := range regions {
		if region == nil || !region.IsActive {
			continue
		}
		g.Go(func() error {
			alert, stale, err := e.evaluateRegion(ctx, sample, point, region, lookup, recorder)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				log.WithError(err).WithField("region_id", region.ID).Warn("Geofence check failed for region")
				out.Failures = append(out.Failures, RegionFailure{RegionID: region.ID, Err: err})
			case stale:
				out.Skipped++
			case alert != nil:
				out.Alerts = append(out.Alerts, alert)
				out.Events = append(out.Events, alert.Event())
			}
			return nil
		})
	}
	_ = g.Wait()

	log.WithFields(logrus.Fields{
		"transitions": len(out.Alerts),
		"failures":    len(out.Failures),
		"skipped":     out.Skipped,
	}).Debug("Geofence evaluation completed")
	return out, nil
}

func (e *Engine) evaluateRegion(ctx context.Context, sample models.LocationSample, point models.Coordinate, region *models.Region, lookup StateLookup, recorder Recorder) (*models.Alert, bool, error) {
	isInside, err := Contains(region, point)
	if err != nil {
		return nil, false, err
	}

	if e.regionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.regionTimeout)
		defer cancel()
	}

	state, err := lookup(ctx, sample.EntityID, region.ID)
	if err != nil {
		return nil, false, fmt.Errorf("lookup containment state: %w", err)
	}

	wasInside := false
	if state != nil {
		// замер старее последнего перехода пришел не по порядку
		if !sample.Timestamp.IsZero() && state.LastSampleAt.After(sample.Timestamp) {
			return nil, true, nil
		}
		wasInside = state.IsInside
	}

	kind, changed := Transition(wasInside, isInside)
	if !changed {
		return nil, false, nil
	}

	alert := e.newTransitionAlert(sample, point, region, kind)
	next := &models.ContainmentState{
		EntityID:     sample.EntityID,
		RegionID:     region.ID,
		IsInside:     isInside,
		LastAlertID:  alert.AlertID,
		LastSampleAt: sample.Timestamp,
	}
	if err := recorder.AppendTransition(ctx, alert, next); err != nil {
		return nil, false, fmt.Errorf("append %s alert: %w", kind, err)
	}
	return alert, false, nil
}

func (e *Engine) newTransitionAlert(sample models.LocationSample, point models.Coordinate, region *models.Region, kind models.AlertType) *models.Alert {
	id, at := e.ids.Next(kind, sample.EntityID)
	regionID := region.ID
	location := point

	var message models.LocalizedText
	if kind == models.AlertGeofenceEntry {
		message = models.LocalizedText{
			En: fmt.Sprintf("Entered %s zone %q (risk level %d)", region.Category, region.Name, region.RiskLevel),
			Hi: fmt.Sprintf("आपने %q क्षेत्र में प्रवेश किया है (जोखिम स्तर %d)", region.Name, region.RiskLevel),
		}
	} else {
		message = models.LocalizedText{
			En: fmt.Sprintf("Left zone %q", region.Name),
			Hi: fmt.Sprintf("आप %q क्षेत्र से बाहर निकल गए हैं", region.Name),
		}
	}

	return &models.Alert{
		AlertID:  id,
		EntityID: sample.EntityID,
		Type:     kind,
		Severity: TransitionSeverity(kind, region),
		Message:  message,
		Location: &location,
		RegionID: &regionID,
		Metadata: map[string]any{
			"region_name": region.Name,
			"category":    string(region.Category),
			"risk_level":  float64(region.RiskLevel),
		},
		CreatedAt: at,
	}
}
