package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/service"
)

const alertColumns = `
	alert_id,
	entity_id,
	type,
	severity,
	message_en,
	message_hi,
	longitude,
	latitude,
	region_id,
	metadata,
	is_acknowledged,
	acknowledged_by,
	acknowledged_at,
	response,
	created_at,
	resolved_at`

// execer - общее подмножество пула и транзакции
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

// Append добавляет тревогу в журнал
func (r *AlertRepository) Append(ctx context.Context, alert *models.Alert) error {
	if err := insertAlert(ctx, r.db, alert); err != nil {
		return mapWriteError(err, "failed to append alert")
	}
	return nil
}

// AppendTransition записывает тревогу входа/выхода и новое состояние пары в одной транзакции.
// Состояние не откатывается назад: более старый замер не перезапишет более новый.
func (r *AlertRepository) AppendTransition(ctx context.Context, alert *models.Alert, state *models.ContainmentState) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := insertAlert(ctx, tx, alert); err != nil {
			return err
		}

		query := `
			INSERT INTO containment_states (entity_id, region_id, is_inside, last_alert_id, last_sample_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (entity_id, region_id) DO UPDATE SET
				is_inside = EXCLUDED.is_inside,
				last_alert_id = EXCLUDED.last_alert_id,
				last_sample_at = EXCLUDED.last_sample_at,
				updated_at = NOW()
			WHERE containment_states.last_sample_at <= EXCLUDED.last_sample_at;
		`
		cmdTag, err := tx.Exec(ctx, query,
			state.EntityID,
			state.RegionID,
			state.IsInside,
			state.LastAlertID,
			state.LastSampleAt,
		)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("containment state for %s/%s is newer than sample", state.EntityID, state.RegionID)
		}
		return nil
	})
	if err != nil {
		return mapWriteError(err, "failed to append transition alert")
	}
	return nil
}

// GetByAlertID возвращает тревогу по ее идентификатору
func (r *AlertRepository) GetByAlertID(ctx context.Context, alertID string) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE alert_id = $1;`

	alert, err := scanAlert(r.db.QueryRow(ctx, query, alertID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert %s: %w", alertID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return alert, nil
}

// Acknowledge подтверждает тревогу условным UPDATE, поэтому из двух параллельных вызовов успешен один
func (r *AlertRepository) Acknowledge(ctx context.Context, alertID string, ack models.Acknowledgment) (*models.Alert, error) {
	query := `
		UPDATE alerts SET
			is_acknowledged = TRUE,
			acknowledged_by = $2,
			acknowledged_at = $3,
			response = $4
		WHERE alert_id = $1 AND NOT is_acknowledged
		RETURNING ` + alertColumns + `;`

	alert, err := scanAlert(r.db.QueryRow(ctx, query, alertID, ack.AcknowledgedBy, ack.AcknowledgedAt, ack.Response))
	if err == nil {
		return alert, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to acknowledge alert: %w", err)
	}

	if err := r.checkExists(ctx, alertID); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("alert %s: %w", alertID, service.ErrAlreadyAcknowledged)
}

// Resolve проставляет время закрытия тревоги
func (r *AlertRepository) Resolve(ctx context.Context, alertID string, at time.Time) (*models.Alert, error) {
	query := `
		UPDATE alerts SET resolved_at = $2
		WHERE alert_id = $1 AND resolved_at IS NULL
		RETURNING ` + alertColumns + `;`

	alert, err := scanAlert(r.db.QueryRow(ctx, query, alertID, at))
	if err == nil {
		return alert, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to resolve alert: %w", err)
	}

	if err := r.checkExists(ctx, alertID); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("alert %s: %w", alertID, service.ErrAlreadyResolved)
}

func (r *AlertRepository) checkExists(ctx context.Context, alertID string) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM alerts WHERE alert_id = $1);`, alertID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check alert existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("alert %s: %w", alertID, service.ErrNotFound)
	}
	return nil
}

// AcknowledgeAllForEntity подтверждает все неподтвержденные тревоги сущности
func (r *AlertRepository) AcknowledgeAllForEntity(ctx context.Context, entityID string, ack models.Acknowledgment) (int64, error) {
	query := `
		UPDATE alerts SET
			is_acknowledged = TRUE,
			acknowledged_by = $2,
			acknowledged_at = $3,
			response = $4
		WHERE entity_id = $1 AND NOT is_acknowledged;
	`
	cmdTag, err := r.db.Exec(ctx, query, entityID, ack.AcknowledgedBy, ack.AcknowledgedAt, ack.Response)
	if err != nil {
		return 0, fmt.Errorf("failed to acknowledge entity alerts: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteAcknowledgedForEntity удаляет подтвержденные тревоги сущности
func (r *AlertRepository) DeleteAcknowledgedForEntity(ctx context.Context, entityID string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM alerts WHERE entity_id = $1 AND is_acknowledged;`, entityID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete acknowledged alerts: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Query возвращает тревоги по фильтру, новые первыми, и общее число совпадений
func (r *AlertRepository) Query(ctx context.Context, filter models.AlertFilter, limit, offset int) ([]*models.Alert, int64, error) {
	where, args := buildAlertFilter(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM alerts`+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	if total == 0 {
		return make([]*models.Alert, 0), 0, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM alerts%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d;`,
		alertColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0, limit)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error alert iteration: %w", err)
	}
	return alerts, total, nil
}

// LatestTransitionFor возвращает последнюю тревогу входа/выхода пары или nil
func (r *AlertRepository) LatestTransitionFor(ctx context.Context, entityID string, regionID uuid.UUID) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + `
		FROM alerts
		WHERE entity_id = $1 AND region_id = $2 AND type IN ('geofence_entry', 'geofence_exit')
		ORDER BY created_at DESC, id DESC
		LIMIT 1;`

	alert, err := scanAlert(r.db.QueryRow(ctx, query, entityID, regionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest transition: %w", err)
	}
	return alert, nil
}

// GetContainmentState возвращает сохраненное состояние пары или nil
func (r *AlertRepository) GetContainmentState(ctx context.Context, entityID string, regionID uuid.UUID) (*models.ContainmentState, error) {
	query := `
		SELECT entity_id, region_id, is_inside, last_alert_id, last_sample_at, updated_at
		FROM containment_states
		WHERE entity_id = $1 AND region_id = $2;
	`
	state := &models.ContainmentState{}
	err := r.db.QueryRow(ctx, query, entityID, regionID).Scan(
		&state.EntityID,
		&state.RegionID,
		&state.IsInside,
		&state.LastAlertID,
		&state.LastSampleAt,
		&state.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get containment state: %w", err)
	}
	return state, nil
}

// CountUnacknowledgedBySeverity считает неподтвержденные тревоги по уровням важности
func (r *AlertRepository) CountUnacknowledgedBySeverity(ctx context.Context) (map[models.Severity]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT severity, COUNT(*) FROM alerts WHERE NOT is_acknowledged GROUP BY severity;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count unacknowledged alerts: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Severity]int64)
	for rows.Next() {
		var (
			severity models.Severity
			count    int64
		)
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, fmt.Errorf("failed to scan severity count: %w", err)
		}
		counts[severity] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error severity iteration: %w", err)
	}
	return counts, nil
}

// buildAlertFilter собирает WHERE и аргументы; пустые поля фильтра пропускаются
func buildAlertFilter(filter models.AlertFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.EntityID != "" {
		add("entity_id = $%d", filter.EntityID)
	}
	if filter.Severity != "" {
		add("severity = $%d", filter.Severity)
	}
	if filter.Type != "" {
		add("type = $%d", filter.Type)
	}
	if filter.RegionID != nil {
		add("region_id = $%d", *filter.RegionID)
	}
	if filter.Acknowledged != nil {
		add("is_acknowledged = $%d", *filter.Acknowledged)
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= $%d", *filter.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func insertAlert(ctx context.Context, db execer, alert *models.Alert) error {
	var lon, lat *float64
	if alert.Location != nil {
		lon, lat = &alert.Location.Longitude, &alert.Location.Latitude
	}

	var metadata []byte
	if len(alert.Metadata) > 0 {
		raw, err := json.Marshal(alert.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode alert metadata: %w", err)
		}
		metadata = raw
	}

	query := `
		INSERT INTO alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := db.Exec(ctx, query,
		alert.AlertID,
		alert.EntityID,
		alert.Type,
		alert.Severity,
		alert.Message.En,
		alert.Message.Hi,
		lon,
		lat,
		alert.RegionID,
		metadata,
		alert.Acknowledgment.IsAcknowledged,
		alert.Acknowledgment.AcknowledgedBy,
		alert.Acknowledgment.AcknowledgedAt,
		alert.Acknowledgment.Response,
		alert.CreatedAt,
		alert.ResolvedAt,
	)
	return err
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	var (
		lon, lat *float64
		metadata []byte
	)
	err := row.Scan(
		&alert.AlertID,
		&alert.EntityID,
		&alert.Type,
		&alert.Severity,
		&alert.Message.En,
		&alert.Message.Hi,
		&lon,
		&lat,
		&alert.RegionID,
		&metadata,
		&alert.Acknowledgment.IsAcknowledged,
		&alert.Acknowledgment.AcknowledgedBy,
		&alert.Acknowledgment.AcknowledgedAt,
		&alert.Acknowledgment.Response,
		&alert.CreatedAt,
		&alert.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if lon != nil && lat != nil {
		alert.Location = &models.Coordinate{Longitude: *lon, Latitude: *lat}
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &alert.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode alert metadata: %w", err)
		}
	}
	return alert, nil
}

// mapWriteError переводит нарушение уникальности alert_id в ErrDuplicateKey,
// а ссылку на несуществующую геозону в ErrNotFound
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w: %s", msg, service.ErrDuplicateKey, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", msg, service.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
