package storage

import (
	"context"
	"encoding/json"
	"time"

	"foodigo/internal/domain"
)

const scheduleColumns = `id, user_id, items, address, amount, schedule_type, delivery_timestamp, recurrence_rule,
	update_cutoff_hours, is_active, stripe_payment_method_id, stripe_customer_id, created_at, updated_at`

func scanSchedule(row scanner) (domain.Schedule, error) {
	var (
		s              domain.Schedule
		items, address []byte
	)
	if err := row.Scan(&s.ID, &s.UserID, &items, &address, &s.Amount, &s.ScheduleType, &s.DeliveryTimestamp,
		&s.RecurrenceRule, &s.UpdateCutoffHours, &s.IsActive, &s.StripePaymentMethodID, &s.StripeCustomerID,
		&s.CreatedAt, &s.UpdatedAt); err != nil {
		return s, err
	}
	if err := decodeJSON(items, &s.Items); err != nil {
		return s, err
	}
	return s, decodeJSON(address, &s.Address)
}

func (r *PostgresRepository) CreateSchedule(ctx context.Context, s *domain.Schedule) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return err
	}
	address, err := json.Marshal(s.Address)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO schedules (`+scheduleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		s.ID, s.UserID, string(items), string(address), s.Amount, s.ScheduleType, s.DeliveryTimestamp, s.RecurrenceRule,
		s.UpdateCutoffHours, s.IsActive, s.StripePaymentMethodID, s.StripeCustomerID, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *PostgresRepository) GetSchedule(ctx context.Context, id string) (*domain.Schedule, error) {
	s, err := scanSchedule(r.DB.QueryRowContext(ctx, "SELECT "+scheduleColumns+" FROM schedules WHERE id = $1", id))
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) ListUserSchedules(ctx context.Context, userID string) ([]domain.Schedule, error) {
	return r.querySchedules(ctx,
		"SELECT "+scheduleColumns+" FROM schedules WHERE user_id = $1 ORDER BY delivery_timestamp", userID)
}

func (r *PostgresRepository) ListSchedules(ctx context.Context) ([]domain.Schedule, error) {
	return r.querySchedules(ctx, "SELECT "+scheduleColumns+" FROM schedules ORDER BY delivery_timestamp")
}

// UpdateSchedule rewrites the editable fields: items, amount, time and rule.
func (r *PostgresRepository) UpdateSchedule(ctx context.Context, s *domain.Schedule) (int64, error) {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return 0, err
	}
	return rowsAffected(r.DB.ExecContext(ctx, `
		UPDATE schedules
		SET items = $1, amount = $2, delivery_timestamp = $3, recurrence_rule = $4, schedule_type = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8`,
		string(items), s.Amount, s.DeliveryTimestamp, s.RecurrenceRule, s.ScheduleType, s.UpdatedAt, s.ID, s.UserID))
}

func (r *PostgresRepository) SetScheduleActive(ctx context.Context, id, userID string, active bool) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx, `
		UPDATE schedules SET is_active = $1, updated_at = NOW()
		WHERE id = $2 AND ($3::text = '' OR user_id = $3)`,
		active, id, userID))
}

func (r *PostgresRepository) DeleteSchedule(ctx context.Context, id, userID string) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx,
		"DELETE FROM schedules WHERE id = $1 AND ($2::text = '' OR user_id = $2)", id, userID))
}

func (r *PostgresRepository) ListDueSchedules(ctx context.Context, now time.Time) ([]domain.Schedule, error) {
	return r.querySchedules(ctx, "SELECT "+scheduleColumns+` FROM schedules
		WHERE is_active = TRUE AND delivery_timestamp <= $1
		ORDER BY delivery_timestamp`, now)
}

func (r *PostgresRepository) AdvanceSchedule(ctx context.Context, id string, next time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE schedules SET delivery_timestamp = $1, updated_at = NOW() WHERE id = $2", next, id)
	return err
}

func (r *PostgresRepository) ListScheduleItems(ctx context.Context) ([][]domain.OrderItem, error) {
	return r.queryItemLists(ctx, "SELECT items FROM schedules ORDER BY created_at")
}

func (r *PostgresRepository) querySchedules(ctx context.Context, query string, args ...any) ([]domain.Schedule, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []domain.Schedule{}
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}
