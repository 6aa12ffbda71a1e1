package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-class-api/internal/dto"
	"github.com/noah-isme/sma-class-api/internal/models"
)

// ScheduleSlotRepository manages the day-by-period slot grid of a class.
type ScheduleSlotRepository struct {
	db *sqlx.DB
}

// NewScheduleSlotRepository builds the repository.
func NewScheduleSlotRepository(db *sqlx.DB) *ScheduleSlotRepository {
	return &ScheduleSlotRepository{db: db}
}

func (r *ScheduleSlotRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// BulkInsert persists the slot grid inside the caller's transaction. The
// class-row insert must already have happened on the same transaction.
func (r *ScheduleSlotRepository) BulkInsert(ctx context.Context, exec sqlx.ExtContext, slots []models.ScheduleSlot) error {
	if len(slots) == 0 {
		return nil
	}
	target := r.exec(exec)
	now := time.Now().UTC()

	const query = `
INSERT INTO schedules (id, class_id, day_id, period_id, subject_id, teacher_id, created_at)
VALUES (:id, :class_id, :day_id, :period_id, :subject_id, :teacher_id, :created_at)`

	for i := range slots {
		slot := &slots[i]
		if slot.ID == "" {
			slot.ID = uuid.NewString()
		}
		if slot.CreatedAt.IsZero() {
			slot.CreatedAt = now
		}
		if _, err := sqlx.NamedExecContext(ctx, target, query, slot); err != nil {
			return fmt.Errorf("insert schedule slot: %w", err)
		}
	}
	return nil
}

// DeleteByClass removes every slot referencing the class inside the caller's
// transaction and reports the number of rows removed.
func (r *ScheduleSlotRepository) DeleteByClass(ctx context.Context, exec sqlx.ExtContext, classID string) (int64, error) {
	result, err := r.exec(exec).ExecContext(ctx, `DELETE FROM schedules WHERE class_id = $1`, classID)
	if err != nil {
		return 0, fmt.Errorf("delete class schedule slots: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete class schedule slots rows affected: %w", err)
	}
	return deleted, nil
}

// ListTimetable returns the class's weekly grid joined with day, period and
// subject names, ordered by day identity then period start time.
func (r *ScheduleSlotRepository) ListTimetable(ctx context.Context, classID string) ([]dto.TimetableRow, error) {
	const query = `
SELECT d.id AS day_id, d.name AS day_name, p.id AS period_id, p.start_time, p.end_time, sub.name AS subject_name
FROM schedules sc
JOIN days d ON d.id = sc.day_id
JOIN periods p ON p.id = sc.period_id
LEFT JOIN subjects sub ON sub.id = sc.subject_id
WHERE sc.class_id = $1
ORDER BY d.id ASC, p.start_time ASC`
	var rows []dto.TimetableRow
	if err := r.db.SelectContext(ctx, &rows, query, classID); err != nil {
		return nil, fmt.Errorf("list class timetable: %w", err)
	}
	return rows, nil
}
