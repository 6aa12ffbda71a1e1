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

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// List returns all classes in stable identity order.
func (r *ClassRepository) List(ctx context.Context) ([]models.Class, error) {
	const query = `SELECT id, name, floor, grade, created_at, updated_at FROM classes ORDER BY id ASC`
	var classes []models.Class
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// FindByID returns a class record by ID.
func (r *ClassRepository) FindByID(ctx context.Context, id string) (*models.Class, error) {
	const query = `SELECT id, name, floor, grade, created_at, updated_at FROM classes WHERE id = $1`
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		return nil, err
	}
	return &class, nil
}

// Create persists a class record, optionally inside a caller-owned transaction.
func (r *ClassRepository) Create(ctx context.Context, exec sqlx.ExtContext, class *models.Class) error {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if class.CreatedAt.IsZero() {
		class.CreatedAt = now
	}
	class.UpdatedAt = now

	const query = `INSERT INTO classes (id, name, floor, grade, created_at, updated_at) VALUES (:id, :name, :floor, :grade, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.exec(exec), query, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of a class record.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	class.UpdatedAt = time.Now().UTC()
	const query = `UPDATE classes SET name = :name, floor = :floor, grade = :grade, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return nil
}

// LockForDelete acquires a row lock on the class inside the caller's
// transaction. Returns sql.ErrNoRows when the class does not exist.
func (r *ClassRepository) LockForDelete(ctx context.Context, exec sqlx.ExtContext, id string) error {
	const query = `SELECT id FROM classes WHERE id = $1 FOR UPDATE`
	var locked string
	if err := sqlx.GetContext(ctx, r.exec(exec), &locked, query, id); err != nil {
		return err
	}
	return nil
}

// Delete removes the class row and reports how many rows were deleted.
func (r *ClassRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id string) (int64, error) {
	result, err := r.exec(exec).ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete class: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete class rows affected: %w", err)
	}
	return deleted, nil
}

// CountStudents returns how many students reference the class. Pass the
// deleting transaction so the count reflects the locked state.
func (r *ClassRepository) CountStudents(ctx context.Context, exec sqlx.ExtContext, classID string) (int, error) {
	const query = `SELECT COUNT(*) FROM students WHERE class_id = $1`
	var count int
	if err := sqlx.GetContext(ctx, r.exec(exec), &count, query, classID); err != nil {
		return 0, fmt.Errorf("count class students: %w", err)
	}
	return count, nil
}

// CountScheduleSlots returns the number of schedule slots for the class.
func (r *ClassRepository) CountScheduleSlots(ctx context.Context, classID string) (int, error) {
	const query = `SELECT COUNT(*) FROM schedules WHERE class_id = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, classID); err != nil {
		return 0, fmt.Errorf("count class schedules: %w", err)
	}
	return count, nil
}

// ListWithCapacity returns every class with its student count, in stable
// identity order. Grade bucketing happens in the service layer.
func (r *ClassRepository) ListWithCapacity(ctx context.Context) ([]dto.ClassWithCapacity, error) {
	const query = `
SELECT c.id, c.name, c.floor, c.grade, COUNT(s.id) AS capacity
FROM classes c
LEFT JOIN students s ON s.class_id = c.id
GROUP BY c.id, c.name, c.floor, c.grade
ORDER BY c.id ASC`
	var rows []dto.ClassWithCapacity
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list classes with capacity: %w", err)
	}
	return rows, nil
}
