package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-class-api/internal/dto"
)

// StudentRepository reads student roster projections.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListRoster returns one row per student with the computed attendance
// percentage: round(100 * present / total, 2), or 0 when the student has no
// attendance rows (NULLIF guards the division). An empty classID returns the
// roster across all classes.
func (r *StudentRepository) ListRoster(ctx context.Context, classID string) ([]dto.ClassStudent, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT
	s.id AS student_id,
	u.full_name,
	s.grade_level,
	c.id AS class_id,
	c.name AS class_name,
	COALESCE(ROUND(100.0 * COUNT(*) FILTER (WHERE a.status = 'present') / NULLIF(COUNT(a.id), 0), 2), 0) AS attendance_percentage
FROM classes c
JOIN students s ON s.class_id = c.id
JOIN users u ON u.id = s.user_id
LEFT JOIN attendance_records a ON a.student_id = s.id
WHERE 1=1`)

	var args []interface{}
	if classID != "" {
		args = append(args, classID)
		fmt.Fprintf(&query, " AND c.id = $%d", len(args))
	}
	query.WriteString(`
GROUP BY s.id, u.full_name, s.grade_level, c.id, c.name
ORDER BY s.id ASC`)

	var rows []dto.ClassStudent
	if err := r.db.SelectContext(ctx, &rows, query.String(), args...); err != nil {
		return nil, fmt.Errorf("list class roster: %w", err)
	}
	return rows, nil
}
