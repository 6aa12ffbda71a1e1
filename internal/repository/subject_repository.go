package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SubjectRepository reads curriculum subjects and their teacher assignments.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository constructs the repository.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// SubjectTeacherRow is the flat join row behind the subjects-with-teachers
// view. Teacher columns are null for subjects with no assignment.
type SubjectTeacherRow struct {
	SubjectID   string  `db:"subject_id"`
	SubjectName string  `db:"subject_name"`
	TeacherID   *string `db:"teacher_id"`
	TeacherName *string `db:"teacher_name"`
}

// ListByGradeWithTeachers returns the curriculum for a grade with every
// assigned teacher. The left join keeps teacherless subjects in the result.
func (r *SubjectRepository) ListByGradeWithTeachers(ctx context.Context, grade string) ([]SubjectTeacherRow, error) {
	const query = `
SELECT sub.id AS subject_id, sub.name AS subject_name, t.id AS teacher_id, t.full_name AS teacher_name
FROM subjects sub
LEFT JOIN teacher_subjects ts ON ts.subject_id = sub.id
LEFT JOIN teachers t ON t.id = ts.teacher_id
WHERE sub.grade = $1
ORDER BY sub.id ASC, t.id ASC`
	var rows []SubjectTeacherRow
	if err := r.db.SelectContext(ctx, &rows, query, grade); err != nil {
		return nil, fmt.Errorf("list subjects with teachers: %w", err)
	}
	return rows, nil
}
