package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRepositoryListRosterForClass(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "full_name", "grade_level", "class_id", "class_name", "attendance_percentage"}).
		AddRow("student-1", "Ani", "10", "class-1", "X IPA 1", 92.31).
		AddRow("student-2", "Budi", "10", "class-1", "X IPA 1", 0.0)

	mock.ExpectQuery(regexp.QuoteMeta("AND c.id = $1")).
		WithArgs("class-1").
		WillReturnRows(rows)

	items, err := repo.ListRoster(context.Background(), "class-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ani", items[0].FullName)
	assert.InDelta(t, 92.31, items[0].AttendancePercentage, 0.001)
	assert.Zero(t, items[1].AttendancePercentage)
}

func TestStudentRepositoryListRosterAllClasses(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "full_name", "grade_level", "class_id", "class_name", "attendance_percentage"}).
		AddRow("student-1", "Ani", "10", "class-1", "X IPA 1", 100.0)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY s.id, u.full_name, s.grade_level, c.id, c.name")).
		WillReturnRows(rows)

	items, err := repo.ListRoster(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "class-1", items[0].ClassID)
}
