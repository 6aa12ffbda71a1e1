package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectRepositoryListByGradeWithTeachers(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	rows := sqlmock.NewRows([]string{"subject_id", "subject_name", "teacher_id", "teacher_name"}).
		AddRow("subject-1", "Mathematics", "teacher-1", "Bu Ani").
		AddRow("subject-1", "Mathematics", "teacher-2", "Pak Budi").
		AddRow("subject-2", "Biology", nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE sub.grade = $1")).
		WithArgs("10").
		WillReturnRows(rows)

	items, err := repo.ListByGradeWithTeachers(context.Background(), "10")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Mathematics", items[0].SubjectName)
	require.NotNil(t, items[1].TeacherID)
	assert.Equal(t, "teacher-2", *items[1].TeacherID)
	assert.Nil(t, items[2].TeacherID)
}
