package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-class-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	cleanup := func() {
		_ = sqlxDB.Close()
		db.Close()
	}
	return sqlxDB, mock, cleanup
}

func testTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, time.August, 1, 7, 0, 0, 0, time.UTC)
}

func TestClassRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "floor", "grade", "created_at", "updated_at"}).
		AddRow("class-1", "X IPA 1", 2, "10", testTime(t), testTime(t)).
		AddRow("class-2", "XI IPS 2", 3, "11", testTime(t), testTime(t))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, floor, grade, created_at, updated_at FROM classes ORDER BY id ASC`)).
		WillReturnRows(rows)

	classes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "class-1", classes[0].ID)
	assert.Equal(t, "11", *classes[1].Grade)
}

func TestClassRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, floor, grade, created_at, updated_at FROM classes WHERE id = $1")).
		WithArgs("class-99").
		WillReturnError(sql.ErrNoRows)

	class, err := repo.FindByID(context.Background(), "class-99")
	assert.Nil(t, class)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestClassRepositoryCreateAssignsIdentity(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO classes")).
		WithArgs(sqlmock.AnyArg(), "X IPA 1", 2, "10", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	grade := "10"
	class := &models.Class{Name: "X IPA 1", Floor: 2, Grade: &grade}
	err := repo.Create(context.Background(), nil, class)
	require.NoError(t, err)
	assert.NotEmpty(t, class.ID)
	assert.False(t, class.CreatedAt.IsZero())
}

func TestClassRepositoryLockForDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM classes WHERE id = $1 FOR UPDATE")).
		WithArgs("class-99").
		WillReturnError(sql.ErrNoRows)

	err := repo.LockForDelete(context.Background(), nil, "class-99")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestClassRepositoryDeleteReportsRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM classes WHERE id = $1")).
		WithArgs("class-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), nil, "class-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestClassRepositoryCountStudents(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM students WHERE class_id = $1")).
		WithArgs("class-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountStudents(context.Background(), nil, "class-1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestClassRepositoryListWithCapacity(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "floor", "grade", "capacity"}).
		AddRow("class-1", "X IPA 1", 2, "10", 32).
		AddRow("class-2", "Orphan", 1, nil, 0)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN students s ON s.class_id = c.id")).
		WillReturnRows(rows)

	items, err := repo.ListWithCapacity(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 32, items[0].Capacity)
	assert.Nil(t, items[1].Grade)
	assert.Equal(t, 0, items[1].Capacity)
}
