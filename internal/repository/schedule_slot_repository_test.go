package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-class-api/internal/models"
)

func TestScheduleSlotRepositoryBulkInsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleSlotRepository(db)

	slots := []models.ScheduleSlot{
		{ClassID: "class-1", DayID: 1, PeriodID: "period-1"},
		{ClassID: "class-1", DayID: 1, PeriodID: "period-2"},
	}

	for range slots {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schedules")).
			WithArgs(sqlmock.AnyArg(), "class-1", 1, sqlmock.AnyArg(), nil, nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}

	err := repo.BulkInsert(context.Background(), nil, slots)
	require.NoError(t, err)
	assert.NotEmpty(t, slots[0].ID)
	assert.NotEmpty(t, slots[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleSlotRepositoryBulkInsertEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleSlotRepository(db)

	err := repo.BulkInsert(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleSlotRepositoryDeleteByClass(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleSlotRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM schedules WHERE class_id = $1")).
		WithArgs("class-1").
		WillReturnResult(sqlmock.NewResult(0, 35))

	deleted, err := repo.DeleteByClass(context.Background(), nil, "class-1")
	require.NoError(t, err)
	assert.Equal(t, int64(35), deleted)
}

func TestScheduleSlotRepositoryListTimetable(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleSlotRepository(db)

	rows := sqlmock.NewRows([]string{"day_id", "day_name", "period_id", "start_time", "end_time", "subject_name"}).
		AddRow(1, "Monday", "period-1", "07:00", "07:45", "Mathematics").
		AddRow(1, "Monday", "period-2", "07:45", "08:30", nil).
		AddRow(2, "Tuesday", "period-1", "07:00", "07:45", nil)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY d.id ASC, p.start_time ASC")).
		WithArgs("class-1").
		WillReturnRows(rows)

	items, err := repo.ListTimetable(context.Background(), "class-1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Monday", items[0].DayName)
	require.NotNil(t, items[0].SubjectName)
	assert.Equal(t, "Mathematics", *items[0].SubjectName)
	assert.Nil(t, items[1].SubjectName)
	assert.Equal(t, "Tuesday", items[2].DayName)
}
