package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefDataRepositoryListDays(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRefDataRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "Monday").
		AddRow(2, "Tuesday").
		AddRow(3, "Wednesday").
		AddRow(4, "Thursday").
		AddRow(5, "Friday")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM days ORDER BY id ASC")).
		WillReturnRows(rows)

	days, err := repo.ListDays(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, days, 5)
	assert.Equal(t, 1, days[0].ID)
	assert.Equal(t, "Friday", days[4].Name)
}

func TestRefDataRepositoryListPeriods(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRefDataRepository(db)

	rows := sqlmock.NewRows([]string{"id", "start_time", "end_time"}).
		AddRow("period-1", "07:00", "07:45").
		AddRow("period-2", "07:45", "08:30")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, start_time, end_time FROM periods ORDER BY start_time ASC")).
		WillReturnRows(rows)

	periods, err := repo.ListPeriods(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, "period-1", periods[0].ID)
	assert.Equal(t, "08:30", periods[1].EndTime)
}
