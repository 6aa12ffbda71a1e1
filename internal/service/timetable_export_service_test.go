package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-class-api/internal/dto"
	"github.com/noah-isme/sma-class-api/internal/models"
	appErrors "github.com/noah-isme/sma-class-api/pkg/errors"
)

type timetableSourceStub struct {
	class *models.Class
	days  []dto.DaySchedule
}

func (s *timetableSourceStub) Get(ctx context.Context, id string) (*models.Class, error) {
	if s.class == nil {
		return nil, appErrors.Clone(appErrors.ErrClassNotFound, "")
	}
	return s.class, nil
}

func (s *timetableSourceStub) Schedule(ctx context.Context, classID string) ([]dto.DaySchedule, error) {
	return s.days, nil
}

func newTimetableSourceStub() *timetableSourceStub {
	math := "Mathematics"
	return &timetableSourceStub{
		class: &models.Class{ID: "class-1", Name: "X IPA 1", Floor: 2},
		days: []dto.DaySchedule{
			{Day: "Monday", Periods: []dto.TimetableRow{
				{PeriodID: "period-1", StartTime: "07:00", EndTime: "07:45", SubjectName: &math},
				{PeriodID: "period-2", StartTime: "07:45", EndTime: "08:30"},
			}},
		},
	}
}

func TestTimetableExportServiceCSV(t *testing.T) {
	svc := NewTimetableExportService(newTimetableSourceStub())

	file, err := svc.Export(context.Background(), "class-1", "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "x-ipa-1-timetable.csv", file.Filename)

	content := string(file.Content)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Day,Start,End,Subject", lines[0])
	assert.Equal(t, "Monday,07:00,07:45,Mathematics", lines[1])
	assert.Equal(t, "Monday,07:45,08:30,", lines[2])
}

func TestTimetableExportServiceDefaultsToCSV(t *testing.T) {
	svc := NewTimetableExportService(newTimetableSourceStub())

	file, err := svc.Export(context.Background(), "class-1", "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
}

func TestTimetableExportServicePDF(t *testing.T) {
	svc := NewTimetableExportService(newTimetableSourceStub())

	file, err := svc.Export(context.Background(), "class-1", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "x-ipa-1-timetable.pdf", file.Filename)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestTimetableExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewTimetableExportService(newTimetableSourceStub())

	_, err := svc.Export(context.Background(), "class-1", "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTimetableExportServiceUnknownClass(t *testing.T) {
	svc := NewTimetableExportService(&timetableSourceStub{})

	_, err := svc.Export(context.Background(), "class-99", "csv")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrClassNotFound.Code, appErrors.FromError(err).Code)
}
