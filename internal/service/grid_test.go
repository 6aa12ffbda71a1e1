package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-class-api/internal/models"
)

func TestBuildScheduleGridCoversEveryCombination(t *testing.T) {
	days := []models.Day{{ID: 1, Name: "Monday"}, {ID: 2, Name: "Tuesday"}}
	periods := []models.Period{{ID: "period-1"}, {ID: "period-2"}, {ID: "period-3"}}

	slots := buildScheduleGrid("class-1", days, periods)
	require.Len(t, slots, 6)

	type cell struct {
		day    int
		period string
	}
	seen := map[cell]bool{}
	for _, slot := range slots {
		assert.Equal(t, "class-1", slot.ClassID)
		assert.Nil(t, slot.SubjectID)
		assert.Nil(t, slot.TeacherID)
		key := cell{slot.DayID, slot.PeriodID}
		assert.False(t, seen[key], "duplicate slot for %v", key)
		seen[key] = true
	}

	// Day-major ordering keeps the grid stable for bulk insertion.
	assert.Equal(t, 1, slots[0].DayID)
	assert.Equal(t, "period-1", slots[0].PeriodID)
	assert.Equal(t, 1, slots[2].DayID)
	assert.Equal(t, 2, slots[3].DayID)
}

func TestBuildScheduleGridEmptyReference(t *testing.T) {
	slots := buildScheduleGrid("class-1", nil, []models.Period{{ID: "period-1"}})
	assert.Empty(t, slots)

	slots = buildScheduleGrid("class-1", []models.Day{{ID: 1}}, nil)
	assert.Empty(t, slots)
}
