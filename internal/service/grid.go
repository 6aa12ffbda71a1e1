package service

import (
	"github.com/noah-isme/sma-class-api/internal/models"
)

// buildScheduleGrid produces one empty slot per day and period combination
// for the class, days in identity order and periods in start-time order as
// supplied by the repository. Subject and teacher stay unassigned.
func buildScheduleGrid(classID string, days []models.Day, periods []models.Period) []models.ScheduleSlot {
	slots := make([]models.ScheduleSlot, 0, len(days)*len(periods))
	for _, day := range days {
		for _, period := range periods {
			slots = append(slots, models.ScheduleSlot{
				ClassID:  classID,
				DayID:    day.ID,
				PeriodID: period.ID,
			})
		}
	}
	return slots
}
