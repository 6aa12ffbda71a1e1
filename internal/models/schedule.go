package models

import "time"

// ScheduleSlot is one cell of a class's day-by-period grid. Subject and
// teacher are unassigned at creation time and filled in by later updates.
// The (class, day, period) triple is unique, and so is
// (teacher, class, day, period) once a teacher is assigned.
type ScheduleSlot struct {
	ID        string    `db:"id" json:"id"`
	ClassID   string    `db:"class_id" json:"class_id"`
	DayID     int       `db:"day_id" json:"day_id"`
	PeriodID  string    `db:"period_id" json:"period_id"`
	SubjectID *string   `db:"subject_id" json:"subject_id,omitempty"`
	TeacherID *string   `db:"teacher_id" json:"teacher_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
