package dto

// TimetableRow is the flat join row behind the weekly schedule view,
// ordered by day ID then period start time.
type TimetableRow struct {
	DayID       int     `db:"day_id" json:"-"`
	DayName     string  `db:"day_name" json:"-"`
	PeriodID    string  `db:"period_id" json:"period_id"`
	StartTime   string  `db:"start_time" json:"start_time"`
	EndTime     string  `db:"end_time" json:"end_time"`
	SubjectName *string `db:"subject_name" json:"subject,omitempty"`
}

// DaySchedule groups a day's periods in start-time order.
type DaySchedule struct {
	Day     string         `json:"day"`
	Periods []TimetableRow `json:"periods"`
}

// SubjectTeacher is one teacher assigned to a curriculum subject.
type SubjectTeacher struct {
	TeacherID string `db:"teacher_id" json:"teacher_id"`
	FullName  string `db:"full_name" json:"full_name"`
}

// SubjectWithTeachers lists every teacher assigned to a subject; subjects
// with no assignment keep an empty list.
type SubjectWithTeachers struct {
	SubjectID string           `json:"subject_id"`
	Name      string           `json:"name"`
	Teachers  []SubjectTeacher `json:"teachers"`
}
