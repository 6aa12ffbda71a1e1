package dto

// UngroupedBucket is the explicit grade-group key for classes without a grade.
const UngroupedBucket = "Ungrouped"

// CreateClassResponse reports the created identity and the size of the
// generated schedule grid.
type CreateClassResponse struct {
	Success      bool   `json:"success"`
	ClassID      string `json:"classId"`
	SlotsCreated int    `json:"slotsCreated"`
}

// ClassWithCapacity is a class row annotated with its student count.
type ClassWithCapacity struct {
	ID       string  `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Floor    int     `db:"floor" json:"floor"`
	Grade    *string `db:"grade" json:"grade,omitempty"`
	Capacity int     `db:"capacity" json:"capacity"`
}

// GradeGroup buckets classes by grade value.
type GradeGroup struct {
	Grade   string              `json:"grade"`
	Classes []ClassWithCapacity `json:"classes"`
}

// DeleteCheck is the read-only deletability preview.
type DeleteCheck struct {
	Deletable     bool   `json:"deletable"`
	Reason        string `json:"reason,omitempty"`
	StudentCount  int    `json:"student_count"`
	ScheduleCount int    `json:"schedule_count"`
}

// DeleteClassResponse confirms a completed deletion.
type DeleteClassResponse struct {
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
}

// ClassStudent is one roster row with the computed attendance percentage.
type ClassStudent struct {
	StudentID            string  `db:"student_id" json:"student_id"`
	FullName             string  `db:"full_name" json:"full_name"`
	GradeLevel           string  `db:"grade_level" json:"grade_level"`
	ClassID              string  `db:"class_id" json:"class_id"`
	ClassName            string  `db:"class_name" json:"class_name"`
	AttendancePercentage float64 `db:"attendance_percentage" json:"attendance_percentage"`
}
