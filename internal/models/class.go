package models

import "time"

// ValidGrades is the fixed set of class levels.
var ValidGrades = []string{"10", "11", "12"}

// IsValidGrade reports whether the value is a member of the grade enumeration.
func IsValidGrade(grade string) bool {
	for _, g := range ValidGrades {
		if g == grade {
			return true
		}
	}
	return false
}

// Class represents an academic class or section. Grade is optional in
// storage; rows without one fall into the "Ungrouped" bucket of grade views.
type Class struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Floor     int       `db:"floor" json:"floor"`
	Grade     *string   `db:"grade" json:"grade,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
