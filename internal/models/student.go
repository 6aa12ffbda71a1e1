package models

import "time"

// Student belongs to at most one class at a time; ClassID is nullable while
// a student is between classes.
type Student struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	ClassID    *string   `db:"class_id" json:"class_id,omitempty"`
	GradeLevel string    `db:"grade_level" json:"grade_level"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
