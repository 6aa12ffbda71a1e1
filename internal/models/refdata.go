package models

// Day is one of the five weekday reference rows, ordered by ID.
type Day struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Period is a teaching time window, ordered by start time.
type Period struct {
	ID        string `db:"id" json:"id"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
}
