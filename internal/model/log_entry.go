package model

import "time"

// DateLayout is the calendar date format used on the wire and in forms.
const DateLayout = "2006-01-02"

// LogEntry is one dated note about something good that happened.
// Entries are append-only.
type LogEntry struct {
	ID        string    `db:"id" json:"id"`
	UserUUID  string    `db:"user_uuid" json:"user_uuid"`
	Nickname  string    `db:"nickname" json:"nickname"`
	Date      time.Time `db:"date" json:"date"`
	Entry     string    `db:"entry" json:"entry"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Day returns the entry date as YYYY-MM-DD.
func (e *LogEntry) Day() string {
	return e.Date.Format(DateLayout)
}
