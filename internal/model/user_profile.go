package model

import "time"

// UserProfile maps a self-chosen nickname to a stable identifier.
// Rows are never updated or deleted.
type UserProfile struct {
	UserUUID  string    `db:"user_uuid" json:"user_uuid"`
	Nickname  string    `db:"nickname" json:"nickname"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
