package model

import "time"

// Goal areas, in display order.
const (
	AreaBodyMind      = "body_mind"
	AreaCareer        = "career"
	AreaRelationships = "relationships"
	AreaOthers        = "others"
)

var GoalAreas = []string{AreaBodyMind, AreaCareer, AreaRelationships, AreaOthers}

// Goals is the per-user record of ideal-future statements, one free-text
// field per life area. All four fields are always written together.
type Goals struct {
	BodyMind      string `db:"body_mind" json:"body_mind"`
	Career        string `db:"career" json:"career"`
	Relationships string `db:"relationships" json:"relationships"`
	Others        string `db:"others" json:"others"`
}

// GoalsRecord is the stored row behind Goals.
type GoalsRecord struct {
	UserUUID  string    `db:"user_uuid" json:"user_uuid"`
	Nickname  string    `db:"nickname" json:"nickname"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	Goals
}

// Field returns the goal text for an area, or "" for unknown areas.
func (g Goals) Field(area string) string {
	switch area {
	case AreaBodyMind:
		return g.BodyMind
	case AreaCareer:
		return g.Career
	case AreaRelationships:
		return g.Relationships
	case AreaOthers:
		return g.Others
	}
	return ""
}
