package models

// Checkin records a child's attendance at an event
type Checkin struct {
	ID        string `db:"id" json:"id"`
	ChildID   string `db:"child_id" json:"child_id"`
	EventID   string `db:"event_id" json:"event_id"`
	Timestamp string `db:"checked_in_at" json:"timestamp"`
	UserID    string `db:"user_id" json:"user_id"`
}
