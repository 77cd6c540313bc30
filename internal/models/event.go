package models

import "time"

// EventDateLayout is the UTC form event dates are stored and filtered in
const EventDateLayout = "2006-01-02T15:04:05Z"

// FormatEventDate renders t in EventDateLayout
func FormatEventDate(t time.Time) string {
	return t.UTC().Format(EventDateLayout)
}

// Event is a scheduled church activity. Date is stored in EventDateLayout.
type Event struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Date        string `db:"event_date" json:"date"`
	Category    string `db:"category" json:"category"`
	Description string `db:"description" json:"description"`
}

// EventFilter narrows an event listing. Empty fields are ignored.
type EventFilter struct {
	From     string
	Category string
}
