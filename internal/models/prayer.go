package models

// Prayer request statuses
const (
	PrayerPending  = "pending"
	PrayerPraying  = "praying"
	PrayerAnswered = "answered"
)

// Prayer is a prayer request. UserID is nil for anonymous requests and for
// requests whose author was deleted.
type Prayer struct {
	ID        string  `db:"id" json:"id"`
	Content   string  `db:"content" json:"content"`
	UserID    *string `db:"user_id" json:"user_id"`
	Status    string  `db:"status" json:"status"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

// ValidPrayerStatus reports whether status is a known prayer status
func ValidPrayerStatus(status string) bool {
	switch status {
	case PrayerPending, PrayerPraying, PrayerAnswered:
		return true
	}
	return false
}
