package models

import "time"

// TimestampLayout is the fixed-width UTC layout used for every stored
// timestamp, so string order equals time order on all databases.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// FormatTimestamp renders t in TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
