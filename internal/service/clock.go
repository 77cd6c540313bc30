package service

import (
	"time"

	"github.com/google/uuid"

	"churchapi/internal/models"
)

// clock stamps records; services embed it so tests can pin time
type clock struct {
	now func() time.Time
}

// SetClock replaces the time source
func (c *clock) SetClock(now func() time.Time) {
	c.now = now
}

func (c *clock) timestamp() string {
	if c.now == nil {
		return models.FormatTimestamp(time.Now())
	}
	return models.FormatTimestamp(c.now())
}

func newID() string {
	return uuid.NewString()
}
