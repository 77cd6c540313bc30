package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"churchapi/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// DateLayout is the calendar date format accepted for birthdates and events
const DateLayout = "2006-01-02"

// MinPasswordLength is the shortest password accepted at registration and login
const MinPasswordLength = 4

// Column limits of the postgres and mysql schemas
const (
	MaxNameLength     = 100
	MaxTitleLength    = 100
	MaxCategoryLength = 100
	MaxEmailLength    = 255
)

// Donation amounts are stored as NUMERIC(12, 2)
const (
	MinAmount = 0.01
	MaxAmount = 9999999999.99
)

// Error describes a single invalid field
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email", "email is required")
	}
	if !emailRegex.MatchString(email) {
		return invalid("email", "invalid email format")
	}
	if len(email) > MaxEmailLength {
		return invalid("email", "email must be at most %d characters", MaxEmailLength)
	}
	return nil
}

// ValidatePassword checks the minimum password length
func ValidatePassword(password string) error {
	if password == "" {
		return invalid("password", "password is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return invalid("password", "password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// ValidateName checks if a person's name is valid
func ValidateName(name string) error {
	return ValidateLength("name", name, 2, MaxNameLength)
}

// ValidateRequired rejects blank values
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "%s is required", field)
	}
	return nil
}

// ValidateMinLength requires at least min characters after trimming
func ValidateMinLength(field, value string, min int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return invalid(field, "%s is required", field)
	}
	if utf8.RuneCountInString(value) < min {
		return invalid(field, "%s must be at least %d characters", field, min)
	}
	return nil
}

// ValidateLength requires between min and max characters after trimming
func ValidateLength(field, value string, min, max int) error {
	if err := ValidateMinLength(field, value, min); err != nil {
		return err
	}
	if utf8.RuneCountInString(strings.TrimSpace(value)) > max {
		return invalid(field, "%s must be at most %d characters", field, max)
	}
	return nil
}

// ValidateDate requires a YYYY-MM-DD calendar date
func ValidateDate(field, value string) error {
	if value == "" {
		return invalid(field, "%s is required", field)
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return invalid(field, "%s must be a date in YYYY-MM-DD format", field)
	}
	return nil
}

// ParseDateTime accepts a YYYY-MM-DD date, read as midnight UTC, or an
// RFC 3339 timestamp
func ParseDateTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, invalid(field, "%s is required", field)
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, invalid(field, "%s must be a date (YYYY-MM-DD) or an RFC 3339 timestamp", field)
}

// ValidateDateTime accepts a YYYY-MM-DD date or an RFC 3339 timestamp
func ValidateDateTime(field, value string) error {
	_, err := ParseDateTime(field, value)
	return err
}

// NormalizeDateTime parses value like ParseDateTime and renders it in
// models.EventDateLayout, so stored dates compare correctly as strings
func NormalizeDateTime(field, value string) (string, error) {
	t, err := ParseDateTime(field, value)
	if err != nil {
		return "", err
	}
	return models.FormatEventDate(t), nil
}

// ValidateUUID requires a well-formed record id
func ValidateUUID(field, value string) error {
	if value == "" {
		return invalid(field, "%s is required", field)
	}
	if _, err := uuid.Parse(value); err != nil {
		return invalid(field, "%s must be a valid id", field)
	}
	return nil
}

// ValidateAmount requires a present positive amount that fits NUMERIC(12, 2)
// without rounding
func ValidateAmount(amount *float64) error {
	if amount == nil {
		return invalid("amount", "amount is required")
	}
	a := *amount
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return invalid("amount", "amount must be greater than zero")
	}
	if a < MinAmount {
		return invalid("amount", "amount must be at least %.2f", MinAmount)
	}
	if a > MaxAmount {
		return invalid("amount", "amount must be at most %.2f", MaxAmount)
	}
	if cents := a * 100; math.Abs(cents-math.Round(cents)) > 1e-3 {
		return invalid("amount", "amount must have at most 2 decimal places")
	}
	return nil
}

// ValidatePrayerStatus requires one of pending, praying or answered
func ValidatePrayerStatus(status string) error {
	if !models.ValidPrayerStatus(status) {
		return invalid("status", "status must be one of %s, %s, %s",
			models.PrayerPending, models.PrayerPraying, models.PrayerAnswered)
	}
	return nil
}

// ValidateRole requires a known account role
func ValidateRole(role string) error {
	if !models.ValidRole(role) {
		return invalid("role", "role must be %s or %s", models.RoleMember, models.RoleAdmin)
	}
	return nil
}
