package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestActorIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		role string
		want bool
	}{
		{name: "admin", role: RoleAdmin, want: true},
		{name: "member", role: RoleMember, want: false},
		{name: "empty", role: "", want: false},
		{name: "case matters", role: "Admin", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := Actor{UserID: "u1", Role: tt.role}
			if got := actor.IsAdmin(); got != tt.want {
				t.Errorf("Actor.IsAdmin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidPrayerStatus(t *testing.T) {
	for _, status := range []string{PrayerPending, PrayerPraying, PrayerAnswered} {
		if !ValidPrayerStatus(status) {
			t.Errorf("ValidPrayerStatus(%q) = false, want true", status)
		}
	}
	for _, status := range []string{"", "done", "PENDING"} {
		if ValidPrayerStatus(status) {
			t.Errorf("ValidPrayerStatus(%q) = true, want false", status)
		}
	}
}

func TestUserRedacted(t *testing.T) {
	user := User{ID: "u1", Name: "Ana", Email: "ana@example.com", Password: "abc123", Role: RoleMember, IsActive: true}

	redacted := user.Redacted()
	if redacted.Password != "" {
		t.Errorf("Redacted() kept password %q", redacted.Password)
	}
	if user.Password != "abc123" {
		t.Error("Redacted() modified the original user")
	}

	data, err := json.Marshal(redacted)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := fields["password"]; ok {
		t.Error("redacted user JSON still has a password field")
	}
}

func TestEventJSONUsesDateKey(t *testing.T) {
	data, err := json.Marshal(Event{ID: "e1", Title: "Culto", Date: "2025-01-05"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if fields["date"] != "2025-01-05" {
		t.Errorf("date = %v, want 2025-01-05", fields["date"])
	}
}

func TestAnonymousPrayerSerializesNullUser(t *testing.T) {
	data, err := json.Marshal(Prayer{ID: "p1", Content: "Pela familia", Status: PrayerPending})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	value, ok := fields["user_id"]
	if !ok || value != nil {
		t.Errorf("user_id = %v (present %v), want null", value, ok)
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc",
			in:   time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC),
			want: "2025-01-05T09:30:00.000000Z",
		},
		{
			name: "converted to utc",
			in:   time.Date(2025, 1, 5, 22, 0, 0, 123456000, loc),
			want: "2025-01-06T01:00:00.123456Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.in); got != tt.want {
				t.Errorf("FormatTimestamp() = %v, want %v", got, tt.want)
			}
		})
	}
}
