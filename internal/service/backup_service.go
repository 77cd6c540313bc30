package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"churchapi/internal/database"
	"churchapi/internal/models"
)

// BackupVersion identifies the layout written by Export
const BackupVersion = "1.0"

// BackupData represents the complete database backup structure
type BackupData struct {
	Version       string                `json:"version"`
	ExportedAt    time.Time             `json:"exported_at"`
	DatabaseType  string                `json:"database_type"`
	Users         []models.User         `json:"users"`
	Children      []models.Child        `json:"children"`
	Events        []models.Event        `json:"events"`
	Checkins      []models.Checkin      `json:"checkins"`
	Announcements []models.Announcement `json:"announcements"`
	Prayers       []models.Prayer       `json:"prayers"`
	Donations     []models.Donation     `json:"donations"`
}

// Tables in foreign key order; clearing walks it backwards
var backupTables = []string{"users", "children", "events", "checkins", "announcements", "prayers", "donations"}

// BackupService handles database backup and restore operations
type BackupService struct {
	db  *database.DB
	now func() time.Time
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db, now: time.Now}
}

// Export writes every table to w as indented JSON
func (s *BackupService) Export(ctx context.Context, w io.Writer) (*BackupData, error) {
	backup := &BackupData{
		Version:      BackupVersion,
		ExportedAt:   s.now().UTC(),
		DatabaseType: s.db.Dialect.MigrationsSubdir(),
	}

	exports := []struct {
		table string
		dest  interface{}
		query string
	}{
		{"users", &backup.Users, "SELECT id, name, email, password, role, is_active FROM users ORDER BY id"},
		{"children", &backup.Children, "SELECT id, name, birthdate, user_id FROM children ORDER BY id"},
		{"events", &backup.Events, "SELECT id, title, event_date, category, description FROM events ORDER BY id"},
		{"checkins", &backup.Checkins, "SELECT id, child_id, event_id, checked_in_at, user_id FROM checkins ORDER BY id"},
		{"announcements", &backup.Announcements, "SELECT id, title, description, created_at FROM announcements ORDER BY id"},
		{"prayers", &backup.Prayers, "SELECT id, content, user_id, status, created_at FROM prayers ORDER BY id"},
		{"donations", &backup.Donations, "SELECT id, user_id, amount, category, created_at FROM donations ORDER BY id"},
	}
	for _, e := range exports {
		if err := s.db.SelectContext(ctx, e.dest, e.query); err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", e.table, err)
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}

	slog.InfoContext(ctx, "database exported",
		"users", len(backup.Users), "children", len(backup.Children), "events", len(backup.Events),
		"checkins", len(backup.Checkins), "announcements", len(backup.Announcements),
		"prayers", len(backup.Prayers), "donations", len(backup.Donations))

	return backup, nil
}

// Import restores a backup read from r inside a single transaction. With
// clear set, existing rows are deleted first; otherwise rows are added and
// any id collision aborts the whole import.
func (s *BackupService) Import(ctx context.Context, r io.Reader, clear bool) (*BackupData, error) {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return nil, fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version != BackupVersion {
		return nil, fmt.Errorf("unsupported backup version %q", backup.Version)
	}

	slog.InfoContext(ctx, "importing backup", "version", backup.Version, "exported_at", backup.ExportedAt)

	err := s.db.InTx(ctx, func(tx *database.Tx) error {
		if clear {
			if err := clearTables(ctx, tx); err != nil {
				return err
			}
		}
		return importRows(ctx, tx, &backup)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "database import completed")
	return &backup, nil
}

func clearTables(ctx context.Context, tx *database.Tx) error {
	for i := len(backupTables) - 1; i >= 0; i-- {
		table := backupTables[i]
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

func importRows(ctx context.Context, tx *database.Tx, b *BackupData) error {
	for _, u := range b.Users {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO users (id, name, email, password, role, is_active) VALUES (?, ?, ?, ?, ?, ?)",
			u.ID, u.Name, u.Email, u.Password, u.Role, u.IsActive); err != nil {
			return fmt.Errorf("failed to import user %s: %w", u.ID, err)
		}
	}
	for _, c := range b.Children {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO children (id, name, birthdate, user_id) VALUES (?, ?, ?, ?)",
			c.ID, c.Name, c.Birthdate, c.UserID); err != nil {
			return fmt.Errorf("failed to import child %s: %w", c.ID, err)
		}
	}
	for _, e := range b.Events {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO events (id, title, event_date, category, description) VALUES (?, ?, ?, ?, ?)",
			e.ID, e.Title, e.Date, e.Category, e.Description); err != nil {
			return fmt.Errorf("failed to import event %s: %w", e.ID, err)
		}
	}
	for _, c := range b.Checkins {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO checkins (id, child_id, event_id, checked_in_at, user_id) VALUES (?, ?, ?, ?, ?)",
			c.ID, c.ChildID, c.EventID, c.Timestamp, c.UserID); err != nil {
			return fmt.Errorf("failed to import checkin %s: %w", c.ID, err)
		}
	}
	for _, a := range b.Announcements {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO announcements (id, title, description, created_at) VALUES (?, ?, ?, ?)",
			a.ID, a.Title, a.Description, a.CreatedAt); err != nil {
			return fmt.Errorf("failed to import announcement %s: %w", a.ID, err)
		}
	}
	for _, p := range b.Prayers {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO prayers (id, content, user_id, status, created_at) VALUES (?, ?, ?, ?, ?)",
			p.ID, p.Content, p.UserID, p.Status, p.CreatedAt); err != nil {
			return fmt.Errorf("failed to import prayer %s: %w", p.ID, err)
		}
	}
	for _, d := range b.Donations {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO donations (id, user_id, amount, category, created_at) VALUES (?, ?, ?, ?, ?)",
			d.ID, d.UserID, d.Amount, d.Category, d.CreatedAt); err != nil {
			return fmt.Errorf("failed to import donation %s: %w", d.ID, err)
		}
	}
	return nil
}
