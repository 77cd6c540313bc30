package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed migrations
var embeddedMigrations embed.FS

// RunMigrations executes every not yet applied *.sql file for the current
// dialect. When migrationsPath is empty the embedded migrations are used,
// otherwise <migrationsPath>/<dialect subdir>/*.sql.
func (db *DB) RunMigrations(ctx context.Context, migrationsPath string) error {
	fsys, err := db.migrationsFS(migrationsPath)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, db.Dialect.CreateMigrationsTableQuery()); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}
	sort.Strings(files)

	for _, filename := range files {
		hasRun, err := db.hasMigrationRun(ctx, filename)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if hasRun {
			continue
		}

		content, err := fs.ReadFile(fsys, filename)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", filename, err)
		}

		if err := db.executeMigration(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filename, err)
		}

		if _, err := db.ExecContext(ctx, "INSERT INTO migrations (filename) VALUES (?)", filename); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", filename, err)
		}

		slog.Info("migration applied", "file", filename, "dialect", db.Dialect.MigrationsSubdir())
	}

	return nil
}

func (db *DB) migrationsFS(migrationsPath string) (fs.FS, error) {
	if migrationsPath != "" {
		return os.DirFS(filepath.Join(migrationsPath, db.Dialect.MigrationsSubdir())), nil
	}
	sub, err := fs.Sub(embeddedMigrations, path.Join("migrations", db.Dialect.MigrationsSubdir()))
	if err != nil {
		return nil, fmt.Errorf("no embedded migrations for %s: %w", db.Dialect.MigrationsSubdir(), err)
	}
	return sub, nil
}

func (db *DB) hasMigrationRun(ctx context.Context, filename string) (bool, error) {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM migrations WHERE filename = ?", filename); err != nil {
		return false, err
	}
	return count > 0, nil
}

// executeMigration runs statements one at a time; not every driver accepts
// several statements in a single Exec
func (db *DB) executeMigration(ctx context.Context, content string) error {
	for _, stmt := range splitStatements(content) {
		if _, err := db.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// splitStatements splits a migration on semicolons and drops comment-only chunks
func splitStatements(content string) []string {
	var statements []string
	for _, chunk := range strings.Split(content, ";") {
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, "--") {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			statements = append(statements, strings.TrimSpace(strings.Join(lines, "\n")))
		}
	}
	return statements
}
