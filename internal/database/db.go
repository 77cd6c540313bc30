package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"churchapi/internal/config"
)

// DB wraps the database connection with dialect support
type DB struct {
	*sqlx.DB
	Dialect Dialect
}

// Initialize creates and configures a SQLite database at dbPath
func Initialize(dbPath string) (*DB, error) {
	return open(NewSQLiteDialect(), DialectConfig{Path: dbPath})
}

// InitializeWithConfig creates and configures the database connection based on config
func InitializeWithConfig(cfg *config.Config) (*DB, error) {
	dialect, err := DialectFor(cfg.DatabaseType)
	if err != nil {
		return nil, err
	}
	return open(dialect, DialectConfig{Path: cfg.DatabasePath, URL: cfg.DatabaseURL})
}

// DialectFor resolves a DATABASE_TYPE value to its dialect
func DialectFor(databaseType string) (Dialect, error) {
	switch databaseType {
	case "postgres", "postgresql":
		return NewPostgresDialect(), nil
	case "pgx":
		return NewPgxDialect(), nil
	case "mysql":
		return NewMySQLDialect(), nil
	case "sqlite", "sqlite3", "":
		return NewSQLiteDialect(), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", databaseType)
	}
}

// Wrap adapts an already opened connection, e.g. a sqlmock stub in tests
func Wrap(db *sql.DB, dialect Dialect) *DB {
	return &DB{DB: sqlx.NewDb(db, dialect.DriverName()), Dialect: dialect}
}

func open(dialect Dialect, dialectConfig DialectConfig) (*DB, error) {
	db, err := sql.Open(dialect.DriverName(), dialect.DSN(dialectConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := dialect.ConfigureConnection(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	return Wrap(db, dialect), nil
}

// Builder returns a squirrel statement builder using the dialect's placeholders
func (db *DB) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.Dialect.Placeholder())
}

// GetContext scans a single row into dest with automatic placeholder rewriting
func (db *DB) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return db.DB.GetContext(ctx, dest, db.Dialect.RewriteQuery(query), args...)
}

// SelectContext scans all rows into dest with automatic placeholder rewriting
func (db *DB) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return db.DB.SelectContext(ctx, dest, db.Dialect.RewriteQuery(query), args...)
}

// ExecContext executes a query that doesn't return rows with automatic placeholder rewriting
func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return db.DB.ExecContext(ctx, db.Dialect.RewriteQuery(query), args...)
}

// SelectBuilt runs a squirrel query; its placeholders are already in dialect form
func (db *DB) SelectBuilt(ctx context.Context, dest interface{}, q squirrel.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	return db.DB.SelectContext(ctx, dest, query, args...)
}

// IsUniqueViolation reports whether err came from a unique constraint
func (db *DB) IsUniqueViolation(err error) bool {
	return err != nil && db.Dialect.IsUniqueViolation(err)
}
