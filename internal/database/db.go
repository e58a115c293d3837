package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const queryTimeout = 5 * time.Second

// Database wraps the SQLite handle used to persist picker state.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the database at path and creates the schema if needed.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Path returns the database file path.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS selections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pick_mode TEXT NOT NULL,
			value_type TEXT NOT NULL,
			format TEXT,
			payload TEXT NOT NULL,
			month_time INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_selections_created ON selections(created_at);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("error creating table: %w", err)
		}
	}
	return nil
}

func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	if d == nil || d.DB == nil {
		return ErrNotOpen
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
