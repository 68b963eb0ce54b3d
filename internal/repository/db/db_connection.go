package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// one writer: the dispatch runtime
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaElevatorState = `
CREATE TABLE IF NOT EXISTS elevator_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    floor INTEGER NOT NULL,
    direction TEXT NOT NULL,
    target INTEGER,
    next_stop INTEGER,
    phase TEXT NOT NULL,
    door TEXT NOT NULL,
    motion TEXT NOT NULL,
    up_destinations TEXT NOT NULL,
    down_destinations TEXT NOT NULL,
    lights TEXT NOT NULL,
    hall_calls TEXT,
    min_floor INTEGER NOT NULL,
    max_floor INTEGER NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaElevatorEvents = `
CREATE TABLE IF NOT EXISTS elevator_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    floor INTEGER,
    message TEXT NOT NULL,
    meta TEXT
);
`

const schemaElevatorEventsIndex = `
CREATE INDEX IF NOT EXISTS idx_elevator_events_occurred_at ON elevator_events (occurred_at);
`

const schemaOperators = `
CREATE TABLE IF NOT EXISTS operators (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE NOT NULL,
    role TEXT NOT NULL CHECK (role IN ('dispatcher', 'observer')),
    password_hash TEXT NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaElevatorState,
		schemaElevatorEvents,
		schemaElevatorEventsIndex,
		schemaOperators,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
