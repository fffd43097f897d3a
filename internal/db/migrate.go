package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Checklist templates owned by an event. Deleting the event deletes
	// its templates.
	`CREATE TABLE IF NOT EXISTS default_tasks (
		id          TEXT PRIMARY KEY,
		event_id    TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		days_before INTEGER NOT NULL CHECK(days_before >= 1),
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_default_tasks_event ON default_tasks(event_id)`,

	// A holding's origin event is informational only: deleting the event
	// leaves the holding in place as a freestanding occurrence.
	`CREATE TABLE IF NOT EXISTS holdings (
		id         TEXT PRIMARY KEY,
		event_id   TEXT REFERENCES events(id) ON DELETE SET NULL,
		name       TEXT NOT NULL,
		date       TEXT NOT NULL,
		channel_id TEXT NOT NULL,
		mention    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_holdings_event ON holdings(event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_holdings_date ON holdings(date)`,

	`CREATE TABLE IF NOT EXISTS holding_tasks (
		id          TEXT PRIMARY KEY,
		holding_id  TEXT NOT NULL REFERENCES holdings(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		days_before INTEGER NOT NULL CHECK(days_before >= 0),
		description TEXT NOT NULL DEFAULT '',
		reminded    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_holding_tasks_holding ON holding_tasks(holding_id)`,
	`CREATE INDEX IF NOT EXISTS idx_holding_tasks_reminded ON holding_tasks(reminded)`,
}
