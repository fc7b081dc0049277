package store

import (
	"context"
	"database/sql"
)

// Migration represents a single schema migration. Each migration has a
// unique ID and an Up function that applies it.
type Migration struct {
	ID int
	Up func(db *sql.DB) error
}

// migrations lists all migrations in order. Each is applied once; add new
// entries here when the schema changes.
var migrations = []Migration{}

// ApplyMigrations applies all pending migrations to the database.
func ApplyMigrations(ctx context.Context, db *sql.DB, logger func(msg string, args ...interface{})) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `SELECT id FROM migrations`)
	if err != nil {
		return err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return err
		}
		applied[id] = true
	}

	for _, m := range migrations {
		if applied[m.ID] {
			continue
		}
		logger("Applying migration %d", m.ID)
		if err := m.Up(db); err != nil {
			return err
		}
		if _, err := db.Exec(`INSERT INTO migrations (id) VALUES (?)`, m.ID); err != nil {
			return err
		}
		logger("Migration %d applied", m.ID)
	}

	return nil
}
