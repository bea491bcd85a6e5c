package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order; PRAGMA user_version records how many
// have run. Append new steps, never edit shipped ones.
var migrations = [][]string{
	// 1: initial schema
	{
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS workouts (
			id         TEXT PRIMARY KEY,
			seq        INTEGER NOT NULL,
			logged_at  TEXT NOT NULL,
			exercise   TEXT NOT NULL,
			body_parts TEXT NOT NULL,
			notes      TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_seq ON workouts(seq)`,
		`CREATE TABLE IF NOT EXISTS workout_sets (
			workout_id TEXT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
			position   INTEGER NOT NULL,
			reps       INTEGER NOT NULL CHECK(reps > 0),
			weight     REAL NOT NULL CHECK(weight >= 0),
			PRIMARY KEY (workout_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS meals (
			id        TEXT PRIMARY KEY,
			seq       INTEGER NOT NULL,
			logged_at TEXT NOT NULL,
			food      TEXT NOT NULL,
			servings  REAL NOT NULL,
			calories  INTEGER NOT NULL,
			is_custom INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_meals_seq ON meals(seq)`,
		`CREATE TABLE IF NOT EXISTS custom_foods (
			name                 TEXT PRIMARY KEY,
			seq                  INTEGER NOT NULL,
			calories_per_serving INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS templates (
			name       TEXT PRIMARY KEY,
			seq        INTEGER NOT NULL,
			body_parts TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS template_exercises (
			template_name TEXT NOT NULL REFERENCES templates(name) ON DELETE CASCADE ON UPDATE CASCADE,
			position      INTEGER NOT NULL,
			exercise      TEXT NOT NULL,
			body_part     TEXT NOT NULL,
			PRIMARY KEY (template_name, position)
		)`,
	},
}

// SchemaVersion is the user_version a fully migrated database reports.
func SchemaVersion() int { return len(migrations) }

// Migrate applies every migration newer than the database's user_version,
// each in its own transaction.
func Migrate(db *sql.DB) error {
	current, err := userVersion(db)
	if err != nil {
		return err
	}
	if current > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than this build (%d)", current, len(migrations))
	}

	for v := current; v < len(migrations); v++ {
		if err := applyMigration(db, v+1, migrations[v]); err != nil {
			return err
		}
	}
	return nil
}

func applyMigration(db *sql.DB, version int, stmts []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migration %d: begin: %w", version, err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d step %d: %w", version, i+1, err)
		}
	}
	// PRAGMA arguments cannot be bound parameters.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("migration %d: recording version: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migration %d: commit: %w", version, err)
	}
	return nil
}

func userVersion(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}
