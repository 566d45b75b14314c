package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Additive ALTER TABLE statements fail once the column exists.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS evaluations (
		id               TEXT PRIMARY KEY,
		player_id        TEXT NOT NULL,
		player_name      TEXT NOT NULL DEFAULT '',
		computed_status  TEXT NOT NULL CHECK (computed_status IN ('GREEN','YELLOW','RED')),
		effective_status TEXT NOT NULL CHECK (effective_status IN ('GREEN','YELLOW','RED')),
		flags            TEXT NOT NULL DEFAULT '',
		override_status  TEXT,
		override_reason  TEXT,
		override_applied INTEGER NOT NULL DEFAULT 0,
		plan_type_in     TEXT NOT NULL DEFAULT '',
		plan_type_out    TEXT NOT NULL DEFAULT '',
		valid            INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS evaluation_violations (
		evaluation_id TEXT NOT NULL REFERENCES evaluations(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		rule_id       TEXT NOT NULL,
		severity      TEXT NOT NULL CHECK (severity IN ('warning','error','critical')),
		day           INTEGER NOT NULL DEFAULT 0,
		message       TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (evaluation_id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS evaluation_modifications (
		evaluation_id TEXT NOT NULL REFERENCES evaluations(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		rule_id       TEXT NOT NULL,
		day           INTEGER NOT NULL DEFAULT 0,
		field         TEXT NOT NULL DEFAULT '',
		before_value  TEXT NOT NULL DEFAULT '',
		after_value   TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (evaluation_id, seq)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_player ON evaluations(player_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_created ON evaluations(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_status ON evaluations(effective_status)`,
}
