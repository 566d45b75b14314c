package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"evaluations", "evaluation_violations", "evaluation_modifications"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_evaluations_player", "idx_evaluations_created", "idx_evaluations_status"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_RejectsUnknownStatus(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO evaluations (id, player_id, computed_status, effective_status, created_at)
		VALUES ('e1', 'p1', 'GREEN', 'PURPLE', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_ChildRowsNeedParent(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO evaluation_violations (evaluation_id, seq, rule_id, severity) VALUES ('missing', 0, 'PLAN_SHAPE', 'error')`)
	assert.Error(t, err, "foreign keys are enforced")
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/audit.db"

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
