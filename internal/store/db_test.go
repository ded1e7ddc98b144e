package store

import (
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenMemory(t *testing.T) {
	db := testDB(t)
	if db.Path != ":memory:" {
		t.Errorf("Path = %q, want :memory:", db.Path)
	}
}

func TestSchemaVersion(t *testing.T) {
	db := testDB(t)

	v, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if v != 3 {
		t.Errorf("SchemaVersion = %d, want 3", v)
	}
}

func TestTablesExist(t *testing.T) {
	db := testDB(t)

	tables := []string{"schema_versions", "accounts", "events", "collection"}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found: %v", table, err)
		}
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	db := testDB(t)

	// Running migrate again should be a no-op
	if err := db.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	v, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if v != 3 {
		t.Errorf("SchemaVersion after re-migrate = %d, want 3", v)
	}
}

func TestAccountKeyUnique(t *testing.T) {
	db := testDB(t)

	_, err := db.Exec(`
		INSERT INTO accounts (group_id, user_id, created_at, updated_at)
		VALUES ('g1', 'u1', 1000, 1000)
	`)
	if err != nil {
		t.Fatalf("valid insert failed: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO accounts (group_id, user_id, created_at, updated_at)
		VALUES ('g1', 'u1', 2000, 2000)
	`)
	if err == nil {
		t.Error("expected error for duplicate (group_id, user_id), got nil")
	}
}

func TestCollectionKeyUnique(t *testing.T) {
	db := testDB(t)

	_, err := db.Exec(`
		INSERT INTO collection (group_id, user_id, species_id, max_length, first_catch)
		VALUES ('g1', 'u1', 'koi', 10.0, 1000)
	`)
	if err != nil {
		t.Fatalf("valid insert failed: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO collection (group_id, user_id, species_id, max_length, first_catch)
		VALUES ('g1', 'u1', 'koi', 20.0, 2000)
	`)
	if err == nil {
		t.Error("expected error for duplicate (group_id, user_id, species_id), got nil")
	}
}

func TestWALMode(t *testing.T) {
	db := testDB(t)

	var mode string
	err := db.QueryRow("PRAGMA journal_mode").Scan(&mode)
	if err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	// In-memory databases may use "memory" mode instead of WAL
	if mode != "wal" && mode != "memory" {
		t.Errorf("journal_mode = %q, want wal or memory", mode)
	}
}
