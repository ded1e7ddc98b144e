package store

import (
	"fmt"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "accounts: per-(group,user) ledger and daily counters",
		SQL: `
CREATE TABLE accounts (
    group_id         TEXT NOT NULL,
    user_id          TEXT NOT NULL,
    nickname         TEXT NOT NULL DEFAULT '',

    -- Ledger
    total_karma      INTEGER NOT NULL DEFAULT 0,
    today_karma      INTEGER NOT NULL DEFAULT 0,
    today_date       TEXT NOT NULL DEFAULT '',
    action_count     INTEGER NOT NULL DEFAULT 0,

    -- Daily-gated counters
    bait_count       INTEGER NOT NULL DEFAULT 0,
    bait_date        TEXT NOT NULL DEFAULT '',
    daily_value      INTEGER,
    daily_value_date TEXT NOT NULL DEFAULT '',

    -- Collection progress
    total_draws      INTEGER NOT NULL DEFAULT 0,

    -- Titles and externally-owned profile metadata
    unlocked_titles  TEXT NOT NULL DEFAULT '[]',
    profile          TEXT NOT NULL DEFAULT '',
    tags             TEXT NOT NULL DEFAULT '[]',

    created_at       INTEGER NOT NULL,
    updated_at       INTEGER NOT NULL,

    PRIMARY KEY (group_id, user_id)
);
`,
	},
	{
		Version:     2,
		Description: "events: time-bounded group event instances",
		SQL: `
CREATE TABLE events (
    id           INTEGER PRIMARY KEY,
    group_id     TEXT NOT NULL,
    event_id     TEXT NOT NULL,
    expire_at    INTEGER NOT NULL,
    triggered_by TEXT NOT NULL DEFAULT '',
    created_at   INTEGER NOT NULL
);

CREATE INDEX idx_events_group_expire ON events(group_id, expire_at);
`,
	},
	{
		Version:     3,
		Description: "collection: per-(group,user,species) catch records",
		SQL: `
CREATE TABLE collection (
    id           INTEGER PRIMARY KEY,
    group_id     TEXT NOT NULL,
    user_id      TEXT NOT NULL,
    species_id   TEXT NOT NULL,
    max_length   REAL NOT NULL DEFAULT 0,
    catch_count  INTEGER NOT NULL DEFAULT 1,
    first_catch  INTEGER NOT NULL,

    UNIQUE (group_id, user_id, species_id)
);

CREATE INDEX idx_collection_owner ON collection(group_id, user_id);
`,
	},
}

func (db *DB) migrate() error {
	// Create schema_versions table if it doesn't exist
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the current schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&version)
	return version, err
}
