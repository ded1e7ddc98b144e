package store

import (
	"database/sql"
	"fmt"
	"time"
)

// CatchRecord is one species entry in a user's collection.
type CatchRecord struct {
	SpeciesID  string  `json:"species_id"`
	MaxLength  float64 `json:"max_length"`
	CatchCount int     `json:"catch_count"`
	FirstCatch int64   `json:"first_catch"`
}

// CatchResult describes how a single catch changed the collection.
//
// MaxLength is the length of this catch when it set a new record, and the
// previously stored record otherwise.
type CatchResult struct {
	IsNew      bool
	IsRecord   bool
	MaxLength  float64
	CatchCount int
}

// RecordCatch folds one catch into the collection and reports whether it
// was a first catch or a new length record.
func (db *DB) RecordCatch(groupID, userID, speciesID string, length float64) (CatchResult, error) {
	now := time.Now().UnixMilli()

	var stored float64
	var count int
	err := db.QueryRow(`SELECT max_length, catch_count FROM collection WHERE group_id = ? AND user_id = ? AND species_id = ?`,
		groupID, userID, speciesID).Scan(&stored, &count)
	if err == sql.ErrNoRows {
		_, err = db.Exec(`
			INSERT INTO collection (group_id, user_id, species_id, max_length, catch_count, first_catch)
			VALUES (?, ?, ?, ?, 1, ?)
		`, groupID, userID, speciesID, length, now)
		if err != nil {
			return CatchResult{}, fmt.Errorf("insert catch: %w", err)
		}
		return CatchResult{IsNew: true, IsRecord: true, MaxLength: length, CatchCount: 1}, nil
	}
	if err != nil {
		return CatchResult{}, fmt.Errorf("read catch: %w", err)
	}

	res := CatchResult{MaxLength: stored, CatchCount: count + 1}
	if length > stored {
		res.IsRecord = true
		res.MaxLength = length
	}
	_, err = db.Exec(`
		UPDATE collection SET max_length = ?, catch_count = catch_count + 1
		WHERE group_id = ? AND user_id = ? AND species_id = ?
	`, res.MaxLength, groupID, userID, speciesID)
	if err != nil {
		return CatchResult{}, fmt.Errorf("update catch: %w", err)
	}
	return res, nil
}

// Collection returns all catch records of a user, earliest first catch
// first.
func (db *DB) Collection(groupID, userID string) ([]CatchRecord, error) {
	rows, err := db.Query(`
		SELECT species_id, max_length, catch_count, first_catch
		FROM collection
		WHERE group_id = ? AND user_id = ?
		ORDER BY first_catch ASC, id ASC
	`, groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}
	defer rows.Close()

	var out []CatchRecord
	for rows.Next() {
		var r CatchRecord
		if err := rows.Scan(&r.SpeciesID, &r.MaxLength, &r.CatchCount, &r.FirstCatch); err != nil {
			return nil, fmt.Errorf("scan catch: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CollectionCount returns the number of distinct species a user has caught.
func (db *DB) CollectionCount(groupID, userID string) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM collection WHERE group_id = ? AND user_id = ?`,
		groupID, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count collection: %w", err)
	}
	return n, nil
}
