package store

import (
	"fmt"
	"time"
)

// EventInstance is an active world event in a group. Expiry is checked at
// read time; expired rows linger until the sweeper removes them.
type EventInstance struct {
	ID          int64  `json:"id"`
	GroupID     string `json:"group_id"`
	EventID     string `json:"event_id"`
	ExpireAt    int64  `json:"expire_at"`
	TriggeredBy string `json:"triggered_by"`
	CreatedAt   int64  `json:"created_at"`
}

// AddEvent records a timed event for a group. Returns the row id.
func (db *DB) AddEvent(groupID, eventID string, duration time.Duration, triggeredBy string, now time.Time) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO events (group_id, event_id, expire_at, triggered_by, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, groupID, eventID, now.Add(duration).UnixMilli(), triggeredBy, now.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("event id: %w", err)
	}
	return id, nil
}

// ActiveEvents returns the unexpired events of a group, oldest first.
func (db *DB) ActiveEvents(groupID string, now time.Time) ([]EventInstance, error) {
	rows, err := db.Query(`
		SELECT id, group_id, event_id, expire_at, triggered_by, created_at
		FROM events
		WHERE group_id = ? AND expire_at > ?
		ORDER BY created_at ASC
	`, groupID, now.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("query active events: %w", err)
	}
	defer rows.Close()

	var out []EventInstance
	for rows.Next() {
		var e EventInstance
		if err := rows.Scan(&e.ID, &e.GroupID, &e.EventID, &e.ExpireAt, &e.TriggeredBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// EventActive reports whether any unexpired instance of the given event
// exists in the group.
func (db *DB) EventActive(groupID, eventID string, now time.Time) (bool, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM events WHERE group_id = ? AND event_id = ? AND expire_at > ?`,
		groupID, eventID, now.UnixMilli()).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check event: %w", err)
	}
	return n > 0, nil
}

// CleanupExpired deletes events whose expiry has passed. Returns the number
// of rows removed.
func (db *DB) CleanupExpired(now time.Time) (int64, error) {
	res, err := db.Exec(`DELETE FROM events WHERE expire_at <= ?`, now.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("cleanup events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup count: %w", err)
	}
	return n, nil
}
