package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Account is the persistent per-(group,user) record: karma ledger, daily
// counters, collection progress and title/profile metadata.
//
// TodayKarma, BaitCount and DailyValue are only meaningful for the logical
// day stored next to them; read paths project stale values to zero without
// writing, write paths reset and persist the new date.
type Account struct {
	GroupID  string
	UserID   string
	Nickname string

	TotalKarma  int64
	TodayKarma  int64
	TodayDate   string
	ActionCount int64

	BaitCount      int
	BaitDate       string
	DailyValue     *int
	DailyValueDate string

	TotalDraws int64

	UnlockedTitles []string
	Profile        string
	Tags           []string

	CreatedAt int64
	UpdatedAt int64
}

const accountColumns = `group_id, user_id, nickname,
	total_karma, today_karma, today_date, action_count,
	bait_count, bait_date, daily_value, daily_value_date,
	total_draws, unlocked_titles, profile, tags, created_at, updated_at`

func scanAccount(row *sql.Row, day string) (*Account, error) {
	var a Account
	var titles, tags string
	var dailyValue sql.NullInt64
	err := row.Scan(&a.GroupID, &a.UserID, &a.Nickname,
		&a.TotalKarma, &a.TodayKarma, &a.TodayDate, &a.ActionCount,
		&a.BaitCount, &a.BaitDate, &dailyValue, &a.DailyValueDate,
		&a.TotalDraws, &titles, &a.Profile, &tags, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}

	json.Unmarshal([]byte(titles), &a.UnlockedTitles)
	json.Unmarshal([]byte(tags), &a.Tags)

	// Lazy daily projection: values from a previous logical day read as
	// unset. The stored row is left untouched.
	if a.TodayDate != day {
		a.TodayKarma = 0
	}
	if a.BaitDate != day {
		a.BaitCount = 0
	}
	if dailyValue.Valid && a.DailyValueDate == day {
		v := int(dailyValue.Int64)
		a.DailyValue = &v
	}
	return &a, nil
}

// GetAccount returns the account projected onto the given logical day, or
// nil if it does not exist.
func (db *DB) GetAccount(groupID, userID, day string) (*Account, error) {
	row := db.QueryRow(`SELECT `+accountColumns+` FROM accounts WHERE group_id = ? AND user_id = ?`,
		groupID, userID)
	return scanAccount(row, day)
}

// GetOrCreateAccount returns the account, creating an empty one if needed.
// A non-empty nickname refreshes the stored one.
func (db *DB) GetOrCreateAccount(groupID, userID, nickname, day string) (*Account, error) {
	a, err := db.GetAccount(groupID, userID, day)
	if err != nil {
		return nil, err
	}
	if a != nil {
		if nickname != "" && nickname != a.Nickname {
			now := time.Now().UnixMilli()
			if _, err := db.Exec(`UPDATE accounts SET nickname = ?, updated_at = ? WHERE group_id = ? AND user_id = ?`,
				nickname, now, groupID, userID); err != nil {
				return nil, fmt.Errorf("update nickname: %w", err)
			}
			a.Nickname = nickname
		}
		return a, nil
	}

	now := time.Now().UnixMilli()
	_, err = db.Exec(`
		INSERT INTO accounts (group_id, user_id, nickname, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, groupID, userID, nickname, now, now)
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return &Account{GroupID: groupID, UserID: userID, Nickname: nickname, CreatedAt: now, UpdatedAt: now}, nil
}

// UpdateKarma applies a signed delta to both the daily and lifetime karma
// totals, resetting the daily total first when the stored date is not the
// given logical day. Returns the new (today, total) pair. Callers are
// responsible for serializing concurrent updates to the same key.
func (db *DB) UpdateKarma(groupID, userID, nickname string, delta int64, day string) (int64, int64, error) {
	now := time.Now().UnixMilli()

	tx, err := db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("begin karma update: %w", err)
	}
	defer tx.Rollback()

	var total, today int64
	var storedDate string
	err = tx.QueryRow(`SELECT total_karma, today_karma, today_date FROM accounts WHERE group_id = ? AND user_id = ?`,
		groupID, userID).Scan(&total, &today, &storedDate)
	switch {
	case err == sql.ErrNoRows:
		total, today = delta, delta
		_, err = tx.Exec(`
			INSERT INTO accounts (group_id, user_id, nickname, total_karma, today_karma, today_date, action_count, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		`, groupID, userID, nickname, total, today, day, now, now)
		if err != nil {
			return 0, 0, fmt.Errorf("insert account: %w", err)
		}
	case err != nil:
		return 0, 0, fmt.Errorf("read karma: %w", err)
	default:
		if storedDate != day {
			today = 0
		}
		total += delta
		today += delta
		_, err = tx.Exec(`
			UPDATE accounts SET nickname = ?, total_karma = ?, today_karma = ?, today_date = ?,
				action_count = action_count + 1, updated_at = ?
			WHERE group_id = ? AND user_id = ?
		`, nickname, total, today, day, now, groupID, userID)
		if err != nil {
			return 0, 0, fmt.Errorf("update karma: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit karma update: %w", err)
	}
	return today, total, nil
}

// IncrementBait bumps the daily bait counter, resetting it first on a new
// logical day. Returns the new count.
func (db *DB) IncrementBait(groupID, userID, day string) (int, error) {
	now := time.Now().UnixMilli()

	var count int
	var storedDate string
	err := db.QueryRow(`SELECT bait_count, bait_date FROM accounts WHERE group_id = ? AND user_id = ?`,
		groupID, userID).Scan(&count, &storedDate)
	switch {
	case err == sql.ErrNoRows:
		_, err = db.Exec(`
			INSERT INTO accounts (group_id, user_id, bait_count, bait_date, created_at, updated_at)
			VALUES (?, ?, 1, ?, ?, ?)
		`, groupID, userID, day, now, now)
		if err != nil {
			return 0, fmt.Errorf("insert account: %w", err)
		}
		return 1, nil
	case err != nil:
		return 0, fmt.Errorf("read bait count: %w", err)
	}

	if storedDate != day {
		count = 0
	}
	count++
	_, err = db.Exec(`UPDATE accounts SET bait_count = ?, bait_date = ?, updated_at = ? WHERE group_id = ? AND user_id = ?`,
		count, day, now, groupID, userID)
	if err != nil {
		return 0, fmt.Errorf("update bait count: %w", err)
	}
	return count, nil
}

// IncrementDraws bumps the lifetime draw counter. Returns the new total.
func (db *DB) IncrementDraws(groupID, userID string) (int64, error) {
	now := time.Now().UnixMilli()
	res, err := db.Exec(`UPDATE accounts SET total_draws = total_draws + 1, updated_at = ? WHERE group_id = ? AND user_id = ?`,
		now, groupID, userID)
	if err != nil {
		return 0, fmt.Errorf("update draw count: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_, err = db.Exec(`
			INSERT INTO accounts (group_id, user_id, total_draws, created_at, updated_at)
			VALUES (?, ?, 1, ?, ?)
		`, groupID, userID, now, now)
		if err != nil {
			return 0, fmt.Errorf("insert account: %w", err)
		}
		return 1, nil
	}

	var total int64
	err = db.QueryRow(`SELECT total_draws FROM accounts WHERE group_id = ? AND user_id = ?`,
		groupID, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("read draw count: %w", err)
	}
	return total, nil
}

// SetDailyValue caches the stable daily value for the given logical day.
func (db *DB) SetDailyValue(groupID, userID string, value int, day string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO accounts (group_id, user_id, daily_value, daily_value_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(group_id, user_id) DO UPDATE SET
			daily_value      = excluded.daily_value,
			daily_value_date = excluded.daily_value_date,
			updated_at       = excluded.updated_at
	`, groupID, userID, value, day, now, now)
	if err != nil {
		return fmt.Errorf("set daily value: %w", err)
	}
	return nil
}

// UnlockTitle adds a title to the account's unlocked set. Returns true if
// it was newly unlocked.
func (db *DB) UnlockTitle(groupID, userID, title string) (bool, error) {
	now := time.Now().UnixMilli()

	var raw string
	err := db.QueryRow(`SELECT unlocked_titles FROM accounts WHERE group_id = ? AND user_id = ?`,
		groupID, userID).Scan(&raw)
	if err == sql.ErrNoRows {
		data, _ := json.Marshal([]string{title})
		_, err = db.Exec(`
			INSERT INTO accounts (group_id, user_id, unlocked_titles, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, groupID, userID, string(data), now, now)
		if err != nil {
			return false, fmt.Errorf("insert account: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read titles: %w", err)
	}

	var titles []string
	json.Unmarshal([]byte(raw), &titles)
	for _, t := range titles {
		if t == title {
			return false, nil
		}
	}
	titles = append(titles, title)
	data, _ := json.Marshal(titles)
	_, err = db.Exec(`UPDATE accounts SET unlocked_titles = ?, updated_at = ? WHERE group_id = ? AND user_id = ?`,
		string(data), now, groupID, userID)
	if err != nil {
		return false, fmt.Errorf("update titles: %w", err)
	}
	return true, nil
}

// UpdateProfile stores the externally-owned profile text and tag set.
func (db *DB) UpdateProfile(groupID, userID, profile string, tags []string) error {
	now := time.Now().UnixMilli()
	data, _ := json.Marshal(tags)
	if tags == nil {
		data = []byte("[]")
	}
	_, err := db.Exec(`
		INSERT INTO accounts (group_id, user_id, profile, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(group_id, user_id) DO UPDATE SET
			profile    = excluded.profile,
			tags       = excluded.tags,
			updated_at = excluded.updated_at
	`, groupID, userID, profile, string(data), now, now)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// RankEntry is one row of a group ranking.
type RankEntry struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Value    int64  `json:"value"`
}

// KarmaRanking returns the top accounts of a group by karma. kind is
// "today" (restricted to the given logical day) or "total".
func (db *DB) KarmaRanking(groupID, kind, day string, limit int) ([]RankEntry, error) {
	var rows *sql.Rows
	var err error
	if kind == "today" {
		rows, err = db.Query(`
			SELECT user_id, nickname, today_karma FROM accounts
			WHERE group_id = ? AND today_date = ?
			ORDER BY today_karma DESC LIMIT ?
		`, groupID, day, limit)
	} else {
		rows, err = db.Query(`
			SELECT user_id, nickname, total_karma FROM accounts
			WHERE group_id = ?
			ORDER BY total_karma DESC LIMIT ?
		`, groupID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("karma ranking: %w", err)
	}
	return scanRanking(rows)
}

// DrawRanking returns the top accounts of a group by lifetime draw count.
func (db *DB) DrawRanking(groupID string, limit int) ([]RankEntry, error) {
	rows, err := db.Query(`
		SELECT user_id, nickname, total_draws FROM accounts
		WHERE group_id = ? AND total_draws > 0
		ORDER BY total_draws DESC LIMIT ?
	`, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("draw ranking: %w", err)
	}
	return scanRanking(rows)
}

// CollectionRanking returns the top accounts of a group by distinct species
// collected.
func (db *DB) CollectionRanking(groupID string, limit int) ([]RankEntry, error) {
	rows, err := db.Query(`
		SELECT a.user_id, a.nickname, COUNT(c.species_id) AS n
		FROM accounts a
		JOIN collection c ON c.group_id = a.group_id AND c.user_id = a.user_id
		WHERE a.group_id = ?
		GROUP BY a.group_id, a.user_id
		ORDER BY n DESC LIMIT ?
	`, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("collection ranking: %w", err)
	}
	return scanRanking(rows)
}

func scanRanking(rows *sql.Rows) ([]RankEntry, error) {
	defer rows.Close()
	var out []RankEntry
	for rows.Next() {
		var e RankEntry
		if err := rows.Scan(&e.UserID, &e.Nickname, &e.Value); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
