package engine

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand"
	"time"
)

// DailyValueMin and DailyValueMax bound the stable daily value.
const (
	DailyValueMin = -30
	DailyValueMax = 30
)

// LogicalDate returns the logical day of now as YYYY-MM-DD. The day rolls
// over at 08:00 local time, not midnight, so hours before 08:00 still
// belong to the previous day.
func LogicalDate(now time.Time) string {
	if now.Hour() < 8 {
		now = now.AddDate(0, 0, -1)
	}
	return now.Format("2006-01-02")
}

// DailyStableValue computes the user's stable value for the logical day of
// now. Pure: same inputs within one logical day give the same value, and
// no state is touched. The seeded generator is dedicated to this one
// computation and never feeds the draw path.
func DailyStableValue(userID, groupID string, now time.Time) int {
	sum := md5.Sum([]byte(userID + "_" + groupID + "_" + LogicalDate(now)))
	seed := int64(binary.BigEndian.Uint64(sum[:8]))
	rng := rand.New(rand.NewSource(seed))
	return DailyValueMin + rng.Intn(DailyValueMax-DailyValueMin+1)
}
