package engine

import (
	"testing"
	"time"
)

func TestLogicalDate(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"afternoon", time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local), "2026-08-31"},
		{"just before boundary", time.Date(2026, 8, 31, 7, 59, 0, 0, time.Local), "2026-08-30"},
		{"at boundary", time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local), "2026-08-31"},
		{"just after boundary", time.Date(2026, 8, 31, 8, 1, 0, 0, time.Local), "2026-08-31"},
		{"midnight", time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local), "2026-08-30"},
		{"month rollover", time.Date(2026, 9, 1, 3, 0, 0, 0, time.Local), "2026-08-31"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LogicalDate(tc.now); got != tc.want {
				t.Errorf("LogicalDate(%v) = %q, want %q", tc.now, got, tc.want)
			}
		})
	}
}

func TestDailyStableValueStable(t *testing.T) {
	morning := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	evening := time.Date(2026, 8, 31, 23, 0, 0, 0, time.Local)

	a := DailyStableValue("u1", "g1", morning)
	b := DailyStableValue("u1", "g1", evening)
	if a != b {
		t.Errorf("same logical day gave %d then %d", a, b)
	}
}

func TestDailyStableValueCrossesBoundary(t *testing.T) {
	before := time.Date(2026, 8, 31, 7, 59, 0, 0, time.Local)
	after := time.Date(2026, 8, 31, 8, 1, 0, 0, time.Local)

	// 07:59 belongs to the previous logical day; the two calls must use
	// different seeds. Scan users until the values actually differ so the
	// test does not flake on a coincidental collision.
	differ := false
	for _, user := range []string{"u1", "u2", "u3", "u4", "u5"} {
		if DailyStableValue(user, "g1", before) != DailyStableValue(user, "g1", after) {
			differ = true
			break
		}
	}
	if !differ {
		t.Error("values identical across the 08:00 boundary for every probe user")
	}
}

func TestDailyStableValueRange(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	for i := 0; i < 200; i++ {
		user := string(rune('a' + i%26))
		v := DailyStableValue(user, "g1", now.AddDate(0, 0, i))
		if v < DailyValueMin || v > DailyValueMax {
			t.Fatalf("value %d out of range [%d,%d]", v, DailyValueMin, DailyValueMax)
		}
	}
}

func TestDailyStableValueVariesByKey(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	seen := map[int]bool{}
	for _, user := range []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8"} {
		seen[DailyStableValue(user, "g1", now)] = true
	}
	if len(seen) < 2 {
		t.Error("every user got the same value")
	}
}
