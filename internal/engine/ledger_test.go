package engine

import (
	"errors"
	"testing"

	"github.com/lazypower/pond/internal/catalog"
)

func TestAddBait(t *testing.T) {
	e := testEngine(t)

	if _, _, err := e.AdjustKarma("g1", "u1", "alice", 100); err != nil {
		t.Fatalf("AdjustKarma: %v", err)
	}

	res, err := e.AddBait("g1", "u1", "alice")
	if err != nil {
		t.Fatalf("AddBait: %v", err)
	}
	if res.Count != 1 || res.CostPaid != BaitCost {
		t.Errorf("result = %+v, want count 1 cost %d", res, BaitCost)
	}
	if res.BonusPercent != 2 {
		t.Errorf("BonusPercent = %d, want 2", res.BonusPercent)
	}

	acct, _ := e.DB.GetAccount("g1", "u1", LogicalDate(e.now()))
	if acct.TotalKarma != 100-BaitCost {
		t.Errorf("total karma = %d, want %d", acct.TotalKarma, 100-BaitCost)
	}
}

func TestAddBaitBonusCap(t *testing.T) {
	e := testEngine(t)

	e.AdjustKarma("g1", "u1", "alice", 1000)

	var last *BaitResult
	for i := 0; i < 15; i++ {
		res, err := e.AddBait("g1", "u1", "alice")
		if err != nil {
			t.Fatalf("AddBait %d: %v", i+1, err)
		}
		last = res
	}
	if last.Count != 15 {
		t.Errorf("count = %d, want 15", last.Count)
	}
	if last.BonusPercent != 20 {
		t.Errorf("BonusPercent = %d, want capped 20", last.BonusPercent)
	}
}

func TestAddBaitInsufficientFunds(t *testing.T) {
	e := testEngine(t)

	e.AdjustKarma("g1", "u1", "alice", BaitCost-1)

	_, err := e.AddBait("g1", "u1", "alice")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	// The failed attempt must not move karma.
	acct, _ := e.DB.GetAccount("g1", "u1", LogicalDate(e.now()))
	if acct.TotalKarma != BaitCost-1 {
		t.Errorf("total karma = %d, want %d", acct.TotalKarma, BaitCost-1)
	}
}

func TestAddBaitFreeFlag(t *testing.T) {
	e := testEngine(t)

	// Broke but holding a free-bait flag.
	e.personal.setFreeBait(accountKey("g1", "u1"))

	res, err := e.AddBait("g1", "u1", "alice")
	if err != nil {
		t.Fatalf("AddBait: %v", err)
	}
	if res.CostPaid != 0 {
		t.Errorf("CostPaid = %d, want 0", res.CostPaid)
	}
	if res.Count != 1 {
		t.Errorf("Count = %d, want 1", res.Count)
	}

	// The flag is one-shot; the next toss is paid again.
	if _, err := e.AddBait("g1", "u1", "alice"); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("second toss err = %v, want ErrInsufficientFunds", err)
	}
}

func TestAdjustKarma(t *testing.T) {
	e := testEngine(t)

	today, total, err := e.AdjustKarma("g1", "u1", "alice", 10)
	if err != nil {
		t.Fatalf("AdjustKarma: %v", err)
	}
	if today != 10 || total != 10 {
		t.Errorf("totals = %d/%d, want 10/10", today, total)
	}

	today, total, err = e.AdjustKarma("g1", "u1", "alice", 5)
	if err != nil {
		t.Fatalf("AdjustKarma: %v", err)
	}
	if today != 15 || total != 15 {
		t.Errorf("totals = %d/%d, want 15/15", today, total)
	}
}

func TestEnsureDailyValueCachesComputation(t *testing.T) {
	e := testEngine(t)

	v1, err := e.EnsureDailyValue("g1", "u1")
	if err != nil {
		t.Fatalf("EnsureDailyValue: %v", err)
	}
	if v1 < DailyValueMin || v1 > DailyValueMax {
		t.Fatalf("value %d out of range", v1)
	}
	if v1 != DailyStableValue("u1", "g1", e.now()) {
		t.Error("cached value differs from the pure computation")
	}

	v2, err := e.EnsureDailyValue("g1", "u1")
	if err != nil {
		t.Fatalf("EnsureDailyValue: %v", err)
	}
	if v1 != v2 {
		t.Errorf("second read gave %d, want %d", v2, v1)
	}

	acct, _ := e.DB.GetAccount("g1", "u1", LogicalDate(e.now()))
	if acct.DailyValue == nil || *acct.DailyValue != v1 {
		t.Errorf("stored daily value = %v, want %d", acct.DailyValue, v1)
	}
}

func TestCheckTitlesUnlocks(t *testing.T) {
	e := testEngine(t)
	day := LogicalDate(e.now())

	e.AdjustKarma("g1", "u1", "alice", 1200)

	titles, err := e.CheckTitles("g1", "u1", day)
	if err != nil {
		t.Fatalf("CheckTitles: %v", err)
	}
	// 1200 today and lifetime crosses three today tiers and one total tier.
	want := map[string]bool{
		"Karma Novice":        true,
		"Digital Hermit":      true,
		"Quantum Bodhisattva": true,
		"Pond Disciple":       true,
	}
	if len(titles) != len(want) {
		t.Fatalf("unlocked %v, want %d titles", titles, len(want))
	}
	for _, title := range titles {
		if !want[title] {
			t.Errorf("unexpected title %q", title)
		}
	}

	// Second check unlocks nothing new.
	titles, err = e.CheckTitles("g1", "u1", day)
	if err != nil {
		t.Fatalf("CheckTitles: %v", err)
	}
	if len(titles) != 0 {
		t.Errorf("re-check unlocked %v", titles)
	}
}

func TestCollectionSummary(t *testing.T) {
	e := testEngine(t)

	res, err := e.Draw("g1", "u1", "alice")
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !res.Success {
		t.Fatal("draw failed")
	}

	summary, err := e.Collection("g1", "u1")
	if err != nil {
		t.Fatalf("Collection: %v", err)
	}
	if summary.Unlocked < 1 {
		t.Errorf("Unlocked = %d, want at least 1", summary.Unlocked)
	}
	if summary.Total <= summary.Unlocked {
		t.Errorf("Total = %d, not above Unlocked %d", summary.Total, summary.Unlocked)
	}
	if summary.ByRarity[res.Catch.Species.Rarity] < 1 {
		t.Errorf("ByRarity missing the caught tier: %+v", summary.ByRarity)
	}
	if summary.DarkTotal != len(catalog.DarkSpecies) || summary.ShinyTotal != len(catalog.ShinySpecies) {
		t.Errorf("variant totals = %d/%d, want %d/%d",
			summary.DarkTotal, summary.ShinyTotal, len(catalog.DarkSpecies), len(catalog.ShinySpecies))
	}
}

func TestRankingsUnknownKind(t *testing.T) {
	e := testEngine(t)

	_, err := e.Rankings("g1", "banana")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRankingsDraws(t *testing.T) {
	e := testEngine(t)

	e.Draw("g1", "u1", "alice")
	e.Draw("g1", "u1", "alice")
	e.Draw("g1", "u2", "bob")

	top, err := e.Rankings("g1", "draws")
	if err != nil {
		t.Fatalf("Rankings: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("entries = %d, want 2", len(top))
	}
	if top[0].UserID != "u1" || top[0].Value != 2 {
		t.Errorf("top = %+v, want u1/2", top[0])
	}
}
