package engine

import (
	"testing"
	"time"

	"github.com/lazypower/pond/internal/catalog"
)

func TestPickWeightedBands(t *testing.T) {
	pool := []catalog.EventDef{
		{ID: "a", Weight: 1.0},
		{ID: "b", Weight: 2.0},
		{ID: "c", Weight: 0.5},
	}

	cases := []struct {
		roll float64
		want string
	}{
		{0.0, "a"},
		{1.0, "a"},
		{1.01, "b"},
		{3.0, "b"},
		{3.2, "c"},
		{3.5, "c"},
	}
	for _, tc := range cases {
		if got := pickWeighted(tc.roll, pool); got.ID != tc.want {
			t.Errorf("pickWeighted(%v) = %s, want %s", tc.roll, got.ID, tc.want)
		}
	}
}

func TestPickWeightedFallthroughToFirst(t *testing.T) {
	pool := []catalog.EventDef{
		{ID: "first", Weight: 1.0},
		{ID: "second", Weight: 1.0},
	}
	// A roll past the total weight lands on the first entry, not the
	// last. Downstream behavior depends on this exact fallback.
	if got := pickWeighted(5.0, pool); got.ID != "first" {
		t.Errorf("fallthrough = %s, want first", got.ID)
	}
}

func TestActiveEffectsAggregatesInstances(t *testing.T) {
	e := testEngine(t)
	now := time.Now()

	// Two overlapping migrations double the rare odds twice.
	if _, err := e.DB.AddEvent("g1", "migration", 5*time.Minute, "u1", now); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if _, err := e.DB.AddEvent("g1", "migration", 5*time.Minute, "u2", now); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	effects, err := e.ActiveEffects("g1", now)
	if err != nil {
		t.Fatalf("ActiveEffects: %v", err)
	}
	if got := effects.Multiplier(catalog.EffRareMult); got != 4.0 {
		t.Errorf("rare multiplier = %v, want 4.0", got)
	}
}

func TestActiveEffectsIgnoresExpired(t *testing.T) {
	e := testEngine(t)
	now := time.Now()

	if _, err := e.DB.AddEvent("g1", "storm", time.Minute, "u1", now); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	effects, err := e.ActiveEffects("g1", now.Add(2*time.Minute))
	if err != nil {
		t.Fatalf("ActiveEffects: %v", err)
	}
	if effects.Flag(catalog.EffNoFishing) {
		t.Error("expired storm still blocks fishing")
	}
}

func TestProcessPersonalKarmaBoon(t *testing.T) {
	e := testEngine(t)
	day := LogicalDate(e.now())

	def, ok := catalog.EventByID("karma_boon")
	if !ok {
		t.Fatal("karma_boon missing from catalog")
	}
	msg, err := e.processPersonalEvent(def, "g1", "u1", "alice", day)
	if err != nil {
		t.Fatalf("processPersonalEvent: %v", err)
	}
	if msg == "" {
		t.Error("no message rendered")
	}

	acct, err := e.DB.GetAccount("g1", "u1", day)
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if acct.TodayKarma < 5 || acct.TodayKarma > 20 {
		t.Errorf("karma boon granted %d, want within [5,20]", acct.TodayKarma)
	}
}

func TestProcessPersonalKarmaLoss(t *testing.T) {
	e := testEngine(t)
	day := LogicalDate(e.now())

	def, _ := catalog.EventByID("rod_snap")
	if _, err := e.processPersonalEvent(def, "g1", "u1", "alice", day); err != nil {
		t.Fatalf("processPersonalEvent: %v", err)
	}

	acct, _ := e.DB.GetAccount("g1", "u1", day)
	if acct.TotalKarma != -5 {
		t.Errorf("rod snap left total karma %d, want -5", acct.TotalKarma)
	}
}

func TestProcessPersonalCurse(t *testing.T) {
	e := testEngine(t)
	day := LogicalDate(e.now())

	def, _ := catalog.EventByID("cursed")
	if _, err := e.processPersonalEvent(def, "g1", "u1", "alice", day); err != nil {
		t.Fatalf("processPersonalEvent: %v", err)
	}

	key := accountKey("g1", "u1")
	for i := 0; i < 3; i++ {
		if !e.personal.consumeCurse(key) {
			t.Fatalf("curse charge %d missing", i+1)
		}
	}
	if e.personal.consumeCurse(key) {
		t.Error("curse outlived its three charges")
	}
}

func TestProcessPersonalOneShotFlags(t *testing.T) {
	e := testEngine(t)
	day := LogicalDate(e.now())
	key := accountKey("g1", "u1")

	omen, _ := catalog.EventByID("bad_omen")
	if _, err := e.processPersonalEvent(omen, "g1", "u1", "alice", day); err != nil {
		t.Fatalf("processPersonalEvent: %v", err)
	}
	if !e.personal.consumeNextFail(key) {
		t.Error("next-fail flag not set")
	}
	if e.personal.consumeNextFail(key) {
		t.Error("next-fail flag survived consumption")
	}

	bait, _ := catalog.EventByID("free_bait")
	if _, err := e.processPersonalEvent(bait, "g1", "u1", "alice", day); err != nil {
		t.Fatalf("processPersonalEvent: %v", err)
	}
	if !e.personal.consumeFreeBait(key) {
		t.Error("free-bait flag not set")
	}
	if e.personal.consumeFreeBait(key) {
		t.Error("free-bait flag survived consumption")
	}
}

func TestTriggerRandomEventGateClosed(t *testing.T) {
	e := testEngine(t)
	// EventChance 0 means the gate never opens.
	def, msg, personal, err := e.triggerRandomEvent("g1", "u1", "alice", LogicalDate(e.now()))
	if err != nil {
		t.Fatalf("triggerRandomEvent: %v", err)
	}
	if def.ID != "" || msg != "" || personal != nil {
		t.Errorf("closed gate produced event %q", def.ID)
	}
}

func TestTriggerRandomEventAlways(t *testing.T) {
	e := testEngine(t)
	e.EventChance = 1.0
	day := LogicalDate(e.now())

	sawGlobal, sawPersonal := false, false
	for i := 0; i < 200; i++ {
		def, msg, _, err := e.triggerRandomEvent("g1", "u1", "alice", day)
		if err != nil {
			t.Fatalf("triggerRandomEvent: %v", err)
		}
		if def.ID == "" {
			t.Fatal("open gate produced no event")
		}
		if msg == "" {
			t.Errorf("event %s rendered empty message", def.ID)
		}
		if def.Global() {
			sawGlobal = true
		} else {
			sawPersonal = true
		}
	}
	if !sawGlobal || !sawPersonal {
		t.Errorf("200 triggers: global=%v personal=%v, want both", sawGlobal, sawPersonal)
	}

	// Every global trigger left a stored instance.
	events, err := e.DB.ActiveEvents("g1", e.now())
	if err != nil {
		t.Fatalf("ActiveEvents: %v", err)
	}
	if len(events) == 0 {
		t.Error("no global event instances stored")
	}
}

func TestRenderMessage(t *testing.T) {
	got := renderMessage("hi {nickname}, +{karma}!", "alice", 12)
	if got != "hi alice, +12!" {
		t.Errorf("renderMessage = %q", got)
	}
}

func TestCleanupExpiredViaEngine(t *testing.T) {
	e := testEngine(t)
	now := e.now()

	e.DB.AddEvent("g1", "storm", -time.Minute, "u1", now)
	e.DB.AddEvent("g1", "migration", time.Hour, "u1", now)

	n, err := e.CleanupExpired()
	if err != nil {
		t.Fatalf("CleanupExpired: %v", err)
	}
	if n != 1 {
		t.Errorf("removed = %d, want 1", n)
	}
}
