package catalog

import "testing"

func TestSpeciesIndexes(t *testing.T) {
	if len(AllSpecies) == 0 {
		t.Fatal("species table is empty")
	}

	plain := 0
	for _, s := range AllSpecies {
		if !s.Dark && !s.Shiny {
			plain++
		}
	}
	if got := len(DarkSpecies) + len(ShinySpecies) + plain; got != len(AllSpecies) {
		t.Errorf("variant partition covers %d species, want %d", got, len(AllSpecies))
	}

	total := 0
	for _, r := range Rarities {
		total += len(SpeciesByRarity(r))
	}
	if total != len(AllSpecies) {
		t.Errorf("rarity partition covers %d species, want %d", total, len(AllSpecies))
	}

	s, ok := SpeciesByID("koi")
	if !ok {
		t.Fatal("koi missing from catalog")
	}
	if s.Rarity != Rare {
		t.Errorf("koi rarity = %q, want %q", s.Rarity, Rare)
	}

	if _, ok := SpeciesByID("no_such_fish"); ok {
		t.Error("lookup of unknown id should report ok=false")
	}
}

func TestLegendariesAreVariantsOnly(t *testing.T) {
	for _, s := range SpeciesByRarity(Legendary) {
		if !s.Dark && !s.Shiny {
			t.Errorf("legendary %q is neither dark nor shiny", s.ID)
		}
	}
	if len(SpeciesByRarity(Legendary)) == 0 {
		t.Fatal("no legendary species in catalog")
	}
}

func TestActiveAt(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		hour       int
		want       bool
	}{
		{"daytime in window", 6, 22, 12, true},
		{"daytime at start", 6, 22, 6, true},
		{"daytime at end is excluded", 6, 22, 22, false},
		{"wraparound late night", 22, 6, 23, true},
		{"wraparound early morning", 22, 6, 3, true},
		{"wraparound midday excluded", 22, 6, 12, false},
		{"wraparound at end excluded", 22, 6, 6, false},
		{"all day", 0, 24, 0, true},
		{"all day late", 0, 24, 23, true},
	}
	for _, tt := range tests {
		s := Species{StartHour: tt.start, EndHour: tt.end}
		if got := s.ActiveAt(tt.hour); got != tt.want {
			t.Errorf("%s: ActiveAt(%d) = %v, want %v", tt.name, tt.hour, got, tt.want)
		}
	}
}

func TestActiveSpeciesAlwaysNonEmpty(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		if len(ActiveSpecies(hour)) == 0 {
			t.Errorf("no species active at hour %d", hour)
		}
	}
}

func TestEventPools(t *testing.T) {
	if len(GlobalEventPool) != len(GlobalPositiveEvents)+len(GlobalNegativeEvents)+len(SpecialEvents) {
		t.Error("global pool does not cover positive+negative+special")
	}
	if len(PersonalEventPool) != len(PersonalPositiveEvents)+len(PersonalNegativeEvents) {
		t.Error("personal pool does not cover positive+negative")
	}

	// Pool order is a selection contract: positive, then negative, then special.
	if GlobalEventPool[0].ID != GlobalPositiveEvents[0].ID {
		t.Error("global pool must start with the positive events")
	}
	if last := GlobalEventPool[len(GlobalEventPool)-1]; last.Scope != Special {
		t.Errorf("global pool must end with special events, got scope %q", last.Scope)
	}

	for _, e := range AllEvents {
		if e.Global() && (e.Scope == PersonalPositive || e.Scope == PersonalNegative) {
			t.Errorf("event %q: personal scope reported as global", e.ID)
		}
		if !e.Global() && e.DurationSeconds != 0 {
			t.Errorf("personal event %q has a duration; personal effects are instantaneous", e.ID)
		}
	}

	e, ok := EventByID("storm")
	if !ok {
		t.Fatal("storm missing from catalog")
	}
	if v, _ := e.Effects[EffNoFishing].(bool); !v {
		t.Error("storm should carry the no_fishing effect")
	}
}
