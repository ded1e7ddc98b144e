package engine

import (
	"math"
	"testing"

	"github.com/lazypower/pond/internal/catalog"
)

func TestDistributionSumsToOne(t *testing.T) {
	e := testEngine(t)

	effectSets := []EffectSet{
		{},
		{catalog.EffRareMult: 2.0},
		{catalog.EffRareMult: 0.5, catalog.EffLegendaryMult: 5.0},
		{catalog.EffLegendaryMult: 0.0},
		{catalog.EffChaos: true},
	}
	for _, effects := range effectSets {
		for bait := 0; bait <= 1000; bait += 37 {
			probs := e.rarityDistribution(bait, effects)
			var sum float64
			for _, p := range probs {
				sum += p
			}
			if math.Abs(sum-1.0) > 1e-9 {
				t.Fatalf("bait=%d effects=%v: sum = %v", bait, effects, sum)
			}
		}
	}
}

func TestBaitBonusCapped(t *testing.T) {
	e := testEngine(t)

	// 10 tosses reach the 20% cap; more must not change anything.
	capped := e.rarityDistribution(10, EffectSet{})
	over := e.rarityDistribution(500, EffectSet{})
	for _, r := range catalog.Rarities {
		if capped[r] != over[r] {
			t.Errorf("rarity %s: prob changed past the bait cap: %v vs %v", r, capped[r], over[r])
		}
	}

	// And bait must actually raise the rare odds below the cap.
	none := e.rarityDistribution(0, EffectSet{})
	some := e.rarityDistribution(5, EffectSet{})
	if some[catalog.Rare] <= none[catalog.Rare] {
		t.Errorf("bait did not raise rare odds: %v vs %v", some[catalog.Rare], none[catalog.Rare])
	}
}

func TestRareMultiplierCoversEpic(t *testing.T) {
	e := testEngine(t)

	base := e.rarityDistribution(0, EffectSet{})
	boosted := e.rarityDistribution(0, EffectSet{catalog.EffRareMult: 2.0})

	baseRatio := base[catalog.Epic] / base[catalog.Common]
	boostedRatio := boosted[catalog.Epic] / boosted[catalog.Common]
	if boostedRatio <= baseRatio {
		t.Errorf("rare multiplier did not lift epic relative to common: %v vs %v", boostedRatio, baseRatio)
	}
}

func TestPickRarityWalkOrder(t *testing.T) {
	probs := map[catalog.Rarity]float64{
		catalog.Legendary: 0.02,
		catalog.Epic:      0.08,
		catalog.Rare:      0.20,
		catalog.Common:    0.70,
	}

	// The walk accumulates legendary first, so the roll bands are
	// [0,0.02) legendary, [0.02,0.10) epic, [0.10,0.30) rare, rest common.
	cases := []struct {
		roll float64
		want catalog.Rarity
	}{
		{0.0, catalog.Legendary},
		{0.019, catalog.Legendary},
		{0.02, catalog.Epic},
		{0.099, catalog.Epic},
		{0.10, catalog.Rare},
		{0.299, catalog.Rare},
		{0.30, catalog.Common},
		{0.999, catalog.Common},
	}
	for _, tc := range cases {
		if got := pickRarity(tc.roll, probs); got != tc.want {
			t.Errorf("pickRarity(%v) = %s, want %s", tc.roll, got, tc.want)
		}
	}
}

func TestPickRarityFallthrough(t *testing.T) {
	// A roll past every cumulative weight falls through to common.
	probs := map[catalog.Rarity]float64{catalog.Legendary: 0.1}
	if got := pickRarity(0.99, probs); got != catalog.Common {
		t.Errorf("fallthrough = %s, want common", got)
	}
}
