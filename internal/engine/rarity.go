package engine

import (
	"math"

	"github.com/lazypower/pond/internal/catalog"
)

// Base rarity weights before bait bonus and event multipliers.
var baseWeights = map[catalog.Rarity]float64{
	catalog.Common:    0.70,
	catalog.Rare:      0.20,
	catalog.Epic:      0.08,
	catalog.Legendary: 0.02,
}

// selectionOrder is the walk order of pickRarity. Reversing it changes
// which tier wins on floating-point boundary rolls, so it is pinned.
var selectionOrder = []catalog.Rarity{
	catalog.Legendary, catalog.Epic, catalog.Rare, catalog.Common,
}

// rarityDistribution computes the normalized tier probabilities for one
// draw. The bait bonus (2% per toss, capped at 20%) lands on the rare
// weight before multipliers; the rare multiplier also covers epic. An
// active chaos effect replaces everything with uniform random weights.
func (e *Engine) rarityDistribution(baitCount int, effects EffectSet) map[catalog.Rarity]float64 {
	probs := make(map[catalog.Rarity]float64, len(baseWeights))
	for r, w := range baseWeights {
		probs[r] = w
	}

	baitBonus := math.Min(float64(baitCount)*0.02, 0.20)
	rareMult := effects.Multiplier(catalog.EffRareMult)
	legendaryMult := effects.Multiplier(catalog.EffLegendaryMult)

	probs[catalog.Rare] = (probs[catalog.Rare] + baitBonus) * rareMult
	probs[catalog.Epic] = probs[catalog.Epic] * rareMult
	probs[catalog.Legendary] = probs[catalog.Legendary] * legendaryMult

	if effects.Flag(catalog.EffChaos) {
		for _, r := range catalog.Rarities {
			probs[r] = e.randFloat()
		}
	}

	var total float64
	for _, p := range probs {
		total += p
	}
	if total <= 0 {
		return map[catalog.Rarity]float64{
			catalog.Common:    1,
			catalog.Rare:      0,
			catalog.Epic:      0,
			catalog.Legendary: 0,
		}
	}
	for r, p := range probs {
		probs[r] = p / total
	}
	return probs
}

// pickRarity walks the tiers legendary first, accumulating probability,
// and returns the first tier whose cumulative weight exceeds the roll.
func pickRarity(roll float64, probs map[catalog.Rarity]float64) catalog.Rarity {
	var cumulative float64
	for _, r := range selectionOrder {
		cumulative += probs[r]
		if roll < cumulative {
			return r
		}
	}
	return catalog.Common
}
