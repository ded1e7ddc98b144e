package engine

import (
	"fmt"

	"github.com/lazypower/pond/internal/catalog"
	"github.com/lazypower/pond/internal/store"
)

// CollectionSummary is a user's collection progress.
type CollectionSummary struct {
	Unlocked   int                    `json:"unlocked"`
	Total      int                    `json:"total"`
	ByRarity   map[catalog.Rarity]int `json:"by_rarity"`
	DarkCount  int                    `json:"dark_count"`
	DarkTotal  int                    `json:"dark_total"`
	ShinyCount int                    `json:"shiny_count"`
	ShinyTotal int                    `json:"shiny_total"`
	Records    []store.CatchRecord    `json:"records"`
}

// Collection summarizes the user's catch records against the full catalog.
func (e *Engine) Collection(groupID, userID string) (*CollectionSummary, error) {
	records, err := e.DB.Collection(groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	summary := &CollectionSummary{
		Unlocked:   len(records),
		Total:      len(catalog.AllSpecies),
		ByRarity:   make(map[catalog.Rarity]int, len(catalog.Rarities)),
		DarkTotal:  len(catalog.DarkSpecies),
		ShinyTotal: len(catalog.ShinySpecies),
		Records:    records,
	}
	for _, r := range catalog.Rarities {
		summary.ByRarity[r] = 0
	}
	for _, rec := range records {
		species, ok := catalog.SpeciesByID(rec.SpeciesID)
		if !ok {
			continue
		}
		summary.ByRarity[species.Rarity]++
		if species.Dark {
			summary.DarkCount++
		}
		if species.Shiny {
			summary.ShinyCount++
		}
	}
	return summary, nil
}

// RankingLimit caps every ranking query.
const RankingLimit = 10

// Rankings returns a group leaderboard. kind is one of "today", "total",
// "draws", "collection". Unknown kinds return ErrNotFound.
func (e *Engine) Rankings(groupID, kind string) ([]store.RankEntry, error) {
	day := LogicalDate(e.now())
	switch kind {
	case "today", "total":
		return e.DB.KarmaRanking(groupID, kind, day, RankingLimit)
	case "draws":
		return e.DB.DrawRanking(groupID, RankingLimit)
	case "collection":
		return e.DB.CollectionRanking(groupID, RankingLimit)
	default:
		return nil, fmt.Errorf("ranking kind %q: %w", kind, ErrNotFound)
	}
}
