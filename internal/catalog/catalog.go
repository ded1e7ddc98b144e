// Package catalog holds the compiled-in reference data for the pond:
// the species table and the random event table. Both are immutable after
// init; everything else in the system treats them as read-only.
package catalog

import "fmt"

// Rarity is one of the four fixed draw tiers.
type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Rarities lists all tiers in ascending order of scarcity.
var Rarities = []Rarity{Common, Rare, Epic, Legendary}

// Species is a single collectible entry in the pond.
type Species struct {
	ID        string
	Name      string
	Rarity    Rarity
	Dark      bool // restricted-pool variant, the only thing negative karma can draw
	Shiny     bool
	MinLength float64 // cm
	MaxLength float64 // cm
	StartHour int     // activity window start, inclusive
	EndHour   int     // activity window end, exclusive; start > end wraps midnight
	Emoji     string
	Note      string
}

// ActiveAt reports whether the species is catchable at the given hour.
func (s Species) ActiveAt(hour int) bool {
	if s.StartHour <= s.EndHour {
		return hour >= s.StartHour && hour < s.EndHour
	}
	// Window wraps midnight, e.g. 22-6.
	return hour >= s.StartHour || hour < s.EndHour
}

var (
	// AllSpecies is every species in catalog order.
	AllSpecies []Species

	speciesByID   map[string]Species
	speciesByTier map[Rarity][]Species

	// DarkSpecies and ShinySpecies are the variant sub-pools.
	DarkSpecies  []Species
	ShinySpecies []Species
)

func init() {
	AllSpecies = buildSpecies()

	speciesByID = make(map[string]Species, len(AllSpecies))
	speciesByTier = make(map[Rarity][]Species)
	for _, s := range AllSpecies {
		if _, dup := speciesByID[s.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate species id %q", s.ID))
		}
		if s.MinLength > s.MaxLength {
			panic(fmt.Sprintf("catalog: species %q has min length > max length", s.ID))
		}
		if s.StartHour < 0 || s.StartHour > 23 || s.EndHour < 0 || s.EndHour > 24 {
			panic(fmt.Sprintf("catalog: species %q has activity hours out of range", s.ID))
		}
		speciesByID[s.ID] = s
		speciesByTier[s.Rarity] = append(speciesByTier[s.Rarity], s)
		switch {
		case s.Dark:
			DarkSpecies = append(DarkSpecies, s)
		case s.Shiny:
			ShinySpecies = append(ShinySpecies, s)
		}
	}
}

// SpeciesByID looks up a species. The bool is false for unknown ids;
// catalog lookups never fail harder than that.
func SpeciesByID(id string) (Species, bool) {
	s, ok := speciesByID[id]
	return s, ok
}

// SpeciesByRarity returns the catalog-ordered species of one tier.
func SpeciesByRarity(r Rarity) []Species {
	return speciesByTier[r]
}

// ActiveSpecies returns every species catchable at the given hour.
func ActiveSpecies(hour int) []Species {
	var out []Species
	for _, s := range AllSpecies {
		if s.ActiveAt(hour) {
			out = append(out, s)
		}
	}
	return out
}
