package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/lazypower/pond/internal/catalog"
)

const (
	baseShinyChance = 0.05
	// highKarmaShinyChance replaces the base once lifetime karma reaches
	// the threshold.
	highKarmaShinyChance = 0.15
	shinyKarmaThreshold  = 100
	baseDarkChance       = 0.10
)

// Catch is one drawn species with its rolled length and collection result.
// MaxLength is this catch's length when it set a record, and the stored
// record otherwise.
type Catch struct {
	Species    catalog.Species `json:"species"`
	Length     float64         `json:"length"`
	IsNew      bool            `json:"is_new"`
	IsRecord   bool            `json:"is_record"`
	MaxLength  float64         `json:"max_length"`
	CatchCount int             `json:"catch_count"`
}

// DrawResult is the outcome of one draw action.
type DrawResult struct {
	Success      bool     `json:"success"`
	Catch        *Catch   `json:"catch,omitempty"`
	Extra        *Catch   `json:"extra,omitempty"`
	KarmaDelta   int64    `json:"karma_delta"`
	TodayKarma   int64    `json:"today_karma"`
	TotalKarma   int64    `json:"total_karma"`
	EventMessage string   `json:"event_message,omitempty"`
	EventScope   string   `json:"event_scope,omitempty"`
	Message      string   `json:"message,omitempty"`
	NewTitles    []string `json:"new_titles,omitempty"`
}

// drawContext is the account snapshot a selection runs against.
type drawContext struct {
	todayKarma int64
	totalKarma int64
	baitCount  int
	hour       int
	cursed     bool
}

// Draw runs one full draw for the user: charge the cost, maybe trigger an
// event, select a species and length, record the catch, settle karma
// bonuses and titles. The whole action is serialized per (group,user) key
// and uses a single active-effects snapshot throughout.
//
// A storm block returns ErrBlocked before any cost is charged; a forced
// failure returns ErrUnlucky after the cost is charged. That asymmetry is
// deliberate.
func (e *Engine) Draw(groupID, userID, nickname string) (*DrawResult, error) {
	key := accountKey(groupID, userID)
	unlock := e.keys.Lock(key)
	defer unlock()

	now := e.now()
	day := LogicalDate(now)

	if _, err := e.DB.GetOrCreateAccount(groupID, userID, nickname, day); err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}

	effects, err := e.ActiveEffects(groupID, now)
	if err != nil {
		return nil, err
	}

	if effects.Flag(catalog.EffNoFishing) {
		return &DrawResult{Message: "⛈️ A storm is raging, nobody can fish right now."}, ErrBlocked
	}

	cost := int64(math.Round(1 * effects.Multiplier(catalog.EffCostMult)))
	today, total, err := e.DB.UpdateKarma(groupID, userID, nickname, -cost, day)
	if err != nil {
		return nil, fmt.Errorf("charge draw cost: %w", err)
	}

	res := &DrawResult{KarmaDelta: -cost, TodayKarma: today, TotalKarma: total}

	if e.personal.consumeNextFail(key) {
		res.Message = "🌧️ The bad omen strikes, the cast comes up empty."
		return res, ErrUnlucky
	}

	eventDef, eventMsg, personal, err := e.triggerRandomEvent(groupID, userID, nickname, day)
	if err != nil {
		return nil, err
	}
	res.EventMessage = eventMsg
	if eventDef.ID != "" {
		res.EventScope = string(eventDef.Scope)
	}

	if personalFlag(personal, catalog.EffFail) {
		res.Message = "😢 The fish got away..."
		return res, ErrUnlucky
	}

	// Re-read the account, the event may have moved karma.
	acct, err := e.DB.GetAccount(groupID, userID, day)
	if err != nil {
		return nil, fmt.Errorf("reload account: %w", err)
	}
	res.TodayKarma, res.TotalKarma = acct.TodayKarma, acct.TotalKarma

	if acct.TodayKarma < 0 && res.EventMessage == "" {
		res.EventMessage = "⚠️ Karma is negative, only dark fish will bite..."
	}

	snap := drawContext{
		todayKarma: acct.TodayKarma,
		totalKarma: acct.TotalKarma,
		baitCount:  acct.BaitCount,
		hour:       now.Hour(),
		cursed:     e.personal.consumeCurse(key),
	}

	species, ok := e.selectSpecies(snap, effects, personal)
	if !ok {
		res.Message = "🎣 Nothing took the hook..."
		return res, nil
	}

	catch, err := e.settleCatch(groupID, userID, species, effects, personal)
	if err != nil {
		return nil, err
	}
	res.Success = true
	res.Catch = catch

	if effects.Flag(catalog.EffDouble) || personalFlag(personal, catalog.EffExtraCatch) {
		if extraSpecies, ok := e.selectSpecies(snap, effects, nil); ok {
			extra, err := e.settleCatch(groupID, userID, extraSpecies, effects, nil)
			if err != nil {
				return nil, err
			}
			res.Extra = extra
		}
	}

	if r, ok := effects.Span(catalog.EffKarmaRange); ok {
		bonus := int64(e.randInt(r.Min, r.Max))
		if _, _, err := e.DB.UpdateKarma(groupID, userID, nickname, bonus, day); err != nil {
			return nil, fmt.Errorf("apply karma rain: %w", err)
		}
		res.KarmaDelta += bonus
	}
	if b := effects.Number(catalog.EffKarmaBonus); b != 0 {
		bonus := int64(b)
		if _, _, err := e.DB.UpdateKarma(groupID, userID, nickname, bonus, day); err != nil {
			return nil, fmt.Errorf("apply karma bonus: %w", err)
		}
		res.KarmaDelta += bonus
	}

	titles, err := e.CheckTitles(groupID, userID, day)
	if err != nil {
		return nil, err
	}
	res.NewTitles = titles

	acct, err = e.DB.GetAccount(groupID, userID, day)
	if err != nil {
		return nil, fmt.Errorf("reload account: %w", err)
	}
	res.TodayKarma, res.TotalKarma = acct.TodayKarma, acct.TotalKarma

	e.Log.Debug("draw settled",
		zap.String("group", groupID),
		zap.String("user", userID),
		zap.String("species", species.ID),
		zap.Float64("length", res.Catch.Length),
		zap.String("event", eventDef.ID))

	return res, nil
}

// settleCatch rolls a length and records the catch and draw count.
func (e *Engine) settleCatch(groupID, userID string, species catalog.Species, effects EffectSet, personal catalog.Effects) (*Catch, error) {
	length := e.rollLength(species, effects, personal)
	rec, err := e.DB.RecordCatch(groupID, userID, species.ID, length)
	if err != nil {
		return nil, fmt.Errorf("record catch: %w", err)
	}
	if _, err := e.DB.IncrementDraws(groupID, userID); err != nil {
		return nil, fmt.Errorf("count draw: %w", err)
	}
	return &Catch{
		Species:    species,
		Length:     length,
		IsNew:      rec.IsNew,
		IsRecord:   rec.IsRecord,
		MaxLength:  rec.MaxLength,
		CatchCount: rec.CatchCount,
	}, nil
}

// selectSpecies picks one species for the draw, or ok=false when nothing
// is catchable. Selection runs in a fixed step order: candidate window,
// dark/no-dark restrictions, guaranteed effects, rarity roll, independent
// shiny and dark rolls (swapped under mirror), then a cascading fallback
// from the variant-filtered set to the rarity-filtered set to the full
// candidate set.
func (e *Engine) selectSpecies(snap drawContext, effects EffectSet, personal catalog.Effects) (catalog.Species, bool) {
	darkOnly := effects.Flag(catalog.EffDarkOnly) || snap.todayKarma < 0 || snap.cursed
	noDark := effects.Flag(catalog.EffNoDark)
	allTime := effects.Flag(catalog.EffAllTime)

	window := catalog.AllSpecies
	if !allTime {
		window = catalog.ActiveSpecies(snap.hour)
	}

	var available []catalog.Species
	switch {
	case darkOnly:
		for _, s := range window {
			if s.Dark {
				available = append(available, s)
			}
		}
	case noDark:
		for _, s := range window {
			if !s.Dark {
				available = append(available, s)
			}
		}
	default:
		available = window
	}
	if len(available) == 0 {
		return catalog.Species{}, false
	}

	if personalFlag(personal, catalog.EffGuaranteedRare) {
		var rarePlus []catalog.Species
		for _, s := range available {
			if s.Rarity != catalog.Common {
				rarePlus = append(rarePlus, s)
			}
		}
		if len(rarePlus) == 0 {
			for _, s := range catalog.AllSpecies {
				if s.Rarity != catalog.Common {
					rarePlus = append(rarePlus, s)
				}
			}
		}
		available = rarePlus
	}

	if personalFlag(personal, catalog.EffGuaranteedShiny) {
		var shiny []catalog.Species
		for _, s := range available {
			if s.Shiny {
				shiny = append(shiny, s)
			}
		}
		if len(shiny) > 0 {
			available = shiny
		}
	}

	probs := e.rarityDistribution(snap.baitCount, effects)
	rarity := pickRarity(e.randFloat(), probs)

	shinyChance := baseShinyChance
	if snap.totalKarma >= shinyKarmaThreshold {
		shinyChance = highKarmaShinyChance
	}
	shinyChance *= effects.Multiplier(catalog.EffShinyMult)
	isShiny := e.randFloat() < shinyChance

	darkChance := baseDarkChance * effects.Multiplier(catalog.EffDarkMult)
	isDark := e.randFloat() < darkChance

	if effects.Flag(catalog.EffMirror) {
		isShiny, isDark = isDark, isShiny
	}

	var candidates []catalog.Species
	for _, s := range available {
		if s.Rarity == rarity {
			candidates = append(candidates, s)
		}
	}

	switch {
	case isShiny && !darkOnly:
		var shiny []catalog.Species
		for _, s := range candidates {
			if s.Shiny {
				shiny = append(shiny, s)
			}
		}
		if len(shiny) > 0 {
			candidates = shiny
		}
	case isDark && !noDark:
		var dark []catalog.Species
		for _, s := range candidates {
			if s.Dark {
				dark = append(dark, s)
			}
		}
		if len(dark) > 0 {
			candidates = dark
		}
	default:
		var plain []catalog.Species
		for _, s := range candidates {
			if !s.Dark && !s.Shiny {
				plain = append(plain, s)
			}
		}
		if len(plain) > 0 {
			candidates = plain
		}
	}

	if len(candidates) == 0 {
		candidates = available
	}
	if len(candidates) == 0 {
		return catalog.Species{}, false
	}
	return candidates[e.randIndex(len(candidates))], true
}

// rollLength draws a uniform length in the species range, applies global
// and personal size multipliers, and rounds to one decimal. The underlying
// draw is half-open; after rounding the species maximum is still reachable.
func (e *Engine) rollLength(species catalog.Species, effects EffectSet, personal catalog.Effects) float64 {
	base := e.randUniform(species.MinLength, species.MaxLength)
	mult := effects.Multiplier(catalog.EffGlobalSizeMult)
	if v, ok := personal[catalog.EffSizeMult]; ok {
		mult *= effectFloat(v)
	}
	return math.Round(base*mult*10) / 10
}

func personalFlag(effects catalog.Effects, key string) bool {
	if effects == nil {
		return false
	}
	v, _ := effects[key].(bool)
	return v
}

func effectFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 1
}
