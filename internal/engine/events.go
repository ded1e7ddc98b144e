package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lazypower/pond/internal/catalog"
	"github.com/lazypower/pond/internal/store"
)

// ActiveEffects folds every unexpired event of the group into a single
// effect aggregate. Unknown event ids in the store are skipped.
func (e *Engine) ActiveEffects(groupID string, now time.Time) (EffectSet, error) {
	instances, err := e.DB.ActiveEvents(groupID, now)
	if err != nil {
		return nil, fmt.Errorf("active effects: %w", err)
	}
	defs := make([]catalog.EventDef, 0, len(instances))
	for _, inst := range instances {
		def, ok := catalog.EventByID(inst.EventID)
		if !ok {
			continue
		}
		defs = append(defs, def)
	}
	return aggregateEffects(defs), nil
}

// ActiveEvent pairs a stored instance with its catalog definition.
type ActiveEvent struct {
	store.EventInstance
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// ActiveEvents returns the group's unexpired events with their catalog
// names attached.
func (e *Engine) ActiveEvents(groupID string) ([]ActiveEvent, error) {
	instances, err := e.DB.ActiveEvents(groupID, e.now())
	if err != nil {
		return nil, err
	}
	out := make([]ActiveEvent, 0, len(instances))
	for _, inst := range instances {
		a := ActiveEvent{EventInstance: inst}
		if def, ok := catalog.EventByID(inst.EventID); ok {
			a.Name = def.Name
			a.Emoji = def.Emoji
		}
		out = append(out, a)
	}
	return out, nil
}

// CleanupExpired removes expired event rows.
func (e *Engine) CleanupExpired() (int64, error) {
	return e.DB.CleanupExpired(e.now())
}

// triggerRandomEvent rolls the event gate and, on success, picks and
// applies an event. Global events are stored for the whole group; personal
// events apply their effect immediately and return it for the current
// draw. Returns a zero EventDef when nothing triggers.
func (e *Engine) triggerRandomEvent(groupID, userID, nickname, day string) (catalog.EventDef, string, catalog.Effects, error) {
	if e.randFloat() > e.EventChance {
		return catalog.EventDef{}, "", nil, nil
	}

	// 30% global, 70% personal.
	if e.randFloat() < 0.3 {
		def := e.selectWeighted(catalog.GlobalEventPool)
		duration := time.Duration(def.DurationSeconds) * time.Second
		if _, err := e.DB.AddEvent(groupID, def.ID, duration, userID, e.now()); err != nil {
			return catalog.EventDef{}, "", nil, fmt.Errorf("store event: %w", err)
		}
		e.Log.Info("global event triggered",
			zap.String("group", groupID),
			zap.String("event", def.ID),
			zap.String("by", nickname))
		return def, renderMessage(def.Message, nickname, 0), nil, nil
	}

	def := e.selectWeighted(catalog.PersonalEventPool)
	msg, err := e.processPersonalEvent(def, groupID, userID, nickname, day)
	if err != nil {
		return catalog.EventDef{}, "", nil, err
	}
	e.Log.Info("personal event triggered",
		zap.String("group", groupID),
		zap.String("event", def.ID),
		zap.String("for", nickname))
	return def, msg, def.Effects, nil
}

func (e *Engine) selectWeighted(pool []catalog.EventDef) catalog.EventDef {
	var total float64
	for _, def := range pool {
		total += def.Weight
	}
	return pickWeighted(e.randUniform(0, total), pool)
}

// pickWeighted walks the pool in catalog order accumulating weight and
// returns the first entry whose cumulative weight reaches the roll. When
// the walk falls through on a floating-point boundary it returns the first
// entry; callers depend on that exact fallback.
func pickWeighted(roll float64, pool []catalog.EventDef) catalog.EventDef {
	var cumulative float64
	for _, def := range pool {
		cumulative += def.Weight
		if roll <= cumulative {
			return def
		}
	}
	return pool[0]
}

// processPersonalEvent applies an instantaneous personal event: karma
// deltas go straight to the ledger, single-shot flags go into the
// in-memory personal state.
func (e *Engine) processPersonalEvent(def catalog.EventDef, groupID, userID, nickname, day string) (string, error) {
	effects := def.Effects
	karma := 0

	switch {
	case hasEffect(effects, catalog.EffKarmaRange):
		r := effects[catalog.EffKarmaRange].(catalog.Range)
		karma = e.randInt(r.Min, r.Max)
		if _, _, err := e.DB.UpdateKarma(groupID, userID, nickname, int64(karma), day); err != nil {
			return "", fmt.Errorf("apply karma bonus: %w", err)
		}
	case hasEffect(effects, catalog.EffKarmaLoss):
		karma = effectInt(effects[catalog.EffKarmaLoss])
		if _, _, err := e.DB.UpdateKarma(groupID, userID, nickname, -int64(karma), day); err != nil {
			return "", fmt.Errorf("apply karma loss: %w", err)
		}
	case hasEffect(effects, catalog.EffKarmaLossRange):
		r := effects[catalog.EffKarmaLossRange].(catalog.Range)
		karma = e.randInt(r.Min, r.Max)
		if _, _, err := e.DB.UpdateKarma(groupID, userID, nickname, -int64(karma), day); err != nil {
			return "", fmt.Errorf("apply karma loss: %w", err)
		}
	}

	key := accountKey(groupID, userID)
	if hasEffect(effects, catalog.EffCurseCount) {
		e.personal.setCurse(key, effectInt(effects[catalog.EffCurseCount]))
	}
	if hasEffect(effects, catalog.EffNextFail) {
		e.personal.setNextFail(key)
	}
	if hasEffect(effects, catalog.EffFreeBait) {
		e.personal.setFreeBait(key)
	}

	return renderMessage(def.Message, nickname, karma), nil
}

func hasEffect(effects catalog.Effects, key string) bool {
	_, ok := effects[key]
	return ok
}

func effectInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func renderMessage(tpl, nickname string, karma int) string {
	out := strings.ReplaceAll(tpl, "{nickname}", nickname)
	return strings.ReplaceAll(out, "{karma}", strconv.Itoa(karma))
}
