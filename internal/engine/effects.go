package engine

import (
	"strings"

	"github.com/lazypower/pond/internal/catalog"
)

// EffectSet is the aggregate of every active event's effects for a group,
// keyed by effect name. Combination rules: booleans OR, keys ending in
// "_multiplier" multiply, other numerics sum, ranges keep the first value
// seen. The set is snapshotted once at the start of an action and reused
// throughout it.
type EffectSet map[string]any

// Flag returns a boolean effect, false when absent.
func (s EffectSet) Flag(key string) bool {
	v, _ := s[key].(bool)
	return v
}

// Multiplier returns a multiplicative effect, 1 when absent.
func (s EffectSet) Multiplier(key string) float64 {
	if v, ok := s[key].(float64); ok {
		return v
	}
	return 1
}

// Number returns an additive effect, 0 when absent.
func (s EffectSet) Number(key string) float64 {
	v, _ := s[key].(float64)
	return v
}

// Span returns a range effect.
func (s EffectSet) Span(key string) (catalog.Range, bool) {
	v, ok := s[key].(catalog.Range)
	return v, ok
}

func (s EffectSet) fold(effects catalog.Effects) {
	for key, val := range effects {
		switch v := val.(type) {
		case bool:
			prev, _ := s[key].(bool)
			s[key] = prev || v
		case catalog.Range:
			if _, ok := s[key]; !ok {
				s[key] = v
			}
		case int:
			s.foldNumber(key, float64(v))
		case float64:
			s.foldNumber(key, v)
		}
	}
}

func (s EffectSet) foldNumber(key string, v float64) {
	if strings.HasSuffix(key, "_multiplier") {
		prev := 1.0
		if p, ok := s[key].(float64); ok {
			prev = p
		}
		s[key] = prev * v
	} else {
		prev, _ := s[key].(float64)
		s[key] = prev + v
	}
}

func aggregateEffects(defs []catalog.EventDef) EffectSet {
	out := make(EffectSet)
	for _, d := range defs {
		out.fold(d.Effects)
	}
	return out
}
