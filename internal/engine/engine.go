// Package engine implements the reward economy core: rarity-weighted
// species draws, time-bounded odds-modifying events, the karma ledger with
// its 08:00 daily reset, and the seeded once-per-day randomness stream.
package engine

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lazypower/pond/internal/store"
)

// Engine orchestrates draws, events, and ledger updates. All mutating
// operations on one (group,user) key are serialized as a unit; different
// keys proceed in parallel.
type Engine struct {
	DB  *store.DB
	Log *zap.Logger

	// EventChance is the probability that a draw spawns a random event.
	EventChance float64

	now      func() time.Time
	rng      *rand.Rand
	rngMu    sync.Mutex
	keys     *keyedMutex
	personal *personalState
	stopCh   chan struct{}
}

// New creates an Engine over the given store.
func New(db *store.DB, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		DB:          db,
		Log:         log,
		EventChance: 0.05,
		now:         time.Now,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		keys:        newKeyedMutex(),
		personal:    newPersonalState(),
		stopCh:      make(chan struct{}),
	}
}

// randFloat returns a uniform value in [0,1) from the shared draw rng.
func (e *Engine) randFloat() float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Float64()
}

// randUniform returns a uniform value in [min,max).
func (e *Engine) randUniform(min, max float64) float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return min + e.rng.Float64()*(max-min)
}

// randInt returns a uniform integer in [min,max].
func (e *Engine) randInt(min, max int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return min + e.rng.Intn(max-min+1)
}

// randIndex returns a uniform index in [0,n).
func (e *Engine) randIndex(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Intn(n)
}

// StartSweepTimer removes expired events now and then on every tick.
// Sweeping is storage reclamation only, reads already filter by expiry.
func (e *Engine) StartSweepTimer(interval time.Duration) {
	if n, err := e.DB.CleanupExpired(e.now()); err != nil {
		e.Log.Error("event sweep failed", zap.Error(err))
	} else if n > 0 {
		e.Log.Info("swept expired events", zap.Int64("removed", n))
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n, err := e.DB.CleanupExpired(e.now()); err != nil {
					e.Log.Error("event sweep failed", zap.Error(err))
				} else if n > 0 {
					e.Log.Info("swept expired events", zap.Int64("removed", n))
				}
			case <-e.stopCh:
				return
			}
		}
	}()
}

// Stop shuts down the engine's background goroutines.
func (e *Engine) Stop() {
	close(e.stopCh)
}
