package engine

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/lazypower/pond/internal/store"
)

// testEngine returns an engine over an in-memory store with the random
// event gate closed, so tests opt in to events explicitly.
func testEngine(t *testing.T) *Engine {
	t.Helper()
	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	e := New(db, zap.NewNop())
	e.EventChance = 0
	e.rng = rand.New(rand.NewSource(1))
	return e
}
