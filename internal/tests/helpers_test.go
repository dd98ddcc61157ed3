package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"ridelite/internal/service"
	"ridelite/internal/store"
)

// ──────────────────────────────────────────────
// SCRIPTED RANDOM SOURCE
// ──────────────────────────────────────────────

// ScriptRand returns queued values in order, so tests can force both match
// branches and fixed driver choices. An exhausted queue returns zero.
type ScriptRand struct {
	mu     sync.Mutex
	Floats []float64
	Ints   []int
}

func (r *ScriptRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Floats) == 0 {
		return 0
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}

func (r *ScriptRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[0]
	r.Ints = r.Ints[1:]
	return v % n
}

// ──────────────────────────────────────────────
// TEST FIXTURES
// ──────────────────────────────────────────────

// fixedNow keeps synthesized dates deterministic: "Mar 14" / "3:04 PM".
var fixedNow = time.Date(2025, time.March, 14, 15, 4, 0, 0, time.UTC)

// testSim returns a Sim with no sleeping, a frozen clock, and the given
// random source.
func testSim(r service.Rand) service.Sim {
	return service.Sim{
		Sleep: func(time.Duration) {},
		Now:   func() time.Time { return fixedNow },
		Rand:  r,
	}
}

// newSession builds a SessionService over st with simulation disabled.
func newSession(t *testing.T, st store.Store) *service.SessionService {
	t.Helper()
	s, err := service.NewSessionService(context.Background(), st, 0, testSim(&ScriptRand{Ints: []int{42}}))
	if err != nil {
		t.Fatalf("failed to create session service: %v", err)
	}
	return s
}
