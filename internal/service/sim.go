package service

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness for matching outcomes and synthesized
// record fields. Tests inject a seeded or scripted implementation to force
// both branches deterministically.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64

	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Sim bundles the injectable sources of nondeterminism shared by the
// services: sleeping for simulated latency, reading the clock, and drawing
// random values.
type Sim struct {
	Sleep func(time.Duration)
	Now   func() time.Time
	Rand  Rand
}

// DefaultSim returns a Sim backed by the real clock and a time-seeded
// random source.
func DefaultSim() Sim {
	return Sim{
		Sleep: time.Sleep,
		Now:   time.Now,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SeededSim returns a Sim with no sleeping and a fixed random seed, for
// deterministic simulation runs.
func SeededSim(seed int64) Sim {
	return Sim{
		Sleep: func(time.Duration) {},
		Now:   time.Now,
		Rand:  rand.New(rand.NewSource(seed)),
	}
}
