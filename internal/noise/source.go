// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

// Package noise provides the randomness used for travel delays, score
// tie-breaking and the synthetic advisory snapshots.
//
// Components never touch a global generator. They receive a Source, which
// production code builds with NewRand and tests replace with a Sequence so
// scores and orderings can be asserted exactly.
package noise

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// Rand is a seeded Source safe for concurrent use.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a Source seeded with seed. A zero seed draws one from the clock.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // jitter only, not security sensitive
	}
}

// Float64 implements Source.
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Sequence replays a fixed list of values, cycling when exhausted.
// An empty Sequence always yields 0.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
	drawn  int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

// Float64 implements Source.
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drawn++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Drawn reports how many values have been consumed.
func (s *Sequence) Drawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawn
}
