// Package vmap implements the step-scoped velocity map (VMAP, spec §4.4):
// a snapshot from body position to its pre-step velocity, written
// exclusively during the population phase and read concurrently during
// the update phase.
package vmap

import (
	"sync"

	"github.com/pthm-cable/barnes-hut-nbody/geom"
)

type (
	Point   = geom.Point
	Vector2 = geom.Vector2
)

// Map is a many-reader/one-writer snapshot of pre-step velocities. The
// zero value is not usable; construct with New.
//
// Population (pre-step) is exclusive-writer: callers must not call Velocity
// concurrently with Set. Update (the per-body pipeline) is reader-only:
// concurrent calls to Velocity are safe and need no further locking since
// no writer runs during that phase. The mutex makes the population-phase
// writes themselves safe from several goroutines; every orchestrator in
// this module populates the map from a single goroutine before its workers
// start.
type Map struct {
	mu sync.RWMutex
	m  map[Point]Vector2
}

// New returns an empty velocity map.
func New() *Map {
	return &Map{m: make(map[Point]Vector2)}
}

// Clear empties the map at the start of a step. Must be called before any
// Set or Velocity call for the new step.
func (v *Map) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.m)
}

// Set publishes a body's pre-step velocity, keyed by its pre-step
// position. Exclusive-writer: callers must ensure no reader runs
// concurrently with the population phase.
func (v *Map) Set(p Point, vel Vector2) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.m[p] = vel
}

// Velocity looks up the pre-step velocity at position p, satisfying
// quadtree.VelocitySource. Safe for concurrent readers.
func (v *Map) Velocity(p Point) Vector2 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.m[p]
}

// Len reports the number of published velocities, mainly for tests.
func (v *Map) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.m)
}
