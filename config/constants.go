package config

// Physical constants fixed at compile time (spec §6). These are not part of
// the YAML-configurable Config struct because the simulation's invariants
// are stated in terms of their exact values.
const (
	// MinSize is the quadtree subdivision floor: a square whose side falls
	// below this stops subdividing and overwrites coincident insertions.
	MinSize = 10.0

	// DistScaleLimit (theta) is the Barnes-Hut opening criterion threshold.
	DistScaleLimit = 0.75

	// Radius (R) is the body collision/boundary halo radius.
	Radius = 0.5

	// G is the gravitational constant used by the force query.
	G = 5.0

	// Alpha (dt) is the fixed simulation timestep.
	Alpha = 0.001

	// MassRange bounds the uniform mass draw of the population generator.
	MassRange = 50.0

	// BoundaryEpsilon is the clearance left from a crossed world edge after
	// a wall bounce, so the reflected position doesn't land exactly on the
	// boundary and re-trigger the crossing check next step.
	BoundaryEpsilon = 1e-3
)
