package engine

// Sequential drives the pipeline over the body array with no parallelism,
// used by the `tree` and `brute_force` engines.
type Sequential struct{}

// RunStep populates VMAP then runs every body's pipeline step in index
// order.
func (Sequential) RunStep(s Step) error {
	populateVel(s.Bodies, s.Vel)
	for _, b := range s.Bodies {
		b.Step(s.Prev, s.Next, s.Vel, s.Bounds, s.Gravity)
	}
	return nil
}
