// Command genpop is the random initial-population generator named in the
// external-interfaces table as the CLI's population source. It is a
// standalone tool for inspecting/seeding populations offline; the
// benchmark and display loops generate their own population in-process
// via body.RandomPopulation using the same rng/mass-range rules.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/barnes-hut-nbody/body"
	"github.com/pthm-cable/barnes-hut-nbody/quadtree"
)

type bodyRecord struct {
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
	Mass float64 `csv:"mass"`
}

func main() {
	number := flag.Uint("number", 2000, "body count")
	width := flag.Uint("width", 800, "world display width")
	height := flag.Uint("height", 600, "world display height")
	scale := flag.Float64("scale", 4.0, "display units per world unit")
	seed := flag.Int64("seed", 1, "rng seed")
	out := flag.String("out", "population.csv", "output CSV path")
	flag.Parse()

	bounds := body.Bounds{
		Width:  float64(*width) / *scale,
		Height: float64(*height) / *scale,
	}

	tree := quadtree.NewRoot(bounds.Width, bounds.Height)
	rng := rand.New(rand.NewSource(*seed))
	bodies := body.RandomPopulation(int(*number), bounds, rng, tree)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("genpop: %v", err)
	}
	defer f.Close()

	records := make([]bodyRecord, len(bodies))
	for i, b := range bodies {
		records[i] = bodyRecord{X: b.Position.X, Y: b.Position.Y, Mass: b.Position.Mass}
	}
	if err := gocsv.Marshal(records, f); err != nil {
		log.Fatalf("genpop: %v", err)
	}
}
