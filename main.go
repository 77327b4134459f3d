// Command barnes-hut-nbody wires the CLI configuration to an orchestrator
// and drives either the benchmark loop (time each step, record to CSV) or
// the display loop (render each step at the configured scale).
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pthm-cable/barnes-hut-nbody/bench"
	"github.com/pthm-cable/barnes-hut-nbody/body"
	"github.com/pthm-cable/barnes-hut-nbody/config"
	"github.com/pthm-cable/barnes-hut-nbody/engine"
	"github.com/pthm-cable/barnes-hut-nbody/quadtree"
	"github.com/pthm-cable/barnes-hut-nbody/render"
	"github.com/pthm-cable/barnes-hut-nbody/vmap"
)

// benchmarkSteps is how many steps a benchmark-mode run times and records.
const benchmarkSteps = 200

// populationSeed is fixed so repeated benchmark runs are comparable across
// engine/thread configurations; nothing in spec.md calls for a
// user-supplied seed option.
const populationSeed = 1

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cli, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := config.Init(cli.ConfigPath, cli); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	logger.Info("starting simulation",
		"engine", cfg.Engine, "bodies", cfg.Number, "threads", cfg.Thread, "mode", cfg.Mode)

	orch, err := engine.Select(cfg.Engine, int(cfg.Thread))
	if err != nil {
		logger.Error("engine selection failed", "error", err)
		os.Exit(1)
	}

	bounds := body.Bounds{Width: cfg.WorldWidth(), Height: cfg.WorldHeight()}
	tree := quadtree.NewRoot(bounds.Width, bounds.Height)
	rng := rand.New(rand.NewSource(populationSeed))
	bodies := body.RandomPopulation(int(cfg.Number), bounds, rng, tree)
	usesTree := engine.UsesTree(cfg.Engine)

	switch cfg.Mode {
	case config.ModeBenchmark:
		runBenchmark(logger, orch, bodies, tree, bounds, usesTree, cfg)
	case config.ModeDisplay:
		runDisplay(logger, orch, bodies, tree, bounds, usesTree, cfg)
	}
}

// gravityFor returns the step's gravity source: the frozen previous tree
// for tree engines, or an exact pairwise sum over a position snapshot for
// brute_force/rayon (spec §9 Open Question 3, §4 engine selection table).
func gravityFor(usesTree bool, prev *quadtree.Tree, bodies []*body.Body) body.GravityFunc {
	if usesTree {
		return body.TreeGravity(prev)
	}
	return body.BruteForceGravity(body.Positions(bodies))
}

func runBenchmark(logger *slog.Logger, orch engine.Orchestrator, bodies []*body.Body, prev *quadtree.Tree, bounds body.Bounds, usesTree bool, cfg *config.Config) {
	rec, err := bench.NewRecorder("benchmark.csv")
	if err != nil {
		logger.Error("opening benchmark output failed", "error", err)
		os.Exit(1)
	}
	defer rec.Close()

	for tick := int64(0); tick < benchmarkSteps; tick++ {
		next := quadtree.NewRoot(bounds.Width, bounds.Height)
		vel := vmap.New()
		gravity := gravityFor(usesTree, prev, bodies)

		start := time.Now()
		step := engine.Step{Bodies: bodies, Prev: prev, Next: next, Vel: vel, Bounds: bounds, Gravity: gravity}
		if err := orch.RunStep(step); err != nil {
			logger.Error("step failed", "tick", tick, "error", err)
			os.Exit(1)
		}
		elapsed := time.Since(start)

		bench.Logf("tick %d: %.3fms", tick, float64(elapsed.Microseconds())/1000)
		if err := rec.Write(bench.StepRecord{
			Tick:      tick,
			StepMs:    float64(elapsed.Microseconds()) / 1000,
			BodyCount: len(bodies),
			Engine:    string(cfg.Engine),
		}); err != nil {
			logger.Error("recording step failed", "tick", tick, "error", err)
		}

		prev = next
	}

	summary := rec.Summary()
	logger.Info("benchmark complete",
		"steps", summary.Steps, "mean_ms", summary.MeanMs, "stddev_ms", summary.StdMs)
}

func runDisplay(logger *slog.Logger, orch engine.Orchestrator, bodies []*body.Body, prev *quadtree.Tree, bounds body.Bounds, usesTree bool, cfg *config.Config) {
	sink := render.NewRaylibSink(int32(cfg.Width), int32(cfg.Height), cfg.Scale)
	defer sink.Close()

	ticker := bench.NewFPSTicker(sink, cfg.FPS, time.Second)
	tick := int64(0)

	for !sink.ShouldClose() {
		next := quadtree.NewRoot(bounds.Width, bounds.Height)
		vel := vmap.New()
		gravity := gravityFor(usesTree, prev, bodies)

		step := engine.Step{Bodies: bodies, Prev: prev, Next: next, Vel: vel, Bounds: bounds, Gravity: gravity}
		if err := orch.RunStep(step); err != nil {
			logger.Error("step failed", "tick", tick, "error", err)
			os.Exit(1)
		}

		sink.Begin()
		for _, b := range bodies {
			sink.Point(b.Position.X, b.Position.Y, config.Radius)
		}
		sink.HUD(render.Status{
			Tick:      tick,
			BodyCount: len(bodies),
			Threads:   int(cfg.Thread),
			Engine:    string(cfg.Engine),
			FPS:       sink.FPS(),
		})
		sink.End()

		ticker.Tick(time.Now())
		prev = next
		tick++
	}
}
