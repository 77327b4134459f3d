package config

import (
	"flag"
	"fmt"
)

// CLIOptions is the pure-source configuration record produced by the CLI
// collaborator (spec §1, §6): every flag the orchestrator recognises, plus
// which of them were actually passed, so ApplyTo only overrides fields the
// caller set and leaves everything else to the YAML-loaded defaults.
type CLIOptions struct {
	Engine     string
	Width      uint
	Height     uint
	Scale      float64
	Number     uint
	Thread     uint
	Mode       string
	FPS        bool
	ConfigPath string

	set map[string]bool
}

// ParseFlags parses args (excluding the program name) into a CLIOptions
// record. Unparseable values are reported as a config error.
func ParseFlags(args []string) (CLIOptions, error) {
	var opt CLIOptions
	fs := flag.NewFlagSet("barnes-hut-nbody", flag.ContinueOnError)

	fs.StringVar(&opt.Engine, "engine", "", "orchestrator: tree, pthread, rayon, rayon_tree, mpi_normal, mpi_openmp, brute_force, openmp")
	fs.UintVar(&opt.Width, "width", 0, "world rectangle width in display units")
	fs.UintVar(&opt.Height, "height", 0, "world rectangle height in display units")
	fs.Float64Var(&opt.Scale, "scale", 0, "display units per world unit")
	fs.UintVar(&opt.Number, "number", 0, "body count")
	fs.UintVar(&opt.Thread, "thread", 0, "worker count for shared-memory engines")
	fs.StringVar(&opt.Mode, "mode", "", "benchmark or display")
	fs.BoolVar(&opt.FPS, "fps", false, "print FPS every >=1000ms in display mode")
	fs.StringVar(&opt.ConfigPath, "config", "", "optional YAML config file, overlaid on the embedded defaults")

	if err := fs.Parse(args); err != nil {
		return CLIOptions{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	opt.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.set[f.Name] = true })

	return opt, nil
}

// ApplyTo overlays every flag the caller explicitly passed onto cfg,
// leaving fields the caller did not pass at their YAML-loaded value.
func (o CLIOptions) ApplyTo(cfg *Config) {
	if o.set["engine"] {
		cfg.Engine = Engine(o.Engine)
	}
	if o.set["width"] {
		cfg.Width = o.Width
	}
	if o.set["height"] {
		cfg.Height = o.Height
	}
	if o.set["scale"] {
		cfg.Scale = o.Scale
	}
	if o.set["number"] {
		cfg.Number = o.Number
	}
	if o.set["thread"] {
		cfg.Thread = o.Thread
	}
	if o.set["mode"] {
		cfg.Mode = Mode(o.Mode)
	}
	if o.set["fps"] {
		cfg.FPS = o.FPS
	}
}
