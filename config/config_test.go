package config

import "testing"

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults failed Validate: %v", err)
	}
	if cfg.Engine != EngineTree {
		t.Fatalf("Engine = %q, want %q", cfg.Engine, EngineTree)
	}
}

func TestApplyToOnlyOverridesSetFlags(t *testing.T) {
	opt, err := ParseFlags([]string{"-number", "500"})
	if err != nil {
		t.Fatalf("ParseFlags error: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	wantEngine := cfg.Engine
	opt.ApplyTo(cfg)

	if cfg.Number != 500 {
		t.Fatalf("Number = %d, want 500", cfg.Number)
	}
	if cfg.Engine != wantEngine {
		t.Fatalf("Engine = %q, want unchanged %q", cfg.Engine, wantEngine)
	}
}

func TestValidateRejectsUnrecognisedEngine(t *testing.T) {
	cfg := &Config{Engine: "nonsense", Mode: ModeBenchmark, Scale: 1, Thread: 1}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unrecognised engine")
	}
}

func TestWorldDimensions(t *testing.T) {
	cfg := &Config{Width: 800, Height: 600, Scale: 4}
	if got := cfg.WorldWidth(); got != 200 {
		t.Fatalf("WorldWidth() = %v, want 200", got)
	}
	if got := cfg.WorldHeight(); got != 150 {
		t.Fatalf("WorldHeight() = %v, want 150", got)
	}
}
