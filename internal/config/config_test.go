package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.FixturePath != "" || cfg.App.Width != 0 || cfg.App.Deadzone != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg.App)
	}
	if cfg.Logging.Trace {
		t.Fatalf("trace enabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"NETFLIX_CONTROLLER_WIDTH=80",
		"NETFLIX_CONTROLLER_GLYPHS=ps",
		"NETFLIX_CONTROLLER_TRACE=1",
	}
	cfg, err := LoadArgs([]string{"-width", "120"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("width = %d, want flag value 120", cfg.App.Width)
	}
	if cfg.App.GlyphSet != "ps" {
		t.Fatalf("glyphs = %q, want env value ps", cfg.App.GlyphSet)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("trace env value ignored")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("negative width accepted")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("negative height accepted")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"-deadzone", "0.25", "-glyphs", "xbox"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad, err := LoadArgs([]string{"-deadzone", "1.5"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(bad); err == nil {
		t.Fatalf("deadzone 1.5 validated")
	}

	badGlyphs, err := LoadArgs([]string{"-glyphs", "sega"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(badGlyphs); err == nil {
		t.Fatalf("glyph set sega validated")
	}
}
