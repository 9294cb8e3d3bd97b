package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JumpLink/NetflixController/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFixture  = "NETFLIX_CONTROLLER_FIXTURE"
	envSettings = "NETFLIX_CONTROLLER_SETTINGS"
	envWidth    = "NETFLIX_CONTROLLER_WIDTH"
	envHeight   = "NETFLIX_CONTROLLER_HEIGHT"
	envDeadzone = "NETFLIX_CONTROLLER_DEADZONE"
	envGlyphs   = "NETFLIX_CONTROLLER_GLYPHS"
	envTrace    = "NETFLIX_CONTROLLER_TRACE"
	envLogFile  = "NETFLIX_CONTROLLER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("netflix-controller", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fixture := fs.String("fixture", envOrDefault(env, envFixture, ""), "path to an HTML document to drive (empty uses the bundled fixture)")
	settingsPath := fs.String("settings", envOrDefault(env, envSettings, ""), "path to the preferences file (empty uses the user config dir)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	deadzone := fs.Float64("deadzone", envOrFloat(env, envDeadzone, 0), "axis deadzone applied to every connected device (0 keeps the engine default)")
	glyphs := fs.String("glyphs", envOrDefault(env, envGlyphs, ""), "button glyph set for the hint bar (xbox or ps)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			FixturePath:  *fixture,
			SettingsPath: *settingsPath,
			Width:        *width,
			Height:       *height,
			Deadzone:     *deadzone,
			GlyphSet:     *glyphs,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"fixture":  *fixture,
			"settings": *settingsPath,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"deadzone": strconv.FormatFloat(*deadzone, 'f', -1, 64),
			"glyphs":   *glyphs,
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if dz := cfg.App.Deadzone; dz != 0 && (dz < 0 || dz >= 1) {
		return fmt.Errorf("deadzone must be in [0,1) (got %v)", dz)
	}
	if g := cfg.App.GlyphSet; g != "" && g != "xbox" && g != "ps" {
		return fmt.Errorf("glyphs must be xbox or ps (got %q)", g)
	}
	if cfg.App.FixturePath != "" {
		if _, err := os.Stat(cfg.App.FixturePath); err != nil {
			return fmt.Errorf("fixture: %w", err)
		}
	}
	return nil
}
