// Package settings persists user preferences and republishes them when the
// backing file changes on disk.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/JumpLink/NetflixController/internal/logging"
)

// Settings is the snapshot of user preferences handed to subscribers.
// Reads always resolve, falling back to defaults when the file is absent
// or a key is missing.
type Settings struct {
	// ShowActionHints toggles the contextual button hint bar.
	ShowActionHints bool `mapstructure:"show_action_hints"`
	// ButtonGlyphs selects the glyph set for hints, "xbox" or "ps".
	ButtonGlyphs string `mapstructure:"button_glyphs"`
	// ShowConnectionNotices toggles the connect/disconnect notices.
	ShowConnectionNotices bool `mapstructure:"show_connection_notices"`
	// CompatibilityWarning toggles the once-per-session warning shown for
	// devices that do not report the standard layout.
	CompatibilityWarning bool `mapstructure:"compatibility_warning"`
	// Deadzone is the default per-device axis deadzone.
	Deadzone float64 `mapstructure:"deadzone"`
}

func defaults() Settings {
	return Settings{
		ShowActionHints:       true,
		ButtonGlyphs:          "xbox",
		ShowConnectionNotices: true,
		CompatibilityWarning:  true,
		Deadzone:              0.1,
	}
}

// Store loads, watches, and republishes settings. Zero value is not usable;
// construct with NewStore.
type Store struct {
	mu          sync.RWMutex
	viper       *viper.Viper
	current     Settings
	subscribers []func(Settings)
	watching    bool
}

// NewStore builds a store bound to the given config file. An empty path
// resolves to settings.yaml under the user config directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		path = filepath.Join(dir, "netflix-controller", "settings.yaml")
	}

	v := viper.New()
	v.SetConfigFile(path)
	d := defaults()
	v.SetDefault("show_action_hints", d.ShowActionHints)
	v.SetDefault("button_glyphs", d.ButtonGlyphs)
	v.SetDefault("show_connection_notices", d.ShowConnectionNotices)
	v.SetDefault("compatibility_warning", d.CompatibilityWarning)
	v.SetDefault("deadzone", d.Deadzone)

	s := &Store{viper: v, current: d}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) reload() error {
	if err := s.viper.ReadInConfig(); err != nil {
		// A missing file is the common first-run case; every key falls
		// back to its default.
		if _, ok := err.(*os.PathError); !ok {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return fmt.Errorf("reading settings: %w", err)
			}
		}
	}
	next := defaults()
	if err := s.viper.Unmarshal(&next); err != nil {
		return fmt.Errorf("decoding settings: %w", err)
	}
	if next.ButtonGlyphs != "xbox" && next.ButtonGlyphs != "ps" {
		logging.Warn("unknown button_glyphs %q, using xbox", next.ButtonGlyphs)
		next.ButtonGlyphs = "xbox"
	}
	if next.Deadzone < 0 || next.Deadzone >= 1 {
		logging.Warn("deadzone %v out of range, using default", next.Deadzone)
		next.Deadzone = defaults().Deadzone
	}
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	return nil
}

// Get returns the current snapshot.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Bool resolves one boolean preference asynchronously. The channel receives
// the current value once, then closes. Unknown keys resolve to false.
func (s *Store) Bool(key string) <-chan bool {
	ch := make(chan bool, 1)
	ch <- s.viper.GetBool(key)
	close(ch)
	return ch
}

// String resolves one string preference asynchronously, mirroring Bool.
func (s *Store) String(key string) <-chan string {
	ch := make(chan string, 1)
	ch <- s.viper.GetString(key)
	close(ch)
	return ch
}

// Subscribe registers a callback invoked with the new snapshot after each
// reload. The callback also fires immediately with the current snapshot so
// subscribers never need a separate initial read.
func (s *Store) Subscribe(fn func(Settings)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	snapshot := s.current
	s.mu.Unlock()
	fn(snapshot)
}

// Watch starts watching the backing file and republishing on change.
// Idempotent.
func (s *Store) Watch() {
	s.mu.Lock()
	if s.watching {
		s.mu.Unlock()
		return
	}
	s.watching = true
	s.mu.Unlock()

	s.viper.OnConfigChange(func(e fsnotify.Event) {
		logging.Trace("settings.change", map[string]interface{}{"op": e.Op.String(), "file": e.Name})
		if err := s.reload(); err != nil {
			logging.Warn("settings reload failed: %v", err)
			return
		}
		s.publish()
	})
	s.viper.WatchConfig()
}

func (s *Store) publish() {
	s.mu.RLock()
	snapshot := s.current
	subs := make([]func(Settings), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(snapshot)
	}
}

// Set updates one key in memory and republishes. It does not write the
// file; persistence stays owned by whoever edits it.
func (s *Store) Set(key string, value interface{}) error {
	s.viper.Set(key, value)
	next := defaults()
	if err := s.viper.Unmarshal(&next); err != nil {
		return fmt.Errorf("decoding settings: %w", err)
	}
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	s.publish()
	return nil
}
