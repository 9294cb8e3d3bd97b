// Package app wires the engine, pages, and simulator UI together.
package app

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/data/dispatcher"
	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/hints"
	"github.com/JumpLink/NetflixController/internal/logging"
	"github.com/JumpLink/NetflixController/internal/notice"
	"github.com/JumpLink/NetflixController/internal/pages"
	"github.com/JumpLink/NetflixController/internal/settings"
	"github.com/JumpLink/NetflixController/internal/state"
	"github.com/JumpLink/NetflixController/internal/ui"
)

//go:embed fixture.html
var fixtureHTML string

// Config describes user-provided application options.
type Config struct {
	FixturePath  string
	SettingsPath string
	Width        int
	Height       int
	Deadzone     float64
	GlyphSet     string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	doc, err := loadDocument(cfg.FixturePath)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	store, err := settings.NewStore(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}

	bar := hints.NewBar()
	notices := notice.NewCenter()
	registry := action.NewRegistry(bar, notices)
	roster := state.NewRosterStore()

	keyboard := ui.NewKeyboard()
	engine := gamepad.NewEngine(keyboard)
	if err := registry.Attach(engine); err != nil {
		return fmt.Errorf("attach registry: %w", err)
	}
	disp := dispatcher.New(roster, notices, store.Get)
	if err := disp.Attach(engine); err != nil {
		return fmt.Errorf("attach dispatcher: %w", err)
	}
	if cfg.Deadzone > 0 {
		if err := engine.On(gamepad.EventConnect, nil, func(e *gamepad.Event) {
			if err := e.Device.SetDeadzone(cfg.Deadzone); err != nil {
				logging.Warn("deadzone %v rejected: %v", cfg.Deadzone, err)
			}
		}); err != nil {
			return fmt.Errorf("install deadzone: %w", err)
		}
	}

	store.Subscribe(func(s settings.Settings) {
		bar.SetVisible(s.ShowActionHints)
		bar.SetGlyphs(s.ButtonGlyphs)
	})
	if cfg.GlyphSet != "" {
		bar.SetGlyphs(cfg.GlyphSet)
	}
	store.Watch()

	router, search := pages.NewRouter(pages.Deps{Doc: doc, Registry: registry})
	model := ui.NewModel(ui.Options{
		Doc:      doc,
		Engine:   engine,
		Keyboard: keyboard,
		Registry: registry,
		Router:   router,
		Search:   search,
		Hints:    bar,
		Notices:  notices,
		Roster:   roster,
		Prefs:    store.Get,
		Width:    cfg.Width,
		Height:   cfg.Height,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func loadDocument(path string) (*dom.Document, error) {
	src := fixtureHTML
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		src = string(raw)
	}
	return dom.Parse(src)
}
