package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/hints"
	"github.com/JumpLink/NetflixController/internal/notice"
	"github.com/JumpLink/NetflixController/internal/page"
	"github.com/JumpLink/NetflixController/internal/pages"
	"github.com/JumpLink/NetflixController/internal/settings"
	"github.com/JumpLink/NetflixController/internal/state"
	"github.com/JumpLink/NetflixController/internal/theme"
)

var styles = theme.Default()

// FrameInterval is the simulator poll cadence, one poll per frame.
const FrameInterval = 16 * time.Millisecond

// repeatInterval gates terminal key auto-repeat for navigation keys.
const repeatInterval = 90 * time.Millisecond

var locations = []string{"/browse", "/search", "/watch/80100172"}

type msgHandler func(tea.Msg) tea.Cmd

// Options bundles the collaborators the model drives.
type Options struct {
	Doc      *dom.Document
	Engine   *gamepad.Engine
	Keyboard *Keyboard
	Registry *action.Registry
	Router   *page.Router
	Search   *pages.SearchState
	Hints    *hints.Bar
	Notices  *notice.Center
	Roster   state.RosterStore
	Prefs    func() settings.Settings
	Width    int
	Height   int
}

// Model implements the Bubble Tea model for the simulator.
type Model struct {
	doc      *dom.Document
	engine   *gamepad.Engine
	keyboard *Keyboard
	registry *action.Registry
	router   *page.Router
	search   *pages.SearchState
	hints    *hints.Bar
	notices  *notice.Center
	roster   state.RosterStore
	prefs    func() settings.Settings

	searchInput textinput.Model
	repeat      *throttle

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	location    int

	handlers map[reflect.Type]msgHandler
}

type frameMsg struct{}

// NewModel initialises the simulator around an already-wired engine and
// router, then navigates to the first location.
func NewModel(opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "search titles"
	ti.CharLimit = 64
	ti.Prompt = "/"
	if styles.SearchPrompt != nil {
		ti.PromptStyle = *styles.SearchPrompt
	}

	m := &Model{
		doc:         opts.Doc,
		engine:      opts.Engine,
		keyboard:    opts.Keyboard,
		registry:    opts.Registry,
		router:      opts.Router,
		search:      opts.Search,
		hints:       opts.Hints,
		notices:     opts.Notices,
		roster:      opts.Roster,
		prefs:       opts.Prefs,
		searchInput: ti,
		repeat:      newThrottle(repeatInterval),
	}
	if m.prefs == nil {
		m.prefs = func() settings.Settings { return settings.Settings{} }
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	m.router.Navigate(m.currentLocation())
	return m
}

func (m *Model) currentLocation() string {
	return locations[m.location]
}

func (m *Model) searching() bool {
	return m.currentLocation() == "/search"
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(frameTick(), textinput.Blink)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	m.engine.Poll()
	// A tap spans two polls: one for the press edge, one for the release.
	m.engine.Poll()
	return frameTick()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key := msg.(tea.KeyMsg)
	switch key.String() {
	case "ctrl+c", "q":
		if key.String() == "q" && m.searching() {
			break
		}
		return tea.Quit
	case "tab":
		m.location = (m.location + 1) % len(locations)
		m.router.Navigate(m.currentLocation())
		m.syncSearchFocus()
		return nil
	case "ctrl+g":
		m.keyboard.SetConnected(false)
		return nil
	case "ctrl+r":
		m.keyboard.SetConnected(true)
		return nil
	}

	if index, ok := keyBindings[key.String()]; ok {
		if m.searching() && !isNavigationKey(key.String()) {
			return m.updateSearchInput(key)
		}
		if !m.repeat.allow() {
			return nil
		}
		m.keyboard.Tap(index)
		return nil
	}
	if m.searching() {
		return m.updateSearchInput(key)
	}
	return nil
}

// isNavigationKey reports whether a bound key should still drive the
// gamepad while the search input has focus.
func isNavigationKey(key string) bool {
	switch key {
	case "up", "down", "left", "right", "enter":
		return true
	}
	return false
}

func (m *Model) updateSearchInput(key tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(key)
	if m.search != nil {
		m.search.SetQuery(m.searchInput.Value())
	}
	return cmd
}

func (m *Model) syncSearchFocus() {
	if m.searching() {
		m.searchInput.Focus()
		return
	}
	m.searchInput.Blur()
}

func frameTick() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
