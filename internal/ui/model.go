package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"scrollseek/internal/config"
	"scrollseek/internal/domain"
	"scrollseek/internal/eventbus"
	"scrollseek/internal/search"
)

// Model is the bubbletea host surface for the search engine: a prompt, the
// ranked result list and a status line. Every keystroke resubmits the query;
// the engine's invalidation events arrive as EventMsg.
type Model struct {
	engine *search.Engine
	bus    eventbus.EventBus
	cfg    *config.Config
	styles *Styles
	seeker CursorSeeker

	input    textinput.Model
	results  domain.ResultSet
	selected int
	width    int
	height   int
	errText  string

	accepted *domain.MatchResult
}

// NewModel creates the UI model
func NewModel(engine *search.Engine, bus eventbus.EventBus, cfg *config.Config, seeker CursorSeeker) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "fuzzy search scrollback"
	input.Focus()

	return &Model{
		engine: engine,
		bus:    bus,
		cfg:    cfg,
		styles: NewStyles(cfg.UISettings.HighlightColor, cfg.UISettings.SelectionColor),
		seeker: seeker,
		input:  input,
	}
}

// Accepted returns the result the user accepted, or nil if they dismissed
func (m *Model) Accepted() *domain.MatchResult {
	return m.accepted
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "ctrl+g":
			return m, tea.Quit
		case "enter":
			return m.accept()
		case "up", "ctrl+p":
			m.moveSelection(-1)
			return m, nil
		case "down", "ctrl+n":
			m.moveSelection(1)
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != before {
			// A new query supersedes the old one; selection restarts at
			// the best match once it publishes
			m.selected = 0
			m.engine.Submit(value)
		}
		return m, cmd

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEvent reacts to engine events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.ResultsPublishedEvent:
		m.results = m.engine.Results()
		m.selected = 0
		m.errText = ""
	case eventbus.SearchClearedEvent:
		m.results = m.engine.Results()
		m.selected = 0
	case eventbus.ErrorEvent:
		m.errText = e.Message
		log.Printf("UI received error event: %s", e.Message)
	}
	return m, nil
}

// moveSelection moves the selection cursor, clamped to the result range
func (m *Model) moveSelection(delta int) {
	if len(m.results.Matches) == 0 {
		m.selected = 0
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected > len(m.results.Matches)-1 {
		m.selected = len(m.results.Matches) - 1
	}
}

// accept hands the selected match to the seek capability and quits
func (m *Model) accept() (tea.Model, tea.Cmd) {
	if len(m.results.Matches) == 0 {
		return m, nil
	}
	match := m.results.Matches[m.selected]
	m.accepted = &match

	if m.seeker != nil {
		m.seeker.SeekTo(match.LineIndex, match.AnchorOffset)
	}
	m.bus.Publish(eventbus.SelectionAcceptedEvent{
		LineIndex:    match.LineIndex,
		AnchorOffset: match.AnchorOffset,
		Text:         match.Text,
	})
	return m, tea.Quit
}

// searching reports whether a newer generation than the published one is
// still in flight
func (m *Model) searching() bool {
	return m.input.Value() != "" && m.engine.Generation() > m.results.Generation
}
