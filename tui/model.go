// Package tui provides the Bubble Tea component that drives a spellcheck
// session: the buffer view with misspellings highlighted, the misspelling
// and suggestion panes, and key dispatch for navigation, accept and save.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillspell/quill/session"
)

const paneRows = 8

// Config configures the spellcheck component.
type Config struct {
	KeyMap KeyMap
	Style  Style

	// Save is called with the current buffer text when the save binding
	// fires. A nil Save disables saving.
	Save func(text string) error

	// DictSize and CorpusSize are shown in the status bar.
	DictSize   int
	CorpusSize int
}

// Model is a Bubble Tea component around a session.
type Model struct {
	cfg  Config
	sess *session.Session

	viewport viewport.Model
	width    int
	height   int
	status   string
}

func New(sess *session.Session, cfg Config) Model {
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.Style = normalizeStyle(cfg.Style)
	m := Model{
		cfg:      cfg,
		sess:     sess,
		viewport: viewport.New(0, 0),
	}
	m.rebuildContent()
	return m
}

// Session returns the underlying session.
func (m Model) Session() *session.Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height

	vpHeight := height - paneRows - 2 // pane title row and status bar
	if vpHeight < 0 {
		vpHeight = 0
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight

	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.NextMisspelling):
		m.sess.SelectNextMisspelling()
		m.sess.SuggestSelected()
	case key.Matches(msg, km.PrevMisspelling):
		m.sess.SelectPreviousMisspelling()
		m.sess.SuggestSelected()
	case key.Matches(msg, km.NextSuggestion):
		m.sess.SelectNextSuggestion()
	case key.Matches(msg, km.PrevSuggestion):
		m.sess.SelectPreviousSuggestion()
	case key.Matches(msg, km.Accept):
		m.sess.AcceptSuggestion()
		m.sess.SuggestSelected()
	case key.Matches(msg, km.Save):
		m.status = m.save()
	}
	m.rebuildContent()
	return m, nil
}

func (m Model) save() string {
	if m.cfg.Save == nil {
		return "no save target"
	}
	if err := m.cfg.Save(m.sess.Text()); err != nil {
		return fmt.Sprintf("save failed: %v", err)
	}
	return "saved"
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderBuffer())
}
