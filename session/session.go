// Package session ties the buffer and the spell engine together and carries
// the UI-facing selection state: which misspelling and which of its
// suggestions are currently selected, with wraparound navigation and the
// accept-suggestion edit.
package session

import (
	"fmt"

	"github.com/quillspell/quill/buffer"
	"github.com/quillspell/quill/spell"
)

// Session owns the text buffer and a Checker. All operations are
// synchronous; the surrounding event loop serializes calls.
type Session struct {
	buf     *buffer.Buffer
	checker *spell.Checker

	misspelling selection
	suggestion  selection
}

func New(text string, checker *spell.Checker) *Session {
	return &Session{buf: buffer.New(text), checker: checker}
}

// Buffer returns the owned buffer.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// Text returns the current buffer contents.
func (s *Session) Text() string { return s.buf.Text() }

// CheckSpelling re-checks the whole buffer, replacing the misspelling list,
// and re-validates the selection against the new count.
func (s *Session) CheckSpelling() {
	s.checker.Check(s.buf.Runes())
	s.misspelling.reconcile(s.checker.Count())
	s.suggestion.clear()
}

// Misspellings returns the current ordered misspelling list.
func (s *Session) Misspellings() []spell.Misspelling {
	return s.checker.Misspellings()
}

// SelectedMisspellingIndex returns the selected misspelling index, ok=false
// when nothing is selected.
func (s *Session) SelectedMisspellingIndex() (int, bool) {
	return s.misspelling.Index()
}

// SelectedSuggestionIndex returns the selected suggestion index, ok=false
// when nothing is selected.
func (s *Session) SelectedSuggestionIndex() (int, bool) {
	return s.suggestion.Index()
}

// SelectedMisspelling returns a copy of the selected misspelling.
func (s *Session) SelectedMisspelling() (spell.Misspelling, bool) {
	i, ok := s.misspelling.Index()
	if !ok {
		return spell.Misspelling{}, false
	}
	return s.checker.Misspellings()[i], true
}

func (s *Session) SelectNextMisspelling() {
	s.misspelling.next(s.checker.Count())
}

func (s *Session) SelectPreviousMisspelling() {
	s.misspelling.prev(s.checker.Count())
}

// SuggestSelected computes suggestions for the selected misspelling. The
// computation is idempotent and a missing selection is a no-op, so callers
// may invoke this unconditionally.
func (s *Session) SuggestSelected() {
	if i, ok := s.misspelling.Index(); ok {
		s.checker.Suggest(i)
	}
}

// Suggestions returns the suggestion list of the selected misspelling,
// nil when no misspelling is selected.
func (s *Session) Suggestions() []string {
	m, ok := s.SelectedMisspelling()
	if !ok {
		return nil
	}
	return m.Suggestions
}

func (s *Session) SelectNextSuggestion() {
	m, ok := s.SelectedMisspelling()
	if !ok {
		return
	}
	cur, curOK := s.suggestion.Index()
	if idx, selected := m.NextSuggestionIndex(cur, curOK); selected {
		s.suggestion.set(idx)
	} else {
		s.suggestion.clear()
	}
}

func (s *Session) SelectPreviousSuggestion() {
	m, ok := s.SelectedMisspelling()
	if !ok {
		return
	}
	cur, curOK := s.suggestion.Index()
	if idx, selected := m.PreviousSuggestionIndex(cur, curOK); selected {
		s.suggestion.set(idx)
	} else {
		s.suggestion.clear()
	}
}

// AcceptSuggestion splices the selected suggestion over the selected
// misspelling. The replacement is case-matched to the misspelled word, the
// corrected entry leaves the list, and every remaining entry after the edit
// shifts by the length delta. With no misspelling or no suggestion selected
// this is a defined no-op, so callers may invoke it unconditionally.
func (s *Session) AcceptSuggestion() {
	mi, ok := s.misspelling.Index()
	if !ok {
		return
	}
	si, ok := s.suggestion.Index()
	if !ok {
		return
	}

	m := s.checker.Remove(mi)
	if si >= len(m.Suggestions) {
		panic(fmt.Sprintf("session: suggestion index %d out of range (count %d)", si, len(m.Suggestions)))
	}
	adjusted := matchCase(m.Word, m.Suggestions[si])

	delta := s.buf.Splice(m.Start, m.End, adjusted)
	s.checker.ShiftFrom(mi, delta)

	s.misspelling.reconcile(s.checker.Count())
	s.suggestion.clear()
}
